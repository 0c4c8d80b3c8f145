package passgen

import (
	"encoding/binary"
	"math"

	"github.com/zarlcorp/core/pkg/zcrypto"
)

// Source supplies uniform random integers. *math/rand/v2.Rand satisfies it,
// so tests can pass a seeded generator.
type Source interface {
	// IntN returns a uniform int in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(n int) int

// IntN calls f(n).
func (f SourceFunc) IntN(n int) int { return f(n) }

// CryptoSource returns a Source backed by the operating system CSPRNG.
func CryptoSource() Source {
	return cryptoSource{}
}

type cryptoSource struct{}

// IntN draws 64-bit values and rejects the biased tail so every result in
// [0, n) is equally likely.
func (cryptoSource) IntN(n int) int {
	if n <= 0 {
		panic("passgen: invalid argument to IntN")
	}

	bound := uint64(n)
	limit := math.MaxUint64 - math.MaxUint64%bound
	for {
		v := randUint64()
		if v < limit {
			return int(v % bound)
		}
	}
}

func randUint64() uint64 {
	b, err := zcrypto.RandBytes(8)
	if err != nil {
		// crypto/rand failure is unrecoverable
		panic("zcrypto: " + err.Error())
	}
	return binary.LittleEndian.Uint64(b)
}
