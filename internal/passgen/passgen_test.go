package passgen

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
)

// constSource always returns the same index, clamped to n.
func constSource(i int) Source {
	return SourceFunc(func(n int) int {
		if i >= n {
			return n - 1
		}
		return i
	})
}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func TestDefaultPolicy(t *testing.T) {
	p := DefaultPolicy()
	if p.Length != 12 {
		t.Errorf("Length = %d, want 12", p.Length)
	}
	if !p.Uppercase || !p.Digits || !p.Special {
		t.Errorf("default policy should enable every class: %+v", p)
	}
}

func TestAlphabet(t *testing.T) {
	tests := []struct {
		name   string
		policy Policy
		want   string
	}{
		{"lowercase only", Policy{}, lowerChars},
		{"uppercase", Policy{Uppercase: true}, lowerChars + upperChars},
		{"digits", Policy{Digits: true}, lowerChars + digitChars},
		{"special", Policy{Special: true}, lowerChars + specialChars},
		{"all", DefaultPolicy(), lowerChars + upperChars + digitChars + specialChars},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.policy.Alphabet(); got != tt.want {
				t.Errorf("Alphabet() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSpecialCharacterSet(t *testing.T) {
	if specialChars != "!@#$%^&*()_+-=[]{}|;:,.<>?" {
		t.Fatalf("special set changed: %q", specialChars)
	}
	if n := len(DefaultPolicy().Alphabet()); n != 88 {
		t.Errorf("full alphabet size = %d, want 88", n)
	}
}

func TestClasses(t *testing.T) {
	got := strings.Join(DefaultPolicy().Classes(), ",")
	if got != "lowercase,uppercase,digits,special" {
		t.Errorf("Classes() = %s", got)
	}

	got = strings.Join(Policy{Digits: true}.Classes(), ",")
	if got != "lowercase,digits" {
		t.Errorf("Classes() = %s", got)
	}
}

func TestGenerateLength(t *testing.T) {
	policies := []Policy{
		{Uppercase: true, Digits: true, Special: true},
		{Uppercase: true},
		{Digits: true, Special: true},
		{},
	}

	g := New(seeded(1))
	for _, p := range policies {
		for _, length := range []int{1, 2, 3, 4, 8, 12, 32, 128} {
			p.Length = length
			pw, err := g.Generate(p)
			if err != nil {
				t.Fatalf("Generate(%+v): %v", p, err)
			}
			if len(pw) != length {
				t.Errorf("Generate(%+v) length = %d, want %d", p, len(pw), length)
			}
		}
	}
}

func TestGenerateNonPositiveLength(t *testing.T) {
	g := New(seeded(2))
	for _, length := range []int{0, -1, -12} {
		p := DefaultPolicy()
		p.Length = length
		pw, err := g.Generate(p)
		if err != nil {
			t.Fatalf("Generate(length=%d): %v", length, err)
		}
		if pw != "" {
			t.Errorf("Generate(length=%d) = %q, want empty", length, pw)
		}
	}
}

func TestGenerateCharactersFromAlphabet(t *testing.T) {
	g := New(seeded(3))
	for range 200 {
		p := DefaultPolicy()
		pw, err := g.Generate(p)
		if err != nil {
			t.Fatal(err)
		}
		alpha := p.Alphabet()
		for _, r := range pw {
			if !strings.ContainsRune(alpha, r) {
				t.Fatalf("password %q contains %q outside the alphabet", pw, r)
			}
		}
	}
}

func TestGenerateLowercaseOnly(t *testing.T) {
	g := New(seeded(4))
	for range 100 {
		pw, err := g.Generate(Policy{Length: 16})
		if err != nil {
			t.Fatal(err)
		}
		for _, r := range pw {
			if !strings.ContainsRune(lowerChars, r) {
				t.Fatalf("lowercase-only password %q contains %q", pw, r)
			}
		}
	}
}

func TestGenerateAlwaysHasSpecial(t *testing.T) {
	g := New(seeded(5))
	for _, length := range []int{4, 5, 8, 12, 20} {
		for range 100 {
			p := DefaultPolicy()
			p.Length = length
			pw, err := g.Generate(p)
			if err != nil {
				t.Fatal(err)
			}
			if !strings.ContainsAny(pw, specialChars) {
				t.Fatalf("password %q has no special character", pw)
			}
		}
	}
}

func TestGenerateSingleCharacterIsSpecial(t *testing.T) {
	// every earlier fix-up is overwritten by the special fix-up
	g := New(seeded(6))
	for range 200 {
		p := DefaultPolicy()
		p.Length = 1
		pw, err := g.Generate(p)
		if err != nil {
			t.Fatal(err)
		}
		if len(pw) != 1 || !strings.Contains(specialChars, pw) {
			t.Fatalf("Generate(length=1) = %q, want one special character", pw)
		}
	}
}

func TestGenerateFixups(t *testing.T) {
	tests := []struct {
		name   string
		src    Source
		policy Policy
		want   string
	}{
		{
			// all 'a', each missing class overwrites the last byte in turn
			name:   "all missing",
			src:    constSource(0),
			policy: DefaultPolicy(),
			want:   "aaaaaaaaaaa!",
		},
		{
			name:   "uppercase missing",
			src:    constSource(0),
			policy: Policy{Length: 6, Uppercase: true},
			want:   "aaaaaA",
		},
		{
			name:   "digits missing",
			src:    constSource(0),
			policy: Policy{Length: 4, Digits: true},
			want:   "aaa0",
		},
		{
			name:   "uppercase then digits",
			src:    constSource(0),
			policy: Policy{Length: 3, Uppercase: true, Digits: true},
			want:   "aa0",
		},
		{
			// index 26 is 'A' in lower+upper, so nothing is missing
			name:   "class present",
			src:    constSource(26),
			policy: Policy{Length: 3, Uppercase: true},
			want:   "AAA",
		},
		{
			name:   "lowercase only untouched",
			src:    constSource(25),
			policy: Policy{Length: 5},
			want:   "zzzzz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.src).Generate(tt.policy)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Generate(%+v) = %q, want %q", tt.policy, got, tt.want)
			}
		})
	}
}

func TestGenerateFixupDropsEarlierClass(t *testing.T) {
	// the uppercase fix-up lands on the last byte and the digit fix-up
	// replaces it, so the result has no uppercase at all
	pw, err := New(constSource(0)).Generate(Policy{Length: 2, Uppercase: true, Digits: true})
	if err != nil {
		t.Fatal(err)
	}
	if strings.ContainsAny(pw, upperChars) {
		t.Errorf("expected uppercase to be overwritten, got %q", pw)
	}
	if pw != "a0" {
		t.Errorf("got %q, want %q", pw, "a0")
	}
}

func TestGenerateEmptyAlphabet(t *testing.T) {
	g := New(seeded(7))
	_, err := g.generate(nil, 8)
	if !errors.Is(err, ErrEmptyAlphabet) {
		t.Fatalf("err = %v, want ErrEmptyAlphabet", err)
	}

	_, err = g.generate([]charClass{{name: "none"}}, 8)
	if !errors.Is(err, ErrEmptyAlphabet) {
		t.Fatalf("err = %v, want ErrEmptyAlphabet", err)
	}
}

func TestGenerateRandomness(t *testing.T) {
	g := New(nil)
	a, err := g.Generate(DefaultPolicy())
	if err != nil {
		t.Fatal(err)
	}
	different := false
	for range 5 {
		b, err := g.Generate(DefaultPolicy())
		if err != nil {
			t.Fatal(err)
		}
		if a != b {
			different = true
			break
		}
	}
	if !different {
		t.Errorf("consecutive passwords should differ: got %q repeatedly", a)
	}
}

func TestGenerateSeededIsReproducible(t *testing.T) {
	a, err := New(seeded(42)).Generate(DefaultPolicy())
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(seeded(42)).Generate(DefaultPolicy())
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("same seed produced %q and %q", a, b)
	}
}
