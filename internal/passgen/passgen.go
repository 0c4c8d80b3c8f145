// Package passgen generates random passwords from a character-class policy.
package passgen

import (
	"errors"
	"strings"
)

// password character classes
const (
	lowerChars   = "abcdefghijklmnopqrstuvwxyz"
	upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars   = "0123456789"
	specialChars = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// DefaultLength is the password length used when none is given.
	DefaultLength = 12
)

// ErrEmptyAlphabet is returned when no character class is enabled.
var ErrEmptyAlphabet = errors.New("at least one character set must be enabled")

// Policy describes the password to generate. Lowercase letters are always
// part of the alphabet.
type Policy struct {
	Length    int  `json:"length"`
	Uppercase bool `json:"uppercase"`
	Digits    bool `json:"digits"`
	Special   bool `json:"special"`
}

// DefaultPolicy returns a 12 character policy with every class enabled.
func DefaultPolicy() Policy {
	return Policy{
		Length:    DefaultLength,
		Uppercase: true,
		Digits:    true,
		Special:   true,
	}
}

// Alphabet returns the characters eligible for selection under p.
func (p Policy) Alphabet() string {
	return alphabet(p.classes())
}

// Classes returns the names of the enabled classes in alphabet order.
func (p Policy) Classes() []string {
	cs := p.classes()
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = c.name
	}
	return names
}

// charClass is a named set of characters. Required classes get a fix-up
// when the drawn password lacks them.
type charClass struct {
	name     string
	chars    string
	required bool
}

// classes lists the enabled classes. Order matters: it is both the alphabet
// concatenation order and the fix-up order.
func (p Policy) classes() []charClass {
	cs := []charClass{{name: "lowercase", chars: lowerChars}}
	if p.Uppercase {
		cs = append(cs, charClass{name: "uppercase", chars: upperChars, required: true})
	}
	if p.Digits {
		cs = append(cs, charClass{name: "digits", chars: digitChars, required: true})
	}
	if p.Special {
		cs = append(cs, charClass{name: "special", chars: specialChars, required: true})
	}
	return cs
}

func alphabet(cs []charClass) string {
	var b strings.Builder
	for _, c := range cs {
		b.WriteString(c.chars)
	}
	return b.String()
}

// Generator draws passwords from a Source.
type Generator struct {
	src Source
}

// New creates a generator reading from src. A nil src uses CryptoSource.
func New(src Source) *Generator {
	if src == nil {
		src = CryptoSource()
	}
	return &Generator{src: src}
}

// Generate returns a password of exactly p.Length characters drawn from
// p.Alphabet(). A length of zero or less yields the empty string.
//
// Each enabled class missing from the draw is forced in by overwriting the
// last character, checked in order uppercase, digits, special. The fix-ups
// share that one position, so when several classes are missing only the last
// one applied is guaranteed to survive. A single character password with
// every class enabled is always a special character.
func (g *Generator) Generate(p Policy) (string, error) {
	return g.generate(p.classes(), p.Length)
}

func (g *Generator) generate(cs []charClass, length int) (string, error) {
	all := alphabet(cs)
	if all == "" {
		return "", ErrEmptyAlphabet
	}

	if length <= 0 {
		return "", nil
	}

	buf := make([]byte, length)
	for i := range buf {
		buf[i] = g.pick(all)
	}

	last := length - 1
	for _, c := range cs {
		if !c.required || containsAny(buf, c.chars) {
			continue
		}
		buf[last] = g.pick(c.chars)
	}

	return string(buf), nil
}

// pick returns a uniformly random byte from s.
func (g *Generator) pick(s string) byte {
	return s[g.src.IntN(len(s))]
}

func containsAny(buf []byte, chars string) bool {
	return strings.ContainsAny(string(buf), chars)
}
