package uuid

import gonanoid "github.com/matoous/go-nanoid"

// Generator opaque ID generator interface
type Generator interface {
	Generate() (string, error)
}

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Base36Generator NanoID generator restricted to the base-36 alphabet,
// for tokens that must survive case folding and URL encoding untouched.
// Collision-resistant enough for tracking keys, not for credentials
type Base36Generator struct {
	Length int
}

var _ Generator = &Base36Generator{}

// NewBase36Generator create a new `Base36Generator` instance
func NewBase36Generator(length int) *Base36Generator {
	if length < 1 {
		panic("length must be larger than 1")
	}
	return &Base36Generator{Length: length}
}

// Generate generate a new ID
func (bs *Base36Generator) Generate() (string, error) {
	return gonanoid.Generate(base36Alphabet, bs.Length)
}
