package generator

import (
	"math/rand/v2"
	"unicode/utf16"
)

const (
	fnvOffsetBasis = 2166136261
	mulberryStep   = 0x6D2B79F5
	twoTo32        = 1 << 32
)

// Seeded is a deterministic Mulberry32 generator. Two instances built from
// the same seed produce the same sequence forever.
//
// Seeded is not safe for concurrent use and must never be used where
// unpredictability matters.
type Seeded struct {
	state uint32
}

// Assert that Seeded can drive a math/rand/v2 Rand.
var _ rand.Source = (*Seeded)(nil)

// NewSeeded returns a generator whose initial state is the low 32 bits of
// seed.
func NewSeeded(seed int64) *Seeded {
	return &Seeded{state: uint32(seed)}
}

// NewSeededString returns a generator whose initial state is
// HashString(seed).
func NewSeededString(seed string) *Seeded {
	return &Seeded{state: HashString(seed)}
}

// HashString folds s into 32 bits with FNV-1a. Characters are consumed as
// UTF-16 code units so that the result matches implementations working on
// JavaScript strings; invalid UTF-8 is hashed as U+FFFD.
func HashString(s string) uint32 {
	hash := uint32(fnvOffsetBasis)
	for _, c := range utf16.Encode([]rune(s)) {
		hash ^= uint32(c)
		hash += (hash << 1) + (hash << 4) + (hash << 7) + (hash << 8) + (hash << 24)
	}
	return hash
}

// Uint32 advances the stream and returns the next raw 32-bit word.
func (s *Seeded) Uint32() uint32 {
	s.state += mulberryStep
	t := s.state
	r := (t ^ (t >> 15)) * (t | 1)
	r ^= r + (r^(r>>7))*(r|61)
	return r ^ (r >> 14)
}

func (s *Seeded) Next() float64 {
	return float64(s.Uint32()) / twoTo32
}

// Uint64 combines two consecutive words, high word first.
func (s *Seeded) Uint64() uint64 {
	hi := uint64(s.Uint32())
	return hi<<32 | uint64(s.Uint32())
}

// State returns the current state word. NewSeeded(int64(state)) continues
// the stream exactly where this generator is.
func (s *Seeded) State() uint32 {
	return s.state
}
