package generator

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/antithesishq/antithesis-random-go/internal/entropy"
)

// ErrEntropyUnavailable is returned by NewSecure when the host offers no
// usable cryptographic random source.
var ErrEntropyUnavailable = errors.New("secure RNG is not available: ensure you are in a secure environment with crypto support")

// Secure draws every value from a cryptographic entropy source. It holds no
// state of its own and is safe for concurrent use.
type Secure struct {
	src entropy.Source
}

// Assert that Secure can drive a math/rand/v2 Rand.
var _ rand.Source = (*Secure)(nil)

// NewSecure selects an entropy source, preferring the platform source and
// falling back to the operating system. It fails immediately when neither
// can be read.
func NewSecure() (*Secure, error) {
	return newSecure(entropy.Candidates()...)
}

func newSecure(candidates ...entropy.Source) (*Secure, error) {
	src, err := entropy.Locate(candidates...)
	if err != nil {
		return nil, fmt.Errorf("%w (%w)", ErrEntropyUnavailable, err)
	}
	return &Secure{src: src}, nil
}

// SourceName reports which entropy source was selected.
func (s *Secure) SourceName() string {
	return s.src.Name()
}

// Next panics if the source stops delivering bytes after construction.
func (s *Secure) Next() float64 {
	var buf [4]byte
	s.read(buf[:])
	return float64(binary.BigEndian.Uint32(buf[:])) / twoTo32
}

func (s *Secure) Uint64() uint64 {
	var buf [8]byte
	s.read(buf[:])
	return binary.BigEndian.Uint64(buf[:])
}

func (s *Secure) read(p []byte) {
	if err := s.src.Read(p); err != nil {
		panic(fmt.Sprintf("read %s entropy source: %v", s.src.Name(), err))
	}
}
