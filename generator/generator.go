// Package generator provides sources of uniform random values in [0, 1).
//
// A Generator is the only thing an engine needs. Two realizations are
// provided: Seeded, a reproducible Mulberry32 stream, and Secure, which reads
// from a cryptographic entropy source. Any func() float64 can be used as a
// Generator through Func.
package generator

import (
	"math/rand/v2"
	"sync"
)

// Generator produces values v with 0 <= v < 1.
type Generator interface {
	Next() float64
}

// Func adapts an ordinary function to the Generator interface.
type Func func() float64

func (f Func) Next() float64 {
	return f()
}

// Standard returns a Generator backed by the top-level math/rand/v2
// functions. It is safe for concurrent use and not reproducible.
func Standard() Generator {
	return Func(rand.Float64)
}

type locked struct {
	mu  sync.Mutex
	gen Generator
}

// Locked wraps gen so that calls to Next are serialized. Use it when a
// stateful generator such as Seeded is shared between goroutines.
func Locked(gen Generator) Generator {
	return &locked{gen: gen}
}

func (l *locked) Next() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gen.Next()
}
