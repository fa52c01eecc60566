// Package engine derives integers, floats, booleans, weighted selections
// and permutations from a swappable generator.Generator.
//
// Every derived value is computed from one or more raw draws of the held
// generator, so an engine driven by generator.Seeded replays exactly:
//
//	e := engine.New(generator.NewSeededString("level-1"))
//	roll, _ := e.Int(1, 6)
//	deck, _ := engine.Shuffle(e, cards)
//
// An Engine is not safe for concurrent use.
package engine

import (
	"fmt"
	"math"

	"github.com/antithesishq/antithesis-random-go/generator"
)

// Engine derives values from the generator it currently holds.
type Engine struct {
	gen generator.Generator
}

// New returns an engine drawing from gen.
func New(gen generator.Generator) *Engine {
	e := &Engine{}
	e.Use(gen)
	return e
}

// Default returns an engine backed by the standard math/rand/v2 source.
func Default() *Engine {
	return New(generator.Standard())
}

// Use replaces the generator. The next derived value is drawn from gen; the
// previous generator is dropped.
func (e *Engine) Use(gen generator.Generator) {
	if gen == nil {
		panic("engine: nil generator")
	}
	e.gen = gen
}

// Largest number of values an integer range may span. Up to this size every
// value is exactly representable in the float64 draw arithmetic.
const maxIntSpan = 1 << 53

// Int returns an integer in [lo, hi], both ends inclusive. The range may
// hold at most 2^53 values.
func (e *Engine) Int(lo, hi int) (int, error) {
	if err := checkIntRange(lo, hi); err != nil {
		return 0, err
	}
	return e.intn(lo, hi), nil
}

func checkIntRange(lo, hi int) error {
	if lo > hi {
		return fmt.Errorf("%w: int(%d, %d)", ErrInvalidRange, lo, hi)
	}
	// The unsigned difference is exact even when hi-lo overflows int.
	if uint64(hi)-uint64(lo) >= maxIntSpan {
		return fmt.Errorf("%w: int(%d, %d) spans more than 2^53 values", ErrInvalidRange, lo, hi)
	}
	return nil
}

// intn is Int without the range check.
func (e *Engine) intn(lo, hi int) int {
	span := float64(hi) - float64(lo) + 1
	return int(math.Floor(e.gen.Next()*span)) + lo
}

// Float returns a value in [lo, hi). When lo == hi the result is lo.
// Both bounds and their difference must be finite.
func (e *Engine) Float(lo, hi float64) (float64, error) {
	if err := checkFloatRange(lo, hi); err != nil {
		return 0, err
	}
	return e.floatn(lo, hi), nil
}

func checkFloatRange(lo, hi float64) error {
	// NaN fails the ordering check and yields a NaN width.
	if !(lo <= hi) || math.IsInf(hi-lo, 0) || math.IsNaN(hi-lo) {
		return fmt.Errorf("%w: float(%v, %v)", ErrInvalidRange, lo, hi)
	}
	return nil
}

func (e *Engine) floatn(lo, hi float64) float64 {
	return e.gen.Next()*(hi-lo) + lo
}

// Boolean reports whether a draw fell strictly below one half.
func (e *Engine) Boolean() bool {
	return e.gen.Next() < 0.5
}
