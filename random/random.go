// Package random offers a process-wide default engine with free-function
// shortcuts, for callers that want random values without managing an
// engine of their own.
//
// The default engine is built once, on first use. Its generator is chosen
// from the environment (see Config); with no configuration it is the
// standard math/rand/v2 source.
package random

import (
	"sync"

	"github.com/antithesishq/antithesis-random-go/engine"
	"github.com/antithesishq/antithesis-random-go/generator"
)

var (
	defaultOnce   sync.Once
	defaultEngine *engine.Engine
)

// Default returns the process-wide engine, creating it on the first call.
func Default() *engine.Engine {
	defaultOnce.Do(func() {
		defaultEngine = engine.New(LoadConfig().Generator())
	})
	return defaultEngine
}

// Use swaps the generator of the default engine. It must not race with
// other calls into this package.
func Use(gen generator.Generator) {
	Default().Use(gen)
}

// Int returns an integer in [lo, hi], both inclusive.
func Int(lo, hi int) (int, error) {
	return Default().Int(lo, hi)
}

// Float returns a value in [lo, hi).
func Float(lo, hi float64) (float64, error) {
	return Default().Float(lo, hi)
}

// Boolean reports whether a draw fell strictly below one half.
func Boolean() bool {
	return Default().Boolean()
}
