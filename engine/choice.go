package engine

import (
	"fmt"
	"math"
	"slices"
)

// Item returns a uniformly chosen element of list.
func Item[T any](e *Engine, list []T) (T, error) {
	if len(list) == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}
	return list[e.intn(0, len(list)-1)], nil
}

// Weighted returns an element of items chosen with probability proportional
// to the weight at the same index.
//
// If rounding lets the scan run past every item, the last item is returned.
func Weighted[T any](e *Engine, items []T, weights []float64) (T, error) {
	var zero T
	total, err := totalWeight(len(items), weights)
	if err != nil {
		return zero, err
	}
	return pickWeighted(e, items, weights, total), nil
}

func totalWeight(numItems int, weights []float64) (float64, error) {
	if numItems != len(weights) {
		return 0, fmt.Errorf("%w: %d items, %d weights", ErrLengthMismatch, numItems, len(weights))
	}
	total := 0.0
	for i, w := range weights {
		// NaN fails this comparison too.
		if !(w >= 0) {
			return 0, fmt.Errorf("%w: weights[%d] = %v", ErrNegativeWeight, i, w)
		}
		if math.IsInf(w, 1) {
			return 0, fmt.Errorf("%w: weights[%d] = %v", ErrInvalidWeight, i, w)
		}
		total += w
	}
	if math.IsInf(total, 1) {
		return 0, fmt.Errorf("%w: total weight overflows float64", ErrInvalidWeight)
	}
	if !(total > 0) {
		return 0, ErrZeroTotalWeight
	}
	return total, nil
}

func pickWeighted[T any](e *Engine, items []T, weights []float64, total float64) T {
	r := e.floatn(0, total)
	for i, w := range weights {
		if r < w {
			return items[i]
		}
		r -= w
	}
	return items[len(items)-1]
}

// Shuffle returns a new slice holding a uniformly random permutation of
// list (Fisher–Yates). list itself is left untouched.
func Shuffle[T any](e *Engine, list []T) ([]T, error) {
	if len(list) == 0 {
		return nil, ErrEmptyCollection
	}
	out := slices.Clone(list)
	for current := len(out) - 1; current > 0; current-- {
		pos := e.intn(0, current)
		out[pos], out[current] = out[current], out[pos]
	}
	return out, nil
}
