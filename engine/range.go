package engine

import "fmt"

// Range produces batches of independent draws. Values come out in draw
// order, so a seeded engine yields the same batch on every run.
type Range struct {
	e *Engine
}

// Range returns the batch surface of e.
func (e *Engine) Range() Range {
	return Range{e: e}
}

func checkCount(count int) error {
	if count < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeCount, count)
	}
	return nil
}

// Int returns count integers, each in [lo, hi].
func (r Range) Int(count, lo, hi int) ([]int, error) {
	if err := checkCount(count); err != nil {
		return nil, err
	}
	if err := checkIntRange(lo, hi); err != nil {
		return nil, err
	}
	out := make([]int, count)
	for i := range out {
		out[i] = r.e.intn(lo, hi)
	}
	return out, nil
}

// Float returns count values, each in [lo, hi).
func (r Range) Float(count int, lo, hi float64) ([]float64, error) {
	if err := checkCount(count); err != nil {
		return nil, err
	}
	if err := checkFloatRange(lo, hi); err != nil {
		return nil, err
	}
	out := make([]float64, count)
	for i := range out {
		out[i] = r.e.floatn(lo, hi)
	}
	return out, nil
}

func (r Range) Boolean(count int) ([]bool, error) {
	if err := checkCount(count); err != nil {
		return nil, err
	}
	out := make([]bool, count)
	for i := range out {
		out[i] = r.e.Boolean()
	}
	return out, nil
}

// RangeItem returns count elements of list, each chosen independently.
func RangeItem[T any](e *Engine, count int, list []T) ([]T, error) {
	if err := checkCount(count); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, ErrEmptyCollection
	}
	out := make([]T, count)
	for i := range out {
		out[i] = list[e.intn(0, len(list)-1)]
	}
	return out, nil
}

// RangeWeighted returns count weighted picks from items.
func RangeWeighted[T any](e *Engine, count int, items []T, weights []float64) ([]T, error) {
	if err := checkCount(count); err != nil {
		return nil, err
	}
	total, err := totalWeight(len(items), weights)
	if err != nil {
		return nil, err
	}
	out := make([]T, count)
	for i := range out {
		out[i] = pickWeighted(e, items, weights, total)
	}
	return out, nil
}
