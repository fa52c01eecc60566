package random

import (
	"github.com/antithesishq/antithesis-random-go/engine"
)

// Item returns a randomly chosen element of list.
func Item[T any](list []T) (T, error) {
	return engine.Item(Default(), list)
}

// Weighted picks from items with probability proportional to weights.
func Weighted[T any](items []T, weights []float64) (T, error) {
	return engine.Weighted(Default(), items, weights)
}

// Shuffle returns a shuffled copy of list.
func Shuffle[T any](list []T) ([]T, error) {
	return engine.Shuffle(Default(), list)
}

// Range returns the batch surface of the default engine.
func Range() engine.Range {
	return Default().Range()
}

// RangeItem returns count independent picks from list.
func RangeItem[T any](count int, list []T) ([]T, error) {
	return engine.RangeItem(Default(), count, list)
}

// RangeWeighted returns count independent weighted picks from items.
func RangeWeighted[T any](count int, items []T, weights []float64) ([]T, error) {
	return engine.RangeWeighted(Default(), count, items, weights)
}
