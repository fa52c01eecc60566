package engine

import "errors"

var (
	// ErrLengthMismatch reports items and weights of different lengths.
	ErrLengthMismatch = errors.New("items and weights must have the same length")
	// ErrNegativeWeight reports a weight below zero or NaN.
	ErrNegativeWeight = errors.New("weights must be non-negative")
	// ErrInvalidWeight reports an infinite weight or a total that overflows.
	ErrInvalidWeight = errors.New("weights must be finite")
	// ErrZeroTotalWeight reports weights that sum to zero.
	ErrZeroTotalWeight = errors.New("total weight must be greater than 0")
	// ErrEmptyCollection reports a pick or shuffle over an empty slice.
	ErrEmptyCollection = errors.New("collection must not be empty")
	// ErrInvalidRange reports reversed, non-finite or oversized bounds.
	ErrInvalidRange = errors.New("range bounds must be ordered, finite and span at most 2^53 integers")
	// ErrNegativeCount reports a batch size below zero.
	ErrNegativeCount = errors.New("count must not be negative")
)
