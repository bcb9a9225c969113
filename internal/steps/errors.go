package steps

import "errors"

var (
	// ErrEmptyRange indicates a random array request with min > max.
	ErrEmptyRange = errors.New("steps: value range is empty")

	// ErrNegativeSize indicates a random array request with a negative length.
	ErrNegativeSize = errors.New("steps: array size is negative")
)
