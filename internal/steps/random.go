package steps

import (
	"fmt"
	"math/rand"
)

const (
	DefaultSize = 8
	DefaultMin  = 1
	DefaultMax  = 50
)

// RandomValues draws n values uniformly from [min, max].
func RandomValues(rng *rand.Rand, n, min, max int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSize, n)
	}
	if min > max {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrEmptyRange, min, max)
	}
	out := make([]int, n)
	for i := range out {
		out[i] = rng.Intn(max-min+1) + min
	}
	return out, nil
}

// PickTarget chooses a search target among values. An empty array yields min.
func PickTarget(rng *rand.Rand, values []int, min int) int {
	if len(values) == 0 {
		return min
	}
	return values[rng.Intn(len(values))]
}
