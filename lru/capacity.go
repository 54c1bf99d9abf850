package lru

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxCapacity is the largest capacity addressable with 32-bit link arrays.
const MaxCapacity = math.MaxUint32 + 1

// ParseCapacity converts a textual capacity, typically from a flag or a
// config file, into a value accepted by NewCache. Fractional, non-finite
// and non-positive numbers fail with ErrInvalidCapacity; numbers above
// MaxCapacity fail with ErrCapacityNotSupported.
func ParseCapacity(s string) (int, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCapacity, s)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 || math.Trunc(f) != f {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCapacity, s)
	}
	if f > MaxCapacity || f > math.MaxInt {
		return 0, fmt.Errorf("%w: %q", ErrCapacityNotSupported, s)
	}
	return int(f), nil
}
