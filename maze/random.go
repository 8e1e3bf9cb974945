package maze

import (
	"math/rand/v2"
	"time"
)

// Source is the randomness used by the generator.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// NewSource returns a deterministic source for the given seed.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed))
}

// NewRandomSource returns a source seeded from the current time.
func NewRandomSource() Source {
	return rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
}

// RandOddBetween draws from [from, to) until it gets an odd value.
// It returns ErrNoOddInRange when the range holds no odd integer and
// ErrRangeTooWide when to-from does not fit in an int.
func RandOddBetween(rng Source, from, to int) (int, error) {
	if !hasOdd(from, to) {
		return 0, ErrNoOddInRange
	}

	span := to - from
	if span <= 0 {
		return 0, ErrRangeTooWide
	}

	for {
		n := from + rng.IntN(span)
		if n%2 != 0 {
			return n, nil
		}
	}
}

// hasOdd reports whether [from, to) contains an odd integer.
// from+1 cannot overflow once to > from.
func hasOdd(from, to int) bool {
	return to > from && (from%2 != 0 || from+1 < to)
}
