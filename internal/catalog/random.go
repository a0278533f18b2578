package catalog

import "math/rand/v2"

// Rand is the pseudo-random source threaded through every generator.
type Rand struct {
	r *rand.Rand
}

// NewRand returns a deterministic source for the given seed.
func NewRand(seed uint64) *Rand {
	return &Rand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Between returns an int in the closed interval [lo, hi].
func (r *Rand) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.r.IntN(hi-lo+1)
}

// Shuffle permutes n elements in place via swap.
func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	r.r.Shuffle(n, swap)
}

// pick returns one element of values. values must be non-empty.
func pick[T any](r *Rand, values []T) T {
	return values[r.r.IntN(len(values))]
}

// sample returns k distinct elements of values in draw order. k is clamped to
// len(values).
func sample[T any](r *Rand, values []T, k int) []T {
	k = min(k, len(values))
	pool := make([]T, len(values))
	copy(pool, values)
	for i := 0; i < k; i++ {
		j := i + r.r.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k:k]
}
