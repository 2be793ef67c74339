// Package rng provides the integer sampling helpers used by the question
// generator.
package rng

import "math/rand/v2"

// IntBetween returns a uniform random integer in [min, max] inclusive.
// Callers must guarantee min <= max; range clamping is the generator's job.
func IntBetween(min, max int) int {
	return min + rand.IntN(max-min+1)
}

// AdaptiveRange narrows [min, max] to its upper half once the learner has
// answered more than two questions in a row correctly. The problem kind
// stays the same; only the numbers get harder.
func AdaptiveRange(min, max, streak int) (int, int) {
	if streak > 2 {
		return (min + max) / 2, max
	}
	return min, max
}

// Pick returns a random element of vals. vals must be non-empty.
func Pick[T any](vals []T) T {
	return vals[rand.IntN(len(vals))]
}

// Shuffle reorders vals in place.
func Shuffle[T any](vals []T) {
	rand.Shuffle(len(vals), func(i, j int) {
		vals[i], vals[j] = vals[j], vals[i]
	})
}
