package util

import "math/rand/v2"

// Shuffle returns a uniformly random permutation of s as a new slice, leaving
// the input untouched. Presentation-order randomization only; the PRNG is not
// cryptographic and does not need to be.
func Shuffle[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	for i := len(out) - 1; i > 0; i-- {
		j := rand.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
