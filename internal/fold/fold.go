// Package fold provides left-to-right reductions over sequences.
package fold

import "iter"

// Reduce folds seq into a single value, starting from seed and applying
// acc = fn(elem, acc) once per element in order. An empty seq yields seed.
func Reduce[E, A any](fn func(E, A) A, seq []E, seed A) A {
	acc := seed
	for _, e := range seq {
		acc = fn(e, acc)
	}
	return acc
}

// ReduceSeq is Reduce over an iterator.
func ReduceSeq[E, A any](fn func(E, A) A, seq iter.Seq[E], seed A) A {
	acc := seed
	for e := range seq {
		acc = fn(e, acc)
	}
	return acc
}

// TryReduce is Reduce with a fallible combinator. It stops at the first
// error and returns it as-is, along with the accumulator from before the
// failing step.
func TryReduce[E, A any](fn func(E, A) (A, error), seq []E, seed A) (A, error) {
	acc := seed
	for _, e := range seq {
		next, err := fn(e, acc)
		if err != nil {
			return acc, err
		}
		acc = next
	}
	return acc, nil
}
