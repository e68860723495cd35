package goiters

import "golang.org/x/exp/constraints"

// ConsumerFunc consumes element elem.
// The index is the 0-based count of elements seen so far by this operation.
type ConsumerFunc[T any] func(elem T, index uint64)

// AccumulatorFunc folds element elem into the accumulator acc, returning acc,
// or a new accumulator.
// The index is the 0-based count of elements folded so far.
type AccumulatorFunc[T any, A any] func(elem T, index uint64, acc A) A

// Number is a constraint that permits any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Each calls each for each element produced by it, in order, consuming it
// completely.
func Each[T any](it Iterator[T], each ConsumerFunc[T]) {
	index := uint64(0)

	for elem, ok := it.Next(); ok; elem, ok = it.Next() {
		each(elem, index)
		index++
	}
}

// Reduce calls reduce for each element produced by it, folding it into
// accumulator acc, returning the final accumulator. For an empty input, acc
// is returned unchanged and reduce is never called.
func Reduce[T any, A any](it Iterator[T], acc A, reduce AccumulatorFunc[T, A]) A {
	Each(it, func(elem T, index uint64) {
		acc = reduce(elem, index, acc)
	})

	return acc
}

// Fold is Reduce without a start value: the first element produced by it
// becomes the initial accumulator, and reduce folds every following element
// into it. For an empty input, Fold returns false and reduce is never
// called.
func Fold[T any](it Iterator[T], reduce func(acc T, elem T) T) (T, bool) {
	acc, ok := it.Next()
	if !ok {
		var zero T
		return zero, false
	}

	for elem, ok := it.Next(); ok; elem, ok = it.Next() {
		acc = reduce(acc, elem)
	}

	return acc, true
}

// Sum returns the sum of the elements produced by it. An empty input sums
// to zero.
func Sum[T Number](it Iterator[T]) T {
	return Reduce(it, 0, func(elem T, _ uint64, acc T) T {
		return acc + elem
	})
}

// Min returns the smallest element produced by it, or false for an empty
// input. Among equal elements, the first produced wins.
func Min[T constraints.Ordered](it Iterator[T]) (T, bool) {
	return Fold(it, func(acc, elem T) T {
		if elem < acc {
			return elem
		}

		return acc
	})
}

// Max returns the largest element produced by it, or false for an empty
// input. Among equal elements, the first produced wins.
func Max[T constraints.Ordered](it Iterator[T]) (T, bool) {
	return Fold(it, func(acc, elem T) T {
		if elem > acc {
			return elem
		}

		return acc
	})
}

// MinBy is Min with the elements compared by the key computed by key.
func MinBy[T any, K constraints.Ordered](it Iterator[T], key func(T) K) (T, bool) {
	return Fold(it, func(acc, elem T) T {
		if key(elem) < key(acc) {
			return elem
		}

		return acc
	})
}

// MaxBy is Max with the elements compared by the key computed by key.
func MaxBy[T any, K constraints.Ordered](it Iterator[T], key func(T) K) (T, bool) {
	return Fold(it, func(acc, elem T) T {
		if key(elem) > key(acc) {
			return elem
		}

		return acc
	})
}

// AnyMatch returns true as soon as pred returns true for an element produced
// by it, that is, an element matches; no further elements are pulled. For an
// empty input, it returns false.
func AnyMatch[T any](it Iterator[T], pred PredicateFunc[T]) bool {
	index := uint64(0)

	for elem, ok := it.Next(); ok; elem, ok = it.Next() {
		if pred(elem, index) {
			return true
		}

		index++
	}

	return false
}

// AllMatch returns true if pred returns true for all elements produced by
// it, that is, all elements match; it stops pulling at the first element
// that does not. For an empty input, it returns true.
func AllMatch[T any](it Iterator[T], pred PredicateFunc[T]) bool {
	index := uint64(0)

	for elem, ok := it.Next(); ok; elem, ok = it.Next() {
		if !pred(elem, index) {
			return false
		}

		index++
	}

	return true
}

// Contains returns true as soon as it produces an element equal to target.
func Contains[T comparable](it Iterator[T], target T) bool {
	return AnyMatch(it, func(elem T, _ uint64) bool {
		return elem == target
	})
}

// Find returns the first element produced by it for which pred returns true,
// or false if there is none.
func Find[T any](it Iterator[T], pred PredicateFunc[T]) (T, bool) {
	index := uint64(0)

	for elem, ok := it.Next(); ok; elem, ok = it.Next() {
		if pred(elem, index) {
			return elem, true
		}

		index++
	}

	var zero T
	return zero, false
}

// First returns the first element produced by it, or false for an empty
// input.
func First[T any](it Iterator[T]) (T, bool) {
	return it.Next()
}
