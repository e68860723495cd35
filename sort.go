package goiters

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// LessFunc returns true if element a is "less" than element b.
type LessFunc[T any] func(a, b T) bool

// SortedFunc consumes it, sorts the elements using less, and returns them as
// a new slice. The sort is not stable.
func SortedFunc[T any](it Iterator[T], less LessFunc[T]) []T {
	result := Collect(it)

	slices.SortFunc(result, less)

	return result
}

// SortedBy consumes it, sorts the elements ascending by the key computed by
// key, and returns them as a new slice. If reverse is true, the order is
// descending instead.
func SortedBy[T any, K constraints.Ordered](it Iterator[T], key func(T) K, reverse bool) []T {
	less := func(a, b T) bool {
		return key(a) < key(b)
	}

	if reverse {
		less = func(a, b T) bool {
			return key(b) < key(a)
		}
	}

	return SortedFunc(it, less)
}

// Sorted consumes it, sorts the elements ascending, and returns them as a
// new slice. If reverse is true, the order is descending instead.
func Sorted[T constraints.Ordered](it Iterator[T], reverse bool) []T {
	return SortedBy(it, func(elem T) T { return elem }, reverse)
}
