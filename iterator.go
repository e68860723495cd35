package goiters

import "golang.org/x/exp/maps"

// Iterator is a pull-based cursor over a sequence of elements.
//
// Next advances the iterator and returns the next element. Once the iterator
// is exhausted, the first return is meaningless and the second return is
// false. After Next has returned false once, it must return false forever.
//
// An Iterator is a mutable, single-consumer value: pulling one iterator from
// two places interleaves one shared state. This is how GroupBy inner groups
// and Slice-then-continue compose, and is only meaningful single-threaded.
// An iterator may be abandoned at any point without cleanup.
type Iterator[T any] interface {
	Next() (T, bool)
}

// Iter returns it unchanged.
// Any Iterator already is its own cursor, so wrapping it any number of times
// shares one underlying state: pulling from any wrapper advances them all.
func Iter[T any](it Iterator[T]) Iterator[T] {
	return it
}

// Empty returns an iterator that produces no elements.
func Empty[T any]() Iterator[T] {
	return emptyIterator[T]{}
}

type emptyIterator[T any] struct{}

func (emptyIterator[T]) Next() (T, bool) {
	var zero T
	return zero, false
}

// FromSlice returns an iterator that produces the elements of slice, in order.
// Each call returns a fresh, independent iterator; iterating never modifies
// slice.
func FromSlice[T any](slice []T) Iterator[T] {
	return &sliceIterator[T]{elems: slice}
}

type sliceIterator[T any] struct {
	elems []T
	index int
}

func (it *sliceIterator[T]) Next() (T, bool) {
	if it.index >= len(it.elems) {
		var zero T
		return zero, false
	}

	elem := it.elems[it.index]
	it.index++

	return elem, true
}

// Of returns an iterator that produces the given elements, in order.
func Of[T any](elems ...T) Iterator[T] {
	return FromSlice(elems)
}

// FromString returns an iterator that produces the runes of s, in order.
func FromString(s string) Iterator[rune] {
	return FromSlice([]rune(s))
}

// FromChannel returns an iterator that produces the elements received through
// ch. The iterator is exhausted once ch is closed.
func FromChannel[T any](ch <-chan T) Iterator[T] {
	return &chanIterator[T]{ch: ch}
}

type chanIterator[T any] struct {
	ch <-chan T
}

func (it *chanIterator[T]) Next() (T, bool) {
	elem, ok := <-it.ch
	return elem, ok
}

// FromMapKeys returns an iterator that produces the keys of m, in undefined
// order. The keys are captured when the iterator is constructed.
func FromMapKeys[K comparable, V any](m map[K]V) Iterator[K] {
	return FromSlice(maps.Keys(m))
}

// FromMapValues returns an iterator that produces the values of m, in
// undefined order. The values are captured when the iterator is constructed.
func FromMapValues[K comparable, V any](m map[K]V) Iterator[V] {
	return FromSlice(maps.Values(m))
}
