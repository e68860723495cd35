package goiters

// Range returns an iterator that produces the integers from start (inclusive)
// to stop (exclusive), advancing by step. A negative step counts downwards,
// producing integers while they are greater than stop. A zero step panics.
func Range(start, stop, step int) Iterator[int] {
	if step == 0 {
		panic("goiters: zero Range step")
	}

	return &rangeIterator{next: start, stop: stop, step: step}
}

// RangeTo returns an iterator that produces the integers from 0 (inclusive)
// to stop (exclusive).
func RangeTo(stop int) Iterator[int] {
	return Range(0, stop, 1)
}

type rangeIterator struct {
	next int
	stop int
	step int
}

func (it *rangeIterator) Next() (int, bool) {
	if it.step > 0 && it.next >= it.stop || it.step < 0 && it.next <= it.stop {
		return 0, false
	}

	elem := it.next
	it.next += it.step

	return elem, true
}

// Count returns an iterator that produces start, start+step, start+2*step, ...
// endlessly.
func Count[T Number](start, step T) Iterator[T] {
	return &countIterator[T]{next: start, step: step}
}

type countIterator[T Number] struct {
	next T
	step T
}

func (it *countIterator[T]) Next() (T, bool) {
	elem := it.next
	it.next += it.step

	return elem, true
}

// Repeat returns an iterator that produces elem endlessly.
func Repeat[T any](elem T) Iterator[T] {
	return &repeatIterator[T]{elem: elem}
}

type repeatIterator[T any] struct {
	elem T
}

func (it *repeatIterator[T]) Next() (T, bool) {
	return it.elem, true
}

// RepeatN returns an iterator that produces elem exactly num times.
func RepeatN[T any](elem T, num uint64) Iterator[T] {
	return &repeatNIterator[T]{elem: elem, left: num}
}

type repeatNIterator[T any] struct {
	elem T
	left uint64
}

func (it *repeatNIterator[T]) Next() (T, bool) {
	if it.left == 0 {
		var zero T
		return zero, false
	}

	it.left--

	return it.elem, true
}

// Iterate returns an endless iterator that produces seed as its first
// element, then f(seed), then f(f(seed)), and so on.
func Iterate[T any](seed T, f func(T) T) Iterator[T] {
	return &iterateIterator[T]{next: seed, f: f}
}

type iterateIterator[T any] struct {
	next    T
	f       func(T) T
	started bool
}

func (it *iterateIterator[T]) Next() (T, bool) {
	if !it.started {
		it.started = true
		return it.next, true
	}

	it.next = it.f(it.next)

	return it.next, true
}

// Generate returns an endless iterator that produces the results of calling
// gen, once per pull.
func Generate[T any](gen func() T) Iterator[T] {
	return &generateIterator[T]{gen: gen}
}

type generateIterator[T any] struct {
	gen func() T
}

func (it *generateIterator[T]) Next() (T, bool) {
	return it.gen(), true
}
