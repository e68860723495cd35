package goiters

// Limit returns an iterator that produces the same elements as it, in order,
// up to max elements. Once max elements have been produced, the upstream
// iterator is not pulled again, so a consumer sharing it can continue with
// the remaining elements.
func Limit[T any](it Iterator[T], max uint64) Iterator[T] {
	return &limitIterator[T]{it: it, left: max}
}

type limitIterator[T any] struct {
	it   Iterator[T]
	left uint64
}

func (l *limitIterator[T]) Next() (T, bool) {
	if l.left == 0 {
		var zero T
		return zero, false
	}

	elem, ok := l.it.Next()
	if !ok {
		l.left = 0

		var zero T
		return zero, false
	}

	l.left--

	return elem, true
}

// Skip returns an iterator that produces the same elements as it, in order,
// skipping the first num elements. The skipped elements are consumed from
// the upstream iterator on the first pull.
func Skip[T any](it Iterator[T], num uint64) Iterator[T] {
	return &skipIterator[T]{it: it, skip: num}
}

type skipIterator[T any] struct {
	it      Iterator[T]
	skip    uint64
	skipped bool
}

func (s *skipIterator[T]) Next() (T, bool) {
	if !s.skipped {
		s.skipped = true

		for i := uint64(0); i < s.skip; i++ {
			if _, ok := s.it.Next(); !ok {
				break
			}
		}
	}

	return s.it.Next()
}

// Slice returns an iterator that produces the element at upstream index i,
// for every i with start <= i < stop and (i-start)%step == 0. Indices count
// the elements Slice itself has pulled, starting at 0.
//
// Slice is bound safe: it stops pulling the upstream iterator the moment the
// next wanted index reaches stop, even if the upstream iterator is endless,
// and never consumes an upstream element at index stop or beyond. A consumer
// sharing the upstream iterator can therefore continue with the elements
// after the window.
//
// A zero step panics.
func Slice[T any](it Iterator[T], start, stop, step uint64) Iterator[T] {
	if step == 0 {
		panic("goiters: zero Slice step")
	}

	return &sliceWindowIterator[T]{it: it, want: start, stop: stop, hasStop: true, step: step}
}

// SliceFrom is Slice without an upper bound: it produces the element at every
// upstream index i with i >= start and (i-start)%step == 0, until the
// upstream iterator is exhausted. A zero step panics.
func SliceFrom[T any](it Iterator[T], start, step uint64) Iterator[T] {
	if step == 0 {
		panic("goiters: zero Slice step")
	}

	return &sliceWindowIterator[T]{it: it, want: start, step: step}
}

type sliceWindowIterator[T any] struct {
	it      Iterator[T]
	index   uint64 // upstream index of the next pull
	want    uint64 // next upstream index to produce
	stop    uint64
	hasStop bool
	step    uint64
	done    bool
}

func (s *sliceWindowIterator[T]) Next() (T, bool) {
	var zero T

	if s.done {
		return zero, false
	}

	for {
		if s.hasStop && s.want >= s.stop {
			s.done = true
			return zero, false
		}

		elem, ok := s.it.Next()
		if !ok {
			s.done = true
			return zero, false
		}

		index := s.index
		s.index++

		if index == s.want {
			s.want += s.step
			return elem, true
		}
	}
}
