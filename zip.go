package goiters

// Pair holds two values of possibly different types.
type Pair[T1 any, T2 any] struct {
	V1 T1
	V2 T2
}

// Triple holds three values of possibly different types.
type Triple[T1 any, T2 any, T3 any] struct {
	V1 T1
	V2 T2
	V3 T3
}

// Zip returns an iterator that produces pairs of elements pulled from it1 and
// it2 in lock step, left to right. It is exhausted as soon as either input
// is, and pulls neither of them afterwards.
func Zip[T1 any, T2 any](it1 Iterator[T1], it2 Iterator[T2]) Iterator[Pair[T1, T2]] {
	return &zipIterator[T1, T2]{it1: it1, it2: it2}
}

type zipIterator[T1 any, T2 any] struct {
	it1  Iterator[T1]
	it2  Iterator[T2]
	done bool
}

func (z *zipIterator[T1, T2]) Next() (Pair[T1, T2], bool) {
	if z.done {
		return Pair[T1, T2]{}, false
	}

	v1, ok := z.it1.Next()
	if !ok {
		z.done = true
		return Pair[T1, T2]{}, false
	}

	v2, ok := z.it2.Next()
	if !ok {
		z.done = true
		return Pair[T1, T2]{}, false
	}

	return Pair[T1, T2]{V1: v1, V2: v2}, true
}

// Zip3 returns an iterator that produces triples of elements pulled from it1,
// it2, and it3 in lock step, left to right. It is exhausted as soon as any
// input is, and pulls none of them afterwards.
func Zip3[T1 any, T2 any, T3 any](it1 Iterator[T1], it2 Iterator[T2], it3 Iterator[T3]) Iterator[Triple[T1, T2, T3]] {
	return &zip3Iterator[T1, T2, T3]{it1: it1, it2: it2, it3: it3}
}

type zip3Iterator[T1 any, T2 any, T3 any] struct {
	it1  Iterator[T1]
	it2  Iterator[T2]
	it3  Iterator[T3]
	done bool
}

func (z *zip3Iterator[T1, T2, T3]) Next() (Triple[T1, T2, T3], bool) {
	if z.done {
		return Triple[T1, T2, T3]{}, false
	}

	v1, ok := z.it1.Next()
	if !ok {
		z.done = true
		return Triple[T1, T2, T3]{}, false
	}

	v2, ok := z.it2.Next()
	if !ok {
		z.done = true
		return Triple[T1, T2, T3]{}, false
	}

	v3, ok := z.it3.Next()
	if !ok {
		z.done = true
		return Triple[T1, T2, T3]{}, false
	}

	return Triple[T1, T2, T3]{V1: v1, V2: v2, V3: v3}, true
}

// ZipMany returns an iterator that produces slices of elements pulled from
// every given iterator in lock step, left to right. It is exhausted as soon
// as any input is, and pulls none of them afterwards. Each produced slice is
// freshly allocated.
func ZipMany[T any](iterators ...Iterator[T]) Iterator[[]T] {
	return &zipManyIterator[T]{iterators: iterators}
}

type zipManyIterator[T any] struct {
	iterators []Iterator[T]
	done      bool
}

func (z *zipManyIterator[T]) Next() ([]T, bool) {
	if z.done || len(z.iterators) == 0 {
		z.done = true
		return nil, false
	}

	round := make([]T, 0, len(z.iterators))

	for _, it := range z.iterators {
		elem, ok := it.Next()
		if !ok {
			z.done = true
			return nil, false
		}

		round = append(round, elem)
	}

	return round, true
}

// ZipLongest returns an iterator that produces pairs of elements pulled from
// it1 and it2 in lock step, continuing until both inputs are exhausted. Once
// an input is exhausted, it is not pulled again and its fill value takes the
// place of its elements; still-live inputs keep being pulled each round.
func ZipLongest[T1 any, T2 any](it1 Iterator[T1], it2 Iterator[T2], fill1 T1, fill2 T2) Iterator[Pair[T1, T2]] {
	return &zipLongestIterator[T1, T2]{it1: it1, it2: it2, fill1: fill1, fill2: fill2}
}

type zipLongestIterator[T1 any, T2 any] struct {
	it1   Iterator[T1]
	it2   Iterator[T2]
	fill1 T1
	fill2 T2
	done1 bool
	done2 bool
}

func (z *zipLongestIterator[T1, T2]) Next() (Pair[T1, T2], bool) {
	v1 := z.fill1
	if !z.done1 {
		elem, ok := z.it1.Next()
		if ok {
			v1 = elem
		} else {
			z.done1 = true
		}
	}

	v2 := z.fill2
	if !z.done2 {
		elem, ok := z.it2.Next()
		if ok {
			v2 = elem
		} else {
			z.done2 = true
		}
	}

	if z.done1 && z.done2 {
		return Pair[T1, T2]{}, false
	}

	return Pair[T1, T2]{V1: v1, V2: v2}, true
}

// ZipLongest3 is ZipLongest over three iterators.
func ZipLongest3[T1 any, T2 any, T3 any](
	it1 Iterator[T1],
	it2 Iterator[T2],
	it3 Iterator[T3],
	fill1 T1,
	fill2 T2,
	fill3 T3,
) Iterator[Triple[T1, T2, T3]] {
	return &zipLongest3Iterator[T1, T2, T3]{
		it1:   it1,
		it2:   it2,
		it3:   it3,
		fill1: fill1,
		fill2: fill2,
		fill3: fill3,
	}
}

type zipLongest3Iterator[T1 any, T2 any, T3 any] struct {
	it1   Iterator[T1]
	it2   Iterator[T2]
	it3   Iterator[T3]
	fill1 T1
	fill2 T2
	fill3 T3
	done1 bool
	done2 bool
	done3 bool
}

func (z *zipLongest3Iterator[T1, T2, T3]) Next() (Triple[T1, T2, T3], bool) {
	v1 := z.fill1
	if !z.done1 {
		elem, ok := z.it1.Next()
		if ok {
			v1 = elem
		} else {
			z.done1 = true
		}
	}

	v2 := z.fill2
	if !z.done2 {
		elem, ok := z.it2.Next()
		if ok {
			v2 = elem
		} else {
			z.done2 = true
		}
	}

	v3 := z.fill3
	if !z.done3 {
		elem, ok := z.it3.Next()
		if ok {
			v3 = elem
		} else {
			z.done3 = true
		}
	}

	if z.done1 && z.done2 && z.done3 {
		return Triple[T1, T2, T3]{}, false
	}

	return Triple[T1, T2, T3]{V1: v1, V2: v2, V3: v3}, true
}

// RoundRobin returns an iterator that produces one element from each given
// iterator in turn, in the given order, skipping and forgetting iterators as
// they become exhausted. When an iterator is removed, the next live one is
// tried at the same position, so no round loses an element.
func RoundRobin[T any](iterators ...Iterator[T]) Iterator[T] {
	live := make([]Iterator[T], len(iterators))
	copy(live, iterators)

	return &roundRobinIterator[T]{live: live}
}

type roundRobinIterator[T any] struct {
	live []Iterator[T]
	pos  int
}

func (r *roundRobinIterator[T]) Next() (T, bool) {
	for len(r.live) > 0 {
		if r.pos >= len(r.live) {
			r.pos = 0
		}

		elem, ok := r.live[r.pos].Next()
		if !ok {
			// Remove without advancing; the next live iterator slides
			// into this position.
			r.live = append(r.live[:r.pos], r.live[r.pos+1:]...)
			continue
		}

		r.pos++

		return elem, true
	}

	var zero T
	return zero, false
}

// Heads returns an iterator that produces, per round, the slice of one
// element pulled from each still-live given iterator, in the given order.
// Exhausted iterators are removed exactly as in RoundRobin; rounds that come
// up empty are not produced.
func Heads[T any](iterators ...Iterator[T]) Iterator[[]T] {
	live := make([]Iterator[T], len(iterators))
	copy(live, iterators)

	return &headsIterator[T]{live: live}
}

type headsIterator[T any] struct {
	live []Iterator[T]
}

func (h *headsIterator[T]) Next() ([]T, bool) {
	for len(h.live) > 0 {
		round := make([]T, 0, len(h.live))

		i := 0
		for i < len(h.live) {
			elem, ok := h.live[i].Next()
			if !ok {
				h.live = append(h.live[:i], h.live[i+1:]...)
				continue
			}

			round = append(round, elem)
			i++
		}

		if len(round) > 0 {
			return round, true
		}
	}

	return nil, false
}
