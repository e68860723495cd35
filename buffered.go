package goiters

// Cycle returns an iterator that produces the elements of it, in order, then
// produces them again from the beginning, endlessly. The elements are
// buffered as they are first pulled, so Cycle holds the whole input in
// memory once the first pass completes. An empty input produces nothing.
func Cycle[T any](it Iterator[T]) Iterator[T] {
	return &cycleIterator[T]{it: it}
}

type cycleIterator[T any] struct {
	it      Iterator[T]
	buf     []T
	pos     int
	cycling bool
}

func (c *cycleIterator[T]) Next() (T, bool) {
	if !c.cycling {
		elem, ok := c.it.Next()
		if ok {
			c.buf = append(c.buf, elem)
			return elem, true
		}

		c.cycling = true
	}

	if len(c.buf) == 0 {
		var zero T
		return zero, false
	}

	elem := c.buf[c.pos]
	c.pos = (c.pos + 1) % len(c.buf)

	return elem, true
}

// Chunked returns an iterator that produces the elements of it in freshly
// allocated slices of size elements each; the final slice may be shorter.
// A zero size panics.
func Chunked[T any](it Iterator[T], size uint64) Iterator[[]T] {
	if size == 0 {
		panic("goiters: zero Chunked size")
	}

	return &chunkedIterator[T]{it: it, size: size}
}

type chunkedIterator[T any] struct {
	it   Iterator[T]
	size uint64
	done bool
}

func (c *chunkedIterator[T]) Next() ([]T, bool) {
	if c.done {
		return nil, false
	}

	chunk := make([]T, 0, c.size)

	for uint64(len(chunk)) < c.size {
		elem, ok := c.it.Next()
		if !ok {
			c.done = true
			break
		}

		chunk = append(chunk, elem)
	}

	if len(chunk) == 0 {
		return nil, false
	}

	return chunk, true
}

// Distinct returns an iterator that produces each element of it the first
// time it appears, in order of first appearance. It keeps a set of every
// element seen, so memory grows with the number of distinct elements.
func Distinct[T comparable](it Iterator[T]) Iterator[T] {
	return DistinctBy(it, func(elem T) T {
		return elem
	})
}

// DistinctBy is Distinct with the elements keyed by key.
func DistinctBy[T any, K comparable](it Iterator[T], key func(T) K) Iterator[T] {
	return &distinctIterator[T, K]{it: it, key: key, seen: map[K]struct{}{}}
}

type distinctIterator[T any, K comparable] struct {
	it   Iterator[T]
	key  func(T) K
	seen map[K]struct{}
}

func (d *distinctIterator[T, K]) Next() (T, bool) {
	for {
		elem, ok := d.it.Next()
		if !ok {
			var zero T
			return zero, false
		}

		k := d.key(elem)
		if _, dup := d.seen[k]; dup {
			continue
		}

		d.seen[k] = struct{}{}

		return elem, true
	}
}

// Dedup returns an iterator that produces the elements of it with runs of
// consecutive equal elements collapsed to their first element. Unlike
// Distinct, only the immediately preceding element is remembered, so an
// element may reappear later.
func Dedup[T comparable](it Iterator[T]) Iterator[T] {
	return DedupBy(it, func(elem T) T {
		return elem
	})
}

// DedupBy is Dedup with the elements keyed by key.
func DedupBy[T any, K comparable](it Iterator[T], key func(T) K) Iterator[T] {
	return &dedupIterator[T, K]{it: it, key: key}
}

type dedupIterator[T any, K comparable] struct {
	it     Iterator[T]
	key    func(T) K
	last   K
	primed bool
}

func (d *dedupIterator[T, K]) Next() (T, bool) {
	for {
		elem, ok := d.it.Next()
		if !ok {
			var zero T
			return zero, false
		}

		k := d.key(elem)
		if d.primed && k == d.last {
			continue
		}

		d.last = k
		d.primed = true

		return elem, true
	}
}

// Duplicates consumes it and returns, for every key that appears more than
// once, the slice of all its elements, including the first occurrence.
// Groups are ordered by the moment their key was first seen to repeat.
// The whole input is consumed before Duplicates returns.
func Duplicates[T any, K comparable](it Iterator[T], key func(T) K) [][]T {
	singles := map[K]T{}
	multiples := map[K]int{} // key -> index into groups
	groups := [][]T{}

	for elem, ok := it.Next(); ok; elem, ok = it.Next() {
		k := key(elem)

		if i, dup := multiples[k]; dup {
			groups[i] = append(groups[i], elem)
			continue
		}

		if first, seen := singles[k]; seen {
			// Second occurrence: promote the stored single together
			// with this element into a new group.
			delete(singles, k)
			multiples[k] = len(groups)
			groups = append(groups, []T{first, elem})

			continue
		}

		singles[k] = elem
	}

	return groups
}

// Compact returns an iterator that produces the elements of it that are not
// the zero value of T.
func Compact[T comparable](it Iterator[T]) Iterator[T] {
	var zero T

	return Filter(it, func(elem T, _ uint64) bool {
		return elem != zero
	})
}
