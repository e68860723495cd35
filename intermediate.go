package goiters

// Function returns the result of applying an operation to elem.
type Function[T any, U any] func(elem T) U

// MapperFunc maps element elem to type U.
// The index is the 0-based count of elements seen so far by this operation.
type MapperFunc[T any, U any] func(elem T, index uint64) U

// PredicateFunc returns true if elem matches a predicate.
// The index is the 0-based count of elements seen so far by this operation.
type PredicateFunc[T any] func(elem T, index uint64) bool

// FuncMapper returns a mapper that calls mapp for each element.
func FuncMapper[T any, U any](mapp Function[T, U]) MapperFunc[T, U] {
	return func(elem T, _ uint64) U {
		return mapp(elem)
	}
}

// FuncPredicate returns a predicate that calls pred for each element.
func FuncPredicate[T any](pred func(elem T) bool) PredicateFunc[T] {
	return func(elem T, _ uint64) bool {
		return pred(elem)
	}
}

// Identity returns a mapper that returns the same element it receives.
func Identity[T any]() MapperFunc[T, T] {
	return func(elem T, _ uint64) T {
		return elem
	}
}

// Map returns an iterator that calls mapp for each element produced by it,
// mapping it to type U.
func Map[T any, U any](it Iterator[T], mapp MapperFunc[T, U]) Iterator[U] {
	return &mapIterator[T, U]{it: it, mapp: mapp}
}

type mapIterator[T any, U any] struct {
	it    Iterator[T]
	mapp  MapperFunc[T, U]
	index uint64
}

func (m *mapIterator[T, U]) Next() (U, bool) {
	elem, ok := m.it.Next()
	if !ok {
		var zero U
		return zero, false
	}

	outElem := m.mapp(elem, m.index)
	m.index++

	return outElem, true
}

// Filter returns an iterator that calls filter for each element produced by
// it, and only produces elements for which filter returns true. A single pull
// may therefore pull several upstream elements.
func Filter[T any](it Iterator[T], filter PredicateFunc[T]) Iterator[T] {
	return &filterIterator[T]{it: it, filter: filter}
}

type filterIterator[T any] struct {
	it     Iterator[T]
	filter PredicateFunc[T]
	index  uint64
}

func (f *filterIterator[T]) Next() (T, bool) {
	for {
		elem, ok := f.it.Next()
		if !ok {
			var zero T
			return zero, false
		}

		filterResult := f.filter(elem, f.index)
		f.index++

		if filterResult {
			return elem, true
		}
	}
}

// Peek returns an iterator that calls peek for each element produced by it,
// in order, and produces the same elements.
func Peek[T any](it Iterator[T], peek ConsumerFunc[T]) Iterator[T] {
	return Map(it, func(elem T, index uint64) T {
		peek(elem, index)
		return elem
	})
}

// Enumerate returns an iterator that pairs each element produced by it with
// its 0-based index.
func Enumerate[T any](it Iterator[T]) Iterator[Pair[uint64, T]] {
	return Map(it, func(elem T, index uint64) Pair[uint64, T] {
		return Pair[uint64, T]{V1: index, V2: elem}
	})
}

// Chain returns an iterator that produces the elements of each given
// iterator, in order. Each iterator is exhausted before the next one is
// pulled; if an iterator is endless, the ones after it are never reached.
func Chain[T any](iterators ...Iterator[T]) Iterator[T] {
	return &chainIterator[T]{iterators: iterators}
}

type chainIterator[T any] struct {
	iterators []Iterator[T]
}

func (c *chainIterator[T]) Next() (T, bool) {
	for len(c.iterators) > 0 {
		if elem, ok := c.iterators[0].Next(); ok {
			return elem, true
		}

		c.iterators = c.iterators[1:]
	}

	var zero T
	return zero, false
}

// Flatten returns an iterator that produces the elements of each iterator
// produced by it, in order. Like Chain, an endless inner iterator starves the
// ones after it.
func Flatten[T any](it Iterator[Iterator[T]]) Iterator[T] {
	return &flattenIterator[T]{outer: it}
}

type flattenIterator[T any] struct {
	outer Iterator[Iterator[T]]
	inner Iterator[T]
}

func (f *flattenIterator[T]) Next() (T, bool) {
	for {
		if f.inner != nil {
			if elem, ok := f.inner.Next(); ok {
				return elem, true
			}

			f.inner = nil
		}

		inner, ok := f.outer.Next()
		if !ok {
			var zero T
			return zero, false
		}

		f.inner = inner
	}
}

// Compress returns an iterator that produces the elements of data whose
// corresponding element of selectors is true. data and selectors are pulled
// in lock step; the iterator is exhausted as soon as either of them is, and
// pulls neither of them afterwards.
func Compress[T any](data Iterator[T], selectors Iterator[bool]) Iterator[T] {
	return &compressIterator[T]{data: data, selectors: selectors}
}

type compressIterator[T any] struct {
	data      Iterator[T]
	selectors Iterator[bool]
	done      bool
}

func (c *compressIterator[T]) Next() (T, bool) {
	var zero T

	for !c.done {
		elem, ok := c.data.Next()
		if !ok {
			break
		}

		selected, ok := c.selectors.Next()
		if !ok {
			break
		}

		if selected {
			return elem, true
		}
	}

	c.done = true

	return zero, false
}

// TakeWhile returns an iterator that produces the elements produced by it
// until pred returns false. The first failing element is consumed from the
// upstream iterator and discarded, not pushed back: a later consumer sharing
// the upstream iterator resumes after it.
func TakeWhile[T any](it Iterator[T], pred PredicateFunc[T]) Iterator[T] {
	return &takeWhileIterator[T]{it: it, pred: pred}
}

type takeWhileIterator[T any] struct {
	it    Iterator[T]
	pred  PredicateFunc[T]
	index uint64
	done  bool
}

func (t *takeWhileIterator[T]) Next() (T, bool) {
	var zero T

	if t.done {
		return zero, false
	}

	elem, ok := t.it.Next()
	if !ok {
		t.done = true
		return zero, false
	}

	if !t.pred(elem, t.index) {
		t.done = true
		return zero, false
	}

	t.index++

	return elem, true
}

// DropWhile returns an iterator that discards the elements produced by it
// while pred returns true, then produces every remaining element, starting
// with the first failing one. It operates on the same upstream iterator, so
// whatever DropWhile has not consumed stays observable to other consumers.
func DropWhile[T any](it Iterator[T], pred PredicateFunc[T]) Iterator[T] {
	return &dropWhileIterator[T]{it: it, pred: pred, dropping: true}
}

type dropWhileIterator[T any] struct {
	it       Iterator[T]
	pred     PredicateFunc[T]
	index    uint64
	dropping bool
}

func (d *dropWhileIterator[T]) Next() (T, bool) {
	for d.dropping {
		elem, ok := d.it.Next()
		if !ok {
			d.dropping = false

			var zero T
			return zero, false
		}

		matched := d.pred(elem, d.index)
		d.index++

		if !matched {
			d.dropping = false
			return elem, true
		}
	}

	return d.it.Next()
}

// Intersperse returns an iterator that produces the elements produced by it,
// with sep between each pair of consecutive elements, but not before the
// first or after the last.
func Intersperse[T any](it Iterator[T], sep T) Iterator[T] {
	return &intersperseIterator[T]{it: it, sep: sep}
}

type intersperseIterator[T any] struct {
	it      Iterator[T]
	sep     T
	stashed T

	// 0: produce the first element, 1: pull ahead and produce sep,
	// 2: produce the stashed element, 3: exhausted
	state int
}

func (i *intersperseIterator[T]) Next() (T, bool) {
	var zero T

	switch i.state {
	case 0:
		elem, ok := i.it.Next()
		if !ok {
			i.state = 3
			return zero, false
		}

		i.state = 1

		return elem, true

	case 1:
		elem, ok := i.it.Next()
		if !ok {
			i.state = 3
			return zero, false
		}

		i.stashed = elem
		i.state = 2

		return i.sep, true

	case 2:
		i.state = 1
		return i.stashed, true
	}

	return zero, false
}

// Pairwise returns an iterator that produces overlapping pairs of consecutive
// elements produced by it. If it produces fewer than two elements, the
// iterator produces nothing.
func Pairwise[T any](it Iterator[T]) Iterator[Pair[T, T]] {
	return &pairwiseIterator[T]{it: it}
}

type pairwiseIterator[T any] struct {
	it     Iterator[T]
	last   T
	primed bool
	done   bool
}

func (p *pairwiseIterator[T]) Next() (Pair[T, T], bool) {
	if p.done {
		return Pair[T, T]{}, false
	}

	if !p.primed {
		elem, ok := p.it.Next()
		if !ok {
			p.done = true
			return Pair[T, T]{}, false
		}

		p.last = elem
		p.primed = true
	}

	elem, ok := p.it.Next()
	if !ok {
		p.done = true
		return Pair[T, T]{}, false
	}

	pair := Pair[T, T]{V1: p.last, V2: elem}
	p.last = elem

	return pair, true
}
