package goiters

// Group is one run of consecutive elements sharing a key, as produced by
// GroupBy.
type Group[K comparable, T any] struct {
	// Key is the key shared by every element of the run.
	Key K

	// Elems produces the elements of the run. It shares the upstream
	// iterator with the GroupBy iterator that produced it, and is only
	// valid until that iterator is pulled again: a stale Elems iterator
	// reports exhaustion.
	Elems Iterator[T]
}

// GroupBy returns an iterator that produces a Group for each run of
// consecutive elements of it sharing a key, as computed by key.
//
// GroupBy does not sort: elements with equal keys that are not adjacent end
// up in separate groups, like uniq(1), not like an SQL GROUP BY. Pulling the
// GroupBy iterator consumes whatever remains of the current group's run, so
// at most one Group's Elems iterator is live at a time.
func GroupBy[T any, K comparable](it Iterator[T], key func(T) K) Iterator[Group[K, T]] {
	return &groupByIterator[T, K]{it: it, key: key}
}

type groupByIterator[T any, K comparable] struct {
	it  Iterator[T]
	key func(T) K

	// One element of lookahead. While a group is live, pending is the next
	// element of its run; between groups, it is the first element of the
	// next run.
	pending    T
	pendingKey K
	primed     bool

	live      uint64 // id of the live inner group, 0 if none
	lastID    uint64
	exhausted bool
}

func (g *groupByIterator[T, K]) Next() (Group[K, T], bool) {
	if g.exhausted {
		return Group[K, T]{}, false
	}

	if !g.primed {
		g.primed = true

		if !g.pull() {
			return Group[K, T]{}, false
		}
	}

	// Consume the rest of the current group's run, invalidating its Elems
	// iterator.
	if g.live != 0 {
		g.live = 0

		runKey := g.pendingKey

		for g.pendingKey == runKey {
			if !g.pull() {
				return Group[K, T]{}, false
			}
		}
	}

	g.lastID++
	g.live = g.lastID

	inner := &groupIterator[T, K]{g: g, id: g.live, key: g.pendingKey}

	return Group[K, T]{Key: g.pendingKey, Elems: inner}, true
}

// pull buffers the next upstream element, marking the whole iteration
// exhausted if there is none.
func (g *groupByIterator[T, K]) pull() bool {
	elem, ok := g.it.Next()
	if !ok {
		g.exhausted = true
		g.live = 0

		return false
	}

	g.pending = elem
	g.pendingKey = g.key(elem)

	return true
}

type groupIterator[T any, K comparable] struct {
	g    *groupByIterator[T, K]
	id   uint64
	key  K
	done bool
}

func (gr *groupIterator[T, K]) Next() (T, bool) {
	var zero T

	if gr.done {
		return zero, false
	}

	g := gr.g

	if g.live != gr.id {
		// The outer iterator has moved past this group.
		gr.done = true
		return zero, false
	}

	elem := g.pending

	if !g.pull() {
		gr.done = true
	} else if g.pendingKey != gr.key {
		// The buffered element starts the next run.
		g.live = 0
		gr.done = true
	}

	return elem, true
}
