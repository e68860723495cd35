package goiters

// Permutations returns an iterator that produces every permutation of the
// elements of it, in lexicographic order by element position. Elements are
// distinguished by position, not value, so repeated values produce repeated
// permutations. The input is materialized up front and must be finite; the
// permutations themselves are produced lazily, one freshly allocated slice
// per pull.
func Permutations[T any](it Iterator[T]) Iterator[[]T] {
	pool := Collect(it)
	return permutations(pool, len(pool))
}

// PermutationsLen is Permutations restricted to permutations of length r.
// If r is negative or exceeds the number of elements, nothing is produced.
func PermutationsLen[T any](it Iterator[T], r int) Iterator[[]T] {
	return permutations(Collect(it), r)
}

func permutations[T any](pool []T, r int) Iterator[[]T] {
	n := len(pool)

	if r < 0 || r > n {
		return Empty[[]T]()
	}

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	cycles := make([]int, r)
	for i := range cycles {
		cycles[i] = n - i
	}

	return &permutationsIterator[T]{pool: pool, r: r, indices: indices, cycles: cycles}
}

type permutationsIterator[T any] struct {
	pool    []T
	r       int
	indices []int
	cycles  []int
	started bool
	done    bool
}

func (p *permutationsIterator[T]) Next() ([]T, bool) {
	if p.done {
		return nil, false
	}

	if !p.started {
		p.started = true
		return p.selection(), true
	}

	for i := p.r - 1; i >= 0; i-- {
		p.cycles[i]--

		if p.cycles[i] == 0 {
			// Rotate indices[i:] left by one and reset the cycle.
			index := p.indices[i]
			copy(p.indices[i:], p.indices[i+1:])
			p.indices[len(p.indices)-1] = index

			p.cycles[i] = len(p.pool) - i

			continue
		}

		j := len(p.pool) - p.cycles[i]
		p.indices[i], p.indices[j] = p.indices[j], p.indices[i]

		return p.selection(), true
	}

	p.done = true

	return nil, false
}

func (p *permutationsIterator[T]) selection() []T {
	out := make([]T, p.r)
	for i := 0; i < p.r; i++ {
		out[i] = p.pool[p.indices[i]]
	}

	return out
}
