package goiters

import (
	"testing"

	"github.com/matryer/is"
)

// pullCounter counts how many times the wrapped iterator was pulled,
// including the pull that reports exhaustion.
type pullCounter[T any] struct {
	it    Iterator[T]
	pulls uint64
}

func (c *pullCounter[T]) Next() (T, bool) {
	c.pulls++
	return c.it.Next()
}

func TestIter_SharedState(t *testing.T) {
	is := is.New(t)

	ints := FromSlice([]int{1, 2, 3, 4})

	wrapped := Iter(Iter(Iter(ints)))

	elem, ok := wrapped.Next()
	is.True(ok)
	is.Equal(elem, 1)

	elem, ok = ints.Next()
	is.True(ok)
	is.Equal(elem, 2)

	is.Equal(Collect(wrapped), []int{3, 4})

	// all views observe the same exhaustion point
	_, ok = ints.Next()
	is.True(!ok)

	_, ok = wrapped.Next()
	is.True(!ok)
}

func TestFromSlice(t *testing.T) {
	is := is.New(t)

	source := []int{1, 2, 3}

	is.Equal(Collect(FromSlice(source)), []int{1, 2, 3})

	// every call returns a fresh, independent iterator
	first := FromSlice(source)
	second := FromSlice(source)

	elem, ok := first.Next()
	is.True(ok)
	is.Equal(elem, 1)

	is.Equal(Collect(second), []int{1, 2, 3})
	is.Equal(Collect(first), []int{2, 3})

	// the source is never modified
	is.Equal(source, []int{1, 2, 3})
}

func TestFromSlice_ExhaustionIsTerminal(t *testing.T) {
	is := is.New(t)

	ints := FromSlice([]int{1})

	_, ok := ints.Next()
	is.True(ok)

	for i := 0; i < 3; i++ {
		_, ok := ints.Next()
		is.True(!ok)
	}
}

func TestOf(t *testing.T) {
	is := is.New(t)

	is.Equal(Collect(Of(1, 2, 3)), []int{1, 2, 3})
	is.Equal(Collect(Of[int]()), []int{})
}

func TestFromString(t *testing.T) {
	is := is.New(t)

	is.Equal(Collect(FromString("abc")), []rune{'a', 'b', 'c'})
	is.Equal(Collect(FromString("")), []rune{})
}

func TestFromChannel(t *testing.T) {
	is := is.New(t)

	ch := make(chan int, 3)
	ch <- 1
	ch <- 2
	ch <- 3
	close(ch)

	ints := FromChannel(ch)

	is.Equal(Collect(ints), []int{1, 2, 3})

	_, ok := ints.Next()
	is.True(!ok)
}

func TestFromMapKeys(t *testing.T) {
	is := is.New(t)

	m := map[string]int{"a": 1, "b": 2, "c": 3}

	is.Equal(Sorted(FromMapKeys(m), false), []string{"a", "b", "c"})
	is.Equal(Sorted(FromMapValues(m), false), []int{1, 2, 3})
}

func TestEmpty(t *testing.T) {
	is := is.New(t)

	is.Equal(Collect(Empty[int]()), []int{})
}
