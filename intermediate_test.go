package goiters

import (
	"strconv"
	"testing"

	"github.com/matryer/is"
)

func even(elem int, _ uint64) bool {
	return elem%2 == 0
}

func TestMap(t *testing.T) {
	is := is.New(t)

	ints := Of(1, 2, 3, 4, 5)

	doubled := Map(ints, func(elem int, index uint64) int {
		is.Equal(index, uint64(elem-1))

		return elem * 2
	})

	is.Equal(Collect(doubled), []int{2, 4, 6, 8, 10})
}

func TestMap_FuncMapper(t *testing.T) {
	is := is.New(t)

	strs := Map(Of(1, 2, 3), FuncMapper(strconv.Itoa))

	is.Equal(Collect(strs), []string{"1", "2", "3"})
}

func TestMap_Lazy(t *testing.T) {
	is := is.New(t)

	calls := 0

	doubled := Map(Of(1, 2, 3), func(elem int, _ uint64) int {
		calls++
		return elem * 2
	})

	is.Equal(calls, 0)

	_, ok := doubled.Next()
	is.True(ok)
	is.Equal(calls, 1)
}

func TestFilter(t *testing.T) {
	is := is.New(t)

	ints := Filter(Of(1, 2, 3, 4, 5), even)

	is.Equal(Collect(ints), []int{2, 4})
}

func TestFilter_Index(t *testing.T) {
	is := is.New(t)

	// the index counts all elements seen, not just the matching ones
	indexes := []uint64{}

	ints := Filter(Of(1, 2, 3, 4, 5), func(elem int, index uint64) bool {
		indexes = append(indexes, index)
		return even(elem, index)
	})

	Collect(ints)

	is.Equal(indexes, []uint64{0, 1, 2, 3, 4})
}

func TestPeek(t *testing.T) {
	is := is.New(t)

	seen := []int{}

	ints := Peek(Of(1, 2, 3), func(elem int, _ uint64) {
		seen = append(seen, elem)
	})

	is.Equal(Collect(ints), []int{1, 2, 3})
	is.Equal(seen, []int{1, 2, 3})
}

func TestEnumerate(t *testing.T) {
	is := is.New(t)

	pairs := Enumerate(Of("a", "b", "c"))

	is.Equal(Collect(pairs), []Pair[uint64, string]{
		{V1: 0, V2: "a"},
		{V1: 1, V2: "b"},
		{V1: 2, V2: "c"},
	})
}

func TestChain(t *testing.T) {
	is := is.New(t)

	ints := Chain(Of(1, 2), Of[int](), Of(3), Of(4, 5))

	is.Equal(Collect(ints), []int{1, 2, 3, 4, 5})

	is.Equal(Collect(Chain[int]()), []int{})
}

func TestFlatten(t *testing.T) {
	is := is.New(t)

	ints := Flatten(Of(Of(1, 2), Of[int](), Of(3, 4)))

	is.Equal(Collect(ints), []int{1, 2, 3, 4})
}

func TestCompress(t *testing.T) {
	is := is.New(t)

	ints := Compress(Of(1, 2, 3, 4, 5), Of(true, false, true, false, true))

	is.Equal(Collect(ints), []int{1, 3, 5})
}

func TestCompress_ShortestWins(t *testing.T) {
	is := is.New(t)

	// selectors run out first; the data iterator must not be pulled after
	// the exhaustion has been observed
	data := &pullCounter[int]{it: Count(1, 1)}

	ints := Compress[int](data, Of(true, true))

	is.Equal(Collect(ints), []int{1, 2})

	_, ok := ints.Next()
	is.True(!ok)
	is.Equal(data.pulls, uint64(3))
}

func TestTakeWhile(t *testing.T) {
	is := is.New(t)

	ints := TakeWhile(Of(1, 2, 3, 4, 1, 2), func(elem int, _ uint64) bool {
		return elem < 3
	})

	is.Equal(Collect(ints), []int{1, 2})
}

func TestTakeWhile_ConsumesFailingElement(t *testing.T) {
	is := is.New(t)

	// the first failing element (3) is pulled from the shared upstream
	// iterator and discarded, so a later consumer resumes after it
	ints := Of(1, 2, 3, 4, 5)

	taken := TakeWhile[int](ints, func(elem int, _ uint64) bool {
		return elem < 3
	})

	is.Equal(Collect(taken), []int{1, 2})
	is.Equal(Collect(ints), []int{4, 5})
}

func TestDropWhile(t *testing.T) {
	is := is.New(t)

	ints := DropWhile(Of(1, 2, 3, 4, 1, 2), func(elem int, _ uint64) bool {
		return elem < 3
	})

	is.Equal(Collect(ints), []int{3, 4, 1, 2})
}

func TestDropWhile_DropsEverything(t *testing.T) {
	is := is.New(t)

	ints := DropWhile(Of(1, 2, 3), func(elem int, _ uint64) bool {
		return true
	})

	is.Equal(Collect(ints), []int{})
}

func TestIntersperse(t *testing.T) {
	is := is.New(t)

	is.Equal(Collect(Intersperse(Of("a", "b", "c"), "-")), []string{"a", "-", "b", "-", "c"})
	is.Equal(Collect(Intersperse(Of("a"), "-")), []string{"a"})
	is.Equal(Collect(Intersperse(Of[string](), "-")), []string{})
}

func TestPairwise(t *testing.T) {
	is := is.New(t)

	pairs := Pairwise(Of(1, 2, 3, 4))

	is.Equal(Collect(pairs), []Pair[int, int]{
		{V1: 1, V2: 2},
		{V1: 2, V2: 3},
		{V1: 3, V2: 4},
	})

	is.Equal(Collect(Pairwise(Of(1))), []Pair[int, int]{})
	is.Equal(Collect(Pairwise(Of[int]())), []Pair[int, int]{})
}
