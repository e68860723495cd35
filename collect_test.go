package goiters

import (
	"strconv"
	"testing"

	"github.com/matryer/is"
)

func TestCollect(t *testing.T) {
	is := is.New(t)

	is.Equal(Collect(Of(1, 2, 3)), []int{1, 2, 3})
	is.Equal(Collect(Of[int]()), []int{})
}

func TestPartition(t *testing.T) {
	is := is.New(t)

	evens, odds := Partition(Of(1, 2, 3, 4, 5), even)

	is.Equal(evens, []int{2, 4})
	is.Equal(odds, []int{1, 3, 5})
}

func TestPartition_Empty(t *testing.T) {
	is := is.New(t)

	matched, rest := Partition(Of[int](), even)

	is.Equal(matched, []int{})
	is.Equal(rest, []int{})
}

func TestPartitionMany(t *testing.T) {
	is := is.New(t)

	negative := func(elem int, _ uint64) bool {
		return elem < 0
	}

	// each element lands in the bucket of the first matching predicate;
	// the final bucket catches everything else
	buckets := PartitionMany(Of(-1, 2, 3, -4, 5), negative, even)

	is.Equal(buckets, [][]int{
		{-1, -4},
		{2},
		{3, 5},
	})
}

func TestPartitionMany_NoPredicates(t *testing.T) {
	is := is.New(t)

	defer func() {
		is.True(recover() != nil)
	}()

	PartitionMany(Of(1, 2, 3))

	is.Fail()
}

func TestGroupToMap(t *testing.T) {
	is := is.New(t)

	byLen := GroupToMap(Of("at", "bee", "ox", "cat"), FuncMapper(func(elem string) int {
		return len(elem)
	}))

	is.Equal(byLen, map[int][]string{
		2: {"at", "ox"},
		3: {"bee", "cat"},
	})
}

func TestToMap(t *testing.T) {
	is := is.New(t)

	m := ToMap(Of(1, 2, 3), FuncMapper(strconv.Itoa), Identity[int]())

	is.Equal(m, map[string]int{"1": 1, "2": 2, "3": 3})
}

func TestToMap_DuplicateKeyOverwrites(t *testing.T) {
	is := is.New(t)

	m := ToMap(Of("aa", "ab", "ba"), FuncMapper(func(elem string) byte {
		return elem[0]
	}), Identity[string]())

	is.Equal(m, map[byte]string{'a': "ab", 'b': "ba"})
}
