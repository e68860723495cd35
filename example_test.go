package goiters

import (
	"fmt"
	"strconv"
)

func Example() {
	// construct an iterator over a slice
	ints := Of(1, 2, 3, 4, 5)

	// map elements by doubling them
	// since we only need the elements themselves, we can use FuncMapper
	doubled := Map(ints, FuncMapper(func(elem int) int {
		return elem * 2
	}))

	// map elements by converting them to strings
	strs := Map(doubled, FuncMapper(strconv.Itoa))

	// nothing has been computed yet; collecting pulls the elements
	// through the pipeline
	fmt.Printf("%+v\n", Collect(strs))
	// Output: [2 4 6 8 10]
}

func ExampleGroupBy() {
	groups := GroupBy(FromString("aabbbc"), func(elem rune) rune {
		return elem
	})

	for group, ok := groups.Next(); ok; group, ok = groups.Next() {
		fmt.Printf("%c: %d\n", group.Key, len(Collect(group.Elems)))
	}
	// Output:
	// a: 2
	// b: 3
	// c: 1
}

func ExampleRoundRobin() {
	ints := RoundRobin(Of(1, 2, 3), Of(4), Of(5, 6, 7, 8))

	fmt.Println(Collect(ints))
	// Output: [1 4 5 2 6 3 7 8]
}

func ExampleSlice() {
	// a bounded window over an endless iterator; the upstream iterator is
	// never pulled past the window
	ints := Slice(Count(0, 1), 10, 20, 2)

	fmt.Println(Collect(ints))
	// Output: [10 12 14 16 18]
}
