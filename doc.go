// Package goiters provides a set of operations on lazy, pull-based iterators.
// Iterators form a pipeline of operations that elements are pulled through,
// one at a time, on demand.
//
// Iterators are constructed from slices, strings, maps, channels, or generator
// functions, or from numeric producers such as Range and Count.
//
// Elements may then be operated upon using mapping, filtering, slicing,
// zipping, grouping, and deduplication operations (which are intermediate
// iterators wrapping their upstream iterator). A few operations, such as
// Sorted, Cycle, and Duplicates, must buffer some or all of their input and
// are documented as such; everything else holds O(1) state per element.
//
// Finally, the elements are consumed by terminal operations, such as
// collecting them into slices or maps, reducing them, or checking for
// matching elements.
//
// Iterators are always lazy, meaning that an upstream iterator is pulled only
// when a downstream iterator or terminal operation needs its next element.
// There is no concurrency and no cancellation primitive: abandoning an
// iterator simply means no longer pulling from it, which requires no cleanup
// and leaves any shared upstream iterator at a well-defined position.
package goiters
