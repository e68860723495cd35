package goiters

// Collect consumes it and returns its elements as a slice, in order.
// The result is never nil.
func Collect[T any](it Iterator[T]) []T {
	result := []T{}

	Each(it, func(elem T, _ uint64) {
		result = append(result, elem)
	})

	return result
}

// Partition consumes it and splits its elements into those for which pred
// returns true and the rest, preserving order within each slice.
func Partition[T any](it Iterator[T], pred PredicateFunc[T]) (matched []T, rest []T) {
	matched = []T{}
	rest = []T{}

	Each(it, func(elem T, index uint64) {
		if pred(elem, index) {
			matched = append(matched, elem)
		} else {
			rest = append(rest, elem)
		}
	})

	return matched, rest
}

// PartitionMany consumes it and splits its elements into len(preds)+1
// buckets: each element lands in the bucket of the first predicate that
// matches it, or in the final overflow bucket if none does. Calling
// PartitionMany without predicates panics.
func PartitionMany[T any](it Iterator[T], preds ...PredicateFunc[T]) [][]T {
	if len(preds) == 0 {
		panic("goiters: PartitionMany without predicates")
	}

	buckets := make([][]T, len(preds)+1)
	for i := range buckets {
		buckets[i] = []T{}
	}

	Each(it, func(elem T, index uint64) {
		for i, pred := range preds {
			if pred(elem, index) {
				buckets[i] = append(buckets[i], elem)
				return
			}
		}

		buckets[len(preds)] = append(buckets[len(preds)], elem)
	})

	return buckets
}

// GroupToMap consumes it and collects its elements into a map of slices,
// keyed by key. Unlike GroupBy, runs do not matter: all elements with the
// same key end up in one slice, in input order.
func GroupToMap[T any, K comparable](it Iterator[T], key MapperFunc[T, K]) map[K][]T {
	result := map[K][]T{}

	Each(it, func(elem T, index uint64) {
		k := key(elem, index)
		result[k] = append(result[k], elem)
	})

	return result
}

// ToMap consumes it and collects its elements into a map. Elements are
// mapped using key and value, respectively. If a key repeats, the map entry
// is overwritten.
func ToMap[T any, K comparable, V any](it Iterator[T], key MapperFunc[T, K], value MapperFunc[T, V]) map[K]V {
	result := map[K]V{}

	Each(it, func(elem T, index uint64) {
		result[key(elem, index)] = value(elem, index)
	})

	return result
}
