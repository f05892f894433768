package availability

// groupBy builds a mapping from key to the items sharing that key. Items keep their
// original relative order within each bucket.
func groupBy[T any, K comparable](items []T, keyFn func(T) K) map[K][]T {
	grouped := make(map[K][]T)
	for _, item := range items {
		key := keyFn(item)
		grouped[key] = append(grouped[key], item)
	}
	return grouped
}
