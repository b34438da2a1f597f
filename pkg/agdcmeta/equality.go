package agdcmeta

// AllEqual reports whether every item defines the attribute read by get and
// holds the same value for it as the first item.
//
// get returns the attribute value and whether the item has the attribute at
// all. An item without the attribute makes the result false. An empty slice
// is vacuously equal.
//
//	sameProduct := agdcmeta.AllEqual(datasets, func(d Dataset) (string, bool) {
//	    return d.Product, d.Product != ""
//	})
func AllEqual[T any, V comparable](items []T, get func(T) (V, bool)) bool {
	return AllEqualFunc(items, get, func(a, b V) bool { return a == b })
}

// AllEqualFunc is like AllEqual but compares values with eq, for attribute
// types that are not comparable with ==.
func AllEqualFunc[T, V any](items []T, get func(T) (V, bool), eq func(a, b V) bool) bool {
	if len(items) == 0 {
		return true
	}

	first, ok := get(items[0])
	if !ok {
		return false
	}

	for _, item := range items[1:] {
		v, ok := get(item)
		if !ok || !eq(first, v) {
			return false
		}
	}
	return true
}
