package rotation

// Select shuffles a copy of items with a Fisher-Yates pass driven by a
// Source seeded from seed and returns the first count elements. items is
// never modified.
func Select[T any](items []T, count int, seed int64) []T {
	if len(items) == 0 || count <= 0 {
		return []T{}
	}

	out := make([]T, len(items))
	copy(out, items)

	src := NewSource(seed)
	for i := len(out) - 1; i >= 1; i-- {
		j := int(src.Float64() * float64(i+1))
		out[i], out[j] = out[j], out[i]
	}

	if count >= len(out) {
		return out
	}
	return out[:count]
}
