package props

// Merge returns a bag with exactly base's keys, in base's order. Each value
// comes from overlay when overlay defines the key, zero values included,
// and from base otherwise. Keys only present in overlay are dropped.
// Neither input is modified.
func Merge(base, overlay *Props) *Props {
	result := New()
	_ = base.Each(func(k string, v interface{}) error {
		if ov, ok := overlay.Get(k); ok {
			v = ov
		}
		result.Set(k, v)
		return nil
	})
	return result
}

// MergeMaps is Merge for plain maps.
func MergeMaps[K comparable, V any](base, overlay map[K]V) map[K]V {
	result := make(map[K]V, len(base))
	for k, v := range base {
		if ov, ok := overlay[k]; ok {
			v = ov
		}
		result[k] = v
	}
	return result
}
