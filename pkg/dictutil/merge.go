package dictutil

// MergeOptions layers incoming over defaults and returns the merged map.
// Neither input is modified. When dropEmpty is true, incoming values that
// are nil, an empty string, or an empty map do not override the default.
func MergeOptions(defaults, incoming map[string]any, dropEmpty bool) map[string]any {
	merged := make(map[string]any, len(defaults)+len(incoming))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range incoming {
		if dropEmpty && isEmptyValue(v) {
			continue
		}
		merged[k] = v
	}
	return merged
}

func isEmptyValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case map[string]any:
		return len(val) == 0
	case Bag:
		return len(val) == 0
	default:
		return false
	}
}
