package dictutil

import "strings"

// Options controls how Extract matches and moves entries.
type Options struct {
	// SlicePrefix removes the prefix from keys in the result.
	SlicePrefix bool
	// Pop removes matched entries from the source map.
	Pop bool
}

// Extract returns the entries of src whose keys start with prefix, with the
// prefix sliced off. The source map is left untouched.
func Extract(src map[string]any, prefix string) map[string]any {
	return ExtractWith(src, prefix, Options{SlicePrefix: true})
}

// ExtractPop is like Extract but also removes the matched entries from src.
func ExtractPop(src map[string]any, prefix string) map[string]any {
	return ExtractWith(src, prefix, Options{SlicePrefix: true, Pop: true})
}

// ExtractWith extracts entries matching prefix according to opts.
func ExtractWith(src map[string]any, prefix string, opts Options) map[string]any {
	result := make(map[string]any)
	for key, value := range src {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		resultKey := key
		if opts.SlicePrefix {
			resultKey = key[len(prefix):]
		}
		result[resultKey] = value
		if opts.Pop {
			delete(src, key)
		}
	}
	return result
}
