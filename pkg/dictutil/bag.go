package dictutil

import (
	"fmt"
	"sort"
	"strings"
)

// Bag is a string-keyed map with convenience accessors. The zero value is
// not usable; create one with make or a literal.
type Bag map[string]any

// Get returns the value stored under name.
func (b Bag) Get(name string) (any, bool) {
	v, ok := b[name]
	return v, ok
}

// Set stores value under name.
func (b Bag) Set(name string, value any) {
	b[name] = value
}

// Delete removes name and reports whether it was present.
func (b Bag) Delete(name string) bool {
	if _, ok := b[name]; !ok {
		return false
	}
	delete(b, name)
	return true
}

// Has reports whether name is present.
func (b Bag) Has(name string) bool {
	_, ok := b[name]
	return ok
}

// Keys returns the keys in sorted order.
func (b Bag) Keys() []string {
	keys := make([]string, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String renders the bag as Bag(k=v, ...) with keys sorted and string
// values single-quoted.
func (b Bag) String() string {
	var sb strings.Builder
	sb.WriteString("Bag(")
	for i, k := range b.Keys() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(k)
		sb.WriteString("=")
		if s, ok := b[k].(string); ok {
			sb.WriteString("'" + s + "'")
		} else {
			fmt.Fprintf(&sb, "%v", b[k])
		}
	}
	sb.WriteString(")")
	return sb.String()
}
