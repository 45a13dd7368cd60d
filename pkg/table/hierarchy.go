package table

import (
	"sort"
	"strings"
)

// node is one level of a path tree.
type node map[string]node

// applyHierarchy expands the first hierarchical column into an indented
// tree. Leaf rows keep their other cells; synthetic rows for intermediate
// path nodes are blank except for the label. Rows without a hierarchical
// column pass through unchanged.
func applyHierarchy(cols []Column, rows [][]string) [][]string {
	idx, sep := hierarchyColumn(cols)
	if idx < 0 || len(rows) == 0 {
		return rows
	}

	tree := node{}
	byPath := make(map[string][]string, len(rows))
	for _, row := range rows {
		path := row[idx]
		byPath[path] = row
		current := tree
		for _, part := range strings.Split(path, sep) {
			child, ok := current[part]
			if !ok {
				child = node{}
				current[part] = child
			}
			current = child
		}
	}

	var out [][]string
	flatten(tree, "", sep, 0, func(full, label string, level int, leaf bool) {
		row := make([]string, len(cols))
		if leaf {
			if base, ok := byPath[full]; ok {
				copy(row, base)
			}
		}
		row[idx] = strings.Repeat("  ", level) + label
		out = append(out, row)
	})
	return out
}

// hierarchyColumn returns the index and separator of the first column
// marked hierarchical, or -1.
func hierarchyColumn(cols []Column) (int, string) {
	for i, col := range cols {
		if col.Hierarchy != nil {
			sep := col.Hierarchy.Sep
			if sep == "" {
				sep = "/"
			}
			return i, sep
		}
	}
	return -1, ""
}

// flatten walks the tree depth-first with siblings in sorted order.
func flatten(tree node, prefix, sep string, level int, visit func(full, label string, level int, leaf bool)) {
	keys := make([]string, 0, len(tree))
	for k := range tree {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		full := key
		if prefix != "" {
			full = prefix + sep + key
		}
		children := tree[key]
		visit(full, key, level, len(children) == 0)
		flatten(children, full, sep, level+1, visit)
	}
}
