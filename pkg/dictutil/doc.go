// Package dictutil provides small utilities for working with string-keyed
// maps: prefix-based extraction, option merging, and the attribute-style
// Bag container.
//
// Extract and its variants copy or move entries whose keys share a prefix
// into a new map:
//
//	params := map[string]any{"api_host": "localhost", "api_port": 8000, "timeout": 30}
//	api := dictutil.ExtractPop(params, "api_")
//	// api    = {"host": "localhost", "port": 8000}
//	// params = {"timeout": 30}
//
// MergeOptions layers an incoming option map over defaults, optionally
// ignoring empty incoming values. Bag is a plain map with convenience
// accessors and a stable, readable String form.
package dictutil
