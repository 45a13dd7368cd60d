// Package kwargs groups prefixed keyword arguments into nested option maps.
//
// A handler that accepts a flat map of options can declare groups; matching
// keys are collected under "<group>_kwargs":
//
//	kw := map[string]any{"logging_level": "INFO", "cache_ttl": 300, "timeout": 30}
//	kwargs.Group(kw, kwargs.Specs{"logging": {}, "cache": {}})
//	// kw = {"logging_kwargs": {"level": "INFO"}, "cache_kwargs": {"ttl": 300}, "timeout": 30}
//
// A group can also be supplied whole (a map value under the bare group name)
// or activated empty (a true value under the bare group name). Every declared
// group ends up with a map, empty when no options were supplied. Extract
// wraps a HandlerFunc so grouping happens transparently before each call.
package kwargs
