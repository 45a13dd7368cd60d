package kwargs

import "github.com/go-seeds/seeds/pkg/dictutil"

// groupSuffix is appended to a group name to form its collection key.
const groupSuffix = "_kwargs"

// Spec controls how one group is extracted. The zero value moves matched
// keys into the group with the prefix sliced off, which is the common case.
type Spec struct {
	// KeepPrefix retains the "<group>_" prefix on keys inside the group.
	KeepPrefix bool
	// Keep copies matched keys into the group instead of removing them
	// from the source map.
	Keep bool
}

// Specs maps group names to their extraction behavior.
type Specs map[string]Spec

// GroupKey returns the key a group's collected options are stored under.
func GroupKey(name string) string {
	return name + groupSuffix
}

// Group rewrites kw in place, collecting each declared group.
//
// For a group named G, three input forms contribute, later forms winning on
// key conflicts: an explicit "G_kwargs" map, a map value under the bare key
// "G" (the whole group at once), and individual "G_<key>" entries. A true
// value under "G" activates the group with no options. "G_kwargs" is always
// set afterwards, to an empty map when nothing contributed; a non-map
// explicit "G_kwargs" value is coerced to one.
func Group(kw map[string]any, specs Specs) {
	for name, spec := range specs {
		groupOne(kw, name, spec)
	}
}

func groupOne(kw map[string]any, name string, spec Spec) {
	groupKey := GroupKey(name)

	group := map[string]any{}
	if cur, ok := kw[groupKey]; ok {
		delete(kw, groupKey)
		if m, ok := cur.(map[string]any); ok {
			for k, v := range m {
				group[k] = v
			}
		}
	}

	switch v := kw[name].(type) {
	case map[string]any:
		delete(kw, name)
		for k, val := range v {
			group[k] = val
		}
	case bool:
		if v {
			delete(kw, name)
		}
	}

	extracted := dictutil.ExtractWith(kw, name+"_", dictutil.Options{
		SlicePrefix: !spec.KeepPrefix,
		Pop:         !spec.Keep,
	})
	for k, v := range extracted {
		group[k] = v
	}

	kw[groupKey] = group
}
