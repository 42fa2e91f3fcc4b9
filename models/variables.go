package models

import "maps"

// Variables is the in-memory set of configuration values fetched from the
// remote service (or restored from a local backup), keyed by variable name.
//
// A Variables value is always replaced as a whole. Once handed out by the
// client it must be treated as read-only.
type Variables map[string]string

// Get returns the value stored under name and whether it was present.
func (v Variables) Get(name string) (string, bool) {
	value, ok := v[name]
	return value, ok
}

// Clone returns a shallow copy of v. A nil receiver yields an empty,
// non-nil map.
func (v Variables) Clone() Variables {
	if v == nil {
		return Variables{}
	}
	return maps.Clone(v)
}
