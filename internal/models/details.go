package models

import "strings"

// Details holds the semi-structured, category-specific attributes of a
// vendor. Values may be scalars, arrays or legacy free-text strings; readers
// go through Get and CoerceBool instead of branching per category.
type Details map[string]interface{}

// Get looks up an attribute by key. A "details." prefix is tolerated so
// callers can pass storage paths unchanged.
func (d Details) Get(key string) (interface{}, bool) {
	if d == nil {
		return nil, false
	}
	key = strings.TrimPrefix(key, "details.")
	v, ok := d[key]
	return v, ok
}

// TriBool is the normalized reading of a loosely stored boolean attribute.
type TriBool int

const (
	BoolUnknown TriBool = iota
	BoolTrue
	BoolFalse
)

// CoerceBool normalizes legacy boolean representations. Historic writers
// stored true, "true" and "Yes" interchangeably; this is the single place
// that tolerance lives.
func CoerceBool(v interface{}) TriBool {
	switch t := v.(type) {
	case bool:
		if t {
			return BoolTrue
		}
		return BoolFalse
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "yes":
			return BoolTrue
		case "false", "no":
			return BoolFalse
		}
	}
	return BoolUnknown
}
