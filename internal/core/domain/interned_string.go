package domain

import (
	"slices"
	"strings"
	"unique"
)

// InternedString is a value object that wraps a unique.Handle[string].
// Package identifiers are interned so that snapshots rebuilt on every pass
// share a single copy of each name.
type InternedString struct {
	h unique.Handle[string]
}

// NewInternedString creates a new InternedString from a string.
func NewInternedString(s string) InternedString {
	return InternedString{
		h: unique.Make(s),
	}
}

// NewInternedStrings interns every element of s.
func NewInternedStrings(s []string) []InternedString {
	res := make([]InternedString, len(s))
	for i, v := range s {
		res[i] = NewInternedString(v)
	}
	return res
}

// String returns the underlying string value.
func (is InternedString) String() string {
	var zero unique.Handle[string]
	if is.h == zero {
		return ""
	}
	return is.h.Value()
}

// Value returns the underlying unique.Handle[string].
func (is InternedString) Value() unique.Handle[string] {
	return is.h
}

// IsZero reports whether the identifier was never set.
func (is InternedString) IsZero() bool {
	var zero unique.Handle[string]
	return is.h == zero
}

// Compare orders identifiers lexicographically by their string value.
func (is InternedString) Compare(other InternedString) int {
	return strings.Compare(is.String(), other.String())
}

// MarshalText implements encoding.TextMarshaler.
func (is InternedString) MarshalText() ([]byte, error) {
	return []byte(is.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (is *InternedString) UnmarshalText(text []byte) error {
	is.h = unique.Make(string(text))
	return nil
}

// Strings converts identifiers back to plain strings, preserving order.
func Strings(ids []InternedString) []string {
	res := make([]string, len(ids))
	for i, id := range ids {
		res[i] = id.String()
	}
	return res
}

// CanonicalizeIDs sorts and deduplicates identifiers.
// Empty names are dropped.
func CanonicalizeIDs(ids []InternedString) []InternedString {
	if len(ids) == 0 {
		return nil
	}

	sorted := make([]InternedString, 0, len(ids))
	for _, id := range ids {
		if id.String() != "" {
			sorted = append(sorted, id)
		}
	}
	slices.SortFunc(sorted, InternedString.Compare)
	return slices.Compact(sorted)
}
