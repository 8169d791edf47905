// Package strings holds string helpers the standard library lacks
package strings

import std "strings"

// IfEmpty returns def when in has no elements
func IfEmpty[T any](in, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// MustString panics with name when s is blank
func MustString(s, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// MustPrefix normalizes a route prefix to one leading slash and no trailing one
// It panics on the root, which is never a valid module prefix
func MustPrefix(s string) string {
	s = "/" + std.Trim(std.TrimSpace(s), "/ ")
	if s == "/" {
		panic("route prefix is required")
	}
	return s
}

// TrimPtr trims *ps and returns nil for nil or blank input
func TrimPtr(ps *string) *string {
	if ps == nil {
		return nil
	}
	s := std.TrimSpace(*ps)
	if s == "" {
		return nil
	}
	return &s
}

// Deref returns *ps or ""
func Deref(ps *string) string {
	if ps == nil {
		return ""
	}
	return *ps
}
