// Package domkit gathers the module's helpers behind one name:
//
//	n, err := domkit.Tag("a#home.nav", props.New().Set("href", "/"), "Home")
//	merged := domkit.Merge(defaults, overrides)
//	copied := domkit.Clone(value)
//
// Tag builds detached DOM elements from selector strings (see package tag),
// Merge overlays one property bag on another without adding keys (see
// package props), and Clone and ProcessProps walk and copy structured values
// (see package clone).
package domkit
