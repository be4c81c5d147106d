// Package deepcopy duplicates Go values on top of github.com/huandu/go-clone.
//
// Everything reachable from the value is copied: slices, maps, arrays,
// pointers, interface contents and struct fields, unexported ones included.
// Functions are shared, since Go can't duplicate them. Values that reach
// themselves are copied with the same shape.
package deepcopy

import clone "github.com/huandu/go-clone"

// Copy returns a deep copy of v.
func Copy[T any](v T) T {
	// Cloning through a pointer keeps nil interface values typed.
	return *clone.Slowly(&v).(*T)
}
