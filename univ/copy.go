package univ

import (
	"github.com/univt/univt/internal/experiments"
	"github.com/univt/univt/univ/internal/deepcopy"
)

// Cloner lets a type control how it is copied in and out of a Value.
//
// Clone may be declared on T or on *T; either way it must return a copy that
// shares no mutable state with the receiver. Types that don't implement
// Cloner are deep copied: everything reachable from the value is duplicated,
// unexported fields and pointees included, and only functions are shared.
type Cloner[T any] interface {
	Clone() T
}

func copyOf[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	if c, ok := any(&v).(Cloner[T]); ok {
		return c.Clone()
	}
	if experiments.Env.ShallowCopy {
		return v
	}
	return deepcopy.Copy(v)
}
