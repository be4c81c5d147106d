// Package univ implements a universal value container.
//
// A Value holds exactly one value of any Go type together with the Tag of the
// type it was embedded as. Values are recovered with Unembed, which succeeds
// only when the requested type is exactly the embedded one:
//
//	v := univ.Embed(13)
//	n, ok := univ.Unembed[int](v)    // 13, true
//	s, ok := univ.Unembed[string](v) // "", false
//
// A mismatch is an ordinary outcome, not an error: there is no conversion
// between named types, numeric types or interfaces an embedded type happens
// to implement.
//
// Codec and MakeCodec bind embedding and extraction to one type once, so the
// pair can be passed around without restating the type. Recoverability is
// governed by type identity only, so any codec for A can read a Value built
// by any other codec for A.
//
// A Value is immutable and owns its payload: embedding stores a copy of the
// argument and every successful extraction returns a fresh copy (see Cloner),
// which makes a Value safe for concurrent readers.
package univ

import (
	"errors"
	"fmt"
)

// ErrTypeMismatch is matched by errors returned from As when the requested
// type is not the one the Value was embedded as.
var ErrTypeMismatch = errors.New("type mismatch")

// MismatchError is returned by As when a Value can't be recovered as the
// requested type.
type MismatchError struct {
	Want Tag // requested type
	Got  Tag // embedded type, zero for an empty Value
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("univ: cannot unembed %s as %s", e.Got, e.Want)
}

// Unwrap makes errors.Is(err, ErrTypeMismatch) hold.
func (e *MismatchError) Unwrap() error { return ErrTypeMismatch }

// Value is an immutable container for a single value of any type.
//
// The zero Value is empty: it holds nothing and every extraction from it
// reports absence.
type Value struct {
	tag Tag
	// payload is a *A, where A is the type identified by tag.
	payload any
}

// Embed wraps a copy of v into a Value tagged with the type A.
func Embed[A any](v A) Value {
	p := new(A)
	*p = copyOf(v)
	return Value{tag: TagOf[A](), payload: p}
}

// Unembed returns a copy of the value held by u if it was embedded as type B.
// Otherwise it returns the zero B and false.
func Unembed[B any](u Value) (B, bool) {
	p, ok := lookup[B](u)
	if !ok {
		var zero B
		return zero, false
	}
	return copyOf(*p), true
}

// Is reports whether u holds a value embedded as type B.
func Is[B any](u Value) bool {
	_, ok := lookup[B](u)
	return ok
}

// As is like Unembed, but reports a mismatch as a *MismatchError.
func As[B any](u Value) (B, error) {
	v, ok := Unembed[B](u)
	if !ok {
		return v, &MismatchError{Want: TagOf[B](), Got: u.tag}
	}
	return v, nil
}

func lookup[B any](u Value) (*B, bool) {
	if u.payload == nil || u.tag != TagOf[B]() {
		return nil, false
	}
	p, ok := u.payload.(*B)
	return p, ok
}

// Tag returns the tag of the type u was embedded as, or the zero Tag for an
// empty Value.
func (u Value) Tag() Tag { return u.tag }

// IsZero reports whether u is empty.
func (u Value) IsZero() bool { return u.payload == nil }

// String describes the embedded type. It never formats the payload.
func (u Value) String() string {
	return "univ.Value[" + u.tag.String() + "]"
}
