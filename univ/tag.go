package univ

import "reflect"

// Tag identifies a concrete Go type at run time.
//
// Tags are comparable with ==, and two tags are equal only when they identify
// the very same type: a named type and its underlying type get different tags,
// as do two distinct struct types with identical fields. The zero Tag
// identifies no type at all.
type Tag struct {
	t reflect.Type
}

// TagOf returns the tag of the type parameter A.
//
// For interface types the tag is that of the interface itself, not of any
// value that might be stored in it.
func TagOf[A any]() Tag {
	return Tag{t: reflect.TypeFor[A]()}
}

// IsZero reports whether the tag identifies no type.
func (t Tag) IsZero() bool { return t.t == nil }

// Type returns the reflect.Type the tag stands for, or nil for the zero Tag.
func (t Tag) Type() reflect.Type { return t.t }

func (t Tag) String() string {
	if t.t == nil {
		return "<none>"
	}
	return t.t.String()
}
