// Package testingx provides helpers for use with the testing package.
package testingx

import "testing"

// Must provides a concise way to unwrap a (value, error) result in test setup
// that is presumed to be correct.
//
// It MUST NOT be used to check the condition under test itself, because the
// failure message it produces says nothing about the case.
//
//	mustInt := testingx.Must[int](t)
//	n := mustInt(univ.As[int](v))
func Must[T any](t testing.TB) func(v T, err error) T {
	return func(v T, err error) T {
		t.Helper()
		if err != nil {
			t.Fatalf("Got: unexpected error: %s. Want: no error.", err)
		}
		return v
	}
}

// Present is like Must, for comma-ok results.
//
//	presentInt := testingx.Present[int](t)
//	n := presentInt(univ.Unembed[int](v))
func Present[T any](t testing.TB) func(v T, ok bool) T {
	return func(v T, ok bool) T {
		t.Helper()
		if !ok {
			t.Fatalf("Got: no %T value. Want: a value.", v)
		}
		return v
	}
}
