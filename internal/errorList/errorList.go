package errorList

import (
	"errors"
	"fmt"
)

// ErrTooManyErrors is added to the ErrorList by the Trim method.
var ErrTooManyErrors = errors.New("too many errors")

// ErrorList wraps multiple failed checks as a single error.
type ErrorList []error

func (errs ErrorList) Error() string {
	switch len(errs) {
	case 0:
		return "<no errors>"
	case 1:
		return errs[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", errs[0].Error(), len(errs)-1)
}

// Unwrap exposes the wrapped errors to errors.Is and errors.As.
func (errs ErrorList) Unwrap() []error { return errs }

// ErrOrNil returns nil if ErrorList is empty, or the error otherwise.
func (errs ErrorList) ErrOrNil() error {
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Append an error to the list.
//
// Nested ErrorLists are flattened and nil errors are dropped.
func (errs ErrorList) Append(err error) ErrorList {
	if err == nil {
		return errs
	}
	if list, ok := err.(ErrorList); ok {
		return append(errs, list...)
	}
	return append(errs, err)
}

// AppendDistinct is similar to Append, but skips err if the last error on the
// list has the same message. Concurrent readers hitting the same failure
// report it once.
func (errs ErrorList) AppendDistinct(err error) ErrorList {
	if err == nil {
		return errs
	}
	if l := len(errs); l > 0 && errs[l-1].Error() == err.Error() {
		return errs
	}
	return errs.Append(err)
}

// Trim the list to at most limit errors, followed by ErrTooManyErrors if
// anything was dropped.
func (errs ErrorList) Trim(limit int) ErrorList {
	if len(errs) <= limit {
		return errs
	}
	return append(errs[:limit:limit], ErrTooManyErrors)
}
