package database

import (
	"fmt"

	"github.com/pkg/errors"
)

// QueryError is returned by every dialect operation that fails while talking
// to the database. It always wraps the error reported by the Executor.
type QueryError struct {
	// Op describes the failed operation, e.g. "drop table".
	Op string

	// Object is the quoted name of the schema or table involved.
	Object string

	// Err is the underlying cause.
	Err error
}

// NewQueryError wraps err in a *QueryError. It returns nil when err is nil so
// it can wrap a call's result directly.
func NewQueryError(op, object string, err error) error {
	if err == nil {
		return nil
	}

	return &QueryError{Op: op, Object: object, Err: err}
}

func (e *QueryError) Error() string {
	if e.Object == "" {
		return fmt.Sprintf("unable to %s: %v", e.Op, e.Err)
	}

	return fmt.Sprintf("unable to %s %s: %v", e.Op, e.Object, e.Err)
}

// Unwrap supports errors.Is and errors.As from the standard library.
func (e *QueryError) Unwrap() error { return e.Err }

// Cause supports errors.Cause from github.com/pkg/errors.
func (e *QueryError) Cause() error { return e.Err }

// IsQueryError reports whether err or anything it wraps is a *QueryError.
func IsQueryError(err error) bool {
	var qe *QueryError
	return errors.As(err, &qe)
}
