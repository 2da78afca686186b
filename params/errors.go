// SPDX-License-Identifier: EPL-2.0

package params

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrTempoOutOfRange  = errors.New("tempo out of range")
	ErrUnknownGenre     = errors.New("unknown genre")
	ErrUnknownStructure = errors.New("unknown structure")
)

// Error reports which request field was rejected. It matches
// ErrInvalidParameter and the underlying cause with errors.Is.
type Error struct {
	Field string
	Value any
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s=%v: %v", ErrInvalidParameter, e.Field, e.Value, e.Err)
}

func (e *Error) Unwrap() []error {
	return []error{ErrInvalidParameter, e.Err}
}
