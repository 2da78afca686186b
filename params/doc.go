// SPDX-License-Identifier: EPL-2.0

// Package params defines the generation request and the single policy used
// to validate it.
//
// Every out-of-range or unknown field is rejected before any rendering work
// starts. Nothing is replaced with a default behind the caller's back:
//
//	req, err := params.Parse(120, "C", "dark", "trap", "loop-4-bars")
//	if errors.Is(err, params.ErrInvalidParameter) {
//	    var perr *params.Error
//	    errors.As(err, &perr)
//	    fmt.Println(perr.Field) // which field was rejected
//	}
//
// Genre and structure are carried through as metadata. They do not change the
// rhythm; only the mood selects scale and chords.
package params
