// SPDX-License-Identifier: EPL-2.0

package render

import "errors"

var (
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrInvalidDuration   = errors.New("duration must be positive and finite")
	ErrInvalidTempo      = errors.New("tempo must be positive")
	ErrInvalidPattern    = errors.New("pattern cannot be rendered")
	ErrMissingPattern    = errors.New("pattern set is missing a stem")
	ErrNilRand           = errors.New("nil random source")
)
