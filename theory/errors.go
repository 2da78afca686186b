// SPDX-License-Identifier: EPL-2.0

package theory

import "errors"

var (
	ErrUnknownKey   = errors.New("unknown key")
	ErrUnknownMood  = errors.New("unknown mood")
	ErrUnknownMode  = errors.New("unknown scale mode")
	ErrUnknownChord = errors.New("unknown chord symbol")
)
