// SPDX-License-Identifier: EPL-2.0

package midi

import "errors"

var (
	ErrInvalidTempo   = errors.New("tempo must be positive")
	ErrMissingPattern = errors.New("pattern set is missing a stem")
	ErrInvalidPattern = errors.New("pattern has the wrong number of steps")
)
