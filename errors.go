// SPDX-License-Identifier: EPL-2.0

package beatgen

import "errors"

var (
	ErrUnknownFormat = errors.New("unknown output format")
)
