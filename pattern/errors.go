// SPDX-License-Identifier: EPL-2.0

package pattern

import "errors"

var ErrNilRand = errors.New("nil random source")
