// SPDX-License-Identifier: EPL-2.0

package theory

import (
	"fmt"
	"math"
	"strings"
)

// Key is a pitch class, C == 0.
type Key int

const (
	C Key = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

// NumKeys is the number of pitch classes.
const NumKeys = 12

var keyNames = [NumKeys]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var flatAliases = map[string]Key{
	"Db": CSharp,
	"Eb": DSharp,
	"Gb": FSharp,
	"Ab": GSharp,
	"Bb": ASharp,
}

// Keys returns the twelve keys in chromatic order.
func Keys() []Key {
	keys := make([]Key, NumKeys)
	for i := range keys {
		keys[i] = Key(i)
	}
	return keys
}

// ParseKey accepts sharp names ("C#") and flat enharmonics ("Db").
// The letter is case-insensitive.
func ParseKey(s string) (Key, error) {
	name := strings.TrimSpace(s)
	if name == "" {
		return 0, fmt.Errorf("%w: empty", ErrUnknownKey)
	}
	name = strings.ToUpper(name[:1]) + name[1:]

	for i, n := range keyNames {
		if n == name {
			return Key(i), nil
		}
	}
	if k, ok := flatAliases[name]; ok {
		return k, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKey, s)
}

func (k Key) Valid() bool { return k >= 0 && k < NumKeys }

func (k Key) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Key(%d)", int(k))
	}
	return keyNames[k]
}

// Frequency returns the equal tempered frequency of the key in octave 4
// (A4 = 440 Hz), or 0 for an invalid key.
func (k Key) Frequency() float64 {
	if !k.Valid() {
		return 0
	}
	return 440 * math.Pow(2, float64(int(k)-int(A))/12)
}

// MarshalText lets keys travel as their names in YAML and JSON.
func (k Key) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKey, int(k))
	}
	return []byte(k.String()), nil
}

func (k *Key) UnmarshalText(b []byte) error {
	parsed, err := ParseKey(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
