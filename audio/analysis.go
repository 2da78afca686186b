// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"

	"github.com/viterin/vek/vek32"
)

// Peak returns the largest absolute sample value, 0 for empty input.
func Peak(data []float32) float32 {
	if len(data) == 0 {
		return 0
	}

	abs := vek32.Abs_Into(make([]float32, len(data)), data)
	return vek32.Max(abs)
}

// RMS returns the root mean square level of data, 0 for empty input.
func RMS(data []float32) float32 {
	if len(data) == 0 {
		return 0
	}

	energy := vek32.Dot(data, data)
	return float32(math.Sqrt(float64(energy) / float64(len(data))))
}

// Waveform reduces data to points absolute peaks, one per equally sized
// bucket, for drawing an overview. Input shorter than points leaves some
// buckets empty and those read 0.
func Waveform(data []float32, points int) []float32 {
	if points <= 0 {
		return nil
	}

	out := make([]float32, points)
	if len(data) == 0 {
		return out
	}

	abs := vek32.Abs_Into(make([]float32, len(data)), data)
	for i := range out {
		lo := i * len(abs) / points
		hi := (i + 1) * len(abs) / points
		if hi <= lo {
			continue
		}
		out[i] = vek32.Max(abs[lo:hi])
	}

	return out
}
