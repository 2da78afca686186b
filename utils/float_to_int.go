// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 quantizes a sample in [-1,1] to signed 16-bit PCM as
// round(x·32767). Values outside the range are clamped and NaN or ±Inf
// become 0, so the result is symmetric and never wraps.
func Float32ToInt16(x float32) int16 {
	f := float64(x)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	v := math.Round(clampUnit(f) * math.MaxInt16)
	return int16(max(-math.MaxInt16, min(math.MaxInt16, v)))
}

// Float32ToInt16Slice quantizes src into dst, which must be at least as
// long, and returns dst[:len(src)].
func Float32ToInt16Slice(dst []int16, src []float32) []int16 {
	dst = dst[:len(src)]
	for i, v := range src {
		dst[i] = Float32ToInt16(v)
	}
	return dst
}

func clampUnit(f float64) float64 {
	if f > 1 {
		return 1
	}
	if f < -1 {
		return -1
	}
	return f
}
