// SPDX-License-Identifier: EPL-2.0

package synth

// Gate returns the gain of a linear attack/release envelope at pos seconds
// into a note of length seconds. Outside the note the gain is 0.
func Gate(pos, length, attackFrac, releaseFrac float64) float64 {
	if length <= 0 || pos < 0 || pos >= length {
		return 0
	}

	g := 1.0
	if a := fraction(attackFrac) * length; a > 0 && pos < a {
		g *= pos / a
	}
	if r := fraction(releaseFrac) * length; r > 0 && length-pos < r {
		g *= (length - pos) / r
	}

	return g
}

// EnvelopeGain is the discrete form of Gate for sample i of an n sample
// buffer. With non-zero fractions the gain at i == 0 and i == n-1 is exactly 0.
func EnvelopeGain(i, n int, attackFrac, releaseFrac float64) float64 {
	if n <= 0 || i < 0 || i >= n {
		return 0
	}

	last := float64(n - 1)
	pos := float64(i)

	g := 1.0
	if a := fraction(attackFrac) * last; a > 0 && pos < a {
		g *= pos / a
	}
	if r := fraction(releaseFrac) * last; r > 0 && last-pos < r {
		g *= (last - pos) / r
	}

	return g
}

// Envelope fades buf in over attackFrac and out over releaseFrac of its
// length, in place.
func Envelope(buf []float32, attackFrac, releaseFrac float64) {
	n := len(buf)
	for i := range buf {
		buf[i] = float32(float64(buf[i]) * EnvelopeGain(i, n, attackFrac, releaseFrac))
	}
}

func fraction(f float64) float64 {
	if f < 0 || f != f {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
