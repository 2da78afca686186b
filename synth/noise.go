// SPDX-License-Identifier: EPL-2.0

package synth

// Rand is the random source noise is drawn from. *math/rand/v2.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// highpassAlpha is the one-pole high-pass coefficient used to thin noise
// into hat and snare texture.
const highpassAlpha = 0.7

// NoiseGen produces uniform noise in [-1,1], optionally high-passed.
type NoiseGen struct {
	rng      Rand
	highpass bool

	prevIn  float64
	prevOut float64
}

func NewNoiseGen(rng Rand, highpass bool) *NoiseGen {
	return &NoiseGen{rng: rng, highpass: highpass}
}

func (g *NoiseGen) Next() float64 {
	x := g.rng.Float64()*2 - 1
	if !g.highpass {
		return x
	}

	// y[n] = a * (y[n-1] + x[n] - x[n-1])
	y := highpassAlpha * (g.prevOut + x - g.prevIn)
	g.prevIn = x
	g.prevOut = y

	return clamp(y)
}

// Noise renders n samples of noise.
func Noise(n int, highpass bool, rng Rand) []float32 {
	if n <= 0 {
		return []float32{}
	}

	gen := NewNoiseGen(rng, highpass)
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(gen.Next())
	}

	return out
}

func clamp(x float64) float64 {
	if x > 1 {
		return 1
	} else if x < -1 {
		return -1
	}
	return x
}
