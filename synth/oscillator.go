// SPDX-License-Identifier: EPL-2.0

package synth

import "math"

// Shape selects an oscillator waveform.
type Shape int

const (
	ShapeSine Shape = iota
	ShapeTriangle
)

// Sine returns sin(2πft).
func Sine(freq, t float64) float64 {
	return math.Sin(2 * math.Pi * freq * t)
}

// Triangle returns a unit triangle wave that starts at zero and rises,
// matching the phase of Sine.
func Triangle(freq, t float64) float64 {
	_, p := math.Modf(freq*t + 0.25)
	if p < 0 {
		p++
	}
	return 1 - 4*math.Abs(p-0.5)
}

// Tone evaluates the oscillator selected by shape.
func Tone(shape Shape, freq, t float64) float64 {
	if shape == ShapeTriangle {
		return Triangle(freq, t)
	}
	return Sine(freq, t)
}
