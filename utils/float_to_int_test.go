// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{name: "zero", input: 0, want: 0},
		{name: "full scale positive", input: 1, want: 32767},
		{name: "full scale negative", input: -1, want: -32767},
		{name: "half positive rounds", input: 0.5, want: 16384},
		{name: "half negative rounds", input: -0.5, want: -16384},
		{name: "quarter", input: 0.25, want: 8192},
		{name: "small positive", input: 0.001, want: 33},
		{name: "small negative", input: -0.001, want: -33},
		{name: "clamp over max", input: 1.5, want: 32767},
		{name: "clamp under min", input: -1.5, want: -32767},
		{name: "clamp way over", input: 100, want: 32767},
		{name: "NaN is silence", input: float32(math.NaN()), want: 0},
		{name: "+Inf is silence", input: float32(math.Inf(1)), want: 0},
		{name: "-Inf is silence", input: float32(math.Inf(-1)), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Float32ToInt16(tt.input); got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFloat32ToInt16Symmetric(t *testing.T) {
	t.Parallel()

	for i := 0; i <= 1000; i++ {
		x := float32(i) / 1000
		if p, n := Float32ToInt16(x), Float32ToInt16(-x); p != -n {
			t.Fatalf("Float32ToInt16(%v) = %d but Float32ToInt16(%v) = %d", x, p, -x, n)
		}
	}
}

func TestFloat32ToInt16Slice(t *testing.T) {
	t.Parallel()

	src := []float32{0, 1, -1, float32(math.NaN())}
	got := Float32ToInt16Slice(make([]int16, 8), src)

	want := []int16{0, 32767, -32767, 0}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func BenchmarkFloat32ToInt16(b *testing.B) {
	b.ReportAllocs()

	var sink int16
	for i := 0; b.Loop(); i++ {
		sink = Float32ToInt16(float32(i%2000)/1000 - 1)
	}
	_ = sink
}
