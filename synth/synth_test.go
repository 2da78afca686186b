// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"
	"math/rand/v2"
	"testing"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestSine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		freq float64
		t    float64
		want float64
	}{
		{"zero time", 440, 0, 0},
		{"quarter period", 1, 0.25, 1},
		{"three quarter period", 1, 0.75, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Sine(tt.freq, tt.t); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Sine(%v, %v) = %v, want %v", tt.freq, tt.t, got, tt.want)
			}
		})
	}
}

func TestTriangle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		t    float64
		want float64
	}{
		{0, 0},
		{0.25, 1},
		{0.5, 0},
		{0.75, -1},
		{1, 0},
		{0.125, 0.5},
	}

	for _, tt := range tests {
		if got := Triangle(1, tt.t); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Triangle(1, %v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestNoiseRangeAndDeterminism(t *testing.T) {
	t.Parallel()

	for _, hp := range []bool{false, true} {
		a := Noise(4096, hp, newRand(7))
		b := Noise(4096, hp, newRand(7))

		for i := range a {
			if a[i] < -1 || a[i] > 1 {
				t.Fatalf("highpass=%v sample %d = %v outside [-1,1]", hp, i, a[i])
			}
			if a[i] != b[i] {
				t.Fatalf("highpass=%v sample %d differs between equal seeds", hp, i)
			}
		}
	}

	if got := Noise(0, false, newRand(1)); len(got) != 0 {
		t.Errorf("Noise(0) len = %d, want 0", len(got))
	}
}

func TestNoiseHighpassRemovesDC(t *testing.T) {
	t.Parallel()

	// A constant input must decay to zero through the high-pass.
	gen := NewNoiseGen(constRand(0.75), true)
	var last float64
	for range 200 {
		last = gen.Next()
	}
	if math.Abs(last) > 1e-6 {
		t.Errorf("high-passed DC = %v, want ≈0", last)
	}
}

type constRand float64

func (c constRand) Float64() float64 { return float64(c) }

func TestEnvelopeBoundaries(t *testing.T) {
	t.Parallel()

	buf := make([]float32, 1000)
	for i := range buf {
		buf[i] = 1
	}
	Envelope(buf, 0.02, 0.02)

	if buf[0] != 0 {
		t.Errorf("buf[0] = %v, want 0", buf[0])
	}
	if buf[len(buf)-1] != 0 {
		t.Errorf("buf[last] = %v, want 0", buf[len(buf)-1])
	}
	if buf[500] != 1 {
		t.Errorf("buf[500] = %v, want 1 (sustain)", buf[500])
	}
	for i := 1; i < 20; i++ {
		if buf[i] < buf[i-1] {
			t.Errorf("attack not monotonic at %d", i)
		}
	}
}

func TestEnvelopeGainEdgeCases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		i, n     int
		att, rel float64
		want     float64
	}{
		{"empty buffer", 0, 0, 0.1, 0.1, 0},
		{"out of range", 10, 10, 0.1, 0.1, 0},
		{"no fade", 0, 10, 0, 0, 1},
		{"single sample", 0, 1, 0.5, 0.5, 1},
		{"nan fraction", 0, 10, math.NaN(), 0, 1},
		{"fraction above one", 9, 10, 0, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := EnvelopeGain(tt.i, tt.n, tt.att, tt.rel); got != tt.want {
				t.Errorf("EnvelopeGain() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGate(t *testing.T) {
	t.Parallel()

	if got := Gate(-0.1, 1, 0.1, 0.1); got != 0 {
		t.Errorf("before note = %v, want 0", got)
	}
	if got := Gate(1, 1, 0.1, 0.1); got != 0 {
		t.Errorf("after note = %v, want 0", got)
	}
	if got := Gate(0.05, 1, 0.1, 0.1); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("mid attack = %v, want 0.5", got)
	}
	if got := Gate(0.5, 1, 0.1, 0.1); got != 1 {
		t.Errorf("sustain = %v, want 1", got)
	}
	if got := Gate(0.95, 1, 0.1, 0.1); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("mid release = %v, want 0.5", got)
	}
}

func TestPitchSweep(t *testing.T) {
	t.Parallel()

	if got := PitchSweep(150, 50, 0.12, 0); got != 150 {
		t.Errorf("start = %v, want 150", got)
	}
	if got := PitchSweep(150, 50, 0.12, 0.12); got != 50 {
		t.Errorf("end = %v, want 50", got)
	}
	if got := PitchSweep(150, 50, 0.12, 1); got != 50 {
		t.Errorf("after = %v, want 50", got)
	}
	// geometric mean at the midpoint
	if got, want := PitchSweep(150, 50, 0.12, 0.06), math.Sqrt(150*50); math.Abs(got-want) > 1e-9 {
		t.Errorf("midpoint = %v, want %v", got, want)
	}
	if got := PitchSweep(0, 100, 1, 0.5); math.Abs(got-50) > 1e-9 {
		t.Errorf("linear fallback = %v, want 50", got)
	}
}

func TestSweepPhaseMatchesIntegral(t *testing.T) {
	t.Parallel()

	const (
		start = 150.0
		end   = 50.0
		dur   = 0.12
		step  = 1e-6
	)

	// Riemann sum of the instantaneous frequency.
	sum := 0.0
	for x := step / 2; x < 0.2; x += step {
		sum += PitchSweep(start, end, dur, x) * step
	}

	if got := SweepPhase(start, end, dur, 0.2); math.Abs(got-sum) > 1e-3 {
		t.Errorf("SweepPhase() = %v, integral ≈ %v", got, sum)
	}
	if got := SweepPhase(start, end, dur, 0); got != 0 {
		t.Errorf("SweepPhase(0) = %v, want 0", got)
	}
	if got := SweepPhase(100, 100, dur, 0.5); math.Abs(got-50) > 1e-9 {
		t.Errorf("constant sweep phase = %v, want 50", got)
	}
}

func TestVoicesAreGated(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func(dt float64) float64
		gate float64
	}{
		{"kick", func(dt float64) float64 { return Kick(dt, 1) }, KickGate},
		{"snare", func(dt float64) float64 { return Snare(dt, 1, 1) }, SnareGate},
		{"closed hat", func(dt float64) float64 { return Hat(dt, 1, false, 1) }, HatClosedGate},
		{"open hat", func(dt float64) float64 { return Hat(dt, 1, true, 1) }, HatOpenGate},
		{"impact", func(dt float64) float64 { return Impact(dt, 1, 1) }, ImpactGate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.fn(-0.001); got != 0 {
				t.Errorf("before hit = %v, want 0", got)
			}
			if got := tt.fn(tt.gate); got != 0 {
				t.Errorf("at gate = %v, want 0", got)
			}
			for dt := 0.0; dt < tt.gate; dt += 0.001 {
				if v := tt.fn(dt); math.Abs(v) > 1 {
					t.Fatalf("dt=%v value %v outside [-1,1]", dt, v)
				}
			}
		})
	}
}

func TestKickStartsAtZero(t *testing.T) {
	t.Parallel()

	if got := Kick(0, 1); got != 0 {
		t.Errorf("Kick(0) = %v, want 0", got)
	}
}

func TestRiserGrows(t *testing.T) {
	t.Parallel()

	const total = 8.0
	peak := func(from, to float64) float64 {
		p := 0.0
		for x := from; x < to; x += 1.0 / 44100 {
			p = math.Max(p, math.Abs(Riser(x, total, 1)))
		}
		return p
	}

	early, late := peak(0, 1), peak(7, 8)
	if late <= early {
		t.Errorf("riser late peak %v <= early peak %v", late, early)
	}
	if got := Riser(total, total, 1); got != 0 {
		t.Errorf("Riser(total) = %v, want 0", got)
	}
}

func TestNoteAndPad(t *testing.T) {
	t.Parallel()

	if got := Note(ShapeSine, 440, 0.5, 0.5, 1); got != 0 {
		t.Errorf("Note after length = %v, want 0", got)
	}
	if got := Note(ShapeTriangle, 440, 0, 0.5, 1); got != 0 {
		t.Errorf("Note at onset = %v, want 0", got)
	}
	if got := Pad(220, nil, 0.1, 1, 1); got != 0 {
		t.Errorf("Pad without tones = %v, want 0", got)
	}
	for dt := 0.0; dt < 1; dt += 0.0005 {
		if v := Pad(220, []float64{1, 1.25, 1.5}, dt, 1, 1); math.Abs(v) > 1 {
			t.Fatalf("Pad(%v) = %v outside [-1,1]", dt, v)
		}
	}
}

func BenchmarkKick(b *testing.B) {
	b.ReportAllocs()
	var v float64
	for i := range b.N {
		v = Kick(float64(i%13230)/44100, 1)
	}
	_ = v
}
