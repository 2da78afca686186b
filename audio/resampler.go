// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/beatgen/utils"
)

// Resampler converts a source to another sample rate with four point cubic
// interpolation. Channel layout is preserved. When the rate goes down a one
// pole low-pass runs over the input first.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames per output frame
	channels int

	// window[1] and window[2] bracket the output position; window[0] and
	// window[3] are the outer cubic taps.
	window [4][]float32
	filled int

	frac   float64
	primed bool
	eof    bool

	in []float32

	lowpass bool
	lpState []float32
}

// lowpassAlpha is the smoothing factor of the pre-filter used when
// downsampling.
const lowpassAlpha = 0.5

func NewResampler(src Source, dstRate int) *Resampler {
	ch := src.Channels()
	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		step:     float64(src.SampleRate()) / float64(dstRate),
		channels: ch,
		in:       make([]float32, ch),
		lpState:  make([]float32, ch),
	}
	r.lowpass = r.step > 1

	for i := range r.window {
		r.window[i] = make([]float32, ch)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("close resampled source: %w", err)
	}
	return nil
}

// pull reads one frame into frame. ok is false once the source has no more
// frames.
func (r *Resampler) pull(frame []float32) (ok bool, err error) {
	if r.eof {
		return false, nil
	}

	n, err := r.src.ReadSamples(r.in)
	if errors.Is(err, io.EOF) {
		r.eof = true
		err = nil
	}
	if err != nil {
		return false, fmt.Errorf("resample read: %w", err)
	}
	if n < r.channels {
		// a short read is treated as the end of input
		r.eof = true
		return false, nil
	}

	copy(frame, r.in)
	if r.lowpass {
		if !r.primed {
			copy(r.lpState, frame)
		}
		for c, v := range frame {
			y := lowpassAlpha*v + (1-lowpassAlpha)*r.lpState[c]
			r.lpState[c] = y
			frame[c] = y
		}
	}
	r.primed = true

	return true, nil
}

// advance slides the window one frame forward. At the end of input the last
// frame is repeated until the window drains.
func (r *Resampler) advance() error {
	first := r.window[0]
	copy(r.window[:], r.window[1:])
	r.window[3] = first

	ok, err := r.pull(r.window[3])
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	copy(r.window[3], r.window[2])
	r.filled--

	return nil
}

// prime fills the window so that window[1] holds the first frame.
func (r *Resampler) prime() error {
	ok, err := r.pull(r.window[1])
	if err != nil || !ok {
		return err
	}
	copy(r.window[0], r.window[1])
	r.filled = 2

	for i := 2; i < 4; i++ {
		ok, err := r.pull(r.window[i])
		if err != nil {
			return err
		}
		if !ok {
			copy(r.window[i], r.window[i-1])
			continue
		}
		r.filled++
	}

	return nil
}

// ReadSamples writes resampled interleaved values into dst, whose length
// must be a multiple of Channels.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if r.filled == 0 && !r.eof {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	out := 0

	for out < frames {
		for r.frac >= 1 {
			r.frac--
			if err := r.advance(); err != nil {
				return out * r.channels, err
			}
		}

		// window[2] must be a real frame to interpolate toward
		if r.filled < 3 {
			return out * r.channels, io.EOF
		}

		t := float32(r.frac)
		base := out * r.channels
		for c := range r.channels {
			dst[base+c] = utils.CubicInterpolate(r.window[0][c], r.window[1][c], r.window[2][c], r.window[3][c], t)
		}

		out++
		r.frac += r.step
	}

	return out * r.channels, nil
}
