// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	"github.com/ik5/beatgen/utils"
)

// ResampleMono runs src through a Resampler and a MonoMixer and collects
// the result. It is how full-mix previews are produced.
func ResampleMono(src Source, targetRate, bufferSize int) (*Buffer, error) {
	if targetRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, targetRate)
	}
	if src.Channels() <= 0 {
		return nil, ErrInvalidChannels
	}

	var pipeline Source = NewMonoMixer(src)
	if src.SampleRate() != targetRate {
		pipeline = NewMonoMixer(NewResampler(src, targetRate))
	}

	buf, err := ReadAll(pipeline, bufferSize)
	if err != nil {
		return nil, fmt.Errorf("resample to %d Hz: %w", targetRate, err)
	}

	return buf, nil
}

// ResampleToMono16 is ResampleMono followed by 16-bit quantization.
func ResampleToMono16(src Source, targetRate, bufferSize int) ([]int16, int, error) {
	buf, err := ResampleMono(src, targetRate, bufferSize)
	if err != nil {
		return nil, targetRate, err
	}

	pcm := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		pcm[i] = utils.Float32ToInt16(v)
	}

	return pcm, targetRate, nil
}
