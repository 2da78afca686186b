// SPDX-License-Identifier: EPL-2.0

// Package audio holds the PCM plumbing shared by the renderer, the
// container codecs and the preview path.
//
// Samples are float32 in [-1,1], interleaved when there is more than one
// channel. A Buffer keeps them in memory; anything that streams them
// implements Source, so decoders, the Resampler and the MonoMixer can be
// chained:
//
//	src, _ := registry.Decode("wav", f)
//	preview, err := audio.ResampleMono(src, 22050, 4096)
//
// Streams end with io.EOF, possibly together with the last samples.
//
// Peak, RMS and Waveform summarize a rendered buffer for metadata and
// drawing; they use vek32 kernels.
package audio
