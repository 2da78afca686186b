// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/beatgen/audio"
	"github.com/ik5/beatgen/formats/aiff"
	"github.com/ik5/beatgen/formats/wav"
)

func registry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	return reg
}

// inspect decodes path and prints its properties. With rate > 0 it also
// writes a mono 16-bit WAV resampled to rate into outPath.
func inspect(path string, rate int, outPath string, stdout io.Writer) error {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	src, err := registry().Decode(ext, in)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	defer src.Close()

	buf, err := audio.ReadAll(src, src.BufSize())
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	fmt.Fprintf(stdout, "file:        %s\n", path)
	fmt.Fprintf(stdout, "sample rate: %d Hz\n", buf.SampleRate)
	fmt.Fprintf(stdout, "channels:    %d\n", buf.Channels)
	fmt.Fprintf(stdout, "frames:      %d\n", buf.Frames())
	fmt.Fprintf(stdout, "duration:    %s\n", buf.Duration())
	fmt.Fprintf(stdout, "peak:        %.4f\n", audio.Peak(buf.Data))
	fmt.Fprintf(stdout, "rms:         %.4f\n", audio.RMS(buf.Data))

	if rate <= 0 {
		return nil
	}

	pcm, _, err := audio.ResampleToMono16(buf.Source(), rate, 4096)
	if err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if err := wav.WritePCM16(out, rate, 1, pcm); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "wrote:       %s (%d Hz mono, %d samples)\n", outPath, rate, len(pcm))
	return nil
}
