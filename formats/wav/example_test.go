// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"encoding/binary"
	"fmt"

	"github.com/ik5/beatgen/formats/wav"
)

func ExampleEncode() {
	data, err := wav.Encode([]float32{0, 0.5, -0.5, 1}, 44100, 1, 16)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(len(data), string(data[0:4]), binary.LittleEndian.Uint32(data[40:44]))
	// Output: 52 RIFF 8
}
