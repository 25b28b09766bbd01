// This file is part of Cyclestep.
//
// Cyclestep is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Cyclestep is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Cyclestep.  If not, see <https://www.gnu.org/licenses/>.

// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirety, and written to disk
// when EndMixing() is called. It is therefore probably only suitable for
// testing purposes.
package wavwriter

import (
	"fmt"
	"os"

	"github.com/TomHarte/CLK-sub007/logger"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// the samples received by the WavWriter are signed 16 bit values
const bitDepth = 16

// WavWriter implements the beeper.Sink interface.
type WavWriter struct {
	filename   string
	sampleRate int
	buffer     []int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string, sampleRate int) (*WavWriter, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("wavwriter: invalid sample rate (%d)", sampleRate)
	}
	return &WavWriter{
		filename:   filename,
		sampleRate: sampleRate,
		buffer:     make([]int, 0, sampleRate),
	}, nil
}

// SetSamples implements the beeper.Sink interface.
func (aw *WavWriter) SetSamples(samples []int16) {
	for _, s := range samples {
		aw.buffer = append(aw.buffer, int(s))
	}
}

// Len returns the number of samples buffered.
func (aw *WavWriter) Len() int {
	return len(aw.buffer)
}

// EndMixing writes the buffered audio to disk.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = fmt.Errorf("wavwriter: %w", err)
		}
	}()

	enc := wav.NewEncoder(f, aw.sampleRate, bitDepth, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  aw.sampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: bitDepth,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}

	return nil
}

// Reset discards all buffered audio.
func (aw *WavWriter) Reset() {
	aw.buffer = aw.buffer[:0]
}
