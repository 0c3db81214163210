// This file is part of sdlwrap.
//
// sdlwrap is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sdlwrap is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with sdlwrap.  If not, see <https://www.gnu.org/licenses/>.

package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/sdlwrap/logger"
)

// PCM is decoded audio data. Samples are signed 16bit and interleaved when
// there is more than one channel.
type PCM struct {
	SampleRate int
	Channels   int
	Data       []int16
}

// Duration returns the length of the PCM data when played back at the correct
// sample rate.
func (p *PCM) Duration() time.Duration {
	if p.SampleRate == 0 || p.Channels == 0 {
		return 0
	}
	frames := len(p.Data) / p.Channels
	return time.Duration(frames) * time.Second / time.Duration(p.SampleRate)
}

// Bytes returns the PCM data as little endian bytes. Suitable for queueing on
// a device opened with the sdl.AUDIO_S16LSB format.
func (p *PCM) Bytes() []byte {
	b := make([]byte, len(p.Data)*2)
	for i, s := range p.Data {
		binary.LittleEndian.PutUint16(b[i*2:], uint16(s))
	}
	return b
}

// Container identifies the file format of encoded audio data.
type Container int

// List of valid Container values.
const (
	WAV Container = iota
	MP3
)

func (c Container) String() string {
	switch c {
	case WAV:
		return "wav"
	case MP3:
		return "mp3"
	}
	return "unknown"
}

// LoadPCMFile decodes the named file. The container is chosen by the file
// extension.
func LoadPCMFile(filename string) (*PCM, error) {
	var c Container
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		c = WAV
	case ".mp3":
		c = MP3
	default:
		return nil, fmt.Errorf("audio: pcm: unsupported file type: %s", filepath.Ext(filename))
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("audio: pcm: %w", err)
	}
	defer f.Close()

	return LoadPCM(f, c)
}

// LoadPCM decodes audio data of the container type given.
func LoadPCM(r io.ReadSeeker, c Container) (*PCM, error) {
	var p *PCM
	var err error

	switch c {
	case WAV:
		p, err = decodeWAV(r)
	case MP3:
		p, err = decodeMP3(r)
	default:
		return nil, fmt.Errorf("audio: pcm: unsupported container: %s", c)
	}
	if err != nil {
		return nil, fmt.Errorf("audio: pcm: %s: %w", c, err)
	}

	logger.Logf(logger.Allow, "audio", "%s: %dHz %d channels %.02fs", c, p.SampleRate, p.Channels, p.Duration().Seconds())

	return p, nil
}

func decodeWAV(r io.ReadSeeker) (*PCM, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, err
	}

	p := &PCM{
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		Data:       make([]int16, len(buf.Data)),
	}

	// normalise to 16bit. 8bit wav data is unsigned
	for i, v := range buf.Data {
		switch dec.BitDepth {
		case 8:
			p.Data[i] = int16((v - 128) << 8)
		case 16:
			p.Data[i] = int16(v)
		case 24:
			p.Data[i] = int16(v >> 8)
		case 32:
			p.Data[i] = int16(v >> 16)
		default:
			return nil, fmt.Errorf("unsupported bit depth: %d", dec.BitDepth)
		}
	}

	return p, nil
}

func decodeMP3(r io.Reader) (*PCM, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, err
	}

	// the decoded stream is always 16bit little endian stereo, even if the
	// source is mono
	b, err := io.ReadAll(dec)
	if err != nil {
		return nil, err
	}

	p := &PCM{
		SampleRate: dec.SampleRate(),
		Channels:   2,
		Data:       make([]int16, len(b)/2),
	}
	for i := range p.Data {
		p.Data[i] = int16(binary.LittleEndian.Uint16(b[i*2:]))
	}

	return p, nil
}
