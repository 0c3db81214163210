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
	"fmt"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/sdlwrap/handle"
	"github.com/jetsetilly/sdlwrap/logger"
)

// WavFile is an open WAV file being written to. It is the raw handle type for
// the Recording type.
type WavFile struct {
	filename string
	f        *os.File
	enc      *wav.Encoder
	format   *goaudio.Format
	frames   int
}

// RecordingDeleter completes and closes WAV files. The WAV header is only
// correct once the file has been closed.
type RecordingDeleter struct{}

// Delete implements the handle.Deleter interface.
func (RecordingDeleter) Delete(w *WavFile) {
	if err := w.enc.Close(); err != nil {
		logger.Logf(logger.Allow, "audio", "recording: %s: %v", w.filename, err)
	}
	if err := w.f.Close(); err != nil {
		logger.Logf(logger.Allow, "audio", "recording: %s: %v", w.filename, err)
	}
	logger.Logf(logger.Allow, "audio", "recording: %d frames written to %s", w.frames, w.filename)
}

// RecordingOf is the method set for WAV recordings.
type RecordingOf[H handle.Getter[*WavFile]] struct {
	Handle H
}

// Recording owns a WAV file being written to.
type Recording = RecordingOf[*handle.Owned[*WavFile, RecordingDeleter]]

// RecordingRef refers to a WAV file owned elsewhere.
type RecordingRef = RecordingOf[handle.Ref[*WavFile]]

// CreateRecording creates a new WAV file for 16bit PCM data. An existing file
// with the same name is overwritten.
func CreateRecording(filename string, sampleRate int, channels int) (Recording, error) {
	if sampleRate <= 0 || channels <= 0 {
		return Recording{Handle: new(handle.Owned[*WavFile, RecordingDeleter])}, fmt.Errorf("audio: recording: bad parameters for wav encoding")
	}

	f, err := os.Create(filename)
	if err != nil {
		return Recording{Handle: new(handle.Owned[*WavFile, RecordingDeleter])}, fmt.Errorf("audio: recording: %w", err)
	}

	w := &WavFile{
		filename: filename,
		f:        f,
		enc:      wav.NewEncoder(f, sampleRate, 16, channels, 1),
		format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
	}

	return Recording{Handle: handle.New[RecordingDeleter](w)}, nil
}

// Get implements the handle.Getter interface.
func (r RecordingOf[H]) Get() *WavFile {
	return r.Handle.Get()
}

// Ref returns a reference to the recording.
func (r RecordingOf[H]) Ref() RecordingRef {
	return RecordingRef{Handle: handle.Borrow(r.Handle.Get())}
}

// Filename returns the name of the file being written to.
func (r RecordingOf[H]) Filename() string {
	return r.Handle.Get().filename
}

// Frames returns the number of frames written so far. A frame is one sample
// for every channel.
func (r RecordingOf[H]) Frames() int {
	return r.Handle.Get().frames
}

// Write interleaved 16bit samples to the file.
func (r RecordingOf[H]) Write(samples []int16) error {
	w := r.Handle.Get()

	buf := &goaudio.IntBuffer{
		Format:         w.format,
		SourceBitDepth: 16,
		Data:           make([]int, len(samples)),
	}
	for i, s := range samples {
		buf.Data[i] = int(s)
	}

	if err := w.enc.Write(buf); err != nil {
		return fmt.Errorf("audio: recording: %w", err)
	}
	w.frames += len(samples) / w.format.NumChannels

	return nil
}

// WritePCM writes decoded PCM data to the file. The number of channels must
// match the recording.
func (r RecordingOf[H]) WritePCM(pcm *PCM) error {
	if pcm.Channels != r.Handle.Get().format.NumChannels {
		return fmt.Errorf("audio: recording: recording has %d channels, pcm data has %d", r.Handle.Get().format.NumChannels, pcm.Channels)
	}
	return r.Write(pcm.Data)
}
