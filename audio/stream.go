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

	"github.com/jetsetilly/sdlwrap/handle"
	"github.com/veandco/go-sdl2/sdl"
)

// StreamDeleter frees SDL audio streams.
type StreamDeleter struct{}

// Delete implements the handle.Deleter interface.
func (StreamDeleter) Delete(s *sdl.AudioStream) {
	s.Free()
}

// StreamOf is the method set for SDL audio streams.
type StreamOf[H handle.Getter[*sdl.AudioStream]] struct {
	Handle H
}

// Stream owns an SDL audio stream.
type Stream = StreamOf[*handle.Owned[*sdl.AudioStream, StreamDeleter]]

// StreamRef refers to an SDL audio stream owned elsewhere.
type StreamRef = StreamOf[handle.Ref[*sdl.AudioStream]]

// NewStream creates an audio stream that converts PCM data from one format to
// another.
func NewStream(src Spec, dst Spec) (Stream, error) {
	s, err := sdl.NewAudioStream(src.Format, src.Channels, int(src.Freq), dst.Format, dst.Channels, int(dst.Freq))
	if err != nil {
		return Stream{Handle: new(handle.Owned[*sdl.AudioStream, StreamDeleter])}, fmt.Errorf("audio: stream: %w", err)
	}
	return Stream{Handle: handle.New[StreamDeleter](s)}, nil
}

// Get implements the handle.Getter interface.
func (s StreamOf[H]) Get() *sdl.AudioStream {
	return s.Handle.Get()
}

// Ref returns a reference to the stream.
func (s StreamOf[H]) Ref() StreamRef {
	return StreamRef{Handle: handle.Borrow(s.Handle.Get())}
}

// Put data into the stream for conversion.
func (s StreamOf[H]) Put(data []byte) error {
	if err := s.Handle.Get().Put(data); err != nil {
		return fmt.Errorf("audio: stream: %w", err)
	}
	return nil
}

// Read converted data from the stream. Returns the number of bytes read.
func (s StreamOf[H]) Read(data []byte) (int, error) {
	n, err := s.Handle.Get().Get(data)
	if err != nil {
		return n, fmt.Errorf("audio: stream: %w", err)
	}
	return n, nil
}

// Available returns the number of converted bytes ready to be read.
func (s StreamOf[H]) Available() int {
	return s.Handle.Get().Available()
}

// Flush tells the stream that no more data will be put into it for now. Any
// data held back for resampling is converted and made available.
func (s StreamOf[H]) Flush() error {
	if err := s.Handle.Get().Flush(); err != nil {
		return fmt.Errorf("audio: stream: %w", err)
	}
	return nil
}

// Clear all data from the stream, converted or not.
func (s StreamOf[H]) Clear() {
	s.Handle.Get().Clear()
}
