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

// DeviceDeleter closes SDL audio devices.
type DeviceDeleter struct{}

// Delete implements the handle.Deleter interface.
func (DeviceDeleter) Delete(id sdl.AudioDeviceID) {
	sdl.CloseAudioDevice(id)
}

// DeviceOf is the method set for SDL audio devices.
type DeviceOf[H handle.Getter[sdl.AudioDeviceID]] struct {
	Handle H

	// the specification obtained when the device was opened. the zero value
	// for reference types unless copied from the owning type
	Spec sdl.AudioSpec
}

// Device owns an SDL audio device.
type Device = DeviceOf[*handle.Owned[sdl.AudioDeviceID, DeviceDeleter]]

// DeviceRef refers to an SDL audio device owned elsewhere.
type DeviceRef = DeviceOf[handle.Ref[sdl.AudioDeviceID]]

// Spec describes the audio format requested when opening a device.
type Spec struct {
	Freq     int32
	Format   sdl.AudioFormat
	Channels uint8
	Samples  uint16
}

// DefaultSpec is signed 16bit stereo at 44.1kHz.
var DefaultSpec = Spec{
	Freq:     44100,
	Format:   sdl.AUDIO_S16LSB,
	Channels: 2,
	Samples:  1024,
}

// OpenDevice opens the default playback device. The device uses the queueing
// interface, there is no callback. The device is paused when it is opened.
//
// The obtained audio specification will be exactly as requested. SDL will
// convert the data queued on the device if necessary.
func OpenDevice(spec Spec) (Device, error) {
	desired := &sdl.AudioSpec{
		Freq:     spec.Freq,
		Format:   spec.Format,
		Channels: spec.Channels,
		Samples:  spec.Samples,
	}

	var obtained sdl.AudioSpec

	id, err := sdl.OpenAudioDevice("", false, desired, &obtained, 0)
	if err != nil {
		return Device{Handle: new(handle.Owned[sdl.AudioDeviceID, DeviceDeleter])}, fmt.Errorf("audio: device: %w", err)
	}

	return Device{
		Handle: handle.New[DeviceDeleter](id),
		Spec:   obtained,
	}, nil
}

// Get implements the handle.Getter interface.
func (d DeviceOf[H]) Get() sdl.AudioDeviceID {
	return d.Handle.Get()
}

// Ref returns a reference to the device.
func (d DeviceOf[H]) Ref() DeviceRef {
	return DeviceRef{
		Handle: handle.Borrow(d.Handle.Get()),
		Spec:   d.Spec,
	}
}

// Pause or unpause audio playback.
func (d DeviceOf[H]) Pause(pause bool) {
	sdl.PauseAudioDevice(d.Handle.Get(), pause)
}

// Status returns the playback status of the device.
func (d DeviceOf[H]) Status() sdl.AudioStatus {
	return sdl.GetAudioDeviceStatus(d.Handle.Get())
}

// Queue PCM data for playback. The data must be in the format of the device
// specification.
func (d DeviceOf[H]) Queue(data []byte) error {
	if err := sdl.QueueAudio(d.Handle.Get(), data); err != nil {
		return fmt.Errorf("audio: device: %w", err)
	}
	return nil
}

// QueuePCM queues decoded PCM data for playback. The device must have been
// opened with signed 16bit little endian samples and the same number of
// channels as the PCM data.
func (d DeviceOf[H]) QueuePCM(pcm *PCM) error {
	if d.Spec.Format != 0 && d.Spec.Format != sdl.AUDIO_S16LSB {
		return fmt.Errorf("audio: device: not a signed 16bit device")
	}
	if d.Spec.Channels != 0 && int(d.Spec.Channels) != pcm.Channels {
		return fmt.Errorf("audio: device: device has %d channels, pcm data has %d", d.Spec.Channels, pcm.Channels)
	}
	return d.Queue(pcm.Bytes())
}

// QueuedSize returns the number of bytes still queued for playback.
func (d DeviceOf[H]) QueuedSize() uint32 {
	return sdl.GetQueuedAudioSize(d.Handle.Get())
}

// ClearQueue drops all queued data.
func (d DeviceOf[H]) ClearQueue() {
	sdl.ClearQueuedAudio(d.Handle.Get())
}
