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

package audio_test

import (
	"runtime"
	"testing"

	"github.com/jetsetilly/sdlwrap/audio"
	"github.com/jetsetilly/sdlwrap/handle"
	"github.com/jetsetilly/sdlwrap/test"
	"github.com/veandco/go-sdl2/sdl"
)

// setup initialises SDL audio with the dummy driver. the test is skipped if
// SDL is not available
func setup(t *testing.T) {
	t.Helper()

	runtime.LockOSThread()
	t.Setenv("SDL_AUDIODRIVER", "dummy")
	if err := sdl.Init(sdl.INIT_AUDIO); err != nil {
		runtime.UnlockOSThread()
		t.Skipf("SDL not available: %v", err)
	}

	t.Cleanup(func() {
		sdl.Quit()
		runtime.UnlockOSThread()
	})
}

func TestDevice(t *testing.T) {
	setup(t)

	dev, err := audio.OpenDevice(audio.DefaultSpec)
	test.DemandSuccess(t, err)
	defer dev.Handle.Destroy()

	test.ExpectEquality(t, dev.Spec.Channels, audio.DefaultSpec.Channels)
	test.ExpectEquality(t, dev.Status(), sdl.AUDIO_PAUSED)

	pcm := &audio.PCM{SampleRate: 44100, Channels: 2, Data: make([]int16, 1024)}
	test.ExpectSuccess(t, dev.QueuePCM(pcm))
	test.ExpectEquality(t, dev.QueuedSize(), uint32(2048))

	// the reference shares the device
	ref := dev.Ref()
	test.ExpectSuccess(t, handle.Same[sdl.AudioDeviceID](dev, ref))
	ref.ClearQueue()
	test.ExpectEquality(t, dev.QueuedSize(), uint32(0))

	mono := &audio.PCM{SampleRate: 44100, Channels: 1, Data: make([]int16, 16)}
	test.ExpectFailure(t, dev.QueuePCM(mono))
}

func TestStream(t *testing.T) {
	setup(t)

	dst := audio.DefaultSpec
	dst.Freq = 22050

	stream, err := audio.NewStream(audio.DefaultSpec, dst)
	test.DemandSuccess(t, err)
	defer stream.Handle.Destroy()

	pcm := &audio.PCM{SampleRate: 44100, Channels: 2, Data: make([]int16, 4096)}
	test.ExpectSuccess(t, stream.Put(pcm.Bytes()))
	test.ExpectSuccess(t, stream.Flush())

	// half the sample rate so roughly half the data
	n := stream.Available()
	test.ExpectSuccess(t, n > 0 && n <= len(pcm.Bytes())/2+64)

	buf := make([]byte, n)
	r, err := stream.Read(buf)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, n)

	stream.Clear()
	test.ExpectEquality(t, stream.Available(), 0)
}
