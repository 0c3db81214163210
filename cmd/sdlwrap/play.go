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

package main

import (
	"fmt"
	"time"

	"github.com/jetsetilly/sdlwrap/audio"
	"github.com/jetsetilly/sdlwrap/modalflag"
	"github.com/veandco/go-sdl2/sdl"
)

func playMode(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	record := md.AddString("record", "", "also write the decoded audio to a WAV file")
	mute := md.AddBool("mute", false, "do not open an audio device")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("a WAV or MP3 file is required")
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	pcm, err := audio.LoadPCMFile(md.GetArg(0))
	if err != nil {
		return err
	}
	fmt.Printf("%s: %dHz, %d channels, %s\n", md.GetArg(0), pcm.SampleRate, pcm.Channels, pcm.Duration().Round(time.Millisecond))

	if *record != "" {
		rec, err := audio.CreateRecording(*record, pcm.SampleRate, pcm.Channels)
		if err != nil {
			return err
		}
		defer rec.Handle.Destroy()

		if err := rec.WritePCM(pcm); err != nil {
			return err
		}
	}

	if *mute {
		return nil
	}

	sync.do(func() {
		err = runPlay(pcm)
	})

	return err
}

func runPlay(pcm *audio.PCM) error {
	if err := sdl.Init(sdl.INIT_AUDIO); err != nil {
		return fmt.Errorf("play: %w", err)
	}
	defer sdl.Quit()

	spec := audio.DefaultSpec
	spec.Freq = int32(pcm.SampleRate)
	spec.Channels = uint8(pcm.Channels)

	dev, err := audio.OpenDevice(spec)
	if err != nil {
		return fmt.Errorf("play: %w", err)
	}
	defer dev.Handle.Destroy()

	if err := dev.QueuePCM(pcm); err != nil {
		return fmt.Errorf("play: %w", err)
	}
	dev.Pause(false)

	// wait for the queue to drain. the queue will never drain if the device
	// is stopped for some reason so there is a time limit
	limit := time.Now().Add(pcm.Duration() + time.Second)
	for dev.QueuedSize() > 0 && time.Now().Before(limit) {
		sdl.Delay(50)
	}

	return nil
}
