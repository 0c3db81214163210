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
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/jetsetilly/sdlwrap/audio"
	"github.com/jetsetilly/sdlwrap/test"
)

func TestRecordingRoundTrip(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "tone.wav")

	rec, err := audio.CreateRecording(filename, 8000, 2)
	test.DemandSuccess(t, err)

	// 1000 stereo frames of a simple ramp
	samples := make([]int16, 2000)
	for i := range samples {
		samples[i] = int16(i*16 - 16000)
	}
	test.DemandSuccess(t, rec.Write(samples[:1000]))
	test.DemandSuccess(t, rec.Ref().Write(samples[1000:]))
	test.ExpectEquality(t, rec.Frames(), 1000)
	test.ExpectEquality(t, rec.Filename(), filename)

	// the header is written when the recording is destroyed
	rec.Handle.Destroy()
	test.ExpectFailure(t, rec.Handle.Valid())

	pcm, err := audio.LoadPCMFile(filename)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, pcm.SampleRate, 8000)
	test.ExpectEquality(t, pcm.Channels, 2)
	test.DemandEquality(t, len(pcm.Data), len(samples))
	for i := range samples {
		if !test.ExpectEquality(t, pcm.Data[i], samples[i], i) {
			break
		}
	}
	test.ExpectEquality(t, pcm.Duration(), time.Second/8)
}

func TestRecordingPCMChannels(t *testing.T) {
	rec, err := audio.CreateRecording(filepath.Join(t.TempDir(), "mono.wav"), 8000, 1)
	test.DemandSuccess(t, err)
	defer rec.Handle.Destroy()

	stereo := &audio.PCM{SampleRate: 8000, Channels: 2, Data: []int16{1, 2, 3, 4}}
	test.ExpectFailure(t, rec.WritePCM(stereo))

	mono := &audio.PCM{SampleRate: 8000, Channels: 1, Data: []int16{1, 2, 3, 4}}
	test.ExpectSuccess(t, rec.WritePCM(mono))
	test.ExpectEquality(t, rec.Frames(), 4)
}

func TestRecordingFailure(t *testing.T) {
	rec, err := audio.CreateRecording(filepath.Join(t.TempDir(), "bad.wav"), 0, 2)
	test.ExpectFailure(t, err)
	test.ExpectFailure(t, rec.Handle.Valid())

	rec, err = audio.CreateRecording(filepath.Join(t.TempDir(), "missing", "bad.wav"), 8000, 2)
	test.ExpectFailure(t, err)
	test.ExpectFailure(t, rec.Handle.Valid())
	rec.Handle.Destroy()
}

func TestPCM(t *testing.T) {
	pcm := &audio.PCM{SampleRate: 4, Channels: 1, Data: []int16{1, -1, 256, 0}}
	test.ExpectEquality(t, pcm.Duration(), time.Second)
	test.ExpectSuccess(t, bytes.Equal(pcm.Bytes(), []byte{0x01, 0x00, 0xff, 0xff, 0x00, 0x01, 0x00, 0x00}))

	empty := &audio.PCM{}
	test.ExpectEquality(t, empty.Duration(), time.Duration(0))
}

func TestLoadPCMFailure(t *testing.T) {
	_, err := audio.LoadPCMFile("music.ogg")
	test.ExpectFailure(t, err)

	_, err = audio.LoadPCMFile(filepath.Join(t.TempDir(), "missing.wav"))
	test.ExpectFailure(t, err)

	_, err = audio.LoadPCM(bytes.NewReader([]byte("not a wav file at all")), audio.WAV)
	test.ExpectFailure(t, err)

	_, err = audio.LoadPCM(bytes.NewReader(nil), audio.Container(99))
	test.ExpectFailure(t, err)
}
