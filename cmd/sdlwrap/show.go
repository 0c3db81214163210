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

	"github.com/jetsetilly/sdlwrap/modalflag"
	"github.com/jetsetilly/sdlwrap/video"
	"github.com/veandco/go-sdl2/sdl"
)

func showMode(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	frames := md.AddInt("frames", 120, "number of frames to show")
	software := md.AddBool("software", false, "use the software renderer")
	md.AdditionalHelp("Opens a window and draws a moving block with a texture created from a surface.")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	sync.do(func() {
		err = runShow(*frames, *software)
	})

	return err
}

func runShow(frames int, software bool) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("show: %w", err)
	}
	defer sdl.Quit()

	win, err := video.CreateWindow("sdlwrap", 320, 240, uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return fmt.Errorf("show: %w", err)
	}
	defer win.Handle.Destroy()

	flags := uint32(sdl.RENDERER_ACCELERATED) | uint32(sdl.RENDERER_PRESENTVSYNC)
	if software {
		flags = uint32(sdl.RENDERER_SOFTWARE)
	}
	renderer, err := video.CreateRenderer(win, -1, flags)
	if err != nil {
		return fmt.Errorf("show: %w", err)
	}
	defer renderer.Handle.Destroy()

	// the surface is only needed until the texture has been created
	surface, err := video.CreateSurface(32, 32)
	if err != nil {
		return fmt.Errorf("show: %w", err)
	}
	guard := video.Guard(surface)
	defer guard.Close()

	if err := guard.Ref().FillRect(nil, guard.Ref().MapRGBA(255, 200, 0, 255)); err != nil {
		return fmt.Errorf("show: %w", err)
	}
	tex, err := renderer.CreateTextureFromSurface(guard.Ref())
	if err != nil {
		return fmt.Errorf("show: %w", err)
	}
	defer tex.Handle.Destroy()
	guard.Close()

	if err := tex.SetBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		return fmt.Errorf("show: %w", err)
	}

	w, h, err := renderer.OutputSize()
	if err != nil {
		return fmt.Errorf("show: %w", err)
	}

	for i := 0; i < frames; i++ {
		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			switch ev := ev.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.WindowEvent:
				if ev.Event == sdl.WINDOWEVENT_CLOSE {
					return nil
				}
			}
		}

		_ = renderer.SetDrawColor(0, 0, 64, 255)
		_ = renderer.Clear()

		x := squareX(i, w)
		_ = renderer.Copy(tex, nil, &sdl.Rect{X: x, Y: h/2 - 16, W: 32, H: 32})
		renderer.Present()

		if software {
			sdl.Delay(16)
		}
	}

	if focus := video.KeyboardFocus(); focus.Handle.Valid() {
		fmt.Printf("keyboard focus: %s\n", focus.Title())
	}

	return nil
}

// squareX returns the horizontal position of the moving square for the frame.
// The square stays at the left edge if the output is too narrow for it to
// move.
func squareX(frame int, width int32) int32 {
	travel := width - 32
	if travel < 1 {
		return 0
	}
	return int32(frame*4) % travel
}
