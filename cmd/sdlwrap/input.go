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

	"github.com/jetsetilly/sdlwrap/handle"
	"github.com/jetsetilly/sdlwrap/input"
	"github.com/jetsetilly/sdlwrap/modalflag"
	"github.com/veandco/go-sdl2/sdl"
)

func inputMode(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	rumble := md.AddBool("rumble", false, "rumble every device that supports it")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	sync.do(func() {
		err = runInput(*rumble)
	})

	return err
}

func runInput(rumble bool) error {
	if err := sdl.Init(sdl.INIT_JOYSTICK | sdl.INIT_GAMECONTROLLER); err != nil {
		return fmt.Errorf("input: %w", err)
	}
	defer sdl.Quit()

	// haptic support is optional
	haptics := sdl.InitSubSystem(sdl.INIT_HAPTIC) == nil

	n := input.NumJoysticks()
	fmt.Printf("%d joysticks\n", n)

	for i := 0; i < n; i++ {
		if input.IsGameController(i) {
			gc, err := input.OpenGameController(i)
			if err != nil {
				fmt.Printf("%d: %v\n", i, err)
				continue
			}
			j := gc.Joystick()
			fmt.Printf("%d: game controller: %s (%d axes, %d buttons)\n", i, gc.Name(), j.NumAxes(), j.NumButtons())
			if rumble && haptics {
				doRumble(j)
			}
			gc.Handle.Destroy()
			continue
		}

		joy, err := input.OpenJoystick(i)
		if err != nil {
			fmt.Printf("%d: %v\n", i, err)
			continue
		}
		fmt.Printf("%d: joystick: %s (%d axes, %d buttons)\n", i, joy.Name(), joy.NumAxes(), joy.NumButtons())
		if rumble && haptics {
			doRumble(joy)
		}
		joy.Handle.Destroy()
	}

	return nil
}

func doRumble(joy handle.Getter[*sdl.Joystick]) {
	h, err := input.OpenHapticFromJoystick(joy)
	if err != nil {
		fmt.Printf("  %v\n", err)
		return
	}
	defer h.Handle.Destroy()

	if err := h.Rumble(0.5, 500); err != nil {
		fmt.Printf("  %v\n", err)
		return
	}
	sdl.Delay(500)
	_ = h.StopRumble()
}
