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

package input_test

import (
	"runtime"
	"testing"

	"github.com/jetsetilly/sdlwrap/input"
	"github.com/jetsetilly/sdlwrap/test"
	"github.com/veandco/go-sdl2/sdl"
)

// setup initialises SDL. the test is skipped if SDL is not available
func setup(t *testing.T, flags uint32) {
	t.Helper()

	runtime.LockOSThread()
	t.Setenv("SDL_VIDEODRIVER", "dummy")
	if err := sdl.Init(flags); err != nil {
		runtime.UnlockOSThread()
		t.Skipf("SDL not available: %v", err)
	}

	t.Cleanup(func() {
		sdl.Quit()
		runtime.UnlockOSThread()
	})
}

func TestJoysticks(t *testing.T) {
	setup(t, sdl.INIT_JOYSTICK|sdl.INIT_GAMECONTROLLER)

	n := input.NumJoysticks()

	// opening a device that doesn't exist results in an error and an empty
	// handle
	joy, err := input.OpenJoystick(n)
	test.ExpectFailure(t, err)
	test.ExpectFailure(t, joy.Handle.Valid())
	joy.Handle.Destroy()

	gc, err := input.OpenGameController(n)
	test.ExpectFailure(t, err)
	test.ExpectFailure(t, gc.Handle.Valid())
	gc.Handle.Destroy()

	ref := input.JoystickFromInstanceID(sdl.JoystickID(-1))
	test.ExpectFailure(t, ref.Handle.Valid())

	// any real devices attached to the test machine
	for i := 0; i < n; i++ {
		if input.IsGameController(i) {
			gc, err := input.OpenGameController(i)
			if test.ExpectSuccess(t, err) {
				j := gc.Joystick()
				test.ExpectSuccess(t, j.Handle.Valid())
				test.ExpectEquality(t, input.JoystickFromInstanceID(j.InstanceID()).Get(), j.Get())
				gc.Handle.Destroy()
			}
			continue
		}

		joy, err := input.OpenJoystick(i)
		if test.ExpectSuccess(t, err) {
			test.ExpectSuccess(t, joy.Attached())
			joy.Handle.Destroy()
		}
	}
}

func TestHaptic(t *testing.T) {
	setup(t, sdl.INIT_HAPTIC)

	h, err := input.OpenHaptic(1000)
	test.ExpectFailure(t, err)
	test.ExpectFailure(t, h.Handle.Valid())
	h.Handle.Destroy()
}
