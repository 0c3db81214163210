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

package input

import (
	"fmt"

	"github.com/jetsetilly/sdlwrap/handle"
	"github.com/veandco/go-sdl2/sdl"
)

// HapticDeleter closes SDL haptic devices.
type HapticDeleter struct{}

// Delete implements the handle.Deleter interface.
func (HapticDeleter) Delete(h *sdl.Haptic) {
	h.Close()
}

// HapticOf is the method set for SDL haptic devices.
type HapticOf[H handle.Getter[*sdl.Haptic]] struct {
	Handle H
}

// Haptic owns an SDL haptic device.
type Haptic = HapticOf[*handle.Owned[*sdl.Haptic, HapticDeleter]]

// HapticRef refers to an SDL haptic device owned elsewhere.
type HapticRef = HapticOf[handle.Ref[*sdl.Haptic]]

// OpenHaptic opens the haptic device at the device index given.
func OpenHaptic(index int) (Haptic, error) {
	h, err := sdl.HapticOpen(index)
	if err != nil {
		return Haptic{Handle: new(handle.Owned[*sdl.Haptic, HapticDeleter])}, fmt.Errorf("input: haptic: %w", err)
	}
	return Haptic{Handle: handle.New[HapticDeleter](h)}, nil
}

// OpenHapticFromJoystick opens the haptic device of a joystick. The joystick
// must not be closed before the haptic device.
func OpenHapticFromJoystick(joy handle.Getter[*sdl.Joystick]) (Haptic, error) {
	h, err := sdl.HapticOpenFromJoystick(joy.Get())
	if err != nil {
		return Haptic{Handle: new(handle.Owned[*sdl.Haptic, HapticDeleter])}, fmt.Errorf("input: haptic: %w", err)
	}
	return Haptic{Handle: handle.New[HapticDeleter](h)}, nil
}

// Get implements the handle.Getter interface.
func (h HapticOf[H]) Get() *sdl.Haptic {
	return h.Handle.Get()
}

// Ref returns a reference to the haptic device.
func (h HapticOf[H]) Ref() HapticRef {
	return HapticRef{Handle: handle.Borrow(h.Handle.Get())}
}

// Rumble plays a rumble effect. Strength is between 0.0 and 1.0 and length is
// in milliseconds. The rumble effect is initialised on first use.
func (h HapticOf[H]) Rumble(strength float32, length uint32) error {
	raw := h.Handle.Get()

	ok, err := raw.RumbleSupported()
	if err != nil {
		return fmt.Errorf("input: haptic: %w", err)
	}
	if !ok {
		return fmt.Errorf("input: haptic: rumble not supported")
	}

	if err := raw.RumbleInit(); err != nil {
		return fmt.Errorf("input: haptic: %w", err)
	}
	if err := raw.RumblePlay(strength, length); err != nil {
		return fmt.Errorf("input: haptic: %w", err)
	}
	return nil
}

// StopRumble stops a rumble effect started with Rumble().
func (h HapticOf[H]) StopRumble() error {
	if err := h.Handle.Get().RumbleStop(); err != nil {
		return fmt.Errorf("input: haptic: %w", err)
	}
	return nil
}
