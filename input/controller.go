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

// GameControllerDeleter closes SDL game controllers.
type GameControllerDeleter struct{}

// Delete implements the handle.Deleter interface.
func (GameControllerDeleter) Delete(gc *sdl.GameController) {
	gc.Close()
}

// GameControllerOf is the method set for SDL game controllers.
type GameControllerOf[H handle.Getter[*sdl.GameController]] struct {
	Handle H
}

// GameController owns an SDL game controller.
type GameController = GameControllerOf[*handle.Owned[*sdl.GameController, GameControllerDeleter]]

// GameControllerRef refers to an SDL game controller owned elsewhere.
type GameControllerRef = GameControllerOf[handle.Ref[*sdl.GameController]]

// IsGameController returns true if the joystick at the device index has a
// game controller mapping.
func IsGameController(index int) bool {
	return sdl.IsGameController(index)
}

// OpenGameController opens the game controller at the device index given.
func OpenGameController(index int) (GameController, error) {
	if !sdl.IsGameController(index) {
		return GameController{Handle: new(handle.Owned[*sdl.GameController, GameControllerDeleter])}, fmt.Errorf("input: game controller: device %d is not a game controller", index)
	}
	gc := sdl.GameControllerOpen(index)
	if gc == nil {
		return GameController{Handle: new(handle.Owned[*sdl.GameController, GameControllerDeleter])}, fmt.Errorf("input: game controller: %w", sdl.GetError())
	}
	return GameController{Handle: handle.New[GameControllerDeleter](gc)}, nil
}

// Get implements the handle.Getter interface.
func (gc GameControllerOf[H]) Get() *sdl.GameController {
	return gc.Handle.Get()
}

// Ref returns a reference to the game controller.
func (gc GameControllerOf[H]) Ref() GameControllerRef {
	return GameControllerRef{Handle: handle.Borrow(gc.Handle.Get())}
}

// Joystick returns a reference to the joystick underlying the game
// controller. The joystick belongs to the game controller and the reference
// must not be used after the game controller has been destroyed.
func (gc GameControllerOf[H]) Joystick() JoystickRef {
	return JoystickRef{Handle: handle.Borrow(gc.Handle.Get().Joystick())}
}

// Name of the game controller.
func (gc GameControllerOf[H]) Name() string {
	return gc.Handle.Get().Name()
}

// Attached returns true if the game controller is still attached.
func (gc GameControllerOf[H]) Attached() bool {
	return gc.Handle.Get().Attached()
}

// Axis returns the current position of an axis.
func (gc GameControllerOf[H]) Axis(axis sdl.GameControllerAxis) int16 {
	return gc.Handle.Get().Axis(axis)
}

// Button returns true if the button is pressed.
func (gc GameControllerOf[H]) Button(button sdl.GameControllerButton) bool {
	return gc.Handle.Get().Button(button) != 0
}
