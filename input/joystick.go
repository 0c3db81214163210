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

// JoystickDeleter closes SDL joysticks.
type JoystickDeleter struct{}

// Delete implements the handle.Deleter interface.
func (JoystickDeleter) Delete(j *sdl.Joystick) {
	j.Close()
}

// JoystickOf is the method set for SDL joysticks.
type JoystickOf[H handle.Getter[*sdl.Joystick]] struct {
	Handle H
}

// Joystick owns an SDL joystick.
type Joystick = JoystickOf[*handle.Owned[*sdl.Joystick, JoystickDeleter]]

// JoystickRef refers to an SDL joystick owned elsewhere.
type JoystickRef = JoystickOf[handle.Ref[*sdl.Joystick]]

// NumJoysticks returns the number of joysticks attached to the system.
func NumJoysticks() int {
	return sdl.NumJoysticks()
}

// OpenJoystick opens the joystick at the device index given. The device index
// is not the same as the instance ID used in joystick events.
func OpenJoystick(index int) (Joystick, error) {
	j := sdl.JoystickOpen(index)
	if j == nil {
		return Joystick{Handle: new(handle.Owned[*sdl.Joystick, JoystickDeleter])}, fmt.Errorf("input: joystick: %w", sdl.GetError())
	}
	return Joystick{Handle: handle.New[JoystickDeleter](j)}, nil
}

// JoystickFromInstanceID returns a reference to the opened joystick with the
// instance ID given. The reference is empty if there is no such joystick.
func JoystickFromInstanceID(id sdl.JoystickID) JoystickRef {
	return JoystickRef{Handle: handle.Borrow(sdl.JoystickFromInstanceID(id))}
}

// Get implements the handle.Getter interface.
func (j JoystickOf[H]) Get() *sdl.Joystick {
	return j.Handle.Get()
}

// Ref returns a reference to the joystick.
func (j JoystickOf[H]) Ref() JoystickRef {
	return JoystickRef{Handle: handle.Borrow(j.Handle.Get())}
}

// Name of the joystick.
func (j JoystickOf[H]) Name() string {
	return j.Handle.Get().Name()
}

// InstanceID returns the ID used to identify the joystick in events.
func (j JoystickOf[H]) InstanceID() sdl.JoystickID {
	return j.Handle.Get().InstanceID()
}

// Attached returns true if the joystick is still attached.
func (j JoystickOf[H]) Attached() bool {
	return j.Handle.Get().Attached()
}

// NumAxes returns the number of axes on the joystick.
func (j JoystickOf[H]) NumAxes() int {
	return j.Handle.Get().NumAxes()
}

// NumButtons returns the number of buttons on the joystick.
func (j JoystickOf[H]) NumButtons() int {
	return j.Handle.Get().NumButtons()
}

// Axis returns the current position of an axis.
func (j JoystickOf[H]) Axis(axis int) int16 {
	return j.Handle.Get().Axis(axis)
}

// Button returns true if the button is pressed.
func (j JoystickOf[H]) Button(button int) bool {
	return j.Handle.Get().Button(button) != 0
}
