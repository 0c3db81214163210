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

// Package input wraps SDL joysticks, game controllers and haptic devices in
// the handle types of the handle package.
//
// A game controller is a joystick with a known mapping. The joystick belonging
// to a game controller is only available as a reference:
//
//	gc, err := input.OpenGameController(0)
//	if err != nil {
//		return err
//	}
//	defer gc.Handle.Destroy()
//
//	joy := gc.Joystick()
//	fmt.Println(joy.NumButtons())
//
// SDL must be initialised with the sdl.INIT_JOYSTICK, sdl.INIT_GAMECONTROLLER
// or sdl.INIT_HAPTIC flags as appropriate.
package input
