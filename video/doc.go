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

// Package video wraps the SDL video resources in the handle types of the
// handle package.
//
// Every resource kind has a deleter type, a wrapper type parameterised by the
// handle it uses and a pair of aliases for the owning and reference versions
// of the wrapper. For windows:
//
//	type WindowOf[H handle.Getter[*sdl.Window]] struct{ Handle H }
//	type Window = WindowOf[*handle.Owned[*sdl.Window, WindowDeleter]]
//	type WindowRef = WindowOf[handle.Ref[*sdl.Window]]
//
// The methods of the wrapper are available to both aliases. Ownership
// operations are performed on the Handle field:
//
//	win, err := video.CreateWindow("sdlwrap", 640, 480, sdl.WINDOW_HIDDEN)
//	if err != nil {
//		return err
//	}
//	defer win.Handle.Destroy()
//
// Wrapper types also satisfy the handle.Getter interface so they can be used
// with handle.Same() and passed to functions that accept any kind of handle.
//
// SDL must be initialised by the caller. As with SDL itself, resources should
// be created and destroyed on the main thread.
package video
