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

package video

import (
	"github.com/jetsetilly/sdlwrap/handle"
	"github.com/veandco/go-sdl2/sdl"
)

// GLContextDeleter deletes OpenGL contexts created by SDL.
type GLContextDeleter struct{}

// Delete implements the handle.Deleter interface.
func (GLContextDeleter) Delete(ctx sdl.GLContext) {
	sdl.GLDeleteContext(ctx)
}

// GLContextOf is the method set for OpenGL contexts.
type GLContextOf[H handle.Getter[sdl.GLContext]] struct {
	Handle H
}

// GLContext owns an OpenGL context. Create with Window.GLCreateContext().
type GLContext = GLContextOf[*handle.Owned[sdl.GLContext, GLContextDeleter]]

// GLContextRef refers to an OpenGL context owned elsewhere.
type GLContextRef = GLContextOf[handle.Ref[sdl.GLContext]]

// Get implements the handle.Getter interface.
func (c GLContextOf[H]) Get() sdl.GLContext {
	return c.Handle.Get()
}

// Ref returns a reference to the OpenGL context.
func (c GLContextOf[H]) Ref() GLContextRef {
	return GLContextRef{Handle: handle.Borrow(c.Handle.Get())}
}
