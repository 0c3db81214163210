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
	"fmt"

	"github.com/jetsetilly/sdlwrap/handle"
	"github.com/veandco/go-sdl2/sdl"
)

// CursorDeleter frees SDL cursors.
type CursorDeleter struct{}

// Delete implements the handle.Deleter interface.
func (CursorDeleter) Delete(c *sdl.Cursor) {
	sdl.FreeCursor(c)
}

// CursorOf is the method set for SDL cursors.
type CursorOf[H handle.Getter[*sdl.Cursor]] struct {
	Handle H
}

// Cursor owns an SDL cursor.
type Cursor = CursorOf[*handle.Owned[*sdl.Cursor, CursorDeleter]]

// CursorRef refers to an SDL cursor owned elsewhere.
type CursorRef = CursorOf[handle.Ref[*sdl.Cursor]]

// CreateSystemCursor creates one of the cursors provided by the system.
func CreateSystemCursor(id sdl.SystemCursor) (Cursor, error) {
	c := sdl.CreateSystemCursor(id)
	if c == nil {
		return Cursor{Handle: new(handle.Owned[*sdl.Cursor, CursorDeleter])}, fmt.Errorf("video: cursor: %w", sdl.GetError())
	}
	return Cursor{Handle: handle.New[CursorDeleter](c)}, nil
}

// ActiveCursor returns a reference to the cursor currently in use.
func ActiveCursor() CursorRef {
	return CursorRef{Handle: handle.Borrow(sdl.GetCursor())}
}

// Get implements the handle.Getter interface.
func (c CursorOf[H]) Get() *sdl.Cursor {
	return c.Handle.Get()
}

// Ref returns a reference to the cursor.
func (c CursorOf[H]) Ref() CursorRef {
	return CursorRef{Handle: handle.Borrow(c.Handle.Get())}
}

// Activate makes this the cursor in use. The cursor must not be destroyed
// while it is in use.
func (c CursorOf[H]) Activate() {
	sdl.SetCursor(c.Handle.Get())
}
