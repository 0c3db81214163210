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
	"github.com/jetsetilly/sdlwrap/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// WindowDeleter destroys SDL windows.
type WindowDeleter struct{}

// Delete implements the handle.Deleter interface.
func (WindowDeleter) Delete(w *sdl.Window) {
	if err := w.Destroy(); err != nil {
		logger.Logf(logger.Allow, "video", "window: %v", err)
	}
}

// WindowOf is the method set for SDL windows.
type WindowOf[H handle.Getter[*sdl.Window]] struct {
	Handle H
}

// Window owns an SDL window.
type Window = WindowOf[*handle.Owned[*sdl.Window, WindowDeleter]]

// WindowRef refers to an SDL window owned elsewhere.
type WindowRef = WindowOf[handle.Ref[*sdl.Window]]

// CreateWindow creates a new window. The window is centered on the screen.
func CreateWindow(title string, width, height int32, flags uint32) (Window, error) {
	w, err := sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, width, height, flags)
	if err != nil {
		return Window{Handle: new(handle.Owned[*sdl.Window, WindowDeleter])}, fmt.Errorf("video: window: %w", err)
	}
	return Window{Handle: handle.New[WindowDeleter](w)}, nil
}

// WindowFromID returns a reference to the window with the ID given. The ID
// would normally come from an sdl.WindowEvent.
func WindowFromID(id uint32) (WindowRef, error) {
	w, err := sdl.GetWindowFromID(id)
	if err != nil {
		return WindowRef{}, fmt.Errorf("video: window: %w", err)
	}
	return WindowRef{Handle: handle.Borrow(w)}, nil
}

// MouseFocus returns a reference to the window with mouse focus. The reference
// is empty if no window has focus.
func MouseFocus() WindowRef {
	return WindowRef{Handle: handle.Borrow(sdl.GetMouseFocus())}
}

// KeyboardFocus returns a reference to the window with keyboard focus. The
// reference is empty if no window has focus.
func KeyboardFocus() WindowRef {
	return WindowRef{Handle: handle.Borrow(sdl.GetKeyboardFocus())}
}

// Get implements the handle.Getter interface.
func (w WindowOf[H]) Get() *sdl.Window {
	return w.Handle.Get()
}

// Ref returns a reference to the window.
func (w WindowOf[H]) Ref() WindowRef {
	return WindowRef{Handle: handle.Borrow(w.Handle.Get())}
}

// ID returns the SDL ID for the window.
func (w WindowOf[H]) ID() (uint32, error) {
	id, err := w.Handle.Get().GetID()
	if err != nil {
		return 0, fmt.Errorf("video: window: %w", err)
	}
	return id, nil
}

// Size returns the size of the window's client area.
func (w WindowOf[H]) Size() (int32, int32) {
	return w.Handle.Get().GetSize()
}

// SetSize changes the size of the window's client area.
func (w WindowOf[H]) SetSize(width, height int32) {
	w.Handle.Get().SetSize(width, height)
}

// Title returns the window title.
func (w WindowOf[H]) Title() string {
	return w.Handle.Get().GetTitle()
}

// SetTitle changes the window title.
func (w WindowOf[H]) SetTitle(title string) {
	w.Handle.Get().SetTitle(title)
}

// Show the window.
func (w WindowOf[H]) Show() {
	w.Handle.Get().Show()
}

// Hide the window.
func (w WindowOf[H]) Hide() {
	w.Handle.Get().Hide()
}

// Surface returns a reference to the surface associated with the window. The
// surface belongs to the window and is freed when the window is destroyed.
func (w WindowOf[H]) Surface() (SurfaceRef, error) {
	s, err := w.Handle.Get().GetSurface()
	if err != nil {
		return SurfaceRef{}, fmt.Errorf("video: window: %w", err)
	}
	return SurfaceRef{Handle: handle.Borrow(s)}, nil
}

// GLCreateContext creates an OpenGL context for use with the window. The
// window must have been created with the sdl.WINDOW_OPENGL flag.
func (w WindowOf[H]) GLCreateContext() (GLContext, error) {
	ctx, err := w.Handle.Get().GLCreateContext()
	if err != nil {
		return GLContext{Handle: new(handle.Owned[sdl.GLContext, GLContextDeleter])}, fmt.Errorf("video: gl context: %w", err)
	}
	return GLContext{Handle: handle.New[GLContextDeleter](ctx)}, nil
}

// GLMakeCurrent makes the OpenGL context current for the window.
func (w WindowOf[H]) GLMakeCurrent(ctx handle.Getter[sdl.GLContext]) error {
	if err := w.Handle.Get().GLMakeCurrent(ctx.Get()); err != nil {
		return fmt.Errorf("video: gl context: %w", err)
	}
	return nil
}

// GLSwap updates the window with the OpenGL rendering.
func (w WindowOf[H]) GLSwap() {
	w.Handle.Get().GLSwap()
}
