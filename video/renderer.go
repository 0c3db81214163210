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

// RendererDeleter destroys SDL renderers.
type RendererDeleter struct{}

// Delete implements the handle.Deleter interface.
func (RendererDeleter) Delete(r *sdl.Renderer) {
	if err := r.Destroy(); err != nil {
		logger.Logf(logger.Allow, "video", "renderer: %v", err)
	}
}

// RendererOf is the method set for SDL renderers.
type RendererOf[H handle.Getter[*sdl.Renderer]] struct {
	Handle H
}

// Renderer owns an SDL renderer.
type Renderer = RendererOf[*handle.Owned[*sdl.Renderer, RendererDeleter]]

// RendererRef refers to an SDL renderer owned elsewhere.
type RendererRef = RendererOf[handle.Ref[*sdl.Renderer]]

// CreateRenderer creates a renderer for a window. An index of -1 selects the
// first driver that supports the flags.
//
// The renderer must be destroyed before the window.
func CreateRenderer(win handle.Getter[*sdl.Window], index int, flags uint32) (Renderer, error) {
	r, err := sdl.CreateRenderer(win.Get(), index, flags)
	if err != nil {
		return Renderer{Handle: new(handle.Owned[*sdl.Renderer, RendererDeleter])}, fmt.Errorf("video: renderer: %w", err)
	}
	return Renderer{Handle: handle.New[RendererDeleter](r)}, nil
}

// CreateSoftwareRenderer creates a renderer that draws to a surface.
//
// The renderer must be destroyed before the surface.
func CreateSoftwareRenderer(surface handle.Getter[*sdl.Surface]) (Renderer, error) {
	r, err := sdl.CreateSoftwareRenderer(surface.Get())
	if err != nil {
		return Renderer{Handle: new(handle.Owned[*sdl.Renderer, RendererDeleter])}, fmt.Errorf("video: renderer: %w", err)
	}
	return Renderer{Handle: handle.New[RendererDeleter](r)}, nil
}

// Get implements the handle.Getter interface.
func (r RendererOf[H]) Get() *sdl.Renderer {
	return r.Handle.Get()
}

// Ref returns a reference to the renderer.
func (r RendererOf[H]) Ref() RendererRef {
	return RendererRef{Handle: handle.Borrow(r.Handle.Get())}
}

// CreateTexture creates a texture for use with the renderer.
func (r RendererOf[H]) CreateTexture(format uint32, access int, width, height int32) (Texture, error) {
	t, err := r.Handle.Get().CreateTexture(format, access, width, height)
	if err != nil {
		return Texture{Handle: new(handle.Owned[*sdl.Texture, TextureDeleter])}, fmt.Errorf("video: texture: %w", err)
	}
	return Texture{Handle: handle.New[TextureDeleter](t)}, nil
}

// CreateTextureFromSurface creates a texture with a copy of the surface. The
// surface is not needed by the texture after this call.
func (r RendererOf[H]) CreateTextureFromSurface(surface handle.Getter[*sdl.Surface]) (Texture, error) {
	t, err := r.Handle.Get().CreateTextureFromSurface(surface.Get())
	if err != nil {
		return Texture{Handle: new(handle.Owned[*sdl.Texture, TextureDeleter])}, fmt.Errorf("video: texture: %w", err)
	}
	return Texture{Handle: handle.New[TextureDeleter](t)}, nil
}

// SetDrawColor sets the color used by Clear() and the drawing functions.
func (r RendererOf[H]) SetDrawColor(red, green, blue, alpha uint8) error {
	if err := r.Handle.Get().SetDrawColor(red, green, blue, alpha); err != nil {
		return fmt.Errorf("video: renderer: %w", err)
	}
	return nil
}

// Clear the render target with the current draw color.
func (r RendererOf[H]) Clear() error {
	if err := r.Handle.Get().Clear(); err != nil {
		return fmt.Errorf("video: renderer: %w", err)
	}
	return nil
}

// FillRect fills the rectangle with the current draw color. A nil rectangle
// fills the entire render target.
func (r RendererOf[H]) FillRect(rect *sdl.Rect) error {
	if err := r.Handle.Get().FillRect(rect); err != nil {
		return fmt.Errorf("video: renderer: %w", err)
	}
	return nil
}

// Copy all or part of a texture to the render target.
func (r RendererOf[H]) Copy(tex handle.Getter[*sdl.Texture], src *sdl.Rect, dst *sdl.Rect) error {
	if err := r.Handle.Get().Copy(tex.Get(), src, dst); err != nil {
		return fmt.Errorf("video: renderer: %w", err)
	}
	return nil
}

// Present the render target.
func (r RendererOf[H]) Present() {
	r.Handle.Get().Present()
}

// OutputSize returns the size of the render target.
func (r RendererOf[H]) OutputSize() (int32, int32, error) {
	w, h, err := r.Handle.Get().GetOutputSize()
	if err != nil {
		return 0, 0, fmt.Errorf("video: renderer: %w", err)
	}
	return w, h, nil
}
