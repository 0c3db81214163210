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

// Package dearimgui wraps Dear ImGui contexts in the handle types of the
// handle package.
package dearimgui

import (
	"fmt"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/sdlwrap/handle"
)

// current is the context most recently made current through this package.
// imgui.CurrentContext() allocates a new wrapper on every call so it can't be
// used for handle identity.
var current *imgui.Context

// ContextDeleter destroys Dear ImGui contexts.
type ContextDeleter struct{}

// Delete implements the handle.Deleter interface.
func (ContextDeleter) Delete(c *imgui.Context) {
	if c == current {
		current = nil
	}
	c.Destroy()
}

// ContextOf is the method set for Dear ImGui contexts.
type ContextOf[H handle.Getter[*imgui.Context]] struct {
	Handle H
}

// Context owns a Dear ImGui context.
type Context = ContextOf[*handle.Owned[*imgui.Context, ContextDeleter]]

// ContextRef refers to a Dear ImGui context owned elsewhere.
type ContextRef = ContextOf[handle.Ref[*imgui.Context]]

// CreateContext creates a new context with its own font atlas. The new
// context becomes the current context if there is no current context.
func CreateContext() Context {
	c := imgui.CreateContext(nil)
	if current == nil {
		current = c
	}
	return Context{Handle: handle.New[ContextDeleter](c)}
}

// CurrentContext returns a reference to the current context. The reference is
// empty if there is no current context.
func CurrentContext() ContextRef {
	return ContextRef{Handle: handle.Borrow(current)}
}

// Get implements the handle.Getter interface.
func (c ContextOf[H]) Get() *imgui.Context {
	return c.Handle.Get()
}

// Ref returns a reference to the context.
func (c ContextOf[H]) Ref() ContextRef {
	return ContextRef{Handle: handle.Borrow(c.Handle.Get())}
}

// MakeCurrent makes this the current context.
func (c ContextOf[H]) MakeCurrent() error {
	if err := c.Handle.Get().SetCurrent(); err != nil {
		return fmt.Errorf("dearimgui: %w", err)
	}
	current = c.Handle.Get()
	return nil
}

// Frame makes this the current context and runs a complete frame. The draw
// function is called between the start and end of the frame and should make
// the imgui calls for the frame. The draw data is returned for rendering.
//
// The font atlas of the context is built on the first frame if it hasn't
// already been built by a renderer.
func (c ContextOf[H]) Frame(width float32, height float32, draw func()) (imgui.DrawData, error) {
	if err := c.MakeCurrent(); err != nil {
		var none imgui.DrawData
		return none, err
	}

	io := imgui.CurrentIO()
	_ = io.Fonts().TextureDataAlpha8()
	io.SetDisplaySize(imgui.Vec2{X: width, Y: height})

	imgui.NewFrame()
	if draw != nil {
		draw()
	}
	imgui.Render()

	return imgui.RenderedDrawData(), nil
}
