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

package glres

import (
	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/sdlwrap/handle"
)

// FramebufferDeleter deletes OpenGL framebuffers.
type FramebufferDeleter struct{}

// Delete implements the handle.Deleter interface.
func (FramebufferDeleter) Delete(fbo FramebufferName) {
	n := uint32(fbo)
	gl.DeleteFramebuffers(1, &n)
}

// FramebufferOf is the method set for OpenGL framebuffers.
type FramebufferOf[H handle.Getter[FramebufferName]] struct {
	Handle H
}

// Framebuffer owns an OpenGL framebuffer.
type Framebuffer = FramebufferOf[*handle.Owned[FramebufferName, FramebufferDeleter]]

// FramebufferRef refers to an OpenGL framebuffer owned elsewhere.
type FramebufferRef = FramebufferOf[handle.Ref[FramebufferName]]

// GenFramebuffer generates a new framebuffer name.
func GenFramebuffer() Framebuffer {
	var n uint32
	gl.GenFramebuffers(1, &n)
	return Framebuffer{Handle: handle.New[FramebufferDeleter](FramebufferName(n))}
}

// Get implements the handle.Getter interface.
func (fb FramebufferOf[H]) Get() FramebufferName {
	return fb.Handle.Get()
}

// Ref returns a reference to the framebuffer.
func (fb FramebufferOf[H]) Ref() FramebufferRef {
	return FramebufferRef{Handle: handle.Borrow(fb.Handle.Get())}
}

// Bind the framebuffer to the gl.FRAMEBUFFER target.
func (fb FramebufferOf[H]) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(fb.Handle.Get()))
}

// AttachTexture binds the framebuffer and attaches the texture as the first
// color attachment.
func (fb FramebufferOf[H]) AttachTexture(tex TextureName) {
	fb.Bind()
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, uint32(tex), 0)
}

// Complete binds the framebuffer and returns true if it is complete.
func (fb FramebufferOf[H]) Complete() bool {
	fb.Bind()
	return gl.CheckFramebufferStatus(gl.FRAMEBUFFER) == gl.FRAMEBUFFER_COMPLETE
}

// VertexArrayDeleter deletes OpenGL vertex arrays.
type VertexArrayDeleter struct{}

// Delete implements the handle.Deleter interface.
func (VertexArrayDeleter) Delete(vao VertexArrayName) {
	n := uint32(vao)
	gl.DeleteVertexArrays(1, &n)
}

// VertexArrayOf is the method set for OpenGL vertex arrays.
type VertexArrayOf[H handle.Getter[VertexArrayName]] struct {
	Handle H
}

// VertexArray owns an OpenGL vertex array.
type VertexArray = VertexArrayOf[*handle.Owned[VertexArrayName, VertexArrayDeleter]]

// VertexArrayRef refers to an OpenGL vertex array owned elsewhere.
type VertexArrayRef = VertexArrayOf[handle.Ref[VertexArrayName]]

// GenVertexArray generates a new vertex array name.
func GenVertexArray() VertexArray {
	var n uint32
	gl.GenVertexArrays(1, &n)
	return VertexArray{Handle: handle.New[VertexArrayDeleter](VertexArrayName(n))}
}

// Get implements the handle.Getter interface.
func (va VertexArrayOf[H]) Get() VertexArrayName {
	return va.Handle.Get()
}

// Ref returns a reference to the vertex array.
func (va VertexArrayOf[H]) Ref() VertexArrayRef {
	return VertexArrayRef{Handle: handle.Borrow(va.Handle.Get())}
}

// Bind the vertex array.
func (va VertexArrayOf[H]) Bind() {
	gl.BindVertexArray(uint32(va.Handle.Get()))
}
