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

// TexturesDeleter deletes blocks of OpenGL textures.
type TexturesDeleter struct{}

// Delete implements the handle.Deleter interface.
func (TexturesDeleter) Delete(b handle.Block[TextureName]) {
	gl.DeleteTextures(int32(b.Len()), (*uint32)(b.Base()))
}

// TexturesOf is the method set for blocks of OpenGL textures.
type TexturesOf[H handle.Getter[handle.Block[TextureName]]] struct {
	Handle H
}

// Textures owns a block of OpenGL textures.
type Textures = TexturesOf[*handle.Owned[handle.Block[TextureName], TexturesDeleter]]

// TexturesRef refers to a block of OpenGL textures owned elsewhere.
type TexturesRef = TexturesOf[handle.Ref[handle.Block[TextureName]]]

// GenTextures generates a block of n texture names. A value of zero or less
// results in an empty handle.
func GenTextures(n int) Textures {
	if n <= 0 {
		return Textures{Handle: new(handle.Owned[handle.Block[TextureName], TexturesDeleter])}
	}
	names := make([]TextureName, n)
	gl.GenTextures(int32(n), (*uint32)(&names[0]))
	return Textures{Handle: handle.New[TexturesDeleter](handle.NewBlock(names))}
}

// Get implements the handle.Getter interface.
func (t TexturesOf[H]) Get() handle.Block[TextureName] {
	return t.Handle.Get()
}

// Ref returns a reference to the block of textures.
func (t TexturesOf[H]) Ref() TexturesRef {
	return TexturesRef{Handle: handle.Borrow(t.Handle.Get())}
}

// Len returns the number of textures in the block.
func (t TexturesOf[H]) Len() int {
	return t.Handle.Get().Len()
}

// At returns the name of the texture at index i.
func (t TexturesOf[H]) At(i int) TextureName {
	return t.Handle.Get().At(i)
}

// Bind the texture at index i to the target.
func (t TexturesOf[H]) Bind(i int, target uint32) {
	gl.BindTexture(target, uint32(t.At(i)))
}

// Allocate storage for the texture at index i. The texture is bound to the
// gl.TEXTURE_2D target, with linear filtering, and the storage is cleared.
func (t TexturesOf[H]) Allocate(i int, width int32, height int32) {
	t.Bind(i, gl.TEXTURE_2D)
	empty := make([]uint8, width*height*4)
	gl.TexImage2D(gl.TEXTURE_2D, 0,
		gl.RGBA, width, height, 0,
		gl.RGBA, gl.UNSIGNED_BYTE,
		gl.Ptr(empty))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
}
