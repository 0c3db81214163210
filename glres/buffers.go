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

// BuffersDeleter deletes blocks of OpenGL buffers.
type BuffersDeleter struct{}

// Delete implements the handle.Deleter interface.
func (BuffersDeleter) Delete(b handle.Block[BufferName]) {
	gl.DeleteBuffers(int32(b.Len()), (*uint32)(b.Base()))
}

// BuffersOf is the method set for blocks of OpenGL buffers.
type BuffersOf[H handle.Getter[handle.Block[BufferName]]] struct {
	Handle H
}

// Buffers owns a block of OpenGL buffers.
type Buffers = BuffersOf[*handle.Owned[handle.Block[BufferName], BuffersDeleter]]

// BuffersRef refers to a block of OpenGL buffers owned elsewhere.
type BuffersRef = BuffersOf[handle.Ref[handle.Block[BufferName]]]

// GenBuffers generates a block of n buffer names. A value of zero or less
// results in an empty handle.
func GenBuffers(n int) Buffers {
	if n <= 0 {
		return Buffers{Handle: new(handle.Owned[handle.Block[BufferName], BuffersDeleter])}
	}
	names := make([]BufferName, n)
	gl.GenBuffers(int32(n), (*uint32)(&names[0]))
	return Buffers{Handle: handle.New[BuffersDeleter](handle.NewBlock(names))}
}

// Get implements the handle.Getter interface.
func (b BuffersOf[H]) Get() handle.Block[BufferName] {
	return b.Handle.Get()
}

// Ref returns a reference to the block of buffers.
func (b BuffersOf[H]) Ref() BuffersRef {
	return BuffersRef{Handle: handle.Borrow(b.Handle.Get())}
}

// Len returns the number of buffers in the block.
func (b BuffersOf[H]) Len() int {
	return b.Handle.Get().Len()
}

// At returns the name of the buffer at index i.
func (b BuffersOf[H]) At(i int) BufferName {
	return b.Handle.Get().At(i)
}

// Bind the buffer at index i to the target.
func (b BuffersOf[H]) Bind(i int, target uint32) {
	gl.BindBuffer(target, uint32(b.At(i)))
}

// Data binds the buffer at index i to the target and uploads the data.
func (b BuffersOf[H]) Data(i int, target uint32, data []byte, usage uint32) {
	b.Bind(i, target)
	if len(data) == 0 {
		gl.BufferData(target, 0, nil, usage)
		return
	}
	gl.BufferData(target, len(data), gl.Ptr(data), usage)
}
