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

package handle

import "unsafe"

// Block is a raw handle for an array of native objects that are created and
// destroyed together. For example, OpenGL texture names generated by a
// single call to glGenTextures().
//
// Block is comparable and identity is the address of the first element. The
// zero value is the null Block.
type Block[E any] struct {
	base *E
	n    int
}

// NewBlock creates a Block from the elements of a slice. The slice should not
// be used directly once the Block has been created. An empty slice results in
// the null Block.
func NewBlock[E any](s []E) Block[E] {
	if len(s) == 0 {
		return Block[E]{}
	}
	return Block[E]{base: &s[0], n: len(s)}
}

// Len returns the number of elements in the block.
func (b Block[E]) Len() int {
	return b.n
}

// Base returns a pointer to the first element. Suitable for passing to
// native functions that take a count and a pointer.
func (b Block[E]) Base() *E {
	return b.base
}

// Slice returns the elements of the block as a slice. The slice shares
// memory with the block.
func (b Block[E]) Slice() []E {
	if b.base == nil {
		return nil
	}
	return unsafe.Slice(b.base, b.n)
}

// At returns the element at index i. Panics if i is out of range.
func (b Block[E]) At(i int) E {
	return b.Slice()[i]
}

// At returns the element at index i of the block observed by the reference.
// Indexed access is only possible for references to a Block. Trying to index
// any other kind of reference is a compile time error.
func At[E any](r Ref[Block[E]], i int) E {
	return r.Get().At(i)
}
