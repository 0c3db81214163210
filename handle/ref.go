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

// Ref is a reference handle. It observes a raw handle but never destroys it.
// A Ref must not be used after the resource it observes has been destroyed.
//
// Ref values can be copied freely. The zero value is an empty reference.
type Ref[P comparable] struct {
	raw P
}

// Borrow creates a reference to a raw handle. No ownership obligation is
// created.
func Borrow[P comparable](raw P) Ref[P] {
	return Ref[P]{raw: raw}
}

// Absorb creates a reference from any handle that can give up ownership. The
// source handle is emptied exactly as if Release() had been called on it.
//
// After absorption nothing owns the resource. The caller must make sure
// something else destroys it, usually by passing the reference on to a
// function that takes ownership back, or to a guard type that releases it.
//
// The raw type must be given explicitly, the source type is inferred:
//
//	ref := handle.Absorb[*sdl.Surface](owned)
func Absorb[P comparable, R Releaser[P]](src R) Ref[P] {
	return Ref[P]{raw: src.Release()}
}

// Get returns the raw handle.
func (r Ref[P]) Get() P {
	return r.raw
}

// Valid returns true if the reference refers to a raw handle.
func (r Ref[P]) Valid() bool {
	return !isNull(r.raw)
}

// Equal returns true if both references refer to the same raw handle.
func (r Ref[P]) Equal(other Ref[P]) bool {
	return r.raw == other.raw
}

// Swap exchanges raw handles with another reference.
func (r *Ref[P]) Swap(other *Ref[P]) {
	r.raw, other.raw = other.raw, r.raw
}
