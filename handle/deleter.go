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

import "fmt"

// Deleter is the destruction policy for one kind of resource. Implementations
// should be empty struct types; the zero value is the only value ever used.
//
// Delete() is called exactly once for every raw handle claimed by an Owned
// instance and is never called with the zero value. It must not fail in a way
// that the caller is expected to handle. If the native destroy function can
// return an error then the Deleter should log it.
//
// For example, the deleter for an SDL texture:
//
//	type TextureDeleter struct{}
//
//	func (TextureDeleter) Delete(t *sdl.Texture) {
//		if err := t.Destroy(); err != nil {
//			logger.Logf(logger.Allow, "video", "texture: %v", err)
//		}
//	}
type Deleter[P comparable] interface {
	Delete(P)
}

// deleteRaw destroys the raw handle using the deleter D. the deleter type is
// fixed at compile time by the instantiation of the caller.
func deleteRaw[P comparable, D Deleter[P]](raw P) {
	var d D
	d.Delete(raw)
}

// kindName is the name of the resource kind as reported in Events. the name
// of the deleter type is used because there is exactly one per kind.
func kindName[P comparable, D Deleter[P]]() string {
	var d D
	return fmt.Sprintf("%T", d)
}
