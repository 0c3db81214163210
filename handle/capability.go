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

// Getter is implemented by every handle kind. Get() returns the raw handle
// without any effect on ownership.
type Getter[P comparable] interface {
	Get() P
}

// Releaser is implemented by handle kinds that can give up ownership of their
// raw handle. Release() returns the raw handle and leaves the handle empty.
//
// Ref implements Getter but not Releaser, so a reference can never be used
// where ownership is being transferred.
type Releaser[P comparable] interface {
	Getter[P]
	Release() P
}

// Same returns true if both handles refer to the same raw handle. The handle
// kinds do not need to match.
func Same[P comparable](a Getter[P], b Getter[P]) bool {
	return a.Get() == b.Get()
}

// isNull is true if raw is the zero value for its type.
func isNull[P comparable](raw P) bool {
	var zero P
	return raw == zero
}
