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

package main

import (
	"testing"

	"github.com/jetsetilly/sdlwrap/test"
)

func TestSquareX(t *testing.T) {
	test.ExpectEquality(t, squareX(0, 640), int32(0))
	test.ExpectEquality(t, squareX(10, 640), int32(40))
	test.ExpectEquality(t, squareX(152, 640), int32(0))

	// outputs too narrow for the square to move
	test.ExpectEquality(t, squareX(10, 32), int32(0))
	test.ExpectEquality(t, squareX(10, 16), int32(0))
	test.ExpectEquality(t, squareX(10, 0), int32(0))
}
