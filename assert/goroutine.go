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

// Package assert contains checks that are useful during development. They
// are not intended for general error handling.
package assert

import (
	"bytes"
	"runtime"
	"strconv"
)

// GoroutineID returns the ID of the calling goroutine. It is slow and should
// only be used for diagnostics.
func GoroutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// SameGoroutine returns true if the calling goroutine has the ID given.
func SameGoroutine(id uint64) bool {
	return GoroutineID() == id
}
