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

package test

import (
	"strings"
	"sync"
)

// CompareWriter captures everything written to it so that it can be checked
// against expected output. It is safe to write to from more than one
// goroutine.
type CompareWriter struct {
	crit   sync.Mutex
	buffer strings.Builder
}

// Write implements the io.Writer interface.
func (tw *CompareWriter) Write(p []byte) (int, error) {
	tw.crit.Lock()
	defer tw.crit.Unlock()
	return tw.buffer.Write(p)
}

// Clear empties the buffer.
func (tw *CompareWriter) Clear() {
	tw.crit.Lock()
	defer tw.crit.Unlock()
	tw.buffer.Reset()
}

// Compare returns true if the captured output is exactly s.
func (tw *CompareWriter) Compare(s string) bool {
	return tw.String() == s
}

// HasPrefix returns true if the captured output starts with s.
func (tw *CompareWriter) HasPrefix(s string) bool {
	return strings.HasPrefix(tw.String(), s)
}

// Contains returns true if s appears anywhere in the captured output.
func (tw *CompareWriter) Contains(s string) bool {
	return strings.Contains(tw.String(), s)
}

func (tw *CompareWriter) String() string {
	tw.crit.Lock()
	defer tw.crit.Unlock()
	return tw.buffer.String()
}
