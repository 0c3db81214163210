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

package assert_test

import (
	"testing"

	"github.com/jetsetilly/sdlwrap/assert"
	"github.com/jetsetilly/sdlwrap/test"
)

func TestGoroutineID(t *testing.T) {
	id := assert.GoroutineID()
	test.ExpectInequality(t, id, 0)
	test.ExpectSuccess(t, assert.SameGoroutine(id))

	other := make(chan uint64)
	go func() {
		other <- assert.GoroutineID()
	}()
	oid := <-other
	test.ExpectInequality(t, oid, 0)
	test.ExpectInequality(t, oid, id)
	test.ExpectFailure(t, assert.SameGoroutine(oid))
}
