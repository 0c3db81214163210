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

//go:build !statsview

package statsview_test

import (
	"testing"

	"github.com/jetsetilly/sdlwrap/statsview"
	"github.com/jetsetilly/sdlwrap/test"
)

func TestUnavailable(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectFailure(t, statsview.Available())
	statsview.Launch(tw)
	test.ExpectEquality(t, tw.String(), "")
}
