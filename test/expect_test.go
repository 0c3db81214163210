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

package test_test

import (
	"errors"
	"io"
	"testing"

	"github.com/jetsetilly/sdlwrap/test"
)

func TestExpectFailure(t *testing.T) {
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"))
}

func TestExpectSuccess(t *testing.T) {
	test.ExpectSuccess(t, true)
	var err error
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, nil)
}

func TestExpectEquality(t *testing.T) {
	test.ExpectEquality(t, 10, 5+5)
	test.ExpectEquality(t, true, !false)
	test.ExpectInequality(t, 11, 5+5)
	test.ExpectInequality(t, true, false)
}

func TestDemandImplements(t *testing.T) {
	test.DemandImplements(t, &test.CompareWriter{}, (*io.Writer)(nil))
}

func TestCompareWriter(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectSuccess(t, tw.Compare(""))

	_, _ = io.WriteString(tw, "hello ")
	_, _ = io.WriteString(tw, "world")
	test.ExpectSuccess(t, tw.Compare("hello world"))
	test.ExpectEquality(t, tw.String(), "hello world")
	test.ExpectSuccess(t, tw.HasPrefix("hello"))
	test.ExpectFailure(t, tw.HasPrefix("world"))
	test.ExpectSuccess(t, tw.Contains("o w"))
	test.ExpectFailure(t, tw.Contains("goodbye"))

	tw.Clear()
	test.ExpectSuccess(t, tw.Compare(""))
}
