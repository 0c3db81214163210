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

// Package test contains helper functions to remove common boilerplate from
// tests.
//
// The Expect*() functions report a failed test but allow the test to
// continue. The Demand*() functions stop the test immediately and should be
// used when later parts of the test depend on the value being correct.
//
// Success and failure are interpreted according to the type of the value:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
//
// Any other type is a test failure because there is no way of knowing what
// success means for that type.
//
// The CompareWriter type implements io.Writer and should be used to capture
// output for comparison.
package test
