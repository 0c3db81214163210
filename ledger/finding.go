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

package ledger

import "fmt"

// FindingType identifies the kind of ownership problem found by the ledger.
type FindingType int

// List of valid FindingType values.
const (
	DoubleClaim FindingType = iota
	UnclaimedDestroy
	CrossGoroutine
	Leak
)

func (t FindingType) String() string {
	switch t {
	case DoubleClaim:
		return "double claim"
	case UnclaimedDestroy:
		return "destroy of unclaimed handle"
	case CrossGoroutine:
		return "destroyed by another goroutine"
	case Leak:
		return "leak"
	}
	return "unknown"
}

// Finding is a single ownership problem.
type Finding struct {
	Type  FindingType
	Entry Entry
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s %s", f.Type, f.Entry.Kind, f.Entry.Handle)
}
