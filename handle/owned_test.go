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

package handle_test

import (
	"io"
	"testing"

	"github.com/jetsetilly/sdlwrap/handle"
	"github.com/jetsetilly/sdlwrap/test"
)

// thing stands in for a native resource. the deleter records every call so
// that tests can check how many times, and with what, it was called
type thing struct {
	name string
}

var deleted []*thing

type thingDeleter struct{}

func (thingDeleter) Delete(t *thing) {
	deleted = append(deleted, t)
}

type ownedThing = handle.Owned[*thing, thingDeleter]

func resetDeleted() {
	deleted = deleted[:0]
}

func TestReleaseReturnsRaw(t *testing.T) {
	resetDeleted()

	p := &thing{name: "A"}
	h := handle.New[thingDeleter](p)
	test.ExpectSuccess(t, h.Valid())

	p2 := h.Release()
	test.ExpectEquality(t, p2, p)
	test.ExpectFailure(t, h.Valid())

	// destructor for a released handle does nothing
	h.Destroy()
	test.ExpectEquality(t, len(deleted), 0)
}

func TestDestroyOnScopeExit(t *testing.T) {
	resetDeleted()

	p := &thing{name: "A"}
	h := handle.New[thingDeleter](p)
	func() {
		defer h.Destroy()
	}()

	test.DemandEquality(t, len(deleted), 1)
	test.ExpectEquality(t, deleted[0], p)

	// destroying a second time is safe and does not call the deleter
	h.Destroy()
	test.ExpectEquality(t, len(deleted), 1)
	test.ExpectFailure(t, h.Valid())
}

func TestEmptyHandle(t *testing.T) {
	resetDeleted()

	var h ownedThing
	test.ExpectFailure(t, h.Valid())
	test.ExpectEquality(t, h.Get(), (*thing)(nil))
	h.Destroy()

	var n *ownedThing
	test.ExpectFailure(t, n.Valid())
	test.ExpectEquality(t, n.Get(), (*thing)(nil))
	n.Destroy()

	e := handle.New[thingDeleter]((*thing)(nil))
	test.ExpectFailure(t, e.Valid())
	e.Destroy()

	test.ExpectEquality(t, len(deleted), 0)
}

func TestClose(t *testing.T) {
	resetDeleted()

	h := handle.New[thingDeleter](&thing{name: "A"})
	test.DemandImplements(t, h, (*io.Closer)(nil))
	test.ExpectSuccess(t, h.Close())
	test.ExpectEquality(t, len(deleted), 1)
	test.ExpectSuccess(t, h.Close())
	test.ExpectEquality(t, len(deleted), 1)
}

func TestMoveAssignment(t *testing.T) {
	resetDeleted()

	p1 := &thing{name: "A"}
	p2 := &thing{name: "B"}
	a := handle.New[thingDeleter](p1)
	b := handle.New[thingDeleter](p2)

	a.MoveFrom(b)
	test.DemandEquality(t, len(deleted), 1)
	test.ExpectEquality(t, deleted[0], p1)
	test.ExpectEquality(t, a.Get(), p2)
	test.ExpectFailure(t, b.Valid())

	a.Destroy()
	b.Destroy()
	test.DemandEquality(t, len(deleted), 2)
	test.ExpectEquality(t, deleted[1], p2)
}

func TestSelfMoveAssignment(t *testing.T) {
	resetDeleted()

	p := &thing{name: "A"}
	a := handle.New[thingDeleter](p)
	a.MoveFrom(a)
	test.ExpectEquality(t, a.Get(), p)
	test.ExpectEquality(t, len(deleted), 0)
}

func TestMoveAssignmentFromEmpty(t *testing.T) {
	resetDeleted()

	p := &thing{name: "A"}
	a := handle.New[thingDeleter](p)
	var b ownedThing

	// moving from an empty handle destroys what the receiver holds
	a.MoveFrom(&b)
	test.ExpectFailure(t, a.Valid())
	test.DemandEquality(t, len(deleted), 1)
	test.ExpectEquality(t, deleted[0], p)
}

func TestMove(t *testing.T) {
	resetDeleted()

	p := &thing{name: "A"}
	a := handle.New[thingDeleter](p)
	b := a.Move()
	test.ExpectFailure(t, a.Valid())
	test.ExpectEquality(t, b.Get(), p)

	a.Destroy()
	test.ExpectEquality(t, len(deleted), 0)
	b.Destroy()
	test.ExpectEquality(t, len(deleted), 1)
}

func TestReset(t *testing.T) {
	resetDeleted()

	p1 := &thing{name: "A"}
	p2 := &thing{name: "B"}
	h := handle.New[thingDeleter](p1)

	h.Reset(p2)
	test.DemandEquality(t, len(deleted), 1)
	test.ExpectEquality(t, deleted[0], p1)
	test.ExpectEquality(t, h.Get(), p2)

	// resetting to the same value must not destroy it
	h.Reset(p2)
	test.ExpectEquality(t, len(deleted), 1)
	test.ExpectEquality(t, h.Get(), p2)

	h.Reset(nil)
	test.DemandEquality(t, len(deleted), 2)
	test.ExpectEquality(t, deleted[1], p2)
	test.ExpectFailure(t, h.Valid())
}

func TestSwap(t *testing.T) {
	resetDeleted()

	p1 := &thing{name: "A"}
	p2 := &thing{name: "B"}
	a := handle.New[thingDeleter](p1)
	b := handle.New[thingDeleter](p2)

	a.Swap(b)
	test.ExpectEquality(t, a.Get(), p2)
	test.ExpectEquality(t, b.Get(), p1)
	test.ExpectEquality(t, len(deleted), 0)
}
