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
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/jetsetilly/sdlwrap/handle"
	"github.com/jetsetilly/sdlwrap/test"
)

type recorder struct {
	crit   sync.Mutex
	events []handle.Event
}

func (r *recorder) OnHandleEvent(e handle.Event) {
	r.crit.Lock()
	defer r.crit.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) types() []handle.EventType {
	r.crit.Lock()
	defer r.crit.Unlock()
	t := make([]handle.EventType, 0, len(r.events))
	for _, e := range r.events {
		t = append(t, e.Type)
	}
	return t
}

func (r *recorder) has(typ handle.EventType) bool {
	for _, t := range r.types() {
		if t == typ {
			return true
		}
	}
	return false
}

func TestObserverEvents(t *testing.T) {
	resetDeleted()

	rec := &recorder{}
	handle.SetObserver(rec)
	defer handle.SetObserver(nil)

	p1 := &thing{name: "A"}
	p2 := &thing{name: "B"}

	a := handle.New[thingDeleter](p1)
	a.Reset(p2)
	b := a.Move()
	_ = b.Release()
	a.Destroy()
	b.Destroy()

	types := rec.types()
	test.DemandEquality(t, len(types), 4)
	test.ExpectEquality(t, types[0], handle.EventClaimed)
	test.ExpectEquality(t, types[1], handle.EventClaimed)
	test.ExpectEquality(t, types[2], handle.EventDestroyed)
	test.ExpectEquality(t, types[3], handle.EventReleased)

	test.ExpectEquality(t, rec.events[0].Raw.(*thing), p1)
	test.ExpectEquality(t, rec.events[2].Raw.(*thing), p1)
	test.ExpectEquality(t, rec.events[3].Raw.(*thing), p2)
	test.ExpectEquality(t, rec.events[0].Kind, "handle_test.thingDeleter")
}

func TestObserverRemoved(t *testing.T) {
	rec := &recorder{}
	handle.SetObserver(rec)
	handle.SetObserver(nil)

	h := handle.New[thingDeleter](&thing{name: "A"})
	h.Destroy()
	test.ExpectEquality(t, len(rec.types()), 0)
}

func TestLeakReport(t *testing.T) {
	rec := &recorder{}
	handle.SetObserver(rec)
	defer handle.SetObserver(nil)

	func() {
		_ = handle.New[thingDeleter](&thing{name: "leaked"})
	}()

	for i := 0; i < 50; i++ {
		runtime.GC()
		if rec.has(handle.EventLeaked) {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	if !rec.has(handle.EventLeaked) {
		t.Skip("finalizer did not run")
	}
	test.ExpectEquality(t, handle.EventLeaked.String(), "leaked")
}

func TestEventTypeString(t *testing.T) {
	test.ExpectEquality(t, handle.EventClaimed.String(), "claimed")
	test.ExpectEquality(t, handle.EventDestroyed.String(), "destroyed")
	test.ExpectEquality(t, handle.EventReleased.String(), "released")
	test.ExpectEquality(t, handle.EventType(99).String(), "unknown")
}
