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

package handle

import (
	"runtime"
	"sync/atomic"
)

// EventType identifies a change in the ownership of a raw handle.
type EventType int

// List of valid EventType values.
const (
	// an owning handle has claimed a raw handle
	EventClaimed EventType = iota

	// the deleter has been called for a raw handle
	EventDestroyed

	// ownership of a raw handle has been given up with Release() or Absorb().
	// the raw handle is no longer owned by any handle in this package
	EventReleased

	// an owning handle became unreachable while still holding a raw handle.
	// the raw handle has not been destroyed
	EventLeaked
)

func (t EventType) String() string {
	switch t {
	case EventClaimed:
		return "claimed"
	case EventDestroyed:
		return "destroyed"
	case EventReleased:
		return "released"
	case EventLeaked:
		return "leaked"
	}
	return "unknown"
}

// Event describes a single change in ownership.
type Event struct {
	Type EventType

	// name of the resource kind. this is the name of the Deleter type
	Kind string

	// the raw handle. the dynamic type is the P type parameter of the
	// handle that generated the event
	Raw any
}

// Observer implementations receive every ownership Event. OnHandleEvent() is
// called synchronously by the goroutine using the handle.
type Observer interface {
	OnHandleEvent(Event)
}

type observerBox struct {
	o Observer
}

var observer atomic.Pointer[observerBox]

// SetObserver installs an observer for ownership events. A nil argument
// removes the current observer.
//
// Only handles created after the observer has been installed will report
// leaks.
func SetObserver(o Observer) {
	if o == nil {
		observer.Store(nil)
		return
	}
	observer.Store(&observerBox{o: o})
}

// notify sends an event to the observer if one is installed. the kind name is
// only calculated when there is someone to tell.
func notify[P comparable, D Deleter[P]](t EventType, raw P) {
	b := observer.Load()
	if b == nil {
		return
	}
	b.o.OnHandleEvent(Event{
		Type: t,
		Kind: kindName[P, D](),
		Raw:  raw,
	})
}

// watch arranges for a leak report if o becomes unreachable while still
// owning something. nothing is set up when there is no observer.
func watch[P comparable, D Deleter[P]](o *Owned[P, D]) {
	if observer.Load() == nil {
		return
	}
	runtime.SetFinalizer(o, func(o *Owned[P, D]) {
		if !isNull(o.raw) {
			notify[P, D](EventLeaked, o.raw)
		}
	})
}
