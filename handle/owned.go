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

// noCopy causes "go vet" to complain if an Owned is copied. copying an owning
// handle would give the raw handle two owners.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Owned is an owning handle. It has exclusive responsibility for destroying
// the raw handle it holds, which it does exactly once with the deleter D.
//
// The zero value is an empty handle. Owned should always be used through a
// pointer and should never be copied. Use Move() or MoveFrom() to transfer
// ownership between Owned instances.
type Owned[P comparable, D Deleter[P]] struct {
	_   noCopy
	raw P
}

// New is the preferred method of initialisation for the Owned type. The raw
// handle is claimed as is; no resource specific setup is performed.
//
// The deleter type must be given explicitly, the raw type is inferred:
//
//	tex := handle.New[TextureDeleter](raw)
func New[D Deleter[P], P comparable](raw P) *Owned[P, D] {
	o := &Owned[P, D]{raw: raw}
	if !isNull(raw) {
		notify[P, D](EventClaimed, raw)
	}
	watch(o)
	return o
}

// Get returns the raw handle. Ownership is not affected.
func (o *Owned[P, D]) Get() P {
	if o == nil {
		var zero P
		return zero
	}
	return o.raw
}

// Valid returns true if the handle is holding a raw handle.
func (o *Owned[P, D]) Valid() bool {
	return o != nil && !isNull(o.raw)
}

// Release returns the raw handle and leaves the Owned instance empty. The
// caller becomes responsible for destroying the raw handle.
func (o *Owned[P, D]) Release() P {
	raw := o.take()
	if !isNull(raw) {
		notify[P, D](EventReleased, raw)
	}
	return raw
}

// Reset destroys the current raw handle and takes ownership of the new one.
// The zero value can be used to simply destroy the current raw handle.
//
// Resetting to the raw handle already held does nothing.
func (o *Owned[P, D]) Reset(raw P) {
	if o.raw == raw {
		return
	}
	old := o.raw
	o.raw = raw
	if !isNull(raw) {
		notify[P, D](EventClaimed, raw)
	}
	destroyRaw[P, D](old)
}

// Destroy calls the deleter for the raw handle, if there is one, and leaves
// the Owned instance empty. It is safe to call Destroy() more than once and
// on a nil Owned.
//
// Destroy() is the destructor for the handle and should normally be deferred
// immediately after the handle is created.
func (o *Owned[P, D]) Destroy() {
	if o == nil {
		return
	}
	destroyRaw[P, D](o.take())
}

// Close implements the io.Closer interface. It is the same as Destroy() and
// always returns nil.
func (o *Owned[P, D]) Close() error {
	o.Destroy()
	return nil
}

// Move transfers ownership to a new Owned instance, leaving the original
// empty.
func (o *Owned[P, D]) Move() *Owned[P, D] {
	n := &Owned[P, D]{raw: o.take()}
	watch(n)
	return n
}

// MoveFrom transfers ownership from src. The raw handle previously held by
// the receiver is destroyed and src is left empty.
//
// Moving from the receiver itself does nothing.
func (o *Owned[P, D]) MoveFrom(src *Owned[P, D]) {
	// swap-then-destroy. if src is the receiver then tmp receives the raw
	// handle, it is swapped straight back and the destroy is on an empty
	// handle
	tmp := Owned[P, D]{raw: src.take()}
	o.Swap(&tmp)
	tmp.Destroy()
}

// Swap exchanges raw handles with another Owned instance. No deleter is
// called.
func (o *Owned[P, D]) Swap(other *Owned[P, D]) {
	o.raw, other.raw = other.raw, o.raw
}

// Borrow returns a reference to the raw handle. The Owned instance keeps
// ownership and the reference must not outlive it.
func (o *Owned[P, D]) Borrow() Ref[P] {
	return Ref[P]{raw: o.Get()}
}

// take empties the handle without any notification.
func (o *Owned[P, D]) take() P {
	var zero P
	if o == nil {
		return zero
	}
	raw := o.raw
	o.raw = zero
	return raw
}

func destroyRaw[P comparable, D Deleter[P]](raw P) {
	if isNull(raw) {
		return
	}
	deleteRaw[P, D](raw)
	notify[P, D](EventDestroyed, raw)
}
