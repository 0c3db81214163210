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

// Package handle is the ownership layer shared by every native resource
// wrapper in sdlwrap. It provides two handle kinds:
//
// The Owned type is an owning handle. It holds at most one raw handle and
// destroys it exactly once, using the Deleter named by its type parameter. The
// zero value is a valid, empty handle.
//
//	win := handle.New[video.WindowDeleter](raw)
//	defer win.Destroy()
//
// The Ref type is a reference handle. It observes a raw handle and never
// destroys anything. A Ref can be borrowed from a raw value, copied from
// another Ref, or made by absorbing an owning handle. Absorbing is equivalent
// to calling Release() on the owner: the resource is left with no owner at all
// and it is up to the caller to arrange for it to be destroyed.
//
//	ref := handle.Absorb[*sdl.Window](win)
//
// Raw handles are any comparable type where the zero value means "no
// resource". Pointers to native structures are the common case but SDL audio
// device IDs and OpenGL object names work equally well. Arrays of native
// objects (eg. a group of OpenGL texture names) are represented by the Block
// type, which is the only raw type that supports indexed access through the
// At() function.
//
// Deleters are selected entirely by type. Each resource kind declares one
// zero-size type implementing the Deleter interface and uses it to instantiate
// Owned. Adding a resource kind never requires a change to this package.
//
// Resources are never destroyed by the garbage collector. Destruction happens
// when Destroy() (or Close() or Reset()) is called, and at no other time. If
// an Observer has been installed with SetObserver() then owning handles that
// become unreachable without having been destroyed are reported as leaked.
// They are still not destroyed.
//
// Nothing in this package is safe for concurrent use. An owning handle must
// have a single logical owner at any one time.
package handle
