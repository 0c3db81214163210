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

package video

import (
	"fmt"

	"github.com/jetsetilly/sdlwrap/handle"
	"github.com/veandco/go-sdl2/sdl"
)

// SurfaceDeleter frees SDL surfaces.
type SurfaceDeleter struct{}

// Delete implements the handle.Deleter interface.
func (SurfaceDeleter) Delete(s *sdl.Surface) {
	s.Free()
}

// SurfaceOf is the method set for SDL surfaces.
type SurfaceOf[H handle.Getter[*sdl.Surface]] struct {
	Handle H
}

// Surface owns an SDL surface.
type Surface = SurfaceOf[*handle.Owned[*sdl.Surface, SurfaceDeleter]]

// SurfaceRef refers to an SDL surface owned elsewhere.
type SurfaceRef = SurfaceOf[handle.Ref[*sdl.Surface]]

// CreateSurface creates a 32bit RGBA surface.
func CreateSurface(width, height int32) (Surface, error) {
	s, err := sdl.CreateRGBSurface(0, width, height, 32, 0x000000ff, 0x0000ff00, 0x00ff0000, 0xff000000)
	if err != nil {
		return Surface{Handle: new(handle.Owned[*sdl.Surface, SurfaceDeleter])}, fmt.Errorf("video: surface: %w", err)
	}
	return Surface{Handle: handle.New[SurfaceDeleter](s)}, nil
}

// LoadBMP creates a surface from a BMP file.
func LoadBMP(filename string) (Surface, error) {
	s, err := sdl.LoadBMP(filename)
	if err != nil {
		return Surface{Handle: new(handle.Owned[*sdl.Surface, SurfaceDeleter])}, fmt.Errorf("video: surface: %w", err)
	}
	return Surface{Handle: handle.New[SurfaceDeleter](s)}, nil
}

// Get implements the handle.Getter interface.
func (s SurfaceOf[H]) Get() *sdl.Surface {
	return s.Handle.Get()
}

// Ref returns a reference to the surface.
func (s SurfaceOf[H]) Ref() SurfaceRef {
	return SurfaceRef{Handle: handle.Borrow(s.Handle.Get())}
}

// Size returns the dimensions of the surface in pixels. An empty handle has
// a size of zero.
func (s SurfaceOf[H]) Size() (int32, int32) {
	raw := s.Handle.Get()
	if raw == nil {
		return 0, 0
	}
	return raw.W, raw.H
}

// MapRGBA returns the pixel value for the color in the surface's pixel
// format. Returns zero for an empty handle.
func (s SurfaceOf[H]) MapRGBA(r, g, b, a uint8) uint32 {
	raw := s.Handle.Get()
	if raw == nil {
		return 0
	}
	return sdl.MapRGBA(raw.Format, r, g, b, a)
}

// FillRect fills the rectangle with the pixel value. A nil rectangle fills
// the entire surface.
func (s SurfaceOf[H]) FillRect(rect *sdl.Rect, color uint32) error {
	if err := s.Handle.Get().FillRect(rect, color); err != nil {
		return fmt.Errorf("video: surface: %w", err)
	}
	return nil
}

// Lock the surface for direct access to the pixels. The lock must be released
// with SurfaceLock.Unlock() before the surface is used by any other SDL
// function.
//
//	lock, err := surface.Lock()
//	if err != nil {
//		return err
//	}
//	defer lock.Unlock()
func (s SurfaceOf[H]) Lock() (*SurfaceLock, error) {
	raw := s.Handle.Get()
	if raw == nil {
		return nil, fmt.Errorf("video: surface: lock: empty handle")
	}
	if err := raw.Lock(); err != nil {
		return nil, fmt.Errorf("video: surface: %w", err)
	}
	return &SurfaceLock{surface: handle.Borrow(raw)}, nil
}

// SurfaceLock is a locked surface. It is returned by the Lock() function.
type SurfaceLock struct {
	surface handle.Ref[*sdl.Surface]
}

// Pixels returns the pixel data of the locked surface. The slice must not be
// used after Unlock() has been called.
func (l *SurfaceLock) Pixels() []byte {
	if !l.surface.Valid() {
		return nil
	}
	return l.surface.Get().Pixels()
}

// Pitch returns the length of a row of pixels in bytes.
func (l *SurfaceLock) Pitch() int32 {
	if !l.surface.Valid() {
		return 0
	}
	return l.surface.Get().Pitch
}

// Unlock the surface. It is safe to call Unlock() more than once.
func (l *SurfaceLock) Unlock() {
	if !l.surface.Valid() {
		return
	}
	l.surface.Get().Unlock()
	l.surface = handle.Ref[*sdl.Surface]{}
}

// SurfaceGuard takes over a surface from its owning handle. The surface can be
// passed around by reference for as long as the guard exists and is freed when
// the guard is closed.
//
// Useful for surfaces that only exist to be converted into something else:
//
//	g := video.Guard(surface)
//	defer g.Close()
//	tex, err := renderer.CreateTextureFromSurface(g.Ref())
type SurfaceGuard struct {
	ref handle.Ref[*sdl.Surface]
}

// Guard absorbs the owning handle of the surface into a new SurfaceGuard. The
// owning handle is left empty.
func Guard(s Surface) *SurfaceGuard {
	return &SurfaceGuard{ref: handle.Absorb[*sdl.Surface](s.Handle)}
}

// Ref returns a reference to the guarded surface.
func (g *SurfaceGuard) Ref() SurfaceRef {
	return SurfaceRef{Handle: g.ref}
}

// Close frees the guarded surface. It is safe to call Close() more than once.
func (g *SurfaceGuard) Close() error {
	if !g.ref.Valid() {
		return nil
	}
	SurfaceDeleter{}.Delete(g.ref.Get())
	g.ref = handle.Ref[*sdl.Surface]{}
	return nil
}
