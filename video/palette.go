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

// PaletteDeleter frees SDL palettes.
type PaletteDeleter struct{}

// Delete implements the handle.Deleter interface.
func (PaletteDeleter) Delete(p *sdl.Palette) {
	p.Free()
}

// PaletteOf is the method set for SDL palettes.
type PaletteOf[H handle.Getter[*sdl.Palette]] struct {
	Handle H
}

// Palette owns an SDL palette.
type Palette = PaletteOf[*handle.Owned[*sdl.Palette, PaletteDeleter]]

// PaletteRef refers to an SDL palette owned elsewhere.
type PaletteRef = PaletteOf[handle.Ref[*sdl.Palette]]

// AllocPalette creates a palette with the number of entries given. All
// entries are initially white.
func AllocPalette(entries int) (Palette, error) {
	p, err := sdl.AllocPalette(entries)
	if err != nil {
		return Palette{Handle: new(handle.Owned[*sdl.Palette, PaletteDeleter])}, fmt.Errorf("video: palette: %w", err)
	}
	return Palette{Handle: handle.New[PaletteDeleter](p)}, nil
}

// Get implements the handle.Getter interface.
func (p PaletteOf[H]) Get() *sdl.Palette {
	return p.Handle.Get()
}

// Ref returns a reference to the palette.
func (p PaletteOf[H]) Ref() PaletteRef {
	return PaletteRef{Handle: handle.Borrow(p.Handle.Get())}
}

// Len returns the number of entries in the palette. An empty handle has no
// entries.
func (p PaletteOf[H]) Len() int {
	raw := p.Handle.Get()
	if raw == nil {
		return 0
	}
	return int(raw.Ncolors)
}

// SetColors changes the palette entries, starting with the first entry.
func (p PaletteOf[H]) SetColors(colors []sdl.Color) error {
	if err := p.Handle.Get().SetColors(colors); err != nil {
		return fmt.Errorf("video: palette: %w", err)
	}
	return nil
}
