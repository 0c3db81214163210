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
	"github.com/jetsetilly/sdlwrap/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// TextureDeleter destroys SDL textures.
type TextureDeleter struct{}

// Delete implements the handle.Deleter interface.
func (TextureDeleter) Delete(t *sdl.Texture) {
	if err := t.Destroy(); err != nil {
		logger.Logf(logger.Allow, "video", "texture: %v", err)
	}
}

// TextureOf is the method set for SDL textures.
type TextureOf[H handle.Getter[*sdl.Texture]] struct {
	Handle H
}

// Texture owns an SDL texture.
type Texture = TextureOf[*handle.Owned[*sdl.Texture, TextureDeleter]]

// TextureRef refers to an SDL texture owned elsewhere.
type TextureRef = TextureOf[handle.Ref[*sdl.Texture]]

// Get implements the handle.Getter interface.
func (t TextureOf[H]) Get() *sdl.Texture {
	return t.Handle.Get()
}

// Ref returns a reference to the texture.
func (t TextureOf[H]) Ref() TextureRef {
	return TextureRef{Handle: handle.Borrow(t.Handle.Get())}
}

// TextureInfo is returned by the Query() function.
type TextureInfo struct {
	Format uint32
	Access int
	Width  int32
	Height int32
}

// Query the attributes of the texture.
func (t TextureOf[H]) Query() (TextureInfo, error) {
	format, access, width, height, err := t.Handle.Get().Query()
	if err != nil {
		return TextureInfo{}, fmt.Errorf("video: texture: %w", err)
	}
	return TextureInfo{
		Format: format,
		Access: access,
		Width:  width,
		Height: height,
	}, nil
}

// SetBlendMode sets the blend mode used when the texture is copied to a render
// target.
func (t TextureOf[H]) SetBlendMode(bm sdl.BlendMode) error {
	if err := t.Handle.Get().SetBlendMode(bm); err != nil {
		return fmt.Errorf("video: texture: %w", err)
	}
	return nil
}

// SetAlphaMod sets the alpha value multiplied into copy operations.
func (t TextureOf[H]) SetAlphaMod(alpha uint8) error {
	if err := t.Handle.Get().SetAlphaMod(alpha); err != nil {
		return fmt.Errorf("video: texture: %w", err)
	}
	return nil
}
