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

package glres

import (
	"fmt"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/sdlwrap/logger"
)

// Init loads the OpenGL function pointers. Must be called after a context has
// been made current and before any other function in this package.
func Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("glres: %w", err)
	}
	logger.Logf(logger.Allow, "glres", "%s", gl.GoStr(gl.GetString(gl.VERSION)))
	return nil
}

// TextureName is an OpenGL texture object name.
type TextureName uint32

// BufferName is an OpenGL buffer object name.
type BufferName uint32

// FramebufferName is an OpenGL framebuffer object name.
type FramebufferName uint32

// VertexArrayName is an OpenGL vertex array object name.
type VertexArrayName uint32

// ShaderName is an OpenGL shader object name.
type ShaderName uint32

// ProgramName is an OpenGL program object name.
type ProgramName uint32
