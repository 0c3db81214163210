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

// Package glres wraps OpenGL object names in the handle types of the handle
// package. Object names are given distinct types so that, for example, a
// texture name can not be used where a shader name is expected.
//
// Textures and buffers are generated in blocks, as they are by the OpenGL
// API, and are held by a single owning handle for the whole block:
//
//	tex := glres.GenTextures(2)
//	defer tex.Handle.Destroy()
//	tex.Bind(0, gl.TEXTURE_2D)
//
// Individual names in a block are accessed by index. A reference to a block
// supports indexed access in the same way.
//
// All functions in this package require a current OpenGL context and must be
// called from the thread the context is current on.
package glres
