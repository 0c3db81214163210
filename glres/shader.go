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
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/sdlwrap/handle"
)

// ShaderDeleter deletes OpenGL shaders.
type ShaderDeleter struct{}

// Delete implements the handle.Deleter interface.
func (ShaderDeleter) Delete(sh ShaderName) {
	gl.DeleteShader(uint32(sh))
}

// ShaderOf is the method set for OpenGL shaders.
type ShaderOf[H handle.Getter[ShaderName]] struct {
	Handle H
}

// Shader owns an OpenGL shader.
type Shader = ShaderOf[*handle.Owned[ShaderName, ShaderDeleter]]

// ShaderRef refers to an OpenGL shader owned elsewhere.
type ShaderRef = ShaderOf[handle.Ref[ShaderName]]

// CompileShader creates and compiles a shader of the type given. For example,
// gl.VERTEX_SHADER or gl.FRAGMENT_SHADER. The error contains the shader info
// log if compilation fails.
func CompileShader(shaderType uint32, source string) (Shader, error) {
	sh := Shader{Handle: handle.New[ShaderDeleter](ShaderName(gl.CreateShader(shaderType)))}
	if !sh.Handle.Valid() {
		return sh, fmt.Errorf("glres: shader: could not create shader")
	}

	csource, free := gl.Strs(source + "\x00")
	defer free()
	gl.ShaderSource(uint32(sh.Get()), 1, csource, nil)
	gl.CompileShader(uint32(sh.Get()))

	if log := sh.compileError(); log != "" {
		sh.Handle.Destroy()
		return sh, fmt.Errorf("glres: shader: %s", log)
	}

	return sh, nil
}

// Get implements the handle.Getter interface.
func (sh ShaderOf[H]) Get() ShaderName {
	return sh.Handle.Get()
}

// Ref returns a reference to the shader.
func (sh ShaderOf[H]) Ref() ShaderRef {
	return ShaderRef{Handle: handle.Borrow(sh.Handle.Get())}
}

// compileError returns the most recent error generated by the shader
// compiler. empty string if there is no error.
func (sh ShaderOf[H]) compileError() string {
	n := uint32(sh.Handle.Get())

	var isCompiled int32
	gl.GetShaderiv(n, gl.COMPILE_STATUS, &isCompiled)
	if isCompiled != 0 {
		return ""
	}

	var logLength int32
	gl.GetShaderiv(n, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return "unknown compilation error"
	}

	// the log length includes the NULL character
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(n, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00\n")
}
