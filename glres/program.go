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

// ProgramDeleter deletes OpenGL programs.
type ProgramDeleter struct{}

// Delete implements the handle.Deleter interface.
func (ProgramDeleter) Delete(p ProgramName) {
	gl.DeleteProgram(uint32(p))
}

// ProgramOf is the method set for OpenGL programs.
type ProgramOf[H handle.Getter[ProgramName]] struct {
	Handle H
}

// Program owns an OpenGL program.
type Program = ProgramOf[*handle.Owned[ProgramName, ProgramDeleter]]

// ProgramRef refers to an OpenGL program owned elsewhere.
type ProgramRef = ProgramOf[handle.Ref[ProgramName]]

// CompileProgram compiles the vertex and fragment shaders and links them into
// a new program. The shaders are not needed once the program has been linked
// and are deleted before the function returns.
func CompileProgram(vertSource string, fragSource string) (Program, error) {
	empty := Program{Handle: new(handle.Owned[ProgramName, ProgramDeleter])}

	vert, err := CompileShader(gl.VERTEX_SHADER, vertSource)
	if err != nil {
		return empty, fmt.Errorf("glres: program: vertex %w", err)
	}
	defer vert.Handle.Destroy()

	frag, err := CompileShader(gl.FRAGMENT_SHADER, fragSource)
	if err != nil {
		return empty, fmt.Errorf("glres: program: fragment %w", err)
	}
	defer frag.Handle.Destroy()

	prog := Program{Handle: handle.New[ProgramDeleter](ProgramName(gl.CreateProgram()))}
	if !prog.Handle.Valid() {
		return empty, fmt.Errorf("glres: program: could not create program")
	}

	n := uint32(prog.Get())
	gl.AttachShader(n, uint32(vert.Get()))
	gl.AttachShader(n, uint32(frag.Get()))
	gl.LinkProgram(n)

	if log := prog.linkError(); log != "" {
		prog.Handle.Destroy()
		return empty, fmt.Errorf("glres: program: %s", log)
	}

	gl.DetachShader(n, uint32(vert.Get()))
	gl.DetachShader(n, uint32(frag.Get()))

	return prog, nil
}

// Get implements the handle.Getter interface.
func (p ProgramOf[H]) Get() ProgramName {
	return p.Handle.Get()
}

// Ref returns a reference to the program.
func (p ProgramOf[H]) Ref() ProgramRef {
	return ProgramRef{Handle: handle.Borrow(p.Handle.Get())}
}

// Use installs the program as part of the current rendering state.
func (p ProgramOf[H]) Use() {
	gl.UseProgram(uint32(p.Handle.Get()))
}

// UniformLocation returns the location of a uniform variable. Returns -1 if
// the name does not correspond to an active uniform variable.
func (p ProgramOf[H]) UniformLocation(name string) int32 {
	return gl.GetUniformLocation(uint32(p.Handle.Get()), gl.Str(name+"\x00"))
}

// AttribLocation returns the location of an attribute variable. Returns -1 if
// the name does not correspond to an active attribute variable.
func (p ProgramOf[H]) AttribLocation(name string) int32 {
	return gl.GetAttribLocation(uint32(p.Handle.Get()), gl.Str(name+"\x00"))
}

// linkError returns the error generated by the most recent link. empty string
// if there is no error.
func (p ProgramOf[H]) linkError() string {
	n := uint32(p.Handle.Get())

	var isLinked int32
	gl.GetProgramiv(n, gl.LINK_STATUS, &isLinked)
	if isLinked != 0 {
		return ""
	}

	var logLength int32
	gl.GetProgramiv(n, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return "unknown link error"
	}

	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(n, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00\n")
}
