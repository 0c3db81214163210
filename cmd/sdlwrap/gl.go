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

package main

import (
	"fmt"
	"math"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/sdlwrap/dearimgui"
	"github.com/jetsetilly/sdlwrap/glres"
	"github.com/jetsetilly/sdlwrap/modalflag"
	"github.com/jetsetilly/sdlwrap/video"
	"github.com/veandco/go-sdl2/sdl"
)

const vertSource = `#version 150
in vec2 Position;
void main() {
	gl_Position = vec4(Position, 0, 1);
}
`

const fragSource = `#version 150
uniform vec4 Color;
out vec4 Out_Color;
void main() {
	Out_Color = Color;
}
`

func glMode(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	frames := md.AddInt("frames", 120, "number of frames to show")
	md.AdditionalHelp("Creates an OpenGL 3.2 context, a shader program and a framebuffer. A Dear ImGui frame is run each frame.")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	sync.do(func() {
		err = runGL(*frames)
	})

	return err
}

func runGL(frames int) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("gl: %w", err)
	}
	defer sdl.Quit()

	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 2)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	_ = sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)

	win, err := video.CreateWindow("sdlwrap gl", 320, 240, uint32(sdl.WINDOW_SHOWN)|uint32(sdl.WINDOW_OPENGL))
	if err != nil {
		return fmt.Errorf("gl: %w", err)
	}
	defer win.Handle.Destroy()

	ctx, err := win.GLCreateContext()
	if err != nil {
		return fmt.Errorf("gl: %w", err)
	}
	defer ctx.Handle.Destroy()

	if err := win.GLMakeCurrent(ctx); err != nil {
		return fmt.Errorf("gl: %w", err)
	}
	if err := glres.Init(); err != nil {
		return fmt.Errorf("gl: %w", err)
	}

	prog, err := glres.CompileProgram(vertSource, fragSource)
	if err != nil {
		return fmt.Errorf("gl: %w", err)
	}
	defer prog.Handle.Destroy()

	// offscreen target
	tex := glres.GenTextures(1)
	defer tex.Handle.Destroy()
	tex.Allocate(0, 64, 64)

	fb := glres.GenFramebuffer()
	defer fb.Handle.Destroy()
	fb.AttachTexture(tex.At(0))
	if !fb.Complete() {
		return fmt.Errorf("gl: framebuffer not complete")
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	// a single triangle
	vao := glres.GenVertexArray()
	defer vao.Handle.Destroy()
	vao.Bind()

	buf := glres.GenBuffers(1)
	defer buf.Handle.Destroy()
	buf.Data(0, gl.ARRAY_BUFFER, triangle(), gl.STATIC_DRAW)

	pos := prog.AttribLocation("Position")
	if pos < 0 {
		return fmt.Errorf("gl: no Position attribute in shader")
	}
	gl.EnableVertexAttribArray(uint32(pos))
	gl.VertexAttribPointerWithOffset(uint32(pos), 2, gl.FLOAT, false, 0, 0)
	color := prog.UniformLocation("Color")

	ui := dearimgui.CreateContext()
	defer ui.Handle.Destroy()

	for i := 0; i < frames; i++ {
		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			if _, ok := ev.(*sdl.QuitEvent); ok {
				return nil
			}
		}

		dd, err := ui.Frame(320, 240, func() {
			imgui.Text(fmt.Sprintf("frame %d", i))
		})
		if err != nil {
			return fmt.Errorf("gl: %w", err)
		}

		gl.ClearColor(0.0, 0.0, 0.25, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		prog.Use()
		gl.Uniform4f(color, 1.0, float32(i%60)/60.0, 0.0, 1.0)
		vao.Bind()
		gl.DrawArrays(gl.TRIANGLES, 0, 3)

		win.GLSwap()

		if i == 0 {
			fmt.Printf("imgui draw lists: %d\n", len(dd.CommandLists()))
		}
	}

	return nil
}

// triangle vertices as bytes for uploading to a buffer.
func triangle() []byte {
	v := []float32{-0.5, -0.5, 0.5, -0.5, 0.0, 0.5}
	b := make([]byte, 0, len(v)*4)
	for _, f := range v {
		u := math.Float32bits(f)
		b = append(b, byte(u), byte(u>>8), byte(u>>16), byte(u>>24))
	}
	return b
}
