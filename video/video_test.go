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

package video_test

import (
	"runtime"
	"testing"

	"github.com/jetsetilly/sdlwrap/handle"
	"github.com/jetsetilly/sdlwrap/ledger"
	"github.com/jetsetilly/sdlwrap/logger"
	"github.com/jetsetilly/sdlwrap/test"
	"github.com/jetsetilly/sdlwrap/video"
	"github.com/veandco/go-sdl2/sdl"
)

// setup initialises SDL with the dummy video driver and installs a ledger.
// the test is skipped if SDL is not available
func setup(t *testing.T) *ledger.Ledger {
	t.Helper()

	runtime.LockOSThread()
	t.Setenv("SDL_VIDEODRIVER", "dummy")
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		runtime.UnlockOSThread()
		t.Skipf("SDL not available: %v", err)
	}

	l := ledger.NewLedger(logger.Allow)
	l.Install()

	t.Cleanup(func() {
		l.Uninstall()
		test.ExpectEquality(t, l.Len(), 0, "live handles")
		test.ExpectEquality(t, len(l.Findings()), 0, "findings")
		sdl.Quit()
		runtime.UnlockOSThread()
	})

	return l
}

func TestSoftwareRendering(t *testing.T) {
	l := setup(t)

	surface, err := video.CreateSurface(64, 32)
	test.DemandSuccess(t, err)
	defer surface.Handle.Destroy()

	w, h := surface.Size()
	test.ExpectEquality(t, w, int32(64))
	test.ExpectEquality(t, h, int32(32))

	err = surface.FillRect(nil, surface.MapRGBA(255, 0, 0, 255))
	test.ExpectSuccess(t, err)

	renderer, err := video.CreateSoftwareRenderer(surface)
	test.DemandSuccess(t, err)
	defer renderer.Handle.Destroy()

	test.ExpectSuccess(t, renderer.SetDrawColor(0, 0, 255, 255))
	test.ExpectSuccess(t, renderer.Clear())

	tex, err := renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888), int(sdl.TEXTUREACCESS_STATIC), 16, 8)
	test.DemandSuccess(t, err)
	defer tex.Handle.Destroy()

	info, err := tex.Query()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, info.Width, int32(16))
	test.ExpectEquality(t, info.Height, int32(8))

	test.ExpectSuccess(t, tex.SetBlendMode(sdl.BLENDMODE_BLEND))
	test.ExpectSuccess(t, tex.SetAlphaMod(128))
	test.ExpectSuccess(t, renderer.Copy(tex, nil, &sdl.Rect{X: 0, Y: 0, W: 16, H: 8}))
	renderer.Present()

	// surface, renderer and texture
	test.ExpectEquality(t, l.Len(), 3)
}

func TestSurfaceLock(t *testing.T) {
	setup(t)

	surface, err := video.CreateSurface(16, 16)
	test.DemandSuccess(t, err)
	defer surface.Handle.Destroy()

	lock, err := surface.Lock()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(lock.Pixels()), int(lock.Pitch())*16)

	lock.Unlock()
	test.ExpectEquality(t, len(lock.Pixels()), 0)

	// a second unlock does nothing
	lock.Unlock()
}

func TestSurfaceGuard(t *testing.T) {
	setup(t)

	surface, err := video.CreateSurface(16, 16)
	test.DemandSuccess(t, err)
	raw := surface.Get()

	g := video.Guard(surface)
	test.ExpectFailure(t, surface.Handle.Valid())
	test.ExpectSuccess(t, g.Ref().Handle.Valid())
	test.ExpectEquality(t, g.Ref().Get(), raw)

	renderer, err := video.CreateSoftwareRenderer(g.Ref())
	test.DemandSuccess(t, err)
	tex, err := renderer.CreateTextureFromSurface(g.Ref())
	test.DemandSuccess(t, err)

	tex.Handle.Destroy()
	renderer.Handle.Destroy()

	test.ExpectSuccess(t, g.Close())
	test.ExpectFailure(t, g.Ref().Handle.Valid())
	test.ExpectSuccess(t, g.Close())
}

func TestWindow(t *testing.T) {
	setup(t)

	win, err := video.CreateWindow("sdlwrap", 320, 240, uint32(sdl.WINDOW_HIDDEN))
	test.DemandSuccess(t, err)
	defer win.Handle.Destroy()

	win.SetTitle("video test")
	test.ExpectEquality(t, win.Title(), "video test")

	id, err := win.ID()
	test.DemandSuccess(t, err)

	ref, err := video.WindowFromID(id)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, handle.Same[*sdl.Window](win, ref))
	test.ExpectSuccess(t, handle.Same[*sdl.Window](win, win.Ref()))

	// methods are available through the reference too
	test.ExpectEquality(t, ref.Title(), "video test")

	// destroying through a reference is not possible. the window is still
	// valid after the reference goes out of use
	ref = video.WindowRef{}
	test.ExpectSuccess(t, win.Handle.Valid())
	test.ExpectFailure(t, ref.Handle.Valid())
}

func TestPalette(t *testing.T) {
	setup(t)

	pal, err := video.AllocPalette(16)
	test.DemandSuccess(t, err)
	defer pal.Handle.Destroy()

	test.ExpectEquality(t, pal.Len(), 16)
	test.ExpectSuccess(t, pal.SetColors([]sdl.Color{{R: 255}, {G: 255}, {B: 255}}))
	test.ExpectSuccess(t, pal.Ref().Handle.Valid())
}

func TestCursor(t *testing.T) {
	setup(t)

	cur, err := video.CreateSystemCursor(sdl.SYSTEM_CURSOR_CROSSHAIR)
	if err != nil {
		// the dummy video driver does not normally support system cursors
		test.ExpectFailure(t, cur.Handle.Valid())
		return
	}
	defer cur.Handle.Destroy()

	cur.Activate()
	test.ExpectSuccess(t, handle.Same[*sdl.Cursor](cur, video.ActiveCursor()))
}

func TestCreateFailure(t *testing.T) {
	setup(t)

	surface, err := video.CreateSurface(-1, -1)
	test.ExpectFailure(t, err)
	test.DemandFailure(t, surface.Handle.Valid())

	// methods on the empty handle don't touch the null pointer
	w, h := surface.Size()
	test.ExpectEquality(t, w, int32(0))
	test.ExpectEquality(t, h, int32(0))
	test.ExpectEquality(t, surface.MapRGBA(255, 255, 255, 255), uint32(0))
	_, err = surface.Lock()
	test.ExpectFailure(t, err)

	// destroying the empty handle is safe
	surface.Handle.Destroy()

	palette, err := video.AllocPalette(0)
	test.ExpectFailure(t, err)
	test.DemandFailure(t, palette.Handle.Valid())
	test.ExpectEquality(t, palette.Len(), 0)
	palette.Handle.Destroy()
}

func TestWindowCapability(t *testing.T) {
	var r any = video.WindowRef{}
	_, ok := r.(handle.Getter[*sdl.Window])
	test.ExpectSuccess(t, ok)
	_, ok = r.(handle.Releaser[*sdl.Window])
	test.ExpectFailure(t, ok)

	var rh any = video.WindowRef{}.Handle
	_, ok = rh.(handle.Releaser[*sdl.Window])
	test.ExpectFailure(t, ok)

	var oh any = video.Window{}.Handle
	_, ok = oh.(handle.Releaser[*sdl.Window])
	test.ExpectSuccess(t, ok)
}
