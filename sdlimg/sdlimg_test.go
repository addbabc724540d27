// This file is part of sdl2raii.
//
// sdl2raii is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sdl2raii is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with sdl2raii.  If not, see <https://www.gnu.org/licenses/>.

package sdlimg_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/sdl2raii/sdlimg"
	"github.com/jetsetilly/sdl2raii/sdlraii"
	"github.com/jetsetilly/sdl2raii/test"
	"github.com/veandco/go-sdl2/sdl"
)

func TestScopedInit(t *testing.T) {
	g := sdlimg.ScopedInit(sdlimg.InitPNG)
	test.DemandSuccess(t, g)
	guard := g.Success()
	test.ExpectSuccess(t, guard.Active())
	test.ExpectSuccess(t, guard.Close())
	test.ExpectFailure(t, guard.Active())
}

// a guard is returned when at least one of the requested formats loads, even
// if the others are unavailable on this system
func TestScopedInitAnyFormat(t *testing.T) {
	g := sdlimg.ScopedInit(sdlimg.InitPNG | sdlimg.InitJPG | sdlimg.InitTIF | sdlimg.InitWEBP)
	test.DemandSuccess(t, g)
	guard := g.Success()
	test.ExpectSuccess(t, guard.Active())

	// nested requests for no new formats succeed while a format is loaded
	n := sdlimg.ScopedInit(0)
	test.DemandSuccess(t, n)
	test.ExpectSuccess(t, n.Success().Close())

	test.ExpectSuccess(t, guard.Close())
}

func TestSaveAndLoad(t *testing.T) {
	g := sdlimg.ScopedInit(sdlimg.InitPNG)
	test.DemandSuccess(t, g)
	defer g.Success().Close()

	srf := sdlraii.CreateRGBSurfaceWithFormat(0, 8, 4, 32, uint32(sdl.PIXELFORMAT_ABGR8888))
	test.DemandSuccess(t, srf)
	s := srf.Success()
	defer s.Close()

	fn := filepath.Join(t.TempDir(), "test.png")
	test.DemandSuccess(t, sdlimg.SavePNG(s.Get(), fn))

	// load through the file interface
	ld := sdlimg.Load(fn)
	test.DemandSuccess(t, ld)
	l := ld.Success()
	defer l.Close()
	test.ExpectEquality(t, l.Get().W, int32(8))
	test.ExpectEquality(t, l.Get().H, int32(4))

	// load through a stream owned by a handle
	rw := sdlraii.RWFromFile(fn, "rb")
	test.DemandSuccess(t, rw)
	r := rw.Success()
	defer r.Close()

	test.ExpectSuccess(t, sdlimg.IsPNG(r.Get()))
	test.ExpectFailure(t, sdlimg.IsJPG(r.Get()))
	test.ExpectEquality(t, sdlimg.Format(r.Get()), "PNG")

	ldrw := sdlimg.LoadUniqueRW(r)
	test.DemandSuccess(t, ldrw)
	test.ExpectSuccess(t, ldrw.Success().Close())

	// the stream is still owned by the handle
	test.ExpectFailure(t, r.Empty())
}

func TestLoadFailure(t *testing.T) {
	ld := sdlimg.Load("this file does not exist.png")
	test.ExpectFailure(t, ld)
	test.ExpectInequality(t, ld.Err().Message(), "")

	rw := sdlraii.RWFromMem([]byte("not an image"))
	test.DemandSuccess(t, rw)
	r := rw.Success()
	defer r.Close()

	test.ExpectEquality(t, sdlimg.Format(r.Get()), "")
	test.ExpectFailure(t, sdlimg.LoadUniqueRW(r))
}
