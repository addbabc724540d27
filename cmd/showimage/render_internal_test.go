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

package main

import (
	"testing"

	"github.com/jetsetilly/sdl2raii/sdlraii"
	"github.com/jetsetilly/sdl2raii/test"
	"github.com/veandco/go-sdl2/sdl"
)

func TestDraw(t *testing.T) {
	const size = 16

	srf := sdlraii.CreateRGBSurfaceWithFormat(0, size, size, 32, uint32(sdl.PIXELFORMAT_ABGR8888))
	test.DemandSuccess(t, srf)
	target := srf.Success()
	defer target.Close()

	ren := sdlraii.CreateSoftwareRenderer(target.Get())
	test.DemandSuccess(t, ren)
	renderer := ren.Success()
	defer renderer.Close()

	img := sdlraii.CreateRGBSurfaceWithFormat(0, 8, 8, 32, uint32(sdl.PIXELFORMAT_ABGR8888))
	test.DemandSuccess(t, img)
	image := img.Success()
	defer image.Close()

	tex := sdlraii.CreateTextureFromUniqueSurface(renderer.Get(), image)
	test.DemandSuccess(t, tex)
	texture := tex.Success()
	defer texture.Close()

	test.DemandSuccess(t, draw(renderer.Get(), texture.Get(), 8, 8, 0))

	s := target.Get()
	pixels := s.Pixels()
	pixel := func(x, y int) sdlraii.RGB {
		i := y*int(s.Pitch) + x*4
		return sdlraii.RGB{R: pixels[i], G: pixels[i+1], B: pixels[i+2]}
	}

	// the image is centred and outlined in the border color
	test.ExpectEquality(t, pixel(0, 0), backgroundColor)
	test.ExpectEquality(t, pixel(4, 4), sdlraii.RGB{R: borderColor.R, G: borderColor.G, B: borderColor.B})
	test.ExpectEquality(t, pixel(11, 11), sdlraii.RGB{R: borderColor.R, G: borderColor.G, B: borderColor.B})
	test.ExpectEquality(t, pixel(12, 12), backgroundColor)
}
