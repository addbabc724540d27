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

package sdlraii_test

import (
	"math"
	"testing"

	"github.com/jetsetilly/sdl2raii/sdlraii"
	"github.com/jetsetilly/sdl2raii/test"
	"github.com/veandco/go-sdl2/sdl"
)

func TestDegrees(t *testing.T) {
	test.ExpectEquality(t, sdlraii.Radians(math.Pi), sdlraii.Degrees(180))
	test.ExpectEquality(t, sdlraii.Degrees(90).Radians(), math.Pi/2)
	test.ExpectEquality(t, sdlraii.Degrees(0).Radians(), 0.0)
}

func TestIntersectRect(t *testing.T) {
	a := sdl.Rect{X: 0, Y: 0, W: 10, H: 10}
	b := sdl.Rect{X: 5, Y: 5, W: 10, H: 10}
	c := sdl.Rect{X: 20, Y: 20, W: 5, H: 5}

	r := sdlraii.IntersectRect(a, b)
	test.DemandSuccess(t, r.Present())
	v, _ := r.Get()
	test.ExpectEquality(t, v, sdl.Rect{X: 5, Y: 5, W: 5, H: 5})
	test.ExpectSuccess(t, sdlraii.HasIntersection(a, b))

	r = sdlraii.IntersectRect(a, c)
	test.ExpectFailure(t, r.Present())
	test.ExpectFailure(t, sdlraii.HasIntersection(a, c))
}

func TestColors(t *testing.T) {
	c := sdlraii.RGB{R: 1, G: 2, B: 3}
	test.ExpectEquality(t, c.Opaque(), sdlraii.RGBA{R: 1, G: 2, B: 3, A: 255})
}
