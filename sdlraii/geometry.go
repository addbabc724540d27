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

package sdlraii

import (
	"math"

	"github.com/jetsetilly/sdl2raii/optional"
	"github.com/veandco/go-sdl2/sdl"
)

// Degrees is an angle measured in degrees, clockwise. SDL functions that
// rotate take their angle in degrees and the type keeps that explicit.
type Degrees float64

// Radians converts an angle in radians to Degrees.
func Radians(r float64) Degrees {
	return Degrees(r * 180 / math.Pi)
}

// Radians returns the angle in radians.
func (d Degrees) Radians() float64 {
	return float64(d) * math.Pi / 180
}

// Size is the width and height of something measured in pixels.
type Size struct {
	W, H int32
}

// IntersectRect returns the intersection of two rectangles. The result is
// empty if the rectangles do not intersect.
func IntersectRect(a, b sdl.Rect) optional.Optional[sdl.Rect] {
	r, ok := a.Intersect(&b)
	if !ok {
		return optional.None[sdl.Rect]()
	}
	return optional.Some(r)
}

// HasIntersection returns true if the rectangles intersect.
func HasIntersection(a, b sdl.Rect) bool {
	return a.HasIntersection(&b)
}
