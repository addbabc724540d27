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
	"github.com/jetsetilly/sdl2raii/mayerror"
	"github.com/veandco/go-sdl2/sdl"
)

// RGBA is a color with an alpha component.
type RGBA struct {
	R, G, B, A uint8
}

// RGB is a color without an alpha component.
type RGB struct {
	R, G, B uint8
}

// Opaque returns the color with an alpha of 255.
func (c RGB) Opaque() RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// SetRenderDrawColorRGBA sets the color used for drawing operations.
func SetRenderDrawColorRGBA(renderer *sdl.Renderer, c RGBA) mayerror.Void {
	return SetRenderDrawColor(renderer, c.R, c.G, c.B, c.A)
}

// GetRenderDrawColor returns the color used for drawing operations.
func GetRenderDrawColor(renderer *sdl.Renderer) mayerror.MayError[RGBA] {
	r, g, b, a, err := renderer.GetDrawColor()
	return mayerror.From(RGBA{R: r, G: g, B: b, A: a}, err)
}

// SetTextureColorModRGB sets the color multiplied into texture copies.
func SetTextureColorModRGB(texture *sdl.Texture, c RGB) mayerror.Void {
	return SetTextureColorMod(texture, c.R, c.G, c.B)
}

// SetSurfaceColorModRGB sets the color multiplied into blits from the surface.
func SetSurfaceColorModRGB(surface *sdl.Surface, c RGB) mayerror.Void {
	return SetSurfaceColorMod(surface, c.R, c.G, c.B)
}

// GetSurfaceColorMod returns the color multiplied into blits from the surface.
func GetSurfaceColorMod(surface *sdl.Surface) mayerror.MayError[RGB] {
	r, g, b, err := surface.GetColorMod()
	return mayerror.From(RGB{R: r, G: g, B: b}, err)
}
