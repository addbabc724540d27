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

package sdlimg

import (
	"github.com/jetsetilly/sdl2raii/mayerror"
	"github.com/jetsetilly/sdl2raii/sdlraii"
	"github.com/veandco/go-sdl2/sdl"
)

// LoadUniqueRW loads an image from a stream owned by a handle. The handle
// keeps ownership of the stream.
func LoadUniqueRW(src *sdlraii.UniqueRWops) mayerror.MayError[*sdlraii.UniqueSurface] {
	return LoadRW(src.Get(), false)
}

// LoadTypedUniqueRW is like LoadUniqueRW() but the image type is stated
// rather than detected. The type is a file extension such as "PNG".
func LoadTypedUniqueRW(src *sdlraii.UniqueRWops, typ string) mayerror.MayError[*sdlraii.UniqueSurface] {
	return LoadTypedRW(src.Get(), false, typ)
}

// LoadTextureUniqueRW loads an image from a stream owned by a handle directly
// into a texture.
func LoadTextureUniqueRW(renderer *sdl.Renderer, src *sdlraii.UniqueRWops) mayerror.MayError[*sdlraii.UniqueTexture] {
	return LoadTextureRW(renderer, src.Get(), false)
}

// Format returns the name of the image format found in the stream. The empty
// string is returned if the format is not recognised.
func Format(src *sdl.RWops) string {
	probes := []struct {
		name string
		is   func(*sdl.RWops) bool
	}{
		{"PNG", IsPNG},
		{"JPG", IsJPG},
		{"GIF", IsGIF},
		{"BMP", IsBMP},
		{"WEBP", IsWEBP},
		{"TIF", IsTIF},
		{"ICO", IsICO},
		{"CUR", IsCUR},
		{"PCX", IsPCX},
		{"PNM", IsPNM},
		{"LBM", IsLBM},
		{"XCF", IsXCF},
		{"XPM", IsXPM},
		{"XV", IsXV},
	}

	for _, p := range probes {
		if p.is(src) {
			return p.name
		}
	}

	return ""
}
