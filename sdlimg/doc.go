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

// Package sdlimg wraps the SDL2_image library in the same way that package
// sdlraii wraps the core SDL2 library. Loaded images are returned as owning
// handles of the types declared in sdlraii.
//
//	guard := sdlimg.ScopedInit(sdlimg.InitPNG | sdlimg.InitJPG)
//	if !guard.Ok() {
//		return guard.Err()
//	}
//	defer guard.Success().Close()
//
//	srf := sdlimg.Load("image.png")
//
// The Is functions probe a stream for an image format. They never fail and
// return a bool, unchanged from SDL2_image.
package sdlimg

//go:generate go run ../cmd/wrapgen -table wrappers.yaml -out wrappers_gen.go
