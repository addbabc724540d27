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

// Package sdlraii wraps the core SDL2 library so that every resource it
// creates is owned by exactly one handle and every failure is reported
// through a mayerror value.
//
// Creation functions return a MayError holding an owning handle. The
// resource is released when the handle is closed, normally with a deferred
// call:
//
//	guard := sdlraii.ScopedInit(sdlraii.InitVideo).Must()
//	defer guard.Close()
//
//	win := sdlraii.CreateWindowSized("example", 640, 480, sdlraii.WindowShown)
//	if !win.Ok() {
//		return win.Err()
//	}
//	w := win.Success()
//	defer w.Close()
//
// Functions that can fail but that do not create anything return a
// mayerror.Void. Functions that cannot fail return the result of the SDL
// function unchanged.
//
// Most of the functions in the package are generated from wrappers.yaml by
// the wrapgen command. Functions that add something to the underlying SDL
// function, such as the optional argument variants of the rendering
// functions, are written by hand.
//
// SDL is not safe for concurrent use. All functions in this package should be
// called from the same goroutine, normally the main thread after a call to
// runtime.LockOSThread().
package sdlraii

//go:generate go run ../cmd/wrapgen -table wrappers.yaml -out wrappers_gen.go
