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

// Package mayerror provides the result type returned by every fallible
// wrapper in the module.
//
// A MayError[T] holds either a success value of type T or an Error, never
// both. Foreign libraries signal failure with nil pointers, non-zero codes or
// Go error values. Converting that signal into a MayError immediately after
// the foreign call means a later successful call can never be confused with
// the state of an earlier one.
//
// Typical use:
//
//	win := sdlraii.CreateWindow("title", 0, 0, 640, 480, 0)
//	if !win.Ok() {
//		return win.Err()
//	}
//	defer win.Success().Close()
//
// Recovery values can be supplied without branching:
//
//	mode := sdlraii.GetTextureBlendMode(tex).GetOrElse(func(mayerror.Error) sdl.BlendMode {
//		return sdl.BLENDMODE_NONE
//	})
//
// and a result can be turned into the usual Go (value, error) pair with
// Get(), or into a panic with Must().
//
// Querying the success value of a failed result, or the error of a
// successful one, is a programming error. When compiled with the
// "assertions" build tag such a query panics (see the assert package).
// Otherwise the query returns the zero value of the requested type.
//
// Void is the no-value variant, used by wrappers of functions that only
// report success or failure.
package mayerror
