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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectSuccess() and ExpectFailure() functions test for success and
// failure under generic conditions. The documentation for those functions
// describe the currently supported types. Note that a nil value is
// considered a success. This is because of how errors usually work (nil to
// indicate no error).
//
// Any type with an Ok() method is also supported, which includes the result
// types of the mayerror package. This means a test can be written:
//
//	test.ExpectSuccess(t, sdlraii.RenderClear(renderer))
//
// The Demand*() functions are the same as the Expect*() functions except
// that a failure is fatal for the test.
//
// The CompareWriter type implements the io.Writer interface and should be
// used to capture output. The Compare() function can then be used to test
// for equality.
package test
