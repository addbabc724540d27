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

// Package assert checks programming constraints that are not part of any
// recoverable error path.
//
// The checks only do anything when the program is compiled with the
// "assertions" build tag. Without the tag Check() is an empty function and
// the condition is never reported. For example, to run the tests of the
// module with checking enabled:
//
//	go test -tags assertions ./...
//
// A failed check panics with a message prefixed by "assertion failed: ".
package assert
