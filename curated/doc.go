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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are used wherever a
// foreign failure needs more context before being reported, for example by
// the wrapgen command or by example programs.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The pattern is used to identify curated errors. The Is() function checks
// whether an error was created with a specific pattern:
//
//	e := curated.Errorf("wrapgen: line %d: %v", 10, err)
//
//	if curated.Is(e, "wrapgen: line %d: %v") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
// The Error() function de-duplicates adjacent parts of the error message.
// Parts are separated by the sub-string ": ", as suggested on p239 of "The Go
// Programming Language" (Donovan, Kernighan). This means that code does not
// need to worry about the context of the function that created the error:
//
//	e := curated.Errorf("sdl: %v", curated.Errorf("sdl: %v", "no video device"))
//
// results in the message:
//
//	sdl: no video device
//
// and not:
//
//	sdl: sdl: no video device
//
// Curated errors support the Unwrap() convention of the standard errors
// package. The errors.As() function can therefore be used to recover a wrapped
// value, such as a mayerror.Error, from a curated chain.
package curated
