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

// Package wrapgen generates Go wrappers for the functions of a foreign
// library from a YAML binding table.
//
// Every entry in the table names the public wrapper, the foreign symbol it
// calls, the parameter list and an errorify policy. The parameter list is
// copied verbatim to the wrapper and the arguments are forwarded in the same
// order, so the Go compiler checks arity and convertibility of every call.
// The policy decides how the result of the foreign call is converted:
//
//	pass         the result is returned unchanged
//	checked      the call returns (T, error) and the wrapper MayError[T]
//	checkedvoid  the call returns error and the wrapper Void
//	nonzero      a non-zero integer result is a failure
//	negative     a negative integer result is a failure
//	nonnil       a nil result is a failure
//	owned        the call returns (R, error) and R is moved into an owning handle
//	ownednonnil  the call returns R, nil on failure, and R is moved into an owning handle
//
// Policies that consult the foreign error channel (nonzero, negative, nonnil
// and ownednonnil) call the function named by the lasterror field of the
// table. Owning policies call the constructor New<handle> for the handle type
// named by the entry.
//
// The generated source is formatted with go/format and starts with the
// standard "Code generated ... DO NOT EDIT." line. A wrapper package normally
// invokes the generator with a go:generate directive:
//
//	//go:generate go run ../cmd/wrapgen -table wrappers.yaml -out wrappers_gen.go
package wrapgen
