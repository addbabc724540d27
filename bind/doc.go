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

// Package bind contains the runtime half of the binding generator. The
// functions here convert the raw result of a foreign call into a
// mayerror.MayError, optionally wrapping a returned resource in an owning
// unique.Handle.
//
// Wrapper functions are not normally written by hand. They are produced by
// the wrapgen command from a table of foreign functions, and each generated
// wrapper is a call to the foreign function followed by a call to one of the
// errorify policies below:
//
//	NonZero, Negative      integer result, zero (or non-negative) is success
//	NonNil                 resource result, the empty resource is failure
//	Checked, CheckedVoid   Go style (value, error) or error result
//	Owned, OwnedChecked    as NonNil and Checked but the result is wrapped
//	                       in an owning handle
//
// Policies that inspect a raw value fetch the foreign library's last error
// with a LastError function. The fetch happens inside the policy, immediately
// after the failing call, and before any other foreign call has a chance to
// overwrite it.
//
// The Guard type represents an initialised subsystem. See Scoped().
package bind
