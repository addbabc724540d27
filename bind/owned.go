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

package bind

import (
	"github.com/jetsetilly/sdl2raii/mayerror"
	"github.com/jetsetilly/sdl2raii/unique"
)

// Owned wraps the result of a foreign create function in an owning handle. The
// zero value of R is failure, in which case the last error is fetched and no
// handle is created.
//
// The wrap function is the constructor of the handle for the resource kind.
func Owned[R comparable](raw R, last LastError, wrap func(R) *unique.Handle[R]) mayerror.MayError[*unique.Handle[R]] {
	var zero R
	if raw == zero {
		return mayerror.Failure[*unique.Handle[R]](last())
	}
	return mayerror.Success(wrap(raw))
}

// OwnedChecked is the same as Owned but for foreign functions that return a
// Go style (value, error) pair.
//
// A resource returned alongside an error is not wrapped. The foreign library
// is responsible for any such resource.
func OwnedChecked[R comparable](raw R, err error, wrap func(R) *unique.Handle[R]) mayerror.MayError[*unique.Handle[R]] {
	if err != nil {
		return mayerror.Failure[*unique.Handle[R]](mayerror.FromError(err))
	}

	var zero R
	if raw == zero {
		return mayerror.Failure[*unique.Handle[R]](mayerror.NewError(""))
	}

	return mayerror.Success(wrap(raw))
}
