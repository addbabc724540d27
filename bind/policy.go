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
	"golang.org/x/exp/constraints"
)

// LastError returns the most recent error reported by a foreign library.
type LastError func() mayerror.Error

// NonZero treats any non-zero code as failure.
func NonZero[I constraints.Integer](code I, last LastError) mayerror.MayError[I] {
	if code != 0 {
		return mayerror.Failure[I](last())
	}
	return mayerror.Success(code)
}

// Negative treats a negative code as failure. Zero and positive codes are
// success values.
func Negative[I constraints.Integer](code I, last LastError) mayerror.MayError[I] {
	if code < 0 {
		return mayerror.Failure[I](last())
	}
	return mayerror.Success(code)
}

// NonZeroVoid is the same as NonZero but discards the code.
func NonZeroVoid[I constraints.Integer](code I, last LastError) mayerror.Void {
	if code != 0 {
		return mayerror.Fail(last())
	}
	return mayerror.OK()
}

// NegativeVoid is the same as Negative but discards the code.
func NegativeVoid[I constraints.Integer](code I, last LastError) mayerror.Void {
	if code < 0 {
		return mayerror.Fail(last())
	}
	return mayerror.OK()
}

// NonNil treats the zero value of R (eg. a nil pointer) as failure.
func NonNil[R comparable](raw R, last LastError) mayerror.MayError[R] {
	var zero R
	if raw == zero {
		return mayerror.Failure[R](last())
	}
	return mayerror.Success(raw)
}

// Checked converts a Go style (value, error) pair.
func Checked[T any](v T, err error) mayerror.MayError[T] {
	return mayerror.From(v, err)
}

// CheckedVoid converts a Go error value.
func CheckedVoid(err error) mayerror.Void {
	return mayerror.FromErr(err)
}
