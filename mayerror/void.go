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

package mayerror

import "github.com/jetsetilly/sdl2raii/assert"

// Void is the no-value variant of MayError. It is Ok() if it carries no
// Error. The zero value of Void is therefore a success.
type Void struct {
	err Error
}

// OK is the successful Void.
func OK() Void {
	return Void{}
}

// Fail creates a failed Void.
func Fail(err Error) Void {
	if err.IsZero() {
		err = NewError("")
	}
	return Void{err: err}
}

// FromErr creates a Void from a Go error value. A nil error is a success.
func FromErr(err error) Void {
	if err == nil {
		return Void{}
	}
	return Void{err: FromError(err)}
}

// Ok returns true if the Void does not describe a failure.
func (v Void) Ok() bool {
	return v.err.IsZero()
}

// Success does nothing. It exists so that Void has the same shape as MayError.
func (v Void) Success() {
	assert.Check(v.Ok(), "Void: success queried in failure state")
}

// Err returns the failure value.
func (v Void) Err() Error {
	assert.Check(!v.Ok(), "Void: error queried in success state")
	return v.err
}

// Get returns nil or the Error as a Go error value.
func (v Void) Get() error {
	if v.Ok() {
		return nil
	}
	return v.err
}

// Must panics with the Error if the Void is in the failure state.
func (v Void) Must() {
	if !v.Ok() {
		panic(v.err)
	}
}

// Promote converts the Void to a MayError of type T. A successful Void
// becomes a successful MayError with value.
func Promote[T any](v Void, value T) MayError[T] {
	if v.Ok() {
		return Success(value)
	}
	return Failure[T](v.err)
}
