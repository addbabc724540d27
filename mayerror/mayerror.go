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

type state int

// the zero value of state is unset. a MayError in the unset state has not
// been assigned a result and must not be queried
const (
	unset state = iota
	success
	failure
)

// MayError holds either a success value of type T or an Error. The zero
// value holds neither and must be assigned before it is queried.
type MayError[T any] struct {
	value T
	err   Error
	state state
}

// Success creates a MayError in the success state.
func Success[T any](value T) MayError[T] {
	return MayError[T]{value: value, state: success}
}

// Failure creates a MayError in the failure state.
func Failure[T any](err Error) MayError[T] {
	if err.IsZero() {
		err = NewError("")
	}
	return MayError[T]{err: err, state: failure}
}

// From creates a MayError from a Go style (value, error) pair. The value is
// discarded if err is not nil.
func From[T any](value T, err error) MayError[T] {
	if err != nil {
		return Failure[T](FromError(err))
	}
	return Success(value)
}

// Recast changes the success type of a failed MayError. Useful for passing a
// failure up the call chain unchanged.
func Recast[U any, T any](m MayError[T]) MayError[U] {
	assert.Check(m.state == failure, "MayError: recasting a result that has not failed")
	return Failure[U](m.err)
}

// Ok returns true if the MayError is in the success state.
func (m MayError[T]) Ok() bool {
	return m.state == success
}

// Success returns a copy of the success value.
func (m MayError[T]) Success() T {
	assert.Check(m.state == success, "MayError: success value queried in %s state", m.state)
	return m.value
}

// Take returns the success value and removes it from the MayError. Use this
// rather than Success() when the value should only be reachable through one
// variable, for example an owning handle.
func (m *MayError[T]) Take() T {
	assert.Check(m.state == success, "MayError: success value taken in %s state", m.state)
	v := m.value
	var zero T
	m.value = zero
	return v
}

// Err returns the failure value.
func (m MayError[T]) Err() Error {
	assert.Check(m.state == failure, "MayError: error queried in %s state", m.state)
	return m.err
}

// GetOrElse returns the success value. If the MayError is in the failure
// state then the fallback function is called with the error and its result
// is returned instead.
func (m MayError[T]) GetOrElse(fallback func(Error) T) T {
	if m.state == success {
		return m.value
	}
	return fallback(m.err)
}

// Get returns the success value and a nil error, or the zero value of T and
// the Error.
func (m MayError[T]) Get() (T, error) {
	if m.state == success {
		return m.value, nil
	}
	assert.Check(m.state == failure, "MayError: Get() called on an unset result")
	var zero T
	return zero, m.err
}

// Must returns the success value. It panics with the Error if the MayError is
// in the failure state.
func (m MayError[T]) Must() T {
	if m.state != success {
		panic(m.err)
	}
	return m.value
}

func (s state) String() string {
	switch s {
	case success:
		return "success"
	case failure:
		return "failure"
	}
	return "unset"
}
