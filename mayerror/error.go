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

// message used for failures that arrive without a message
const unknownError = "unknown error"

// Error describes a failure reported by a foreign library. It holds a copy of
// the diagnostic message current at the moment of failure. Error values are
// immutable and are compared by message content.
type Error struct {
	message string
}

// NewError creates an Error from the diagnostic message. An empty message is
// replaced by "unknown error" so that a failure can never be mistaken for a
// success.
func NewError(message string) Error {
	if message == "" {
		message = unknownError
	}
	return Error{message: message}
}

// FromError converts a Go error value to an Error. A nil error results in
// an "unknown error" Error.
func FromError(err error) Error {
	if err == nil {
		return NewError("")
	}
	if e, ok := err.(Error); ok {
		return e
	}
	return NewError(err.Error())
}

// Error implements the error interface.
func (e Error) Error() string {
	return e.message
}

// Message returns the diagnostic message.
func (e Error) Message() string {
	return e.message
}

// IsZero returns true if the Error is the zero value, ie. it does not
// describe a failure.
func (e Error) IsZero() bool {
	return e.message == ""
}

// Equal returns true if both Errors carry the same message.
func (e Error) Equal(f Error) bool {
	return e.message == f.message
}
