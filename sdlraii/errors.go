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

package sdlraii

import (
	"github.com/jetsetilly/sdl2raii/mayerror"
	"github.com/veandco/go-sdl2/sdl"
)

// LastError returns the error most recently reported by SDL. If SDL has no
// error to report then the unknown error is returned.
func LastError() mayerror.Error {
	return mayerror.FromError(sdl.GetError())
}

// ClearError empties the SDL error buffer.
func ClearError() {
	sdl.ClearError()
}
