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

package sdlimg

import (
	"fmt"

	"github.com/jetsetilly/sdl2raii/bind"
	"github.com/jetsetilly/sdl2raii/mayerror"
	"github.com/veandco/go-sdl2/img"
)

// Format flags for Init() and ScopedInit().
const (
	InitJPG  = img.INIT_JPG
	InitPNG  = img.INIT_PNG
	InitTIF  = img.INIT_TIF
	InitWEBP = img.INIT_WEBP
)

// ScopedInit loads support for the formats named in flags. The returned guard
// calls img.Quit() when it is closed.
//
// No guard is created only if the library reports that no format at all is
// loaded. A request where some formats load and others do not still returns a
// guard, so formats should be checked with IsPNG() etc. or by the result of the
// load functions. A flags value of zero fails if nothing was loaded by an
// earlier call.
func ScopedInit(flags int) mayerror.MayError[*bind.Guard] {
	return bind.Scoped(fmt.Sprintf("sdl_image (%#x)", flags),
		func() error { return img.Init(flags) },
		img.Quit)
}
