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
	"fmt"

	"github.com/jetsetilly/sdl2raii/bind"
	"github.com/jetsetilly/sdl2raii/mayerror"
	"github.com/veandco/go-sdl2/sdl"
)

// Subsystem flags for Init(), ScopedInit() and the other initialisation
// functions.
const (
	InitTimer          = sdl.INIT_TIMER
	InitAudio          = sdl.INIT_AUDIO
	InitVideo          = sdl.INIT_VIDEO
	InitJoystick       = sdl.INIT_JOYSTICK
	InitHaptic         = sdl.INIT_HAPTIC
	InitGameController = sdl.INIT_GAMECONTROLLER
	InitEvents         = sdl.INIT_EVENTS
	InitEverything     = sdl.INIT_EVERYTHING
)

// ScopedInit initialises SDL with the given subsystem flags. The returned
// guard calls sdl.Quit() when it is closed. If initialisation fails then no
// guard is created and sdl.Quit() is not called.
func ScopedInit(flags uint32) mayerror.MayError[*bind.Guard] {
	return bind.Scoped(fmt.Sprintf("sdl (%#x)", flags),
		func() error { return sdl.Init(flags) },
		sdl.Quit)
}

// ScopedSubSystem initialises the subsystems named in flags. The returned
// guard shuts down the same subsystems when it is closed.
func ScopedSubSystem(flags uint32) mayerror.MayError[*bind.Guard] {
	return bind.Scoped(fmt.Sprintf("sdl subsystem (%#x)", flags),
		func() error { return sdl.InitSubSystem(flags) },
		func() { sdl.QuitSubSystem(flags) })
}
