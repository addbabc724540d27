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
	"github.com/jetsetilly/sdl2raii/logger"
	"github.com/jetsetilly/sdl2raii/unique"
	"github.com/veandco/go-sdl2/sdl"
)

// UniqueWindow owns an SDL window. Closing the handle destroys the window.
type UniqueWindow = unique.Handle[*sdl.Window]

// UniqueRenderer owns an SDL renderer.
type UniqueRenderer = unique.Handle[*sdl.Renderer]

// UniqueSurface owns an SDL surface. Closing the handle frees the surface.
type UniqueSurface = unique.Handle[*sdl.Surface]

// UniqueTexture owns an SDL texture.
type UniqueTexture = unique.Handle[*sdl.Texture]

// UniqueRWops owns an SDL_RWops stream. Closing the handle closes the stream.
type UniqueRWops = unique.Handle[*sdl.RWops]

// UniqueGLContext owns an OpenGL context created by SDL.
type UniqueGLContext = unique.Handle[sdl.GLContext]

// UniqueAudioDevice owns an open audio device. The zero device ID is never
// returned by SDL for an open device.
type UniqueAudioDevice = unique.Handle[sdl.AudioDeviceID]

// Logging controls whether problems reported while releasing resources are
// logged. Release never fails but SDL may still report a problem.
var Logging logger.Permission = logger.Allow

func released(what string, err error) {
	if err != nil {
		logger.Logf(Logging, "sdlraii", "release %s: %v", what, err)
	}
}

// NewUniqueWindow takes ownership of an existing window.
func NewUniqueWindow(w *sdl.Window) *UniqueWindow {
	return unique.New(w, func(w *sdl.Window) {
		released("window", w.Destroy())
	})
}

// NewUniqueRenderer takes ownership of an existing renderer.
func NewUniqueRenderer(r *sdl.Renderer) *UniqueRenderer {
	return unique.New(r, func(r *sdl.Renderer) {
		released("renderer", r.Destroy())
	})
}

// NewUniqueSurface takes ownership of an existing surface.
func NewUniqueSurface(s *sdl.Surface) *UniqueSurface {
	return unique.New(s, func(s *sdl.Surface) {
		s.Free()
	})
}

// NewUniqueTexture takes ownership of an existing texture.
func NewUniqueTexture(t *sdl.Texture) *UniqueTexture {
	return unique.New(t, func(t *sdl.Texture) {
		released("texture", t.Destroy())
	})
}

// NewUniqueRWops takes ownership of an existing stream.
func NewUniqueRWops(rw *sdl.RWops) *UniqueRWops {
	return unique.New(rw, func(rw *sdl.RWops) {
		released("rwops", rw.Close())
	})
}

// NewUniqueGLContext takes ownership of an existing OpenGL context.
func NewUniqueGLContext(ctx sdl.GLContext) *UniqueGLContext {
	return unique.New(ctx, sdl.GLDeleteContext)
}

// NewUniqueAudioDevice takes ownership of an open audio device.
func NewUniqueAudioDevice(id sdl.AudioDeviceID) *UniqueAudioDevice {
	return unique.New(id, sdl.CloseAudioDevice)
}
