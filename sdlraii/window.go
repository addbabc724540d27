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

// CreateWindowSized creates a window of the given size in the centre of the
// screen.
func CreateWindowSized(title string, w, h int32, flags uint32) mayerror.MayError[*UniqueWindow] {
	return CreateWindow(title, WindowPosCentered, WindowPosCentered, w, h, flags)
}

// WindowAndRenderer is returned by CreateWindowAndRenderer(). Close() should
// be called to release both resources. The renderer is released first.
type WindowAndRenderer struct {
	Window   *UniqueWindow
	Renderer *UniqueRenderer
}

// Close releases the renderer and then the window.
func (wr WindowAndRenderer) Close() error {
	_ = wr.Renderer.Close()
	return wr.Window.Close()
}

// CreateWindowAndRenderer creates a window and a default renderer for it. If
// the renderer cannot be created then the window is released before
// returning.
func CreateWindowAndRenderer(w, h int32, flags uint32) mayerror.MayError[WindowAndRenderer] {
	win, ren, err := sdl.CreateWindowAndRenderer(w, h, flags)
	if err != nil {
		if win != nil {
			released("window", win.Destroy())
		}
		return mayerror.Failure[WindowAndRenderer](mayerror.FromError(err))
	}
	return mayerror.Success(WindowAndRenderer{
		Window:   NewUniqueWindow(win),
		Renderer: NewUniqueRenderer(ren),
	})
}

// CreateTextureFromUniqueSurface creates a texture from the surface held by
// an owning handle. The handle keeps ownership of the surface.
func CreateTextureFromUniqueSurface(renderer *sdl.Renderer, surface *UniqueSurface) mayerror.MayError[*UniqueTexture] {
	return CreateTextureFromSurface(renderer, surface.Get())
}
