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

import "github.com/veandco/go-sdl2/sdl"

// Window flags for CreateWindow() and CreateWindowSized().
const (
	WindowFullscreen        = sdl.WINDOW_FULLSCREEN
	WindowFullscreenDesktop = sdl.WINDOW_FULLSCREEN_DESKTOP
	WindowOpenGL            = sdl.WINDOW_OPENGL
	WindowShown             = sdl.WINDOW_SHOWN
	WindowHidden            = sdl.WINDOW_HIDDEN
	WindowBorderless        = sdl.WINDOW_BORDERLESS
	WindowResizable         = sdl.WINDOW_RESIZABLE
	WindowMinimized         = sdl.WINDOW_MINIMIZED
	WindowMaximized         = sdl.WINDOW_MAXIMIZED
	WindowAllowHighDPI      = sdl.WINDOW_ALLOW_HIGHDPI
)

// Window positions.
const (
	WindowPosUndefined = sdl.WINDOWPOS_UNDEFINED
	WindowPosCentered  = sdl.WINDOWPOS_CENTERED
)

// Renderer flags for CreateRenderer().
const (
	RendererSoftware      = sdl.RENDERER_SOFTWARE
	RendererAccelerated   = sdl.RENDERER_ACCELERATED
	RendererPresentVSync  = sdl.RENDERER_PRESENTVSYNC
	RendererTargetTexture = sdl.RENDERER_TARGETTEXTURE
)

// Texture access modes for CreateTexture().
const (
	TextureAccessStatic    = sdl.TEXTUREACCESS_STATIC
	TextureAccessStreaming = sdl.TEXTUREACCESS_STREAMING
	TextureAccessTarget    = sdl.TEXTUREACCESS_TARGET
)

// Flip values for RenderCopyEx().
const (
	FlipNone       = sdl.FLIP_NONE
	FlipHorizontal = sdl.FLIP_HORIZONTAL
	FlipVertical   = sdl.FLIP_VERTICAL
)

// Blend modes for SetRenderDrawBlendMode(), SetTextureBlendMode() and
// SetSurfaceBlendMode().
const (
	BlendNone  = sdl.BLENDMODE_NONE
	BlendBlend = sdl.BLENDMODE_BLEND
	BlendAdd   = sdl.BLENDMODE_ADD
	BlendMod   = sdl.BLENDMODE_MOD
)
