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

package main

import (
	"github.com/jetsetilly/sdl2raii/curated"
	"github.com/jetsetilly/sdl2raii/mainloop"
	"github.com/jetsetilly/sdl2raii/optional"
	"github.com/jetsetilly/sdl2raii/sdlraii"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	backgroundColor = sdlraii.RGB{R: 32, G: 32, B: 48}
	borderColor     = sdlraii.RGBA{R: 255, G: 255, B: 255, A: 128}
)

// degrees of rotation per frame
const rotationSpeed = sdlraii.Degrees(0.5)

func showRender(image *sdlraii.UniqueSurface, opts options, loop *mainloop.Loop) error {
	win := sdlraii.CreateWindowSized(windowTitle, opts.width, opts.height, sdlraii.WindowShown|sdlraii.WindowResizable)
	if !win.Ok() {
		return curated.Errorf("render: %v", win.Err())
	}
	window := win.Success()
	defer window.Close()

	ren := sdlraii.CreateRenderer(window.Get(), -1, sdlraii.RendererAccelerated|sdlraii.RendererPresentVSync)
	if !ren.Ok() {
		// fallback to software rendering
		ren = sdlraii.CreateRenderer(window.Get(), -1, sdlraii.RendererSoftware)
		if !ren.Ok() {
			return curated.Errorf("render: %v", ren.Err())
		}
	}
	renderer := ren.Success()
	defer renderer.Close()

	tex := sdlraii.CreateTextureFromUniqueSurface(renderer.Get(), image)
	if !tex.Ok() {
		return curated.Errorf("render: %v", tex.Err())
	}
	texture := tex.Success()
	defer texture.Close()

	sdlraii.SetRenderDrawBlendMode(renderer.Get(), sdlraii.BlendBlend).Must()

	imgW := image.Get().W
	imgH := image.Get().H

	var angle sdlraii.Degrees
	rotate := false
	var err error

	loop.Run(func() {
		sdlraii.PollEvents(func(ev sdl.Event) bool {
			if isQuit(ev) {
				loop.Cancel()
				return false
			}
			if kev, ok := ev.(*sdl.KeyboardEvent); ok && kev.Type == sdl.KEYDOWN && kev.Keysym.Sym == sdl.K_r {
				rotate = !rotate
			}
			return true
		})

		if rotate {
			angle += rotationSpeed
		}

		if err = draw(renderer.Get(), texture.Get(), imgW, imgH, angle); err != nil {
			loop.Cancel()
		}
	})

	return err
}

func draw(renderer *sdl.Renderer, texture *sdl.Texture, imgW, imgH int32, angle sdlraii.Degrees) error {
	if r := sdlraii.SetRenderDrawColorRGBA(renderer, backgroundColor.Opaque()); !r.Ok() {
		return curated.Errorf("render: %v", r.Err())
	}
	if r := sdlraii.RenderClear(renderer); !r.Ok() {
		return curated.Errorf("render: %v", r.Err())
	}

	out := sdlraii.GetRendererOutputSize(renderer)
	if !out.Ok() {
		return curated.Errorf("render: %v", out.Err())
	}
	sz := out.Success()

	dst := sdl.Rect{
		X: (sz.W - imgW) / 2,
		Y: (sz.H - imgH) / 2,
		W: imgW,
		H: imgH,
	}

	// clip the border to the visible area
	border := sdlraii.IntersectRect(dst, sdl.Rect{W: sz.W, H: sz.H})

	r := sdlraii.RenderCopyExOpt(renderer, texture, optional.None[sdl.Rect](), optional.Some(dst),
		angle, optional.None[sdl.Point](), sdlraii.FlipNone)
	if !r.Ok() {
		return curated.Errorf("render: %v", r.Err())
	}

	if border.Present() && angle == 0 {
		if r := sdlraii.SetRenderDrawColorRGBA(renderer, borderColor); !r.Ok() {
			return curated.Errorf("render: %v", r.Err())
		}
		if r := sdlraii.RenderDrawRectOpt(renderer, border); !r.Ok() {
			return curated.Errorf("render: %v", r.Err())
		}
	}

	sdlraii.RenderPresent(renderer)

	return nil
}
