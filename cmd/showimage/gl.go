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
	"github.com/go-gl/gl/v2.1/gl"
	"github.com/jetsetilly/sdl2raii/curated"
	"github.com/jetsetilly/sdl2raii/logger"
	"github.com/jetsetilly/sdl2raii/mainloop"
	"github.com/jetsetilly/sdl2raii/sdlraii"
	"github.com/veandco/go-sdl2/sdl"
)

func showGL(image *sdlraii.UniqueSurface, opts options, loop *mainloop.Loop) error {
	sdlraii.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 2).Must()
	sdlraii.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1).Must()
	sdlraii.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1).Must()

	win := sdlraii.CreateWindowSized(windowTitle, opts.width, opts.height, sdlraii.WindowShown|sdlraii.WindowOpenGL|sdlraii.WindowResizable)
	if !win.Ok() {
		return curated.Errorf("gl: %v", win.Err())
	}
	window := win.Success()
	defer window.Close()

	ctx := sdlraii.GLCreateContext(window.Get())
	if !ctx.Ok() {
		return curated.Errorf("gl: %v", ctx.Err())
	}
	glContext := ctx.Success()
	defer glContext.Close()

	if r := sdlraii.GLMakeCurrent(window.Get(), glContext.Get()); !r.Ok() {
		return curated.Errorf("gl: %v", r.Err())
	}

	// vsync is not available on every platform
	if r := sdlraii.GLSetSwapInterval(1); !r.Ok() {
		logger.Logf(logger.Allow, "gl", "vsync: %v", r.Err())
	}

	err := gl.Init()
	if err != nil {
		return curated.Errorf("gl: %v", err)
	}
	logger.Logf(logger.Allow, "gl", "vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	logger.Logf(logger.Allow, "gl", "renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	logger.Logf(logger.Allow, "gl", "driver: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	// convert image to a format that can be uploaded directly
	cnv, err := image.Get().ConvertFormat(uint32(sdl.PIXELFORMAT_ABGR8888), 0)
	if err != nil {
		return curated.Errorf("gl: %v", err)
	}
	rgba := sdlraii.NewUniqueSurface(cnv)
	defer rgba.Close()

	var id uint32
	gl.GenTextures(1, &id)
	defer gl.DeleteTextures(1, &id)

	w := rgba.Get().W
	h := rgba.Get().H

	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, rgba.Get().Pitch/4)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, w, h, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Get().Pixels()))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)

	loop.Run(func() {
		sdlraii.PollEvents(func(ev sdl.Event) bool {
			if isQuit(ev) {
				loop.Cancel()
				return false
			}
			return true
		})

		winW, winH := sdlraii.GetWindowSize(window.Get())
		drawGL(id, winW, winH, w, h)
		sdlraii.GLSwapWindow(window.Get())
	})

	return nil
}

func drawGL(id uint32, winW, winH, imgW, imgH int32) {
	gl.Viewport(0, 0, winW, winH)
	gl.ClearColor(
		float32(backgroundColor.R)/255,
		float32(backgroundColor.G)/255,
		float32(backgroundColor.B)/255,
		1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.MatrixMode(gl.PROJECTION)
	gl.LoadIdentity()
	gl.Ortho(0, float64(winW), float64(winH), 0, -1, 1)
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadIdentity()

	x := float32(winW-imgW) / 2
	y := float32(winH-imgH) / 2

	gl.Enable(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.Begin(gl.QUADS)
	gl.TexCoord2f(0, 0)
	gl.Vertex2f(x, y)
	gl.TexCoord2f(1, 0)
	gl.Vertex2f(x+float32(imgW), y)
	gl.TexCoord2f(1, 1)
	gl.Vertex2f(x+float32(imgW), y+float32(imgH))
	gl.TexCoord2f(0, 1)
	gl.Vertex2f(x, y+float32(imgH))
	gl.End()
	gl.Disable(gl.TEXTURE_2D)
}
