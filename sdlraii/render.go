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
	"github.com/jetsetilly/sdl2raii/bind"
	"github.com/jetsetilly/sdl2raii/mayerror"
	"github.com/jetsetilly/sdl2raii/optional"
	"github.com/veandco/go-sdl2/sdl"
)

// RenderCopyOpt is a variant of RenderCopy() that takes optional rectangles.
// An empty src copies the entire texture and an empty dst fills the entire
// rendering target.
func RenderCopyOpt(renderer *sdl.Renderer, texture *sdl.Texture, src, dst optional.Optional[sdl.Rect]) mayerror.Void {
	return RenderCopy(renderer, texture, src.Ptr(), dst.Ptr())
}

// RenderCopyEx copies the texture to the rendering target, rotating it by
// angle around center and flipping it as requested. A nil center rotates
// around the centre of dst.
func RenderCopyEx(renderer *sdl.Renderer, texture *sdl.Texture, src, dst *sdl.Rect, angle Degrees, center *sdl.Point, flip sdl.RendererFlip) mayerror.Void {
	return bind.CheckedVoid(renderer.CopyEx(texture, src, dst, float64(angle), center, flip))
}

// RenderCopyExF is the floating point variant of RenderCopyEx().
func RenderCopyExF(renderer *sdl.Renderer, texture *sdl.Texture, src *sdl.Rect, dst *sdl.FRect, angle Degrees, center *sdl.FPoint, flip sdl.RendererFlip) mayerror.Void {
	return bind.CheckedVoid(renderer.CopyExF(texture, src, dst, float64(angle), center, flip))
}

// RenderCopyExOpt is a variant of RenderCopyEx() that takes optional
// rectangles and an optional center.
func RenderCopyExOpt(renderer *sdl.Renderer, texture *sdl.Texture, src, dst optional.Optional[sdl.Rect], angle Degrees, center optional.Optional[sdl.Point], flip sdl.RendererFlip) mayerror.Void {
	return RenderCopyEx(renderer, texture, src.Ptr(), dst.Ptr(), angle, center.Ptr(), flip)
}

// RenderDrawRectOpt outlines the rectangle. An empty rect outlines the entire
// rendering target.
func RenderDrawRectOpt(renderer *sdl.Renderer, rect optional.Optional[sdl.Rect]) mayerror.Void {
	return RenderDrawRect(renderer, rect.Ptr())
}

// RenderFillRectOpt fills the rectangle. An empty rect fills the entire
// rendering target.
func RenderFillRectOpt(renderer *sdl.Renderer, rect optional.Optional[sdl.Rect]) mayerror.Void {
	return RenderFillRect(renderer, rect.Ptr())
}

// GetRenderDrawBlendMode returns the blend mode used for drawing operations.
func GetRenderDrawBlendMode(renderer *sdl.Renderer) mayerror.MayError[sdl.BlendMode] {
	var bm sdl.BlendMode
	err := renderer.GetDrawBlendMode(&bm)
	return mayerror.From(bm, err)
}

// GetRendererOutputSize returns the size of the rendering target in pixels.
func GetRendererOutputSize(renderer *sdl.Renderer) mayerror.MayError[Size] {
	w, h, err := renderer.GetOutputSize()
	return mayerror.From(Size{W: w, H: h}, err)
}
