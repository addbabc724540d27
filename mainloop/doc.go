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

// Package mainloop runs the main loop of an SDL program. Every iteration is
// run on the calling goroutine, which should be the main thread, and the
// loop can be limited to a fixed rate with an FpsLimiter.
//
//	lim, _ := mainloop.NewFPSLimiter(60)
//	defer lim.Stop()
//
//	loop := mainloop.NewLoop(lim)
//	loop.Run(func() {
//		if !sdlraii.PollEvents(handleEvent) {
//			loop.Cancel()
//		}
//		render()
//	})
package mainloop
