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
	"github.com/jetsetilly/sdl2raii/optional"
	"github.com/veandco/go-sdl2/sdl"
)

// HasNextEvent returns true if there are events waiting in the queue. The
// event loop is pumped first.
func HasNextEvent() bool {
	sdl.PumpEvents()
	return sdl.HasEvents(sdl.FIRSTEVENT, sdl.LASTEVENT)
}

// NextEvent removes the next event from the queue. The result is empty if the
// queue is empty.
func NextEvent() optional.Optional[sdl.Event] {
	ev := sdl.PollEvent()
	if ev == nil {
		return optional.None[sdl.Event]()
	}
	return optional.Some(ev)
}

// PollEvents calls fn for every waiting event. Polling stops early if fn
// returns false. The return value is false if polling stopped early.
func PollEvents(fn func(ev sdl.Event) bool) bool {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		if !fn(ev) {
			return false
		}
	}
	return true
}
