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

package sdlraii_test

import (
	"testing"

	"github.com/jetsetilly/sdl2raii/sdlraii"
	"github.com/jetsetilly/sdl2raii/test"
	"github.com/veandco/go-sdl2/sdl"
)

func TestScopedInit(t *testing.T) {
	g := sdlraii.ScopedInit(sdlraii.InitEvents)
	test.DemandSuccess(t, g)

	guard := g.Success()
	test.ExpectSuccess(t, guard.Active())
	test.ExpectInequality(t, sdlraii.WasInit(sdlraii.InitEvents), 0)

	// the event queue is empty after draining it
	sdlraii.PollEvents(func(_ sdl.Event) bool { return true })
	test.ExpectFailure(t, sdlraii.NextEvent().Present())

	test.ExpectSuccess(t, guard.Close())
	test.ExpectFailure(t, guard.Active())
	test.ExpectEquality(t, sdlraii.WasInit(sdlraii.InitEvents), 0)

	// closing a second time does nothing
	test.ExpectSuccess(t, guard.Close())
}

func TestScopedSubSystem(t *testing.T) {
	g := sdlraii.ScopedInit(0)
	test.DemandSuccess(t, g)
	guard := g.Success()
	defer guard.Close()

	s := sdlraii.ScopedSubSystem(sdlraii.InitTimer)
	test.DemandSuccess(t, s)
	sub := s.Success()
	test.ExpectInequality(t, sdlraii.WasInit(sdlraii.InitTimer), 0)

	test.ExpectSuccess(t, sub.Close())
	test.ExpectEquality(t, sdlraii.WasInit(sdlraii.InitTimer), 0)
}
