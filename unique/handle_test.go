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

package unique_test

import (
	"io"
	"testing"

	"github.com/jetsetilly/sdl2raii/test"
	"github.com/jetsetilly/sdl2raii/unique"
)

type resource struct {
	name string
}

// releaser records every call to the release function
type releaser struct {
	released []*resource
}

func (r *releaser) release(p *resource) {
	r.released = append(r.released, p)
}

func TestReleaseOnce(t *testing.T) {
	var r releaser
	res := &resource{name: "window"}

	h := unique.New(res, r.release)
	test.ExpectFailure(t, h.Empty())
	test.ExpectEquality(t, h.Get(), res)

	test.ExpectSuccess(t, h.Close())
	test.DemandEquality(t, len(r.released), 1)
	test.ExpectEquality(t, r.released[0], res)

	// closing a second time does nothing
	test.ExpectSuccess(t, h.Close())
	test.ExpectEquality(t, len(r.released), 1)
	test.ExpectSuccess(t, h.Empty())
}

func TestEmpty(t *testing.T) {
	var r releaser

	h := unique.New[*resource](nil, r.release)
	test.ExpectSuccess(t, h.Empty())
	test.ExpectSuccess(t, h.Close())
	test.ExpectEquality(t, len(r.released), 0)
}

func TestMove(t *testing.T) {
	var r releaser
	res := &resource{name: "texture"}

	src := unique.New(res, r.release)
	dst := src.Move()

	test.ExpectSuccess(t, src.Empty())
	test.ExpectEquality(t, dst.Get(), res)

	// source no longer owns anything
	src.Close()
	test.ExpectEquality(t, len(r.released), 0)

	dst.Close()
	test.DemandEquality(t, len(r.released), 1)
	test.ExpectEquality(t, r.released[0], res)
}

func TestAssign(t *testing.T) {
	var r releaser
	a := &resource{name: "a"}
	b := &resource{name: "b"}

	ha := unique.New(a, r.release)
	hb := unique.New(b, r.release)

	// assigning releases the resource previously held by the destination
	ha.Assign(hb)
	test.DemandEquality(t, len(r.released), 1)
	test.ExpectEquality(t, r.released[0], a)
	test.ExpectEquality(t, ha.Get(), b)
	test.ExpectSuccess(t, hb.Empty())

	// self assignment is a no-op
	ha.Assign(ha)
	test.ExpectEquality(t, len(r.released), 1)
	test.ExpectEquality(t, ha.Get(), b)

	hb.Close()
	test.ExpectEquality(t, len(r.released), 1)

	ha.Close()
	test.DemandEquality(t, len(r.released), 2)
	test.ExpectEquality(t, r.released[1], b)
}

func TestResetAndDetach(t *testing.T) {
	var r releaser
	a := &resource{name: "a"}
	b := &resource{name: "b"}

	h := unique.New(a, r.release)
	h.Reset(b)
	test.DemandEquality(t, len(r.released), 1)
	test.ExpectEquality(t, r.released[0], a)

	// resetting to the same resource does not release it
	h.Reset(b)
	test.ExpectEquality(t, len(r.released), 1)

	p := h.Detach()
	test.ExpectEquality(t, p, b)
	test.ExpectSuccess(t, h.Empty())
	h.Close()
	test.ExpectEquality(t, len(r.released), 1)
}

func TestNonPointerResource(t *testing.T) {
	var released []uint32

	h := unique.New(uint32(2), func(id uint32) {
		released = append(released, id)
	})

	var c io.Closer = h
	c.Close()
	test.DemandEquality(t, len(released), 1)
	test.ExpectEquality(t, released[0], uint32(2))

	// zero id is the empty state
	z := unique.New(uint32(0), func(id uint32) {
		released = append(released, id)
	})
	test.ExpectSuccess(t, z.Empty())
	z.Close()
	test.ExpectEquality(t, len(released), 1)
}
