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

package bind_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/sdl2raii/bind"
	"github.com/jetsetilly/sdl2raii/test"
)

func TestNonZero(t *testing.T) {
	f := newForeign()

	r := bind.NonZero(f.draw(10), f.getError)
	test.ExpectSuccess(t, r)
	test.ExpectEquality(t, r.Success(), 0)

	r = bind.NonZero(f.draw(1000), f.getError)
	test.ExpectFailure(t, r)
	test.ExpectEquality(t, r.Err().Message(), "coordinate out of range")

	// positive codes are failures too
	r = bind.NonZero(1, f.getError)
	test.ExpectFailure(t, r)

	test.ExpectSuccess(t, bind.NonZeroVoid(f.draw(10), f.getError))
	test.ExpectFailure(t, bind.NonZeroVoid(f.draw(-1), f.getError))
}

func TestNegative(t *testing.T) {
	f := newForeign()

	// positive values are success values
	r := bind.Negative(int32(5), f.getError)
	test.ExpectSuccess(t, r)
	test.ExpectEquality(t, r.Success(), int32(5))

	r = bind.Negative(int32(f.draw(-5)), f.getError)
	test.ExpectFailure(t, r)
	test.ExpectEquality(t, r.Err().Message(), "coordinate out of range")

	test.ExpectSuccess(t, bind.NegativeVoid(f.draw(10), f.getError))
	test.ExpectFailure(t, bind.NegativeVoid(f.draw(-1), f.getError))
}

func TestNonNil(t *testing.T) {
	f := newForeign()

	r := bind.NonNil(f.create(1), f.getError)
	test.ExpectSuccess(t, r)
	test.ExpectEquality(t, r.Success().id, 1)

	r = bind.NonNil(f.create(-1), f.getError)
	test.ExpectFailure(t, r)
	test.ExpectEquality(t, r.Err().Message(), "cannot create resource")
}

func TestChecked(t *testing.T) {
	r := bind.Checked(10, nil)
	test.ExpectSuccess(t, r)
	test.ExpectEquality(t, r.Success(), 10)

	r = bind.Checked(0, errors.New("failed"))
	test.ExpectFailure(t, r)
	test.ExpectEquality(t, r.Err().Message(), "failed")

	test.ExpectSuccess(t, bind.CheckedVoid(nil))
	test.ExpectFailure(t, bind.CheckedVoid(errors.New("failed")))
}

func TestOwned(t *testing.T) {
	f := newForeign()

	// a failing create function yields the last error at the time of the call
	r := bind.Owned(f.create(-1), f.getError, f.wrap)
	test.ExpectFailure(t, r)
	test.ExpectEquality(t, r.Err().Message(), "cannot create resource")

	// a later error does not affect the earlier result
	f.setError("something else")
	test.ExpectEquality(t, r.Err().Message(), "cannot create resource")

	r = bind.Owned(f.create(7), f.getError, f.wrap)
	test.DemandSuccess(t, r)
	h := r.Success()
	test.ExpectEquality(t, h.Get().id, 7)
	test.ExpectSuccess(t, f.live[h.Get()])

	h.Close()
	test.DemandEquality(t, len(f.released), 1)
	test.ExpectEquality(t, f.released[0].id, 7)
	test.ExpectEquality(t, len(f.live), 0)
}

func TestOwnedChecked(t *testing.T) {
	f := newForeign()

	p, err := f.createChecked(-1)
	r := bind.OwnedChecked(p, err, f.wrap)
	test.ExpectFailure(t, r)
	test.ExpectEquality(t, r.Err().Message(), "cannot create resource")

	p, err = f.createChecked(3)
	r = bind.OwnedChecked(p, err, f.wrap)
	test.DemandSuccess(t, r)
	h := r.Success()
	test.ExpectEquality(t, h.Get(), p)

	// moving the handle out of the result leaves one owner
	m := h.Move()
	h.Close()
	test.ExpectEquality(t, len(f.released), 0)
	m.Close()
	test.ExpectEquality(t, len(f.released), 1)

	// a nil resource without an error is still a failure
	r = bind.OwnedChecked[*resource](nil, nil, f.wrap)
	test.ExpectFailure(t, r)
}
