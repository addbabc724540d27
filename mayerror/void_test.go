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

package mayerror_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/sdl2raii/mayerror"
	"github.com/jetsetilly/sdl2raii/test"
)

func TestVoid(t *testing.T) {
	v := mayerror.OK()
	test.ExpectSuccess(t, v)
	test.ExpectSuccess(t, v.Get())
	v.Success()
	v.Must()

	// zero value is a success
	var z mayerror.Void
	test.ExpectSuccess(t, z.Ok())

	e := mayerror.NewError("renderer lost")
	f := mayerror.Fail(e)
	test.ExpectFailure(t, f)
	test.ExpectEquality(t, f.Err(), e)
	test.ExpectFailure(t, f.Get())

	// an empty error still fails
	test.ExpectFailure(t, mayerror.Fail(mayerror.Error{}))
}

func TestVoidFromErr(t *testing.T) {
	test.ExpectSuccess(t, mayerror.FromErr(nil))

	v := mayerror.FromErr(errors.New("bad"))
	test.ExpectFailure(t, v)
	test.ExpectEquality(t, v.Err().Message(), "bad")
}

func TestVoidMust(t *testing.T) {
	e := mayerror.NewError("failed")
	defer func() {
		test.ExpectEquality(t, recover(), any(e))
	}()
	mayerror.Fail(e).Must()
	t.Errorf("Must() did not panic")
}

func TestPromote(t *testing.T) {
	m := mayerror.Promote(mayerror.OK(), "value")
	test.ExpectSuccess(t, m)
	test.ExpectEquality(t, m.Success(), "value")

	e := mayerror.NewError("failed")
	m = mayerror.Promote(mayerror.Fail(e), "value")
	test.ExpectFailure(t, m)
	test.ExpectEquality(t, m.Err(), e)
}
