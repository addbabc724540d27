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

	"github.com/jetsetilly/sdl2raii/assert"
	"github.com/jetsetilly/sdl2raii/mayerror"
	"github.com/jetsetilly/sdl2raii/test"
)

func TestSuccess(t *testing.T) {
	m := mayerror.Success(10)
	test.ExpectSuccess(t, m.Ok())
	test.ExpectEquality(t, m.Success(), 10)

	s := mayerror.Success("hello")
	test.ExpectSuccess(t, s)
	test.ExpectEquality(t, s.Success(), "hello")

	type rect struct{ x, y, w, h int32 }
	r := mayerror.Success(rect{1, 2, 3, 4})
	test.ExpectEquality(t, r.Success(), rect{1, 2, 3, 4})

	// a nil pointer is still a success value
	var p *int
	n := mayerror.Success(p)
	test.ExpectSuccess(t, n.Ok())
	test.ExpectEquality(t, n.Success(), nil)
}

func TestFailure(t *testing.T) {
	e := mayerror.NewError("no video device")
	m := mayerror.Failure[int](e)
	test.ExpectFailure(t, m.Ok())
	test.ExpectFailure(t, m)
	test.ExpectEquality(t, m.Err(), e)
	test.ExpectSuccess(t, m.Err().Equal(mayerror.NewError("no video device")))
	test.ExpectEquality(t, m.Err().Error(), "no video device")
}

func TestEmptyFailure(t *testing.T) {
	// a failure with an empty message is still a failure
	m := mayerror.Failure[int](mayerror.Error{})
	test.ExpectFailure(t, m.Ok())
	test.ExpectEquality(t, m.Err().Message(), "unknown error")

	e := mayerror.NewError("")
	test.ExpectFailure(t, e.IsZero())
	test.ExpectSuccess(t, mayerror.Error{}.IsZero())
}

func TestFrom(t *testing.T) {
	m := mayerror.From(10, nil)
	test.ExpectSuccess(t, m)
	test.ExpectEquality(t, m.Success(), 10)

	m = mayerror.From(10, errors.New("bad value"))
	test.ExpectFailure(t, m)
	test.ExpectEquality(t, m.Err().Message(), "bad value")

	// Error values are adopted unchanged
	e := mayerror.NewError("foreign")
	m = mayerror.From(0, error(e))
	test.ExpectEquality(t, m.Err(), e)
}

func TestGetOrElse(t *testing.T) {
	called := false
	fallback := func(e mayerror.Error) int {
		called = true
		return len(e.Message())
	}

	m := mayerror.Success(10)
	test.ExpectEquality(t, m.GetOrElse(fallback), 10)
	test.ExpectFailure(t, called)

	e := mayerror.NewError("four")
	m = mayerror.Failure[int](e)
	test.ExpectEquality(t, m.GetOrElse(fallback), fallback(e))
	test.ExpectSuccess(t, called)
}

func TestGet(t *testing.T) {
	v, err := mayerror.Success(10).Get()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 10)

	e := mayerror.NewError("failed")
	v, err = mayerror.Failure[int](e).Get()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, v, 0)

	var me mayerror.Error
	test.ExpectSuccess(t, errors.As(err, &me))
	test.ExpectEquality(t, me, e)
}

func TestMust(t *testing.T) {
	test.ExpectEquality(t, mayerror.Success(10).Must(), 10)

	e := mayerror.NewError("failed")
	defer func() {
		r := recover()
		test.ExpectEquality(t, r, any(e))
	}()
	mayerror.Failure[int](e).Must()
	t.Errorf("Must() did not panic")
}

func TestTake(t *testing.T) {
	v := 10
	m := mayerror.Success(&v)
	p := m.Take()
	test.ExpectEquality(t, p, &v)

	// the stored value has gone
	test.ExpectSuccess(t, m.Ok())
	test.ExpectEquality(t, m.Success(), nil)
}

func TestRecast(t *testing.T) {
	e := mayerror.NewError("failed")
	m := mayerror.Failure[int](e)
	s := mayerror.Recast[string](m)
	test.ExpectFailure(t, s)
	test.ExpectEquality(t, s.Err(), e)
}

func TestAssertions(t *testing.T) {
	if !assert.Enabled {
		// without assertions a bad query returns the zero value
		m := mayerror.Failure[int](mayerror.NewError("failed"))
		test.ExpectEquality(t, m.Success(), 0)

		var unset mayerror.MayError[int]
		test.ExpectFailure(t, unset.Ok())
		test.ExpectEquality(t, unset.Success(), 0)
		return
	}

	fails := func(f func()) (panicked bool) {
		defer func() {
			panicked = recover() != nil
		}()
		f()
		return false
	}

	m := mayerror.Failure[int](mayerror.NewError("failed"))
	test.ExpectSuccess(t, fails(func() { m.Success() }))

	s := mayerror.Success(10)
	test.ExpectSuccess(t, fails(func() { s.Err() }))

	var unset mayerror.MayError[int]
	test.ExpectSuccess(t, fails(func() { unset.Success() }))
	test.ExpectSuccess(t, fails(func() { unset.Err() }))
}
