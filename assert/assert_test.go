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

package assert_test

import (
	"testing"

	"github.com/jetsetilly/sdl2raii/assert"
	"github.com/jetsetilly/sdl2raii/test"
)

func TestCheck(t *testing.T) {
	// a passing check never panics, whatever the build
	assert.Check(true, "should not fire")

	defer func() {
		r := recover()
		if assert.Enabled {
			test.ExpectInequality(t, r, nil)
			test.ExpectEquality(t, r.(string), "assertion failed: value is 10")
		} else {
			test.ExpectEquality(t, r, nil)
		}
	}()

	assert.Check(false, "value is %d", 10)
}
