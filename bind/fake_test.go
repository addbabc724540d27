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
	"github.com/jetsetilly/sdl2raii/mayerror"
	"github.com/jetsetilly/sdl2raii/unique"
)

// foreign simulates a native library with a process wide last error and a
// table of live resources
type foreign struct {
	lastError string
	live      map[*resource]bool
	released  []*resource
	inits     int
	shutdowns int
}

type resource struct {
	id int
}

func newForeign() *foreign {
	return &foreign{live: make(map[*resource]bool)}
}

func (f *foreign) setError(msg string) {
	f.lastError = msg
}

func (f *foreign) getError() mayerror.Error {
	return mayerror.NewError(f.lastError)
}

// create returns nil and sets the last error if id is negative
func (f *foreign) create(id int) *resource {
	if id < 0 {
		f.setError("cannot create resource")
		return nil
	}
	r := &resource{id: id}
	f.live[r] = true
	return r
}

// createChecked is the same as create() but with the error returned alongside
func (f *foreign) createChecked(id int) (*resource, error) {
	r := f.create(id)
	if r == nil {
		return nil, f.getError()
	}
	return r, nil
}

func (f *foreign) destroy(r *resource) {
	delete(f.live, r)
	f.released = append(f.released, r)
}

func (f *foreign) wrap(r *resource) *unique.Handle[*resource] {
	return unique.New(r, f.destroy)
}

// draw returns a negative code if x is out of range
func (f *foreign) draw(x int) int {
	if x < 0 || x > 100 {
		f.setError("coordinate out of range")
		return -1
	}
	return 0
}

func (f *foreign) init(ok bool) int {
	if !ok {
		f.setError("no video device")
		return -1
	}
	f.inits++
	return 0
}

func (f *foreign) shutdown() {
	f.shutdowns++
}
