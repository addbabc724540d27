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

//go:build assertions

package assert

import "fmt"

// Enabled is true if the package was compiled with the assertions build tag.
const Enabled = true

// Check panics if cond is false. The panic message is formatted with
// fmt.Sprintf() from msg and args.
func Check(cond bool, msg string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("assertion failed: "+msg, args...))
	}
}
