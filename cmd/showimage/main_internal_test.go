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

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/sdl2raii/logger"
	"github.com/jetsetilly/sdl2raii/test"
)

func TestEchoLog(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "log"))
	test.DemandSuccess(t, err)
	defer f.Close()

	// a file is not a terminal so the echo is not colorized
	echoLog(f)
	logger.Log(logger.Allow, "showimage", "echo test")
	logger.SetEcho(nil)

	b, err := os.ReadFile(f.Name())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(b), "showimage: echo test\n")
}
