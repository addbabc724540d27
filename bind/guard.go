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

package bind

import (
	"github.com/jetsetilly/sdl2raii/logger"
	"github.com/jetsetilly/sdl2raii/mayerror"
)

// Logging controls whether the shutdown of a Guard is logged. It is denied by
// default.
var Logging logger.Permission = logger.Deny

// Guard represents a successfully initialised subsystem. Closing the Guard
// shuts the subsystem down.
//
// A Guard only exists if initialisation succeeded. See Scoped().
type Guard struct {
	name     string
	shutdown func()
}

// Close shuts down the subsystem. Only the first call has any effect.
// Close() always returns nil; the error return allows the Guard to be used as
// an io.Closer.
func (g *Guard) Close() error {
	if g.shutdown == nil {
		return nil
	}

	shutdown := g.shutdown
	g.shutdown = nil
	shutdown()

	logger.Logf(Logging, "bind", "%s: shutdown", g.name)

	return nil
}

// Active returns true if the Guard has not been closed.
func (g *Guard) Active() bool {
	return g.shutdown != nil
}

// Scoped calls init and returns a Guard if it succeeds. The Guard calls
// shutdown when it is closed. If init fails then no Guard is created and
// shutdown is never called.
//
// The name argument is used when logging.
func Scoped(name string, init func() error, shutdown func()) mayerror.MayError[*Guard] {
	if err := init(); err != nil {
		return mayerror.Failure[*Guard](mayerror.FromError(err))
	}
	return mayerror.Success(&Guard{name: name, shutdown: shutdown})
}

// ScopedCode is the same as Scoped() but for init functions that return a
// non-zero code on failure.
func ScopedCode(name string, init func() int, shutdown func(), last LastError) mayerror.MayError[*Guard] {
	if r := NonZeroVoid(init(), last); !r.Ok() {
		return mayerror.Failure[*Guard](r.Err())
	}
	return mayerror.Success(&Guard{name: name, shutdown: shutdown})
}
