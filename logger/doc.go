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

// Package logger is the central log for the module. Entries are made up of a
// tag and a detail string. Consecutive entries with the same tag and detail
// are collapsed into a single entry with a repeat count.
//
// The central log is accessed through the package level functions:
//
//	logger.Log(logger.Allow, "sdlraii", "window destroyed")
//	logger.Logf(logger.Allow, "sdlraii", "destroy texture: %v", err)
//
// Every logging request must be accompanied by a Permission. A Permission
// implementation decides whether the request is allowed to create a new
// entry. The Allow value always permits logging.
//
// A separate Logger can be created with NewLogger(). This is mainly useful
// for testing.
package logger
