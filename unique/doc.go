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

// Package unique provides the owning handle for foreign resources.
//
// A Handle owns exactly one foreign resource, or nothing. The resource is
// released by calling Close(), normally deferred immediately after a
// successful creation:
//
//	tex := sdlraii.CreateTextureFromSurface(renderer, surface)
//	if !tex.Ok() {
//		return tex.Err()
//	}
//	defer tex.Success().Close()
//
// Ownership is moved with Move() and Assign(). The source of a move is left
// empty, so closing it does nothing. A Handle must not be copied: doing so
// would create two owners of the same resource. Handles are only ever given
// out by pointer and each contains a marker that "go vet" will report if a
// Handle value is copied.
//
// Handle is generic over any comparable resource type. For pointer types the
// empty state is the nil pointer. For other types (eg. numeric device ids)
// the empty state is the zero value of the type.
package unique
