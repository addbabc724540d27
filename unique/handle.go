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

package unique

// noCopy is detected by the copylocks check of "go vet".
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Handle owns a single foreign resource of type R. The zero value of R
// represents the empty Handle.
type Handle[R comparable] struct {
	noCopy noCopy

	raw     R
	release func(R)
}

// New creates a Handle that owns raw. The release function will be called
// exactly once with raw when the resource is released. The release function
// must not fail.
//
// If raw is the zero value of R then the Handle is empty and release is never
// called.
func New[R comparable](raw R, release func(R)) *Handle[R] {
	return &Handle[R]{
		raw:     raw,
		release: release,
	}
}

// Get returns the owned resource without affecting ownership. The returned
// value must not outlive the Handle.
func (h *Handle[R]) Get() R {
	return h.raw
}

// Empty returns true if the Handle does not own a resource.
func (h *Handle[R]) Empty() bool {
	var zero R
	return h.raw == zero
}

// Close releases the owned resource. Calling Close() on an empty Handle does
// nothing. Close() always returns nil; the error return allows the Handle to
// be used as an io.Closer.
func (h *Handle[R]) Close() error {
	var zero R
	if h.raw == zero {
		return nil
	}

	raw := h.raw
	h.raw = zero
	if h.release != nil {
		h.release(raw)
	}

	return nil
}

// Move returns a new Handle that owns the resource of h. The original Handle
// is left empty.
func (h *Handle[R]) Move() *Handle[R] {
	n := &Handle[R]{
		raw:     h.raw,
		release: h.release,
	}
	var zero R
	h.raw = zero
	return n
}

// Assign moves the resource of src to h. Any resource already owned by h is
// released first and src is left empty. Assigning a Handle to itself has no
// effect.
func (h *Handle[R]) Assign(src *Handle[R]) {
	if h == src {
		return
	}

	_ = h.Close()

	var zero R
	h.raw = src.raw
	h.release = src.release
	src.raw = zero
}

// Reset releases the owned resource and takes ownership of raw. The release
// function is unchanged.
func (h *Handle[R]) Reset(raw R) {
	if raw == h.raw {
		return
	}
	_ = h.Close()
	h.raw = raw
}

// Detach gives up ownership of the resource without releasing it. The
// Handle is left empty and the caller is responsible for the resource.
func (h *Handle[R]) Detach() R {
	raw := h.raw
	var zero R
	h.raw = zero
	return raw
}
