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

package mainloop

import (
	"time"

	"github.com/jetsetilly/sdl2raii/curated"
)

// FpsLimiter will trigger every frames per second.
type FpsLimiter struct {
	framesPerSecond int
	ticker          *time.Ticker
}

// NewFPSLimiter is the preferred method of initialisation for the FpsLimiter
// type.
func NewFPSLimiter(framesPerSecond int) (*FpsLimiter, error) {
	lim := &FpsLimiter{}
	if err := lim.SetLimit(framesPerSecond); err != nil {
		return nil, err
	}
	return lim, nil
}

// SetLimit changes the rate at which the limiter triggers.
func (lim *FpsLimiter) SetLimit(framesPerSecond int) error {
	if framesPerSecond <= 0 {
		return curated.Errorf("limiter: frames per second must be positive (%d)", framesPerSecond)
	}

	lim.framesPerSecond = framesPerSecond
	d := time.Second / time.Duration(framesPerSecond)

	if lim.ticker == nil {
		lim.ticker = time.NewTicker(d)
	} else {
		lim.ticker.Reset(d)
	}

	return nil
}

// Limit returns the current frames per second.
func (lim *FpsLimiter) Limit() int {
	return lim.framesPerSecond
}

// Wait will block until the next trigger.
func (lim *FpsLimiter) Wait() {
	<-lim.ticker.C
}

// HasWaited will return true if the trigger time has already passed and false
// if it is still yet to happen. It does not block.
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.ticker.C:
		return true
	default:
		return false
	}
}

// Stop the limiter. It should not be used after this.
func (lim *FpsLimiter) Stop() {
	lim.ticker.Stop()
}
