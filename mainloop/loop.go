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
	"sync"
	"sync/atomic"
	"time"

	"github.com/eapache/queue"
	"github.com/jetsetilly/sdl2raii/logger"
)

// Logging controls whether the start and end of a loop are logged.
var Logging logger.Permission = logger.Deny

// Loop calls an iteration function repeatedly until it is cancelled.
type Loop struct {
	limiter *FpsLimiter

	cancelled atomic.Bool

	// functions pushed from other goroutines. run on the loop goroutine at
	// the start of every iteration
	pushedCrit sync.Mutex
	pushed     *queue.Queue

	frames  int
	started time.Time
	elapsed time.Duration
}

// NewLoop is the preferred method of initialisation for the Loop type. A nil
// limiter means the loop runs as fast as possible.
func NewLoop(limiter *FpsLimiter) *Loop {
	return &Loop{
		limiter: limiter,
		pushed:  queue.New(),
	}
}

// Run calls iterate until Cancel() is called. Cancel() can be called from
// inside the iterate function, in which case that is the last iteration.
//
// Calling Run() again after cancellation starts a new run.
func (l *Loop) Run(iterate func()) {
	l.cancelled.Store(false)
	l.frames = 0
	l.started = time.Now()

	logger.Log(Logging, "mainloop", "started")

	for !l.cancelled.Load() {
		if l.limiter != nil {
			l.limiter.Wait()
		}
		l.service()
		iterate()
		l.frames++
	}

	l.elapsed = time.Since(l.started)

	logger.Logf(Logging, "mainloop", "ended after %d frames", l.frames)
}

// PushFunction arranges for f to be called on the loop goroutine before the
// next iteration. Safe to call from any goroutine. Functions are called in the
// order they were pushed.
//
// Functions pushed while the loop is not running are called when the next
// run starts.
func (l *Loop) PushFunction(f func()) {
	l.pushedCrit.Lock()
	defer l.pushedCrit.Unlock()
	l.pushed.Add(f)
}

// run all pushed functions
func (l *Loop) service() {
	for {
		l.pushedCrit.Lock()
		if l.pushed.Length() == 0 {
			l.pushedCrit.Unlock()
			return
		}
		f := l.pushed.Remove().(func())
		l.pushedCrit.Unlock()

		// called without the lock so that f can push more functions
		f()
	}
}

// Cancel the loop. Safe to call from any goroutine.
func (l *Loop) Cancel() {
	l.cancelled.Store(true)
}

// Frames returns the number of iterations of the most recent run.
func (l *Loop) Frames() int {
	return l.frames
}

// FPS returns the measured frames per second of the most recent run and the
// accuracy of that value as a percentage of the limiter rate. The accuracy is
// zero if there is no limiter.
func (l *Loop) FPS() (fps float64, accuracy float64) {
	target := 0
	if l.limiter != nil {
		target = l.limiter.Limit()
	}
	return CalcFPS(l.frames, l.elapsed.Seconds(), target)
}

// CalcFPS takes the number of frames and duration (in seconds) and returns
// the frames-per-second and the accuracy of that value as a percentage of the
// target rate.
func CalcFPS(numFrames int, duration float64, target int) (fps float64, accuracy float64) {
	if duration <= 0 {
		return 0, 0
	}
	fps = float64(numFrames) / duration
	if target > 0 {
		accuracy = 100 * fps / float64(target)
	}
	return fps, accuracy
}
