// This file is part of nstfront.
//
// nstfront is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// nstfront is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with nstfront.  If not, see <https://www.gnu.org/licenses/>.

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new Limiter can be created with:
//
//	lim := limiter.NewFPSLimiter(60)
//
// The play loop then asks the limiter whether a new frame is due:
//
//	for {
//		pollEvents()
//		if lim.Admit() {
//			executeFrame()
//		}
//	}
//
// Admit() never blocks. The caller is responsible for idling if it has
// nothing else to do.
package limiter

import (
	"time"
)

// Gate admits events at a fixed rate.
type Gate interface {
	Admit() bool
	SetLimit(framesPerSecond int)
}

// if the limiter falls this many frames behind it gives up trying to catch
// up and starts timing again from now.
const maxLag = 5

// Limiter implements the Gate interface.
type Limiter struct {
	framesPerSecond int
	secondsPerFrame time.Duration

	// the time the next frame is due
	due time.Time

	now func() time.Time
}

// NewFPSLimiter is the preferred method of initialisation for the Limiter
// type.
func NewFPSLimiter(framesPerSecond int) *Limiter {
	return NewFPSLimiterWithClock(framesPerSecond, time.Now)
}

// NewFPSLimiterWithClock is like NewFPSLimiter but with an alternative source
// of time.
func NewFPSLimiterWithClock(framesPerSecond int, now func() time.Time) *Limiter {
	lim := &Limiter{now: now}
	lim.SetLimit(framesPerSecond)
	return lim
}

// SetLimit changes the rate at which the Limiter admits. The first call to
// Admit() after SetLimit() will always succeed.
func (lim *Limiter) SetLimit(framesPerSecond int) {
	if framesPerSecond < 1 {
		framesPerSecond = 1
	}
	lim.framesPerSecond = framesPerSecond
	lim.secondsPerFrame = time.Second / time.Duration(framesPerSecond)
	lim.due = time.Time{}
}

// Limit returns the current rate.
func (lim *Limiter) Limit() int {
	return lim.framesPerSecond
}

// Admit returns true if a frame is due. The due time advances by exactly one
// frame period so that small delays in calling Admit() do not accumulate.
func (lim *Limiter) Admit() bool {
	t := lim.now()

	if lim.due.IsZero() {
		lim.due = t.Add(lim.secondsPerFrame)
		return true
	}

	if t.Before(lim.due) {
		return false
	}

	lim.due = lim.due.Add(lim.secondsPerFrame)
	if t.Sub(lim.due) > maxLag*lim.secondsPerFrame {
		lim.due = t.Add(lim.secondsPerFrame)
	}

	return true
}

// Remaining returns the time until the next frame is due. It is zero if a
// frame is due now.
func (lim *Limiter) Remaining() time.Duration {
	if lim.due.IsZero() {
		return 0
	}
	d := lim.due.Sub(lim.now())
	if d < 0 {
		return 0
	}
	return d
}
