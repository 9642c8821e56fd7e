package scan

import "time"

// Timing maps host time onto a layer's local time.
//
//	local = (now - BeginTime) * Speed + TimeOffset
//
// Every animation on the layer reads local time, so changing Timing freezes
// or resumes all of them together.
type Timing struct {
	Speed      float64
	TimeOffset time.Duration
	BeginTime  time.Duration
}

// NewTiming returns a running timing with no offset.
func NewTiming() *Timing {
	return &Timing{Speed: 1}
}

// Local converts host time to layer time.
func (t *Timing) Local(now time.Duration) time.Duration {
	return time.Duration(float64(now-t.BeginTime)*t.Speed) + t.TimeOffset
}

// Paused reports whether local time is frozen.
func (t *Timing) Paused() bool {
	return t.Speed == 0
}

// Pause freezes local time at its current value.
func (t *Timing) Pause(now time.Duration) {
	if t.Paused() {
		return
	}
	paused := t.Local(now)
	t.Speed = 0
	t.TimeOffset = paused
}

// Resume restarts local time from where Pause left it.
func (t *Timing) Resume(now time.Duration) {
	if !t.Paused() {
		return
	}
	paused := t.TimeOffset
	t.Speed = 1
	t.TimeOffset = 0
	t.BeginTime = 0
	t.BeginTime = t.Local(now) - paused
}

// Reset drops any pause bookkeeping.
func (t *Timing) Reset() {
	t.Speed = 1
	t.TimeOffset = 0
	t.BeginTime = 0
}
