package scan

import (
	"math"
	"time"

	"github.com/fogleman/ease"
)

// Target names an animated layer.
type Target string

const (
	BandTarget Target = "band"
	ClipTarget Target = "clip"
)

// KeyPath names the animated property of a target.
type KeyPath string

const (
	KeyPosition   KeyPath = "position"
	KeyClipOrigin KeyPath = "bounds.origin"
	KeyClipSize   KeyPath = "bounds.size"
	KeyClipAnchor KeyPath = "position.axis"
)

// Animation is a keyframe animation. Either Path or Values is set.
//
// Keyframes are spread evenly over Duration; Timing (ease.Linear when nil)
// maps elapsed time onto keyframe time. With HoldFinal the last keyframe
// stays presented after completion.
type Animation struct {
	Target    Target
	KeyPath   KeyPath
	Path      []Point
	Values    []float64
	Duration  time.Duration
	Timing    func(float64) float64
	HoldFinal bool
}

// Progress is the keyframe-time fraction at elapsed.
func (a Animation) Progress(elapsed time.Duration) float64 {
	if a.Duration <= 0 {
		return 1
	}
	t := float64(elapsed) / float64(a.Duration)
	t = math.Max(0, math.Min(1, t))
	timing := a.Timing
	if timing == nil {
		timing = ease.Linear
	}
	return timing(t)
}

// PointAt samples the path at keyframe fraction t.
func (a Animation) PointAt(t float64) Point {
	if len(a.Path) == 0 {
		return Point{}
	}
	i, f := segment(len(a.Path), t)
	if f == 0 {
		return a.Path[i]
	}
	p, q := a.Path[i], a.Path[i+1]
	return Point{X: p.X + (q.X-p.X)*f, Y: p.Y + (q.Y-p.Y)*f}
}

// ValueAt samples the value sequence at keyframe fraction t.
// A single value holds for the whole animation.
func (a Animation) ValueAt(t float64) float64 {
	if len(a.Values) == 0 {
		return 0
	}
	i, f := segment(len(a.Values), t)
	if f == 0 {
		return a.Values[i]
	}
	return a.Values[i] + (a.Values[i+1]-a.Values[i])*f
}

// segment finds the keyframe index and the fraction towards the next one.
func segment(n int, t float64) (int, float64) {
	segs := n - 1
	if segs <= 0 || t <= 0 {
		return 0, 0
	}
	if t >= 1 {
		return segs, 0
	}
	pos := t * float64(segs)
	i := int(pos)
	return i, pos - float64(i)
}

// TickHandle identifies a scheduled tick callback.
type TickHandle int

type attached struct {
	Animation
	begin    time.Duration
	done     func(finished bool)
	notified bool
}

func (a *attached) notify(finished bool) {
	if a.notified {
		return
	}
	a.notified = true
	if a.done != nil {
		a.done(finished)
	}
}

// Player runs keyframe animations against a host clock and drives tick
// callbacks. It is not safe for concurrent use; the owner calls Tick once
// per display refresh.
type Player struct {
	now    func() time.Duration
	timing *Timing

	animations []*attached
	ticks      map[TickHandle]func()
	tickOrder  []TickHandle
	nextTick   TickHandle
}

// NewPlayer creates a Player reading host time from now.
func NewPlayer(now func() time.Duration) *Player {
	p := new(Player)
	p.now = now
	p.timing = NewTiming()
	p.ticks = make(map[TickHandle]func())
	return p
}

// Now returns host time.
func (p *Player) Now() time.Duration {
	return p.now()
}

// Timing returns the shared layer timing.
func (p *Player) Timing() *Timing {
	return p.timing
}

func (p *Player) local() time.Duration {
	return p.timing.Local(p.now())
}

// Run attaches an animation, replacing any on the same target and key path.
// done is called exactly once.
func (p *Player) Run(a Animation, done func(finished bool)) {
	local := p.local()
	for i, old := range p.animations {
		if old.Target == a.Target && old.KeyPath == a.KeyPath {
			p.animations = append(p.animations[:i], p.animations[i+1:]...)
			old.notify(local-old.begin >= old.Duration)
			break
		}
	}
	p.animations = append(p.animations, &attached{Animation: a, begin: local, done: done})
}

// RemoveAll detaches every animation on t.
func (p *Player) RemoveAll(t Target) {
	kept := p.animations[:0]
	var removed []*attached
	for _, a := range p.animations {
		if a.Target == t {
			removed = append(removed, a)
		} else {
			kept = append(kept, a)
		}
	}
	p.animations = kept
	for _, a := range removed {
		a.notify(false)
	}
}

// Attached reports whether any animation is attached to t.
func (p *Player) Attached(t Target) bool {
	for _, a := range p.animations {
		if a.Target == t {
			return true
		}
	}
	return false
}

func (p *Player) find(t Target, k KeyPath) *attached {
	for _, a := range p.animations {
		if a.Target == t && a.KeyPath == k {
			return a
		}
	}
	return nil
}

// Presented returns the interpolated position of t.
func (p *Player) Presented(t Target) (Point, bool) {
	a := p.find(t, KeyPosition)
	if a == nil || len(a.Path) == 0 {
		return Point{}, false
	}
	return a.PointAt(a.Progress(p.local() - a.begin)), true
}

// PresentedValue returns the interpolated scalar of t at key path k.
func (p *Player) PresentedValue(t Target, k KeyPath) (float64, bool) {
	a := p.find(t, k)
	if a == nil || len(a.Values) == 0 {
		return 0, false
	}
	return a.ValueAt(a.Progress(p.local() - a.begin)), true
}

// ScheduleTick registers fn to run on every Tick.
func (p *Player) ScheduleTick(fn func()) TickHandle {
	p.nextTick++
	h := p.nextTick
	p.ticks[h] = fn
	p.tickOrder = append(p.tickOrder, h)
	return h
}

// CancelTick unregisters a tick callback. Unknown handles are ignored.
func (p *Player) CancelTick(h TickHandle) {
	if _, ok := p.ticks[h]; !ok {
		return
	}
	delete(p.ticks, h)
	for i, o := range p.tickOrder {
		if o == h {
			p.tickOrder = append(p.tickOrder[:i], p.tickOrder[i+1:]...)
			break
		}
	}
}

// Tick runs the tick callbacks and then delivers completions for animations
// whose duration has elapsed in local time.
func (p *Player) Tick() {
	order := append([]TickHandle(nil), p.tickOrder...)
	for _, h := range order {
		if fn, ok := p.ticks[h]; ok {
			fn()
		}
	}

	local := p.local()
	var finished []*attached
	kept := p.animations[:0]
	for _, a := range p.animations {
		if !a.notified && local-a.begin >= a.Duration {
			finished = append(finished, a)
			if !a.HoldFinal {
				continue
			}
		}
		kept = append(kept, a)
	}
	p.animations = kept
	for _, a := range finished {
		a.notify(true)
	}
}
