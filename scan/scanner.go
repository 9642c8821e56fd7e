package scan

import (
	"log"
	"time"
)

// State is the playback state of a Scanner.
type State int

const (
	Idle State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "idle"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Host is the animation layer a Scanner drives. Player implements it.
type Host interface {
	Run(a Animation, done func(finished bool))
	RemoveAll(t Target)
	Presented(t Target) (Point, bool)
	ScheduleTick(fn func()) TickHandle
	CancelTick(h TickHandle)
	Now() time.Duration
	Timing() *Timing
}

// Surface is the view that shows the band and the clipped image.
type Surface interface {
	// SnapClip replaces the clipped image with the original once a reveal
	// finishes.
	SnapClip()
	// SetBandFlipped turns the band sprite half a turn for the return leg.
	SetBandFlipped(flipped bool)
}

type nopSurface struct{}

func (nopSurface) SnapClip()           {}
func (nopSurface) SetBandFlipped(bool) {}

// Snapshot is a point-in-time view of a Scanner.
type Snapshot struct {
	State     State        `json:"state"`
	Reversed  bool         `json:"reversed"`
	Clip      bool         `json:"clip"`
	Complete  bool         `json:"complete"`
	Pass      uint64       `json:"pass"`
	Direction Direction    `json:"direction"`
	Speed     SpeedProfile `json:"speed"`
	Position  float64      `json:"position"`
	From      float64      `json:"from"`
	To        float64      `json:"to"`
}

// Scanner sweeps a band across a view and optionally reveals an image
// behind it. All methods must be called from the goroutine that ticks the
// host.
type Scanner struct {
	host      Host
	surface   Surface
	observers []Observer

	config  Config
	geom    Geometry
	sweep   SweepRange
	profile SpeedProfile

	state    State
	reversed bool
	complete bool
	clip     bool
	pass     uint64

	tick     TickHandle
	ticking  bool
	probe    probe
	position float64
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithSurface sets the view collaborator.
func WithSurface(s Surface) Option {
	return func(sc *Scanner) {
		if s != nil {
			sc.surface = s
		}
	}
}

// WithObserver registers an observer.
func WithObserver(o Observer) Option {
	return func(sc *Scanner) {
		sc.Observe(o)
	}
}

// New creates an idle Scanner.
func New(host Host, config Config, opts ...Option) *Scanner {
	s := new(Scanner)
	s.host = host
	s.surface = nopSurface{}
	s.complete = true
	s.setConfig(config)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Scanner) setConfig(config Config) {
	s.config = config.Normalize()
	s.geom = s.config.Geometry()
	s.sweep = s.geom.Range()
	s.profile = s.config.Speed
}

// Observe registers an additional observer.
func (s *Scanner) Observe(o Observer) {
	if o != nil {
		s.observers = append(s.observers, o)
	}
}

// Configure replaces the configuration. Only allowed while Idle.
func (s *Scanner) Configure(config Config) error {
	if s.state != Idle {
		return ErrRunning
	}
	s.setConfig(config)
	return nil
}

// Config returns the normalised configuration.
func (s *Scanner) Config() Config {
	return s.config
}

// State returns the playback state.
func (s *Scanner) State() State {
	return s.state
}

// Reversed reports whether the current pass is a return leg.
func (s *Scanner) Reversed() bool {
	return s.reversed
}

// Snapshot captures the scanner state.
func (s *Scanner) Snapshot() Snapshot {
	return Snapshot{
		State:     s.state,
		Reversed:  s.reversed,
		Clip:      s.clip,
		Complete:  s.complete,
		Pass:      s.pass,
		Direction: s.config.Direction,
		Speed:     s.profile,
		Position:  s.position,
		From:      s.sweep.From,
		To:        s.sweep.To,
	}
}

// Start runs the first pass. Clip mode forces a linear pass since the
// reveal only tracks linear motion.
func (s *Scanner) Start(clip bool) error {
	if s.state != Idle {
		return ErrAlreadyRunning
	}

	s.profile = s.config.Speed
	if clip && s.profile != Linear {
		log.Printf("scan: clip mode uses linear speed instead of %v", s.profile)
		s.profile = Linear
	}
	s.clip = clip
	s.reversed = false
	s.complete = false
	s.sweep = s.geom.Range()
	s.state = Running
	s.surface.SetBandFlipped(false)

	s.beginPass()
	return nil
}

// Stop halts everything and returns to Idle. Safe in any state.
func (s *Scanner) Stop() {
	s.pass++
	s.state = Idle
	s.reversed = false
	s.complete = true
	s.sweep = s.geom.Range()
	s.stopTicking()
	s.host.RemoveAll(BandTarget)
	s.host.RemoveAll(ClipTarget)
	s.host.Timing().Reset()
	s.surface.SetBandFlipped(false)
}

// Pause freezes the band and the reveal together.
func (s *Scanner) Pause() {
	if s.state != Running || s.complete {
		return
	}
	s.host.Timing().Pause(s.host.Now())
	s.state = Paused
}

// Resume continues a paused pass from where it stopped.
func (s *Scanner) Resume() {
	if s.state != Paused {
		return
	}
	s.host.Timing().Resume(s.host.Now())
	s.state = Running
}

func (s *Scanner) beginPass() {
	s.pass++
	pass := s.pass
	from, to := s.sweep.From, s.sweep.To

	t := s.geom.BuildTimeline(from, to, s.profile, s.reversed, s.config.Duration)
	s.host.Run(Animation{
		Target:    BandTarget,
		KeyPath:   KeyPosition,
		Path:      t.Path,
		Duration:  t.Duration,
		HoldFinal: true,
	}, func(finished bool) {
		s.passDone(pass, finished)
	})

	if s.clip {
		s.runClip(t.Duration)
	}

	s.stopTicking()
	s.probe = newProbe(s.config.Threshold*s.sweep.AxisExtent, from, to)
	s.tick = s.host.ScheduleTick(func() {
		s.sample(pass)
	})
	s.ticking = true
}

func (s *Scanner) runClip(duration time.Duration) {
	k, err := s.geom.BuildClipKeyframes(s.profile, s.reversed)
	if err != nil {
		log.Printf("scan: no reveal for this pass: %v", err)
		return
	}
	tracks := []struct {
		key    KeyPath
		values []float64
	}{
		{KeyClipOrigin, k.Origin},
		{KeyClipSize, k.Size},
		{KeyClipAnchor, k.Anchor},
	}
	for _, track := range tracks {
		s.host.Run(Animation{
			Target:    ClipTarget,
			KeyPath:   track.key,
			Values:    track.values,
			Duration:  duration,
			HoldFinal: true,
		}, nil)
	}
}

func (s *Scanner) passDone(pass uint64, finished bool) {
	if !finished || pass != s.pass || s.state == Idle {
		return
	}

	s.complete = true
	if s.clip {
		s.surface.SnapClip()
	}
	reversed := s.reversed
	for _, o := range s.observers {
		o.OnPassComplete(reversed)
	}
	// An observer may have stopped or restarted the scanner.
	if pass != s.pass || s.state == Idle {
		return
	}

	if !s.config.Cycle {
		s.Stop()
		return
	}

	s.reversed = !s.reversed
	s.sweep = s.sweep.Swapped()
	s.surface.SetBandFlipped(s.reversed)
	s.complete = false
	s.beginPass()
}

func (s *Scanner) sample(pass uint64) {
	if pass != s.pass || s.state == Idle {
		return
	}
	p, ok := s.host.Presented(BandTarget)
	if !ok {
		return
	}

	// Report the band's frame origin, not its centre.
	value := p.On(s.geom.Direction.Axis()) - s.geom.Thickness*0.5
	s.position = value
	for _, o := range s.observers {
		o.OnProgress(value)
	}
	if pass != s.pass || s.state == Idle {
		return
	}

	if s.probe.reached(value) {
		threshold := s.probe.threshold
		s.stopTicking()
		for _, o := range s.observers {
			o.OnThresholdReached(threshold)
		}
	}
}

func (s *Scanner) stopTicking() {
	if s.ticking {
		s.host.CancelTick(s.tick)
		s.ticking = false
	}
}
