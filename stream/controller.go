package stream

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledscan/scan"
)

// Command is a playback request for the Controller.
type Command string

const (
	CmdStart     Command = "start"
	CmdStartClip Command = "start-clip"
	CmdStop      Command = "stop"
	CmdPause     Command = "pause"
	CmdResume    Command = "resume"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBusy           = errors.New("command queue full")
)

// ParseCommand validates a command name.
func ParseCommand(s string) (Command, error) {
	switch c := Command(s); c {
	case CmdStart, CmdStartClip, CmdStop, CmdPause, CmdResume:
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCommand, s)
}

// A FrameSink receives every rendered frame.
type FrameSink interface {
	SendFrame(f *Frame)
}

// Controller that owns the scanner and cross-fades between the idle
// backdrop and the scan. All scanner calls happen on the Run goroutine.
type Controller struct {
	scan          *ScanAnimation
	idle          Animation
	animation     Animation
	nextAnimation Animation

	runtimeMs           int64
	frameRate           float64
	transition          float64
	transitionTimeSecs  float64
	transitionIncrement float64

	commands chan Command
	mu       sync.RWMutex
	snapshot scan.Snapshot
}

// NewController creates an instance of a Controller.
func NewController(config Config, runtimeMs int64, observers ...scan.Observer) *Controller {
	c := new(Controller)

	palette := config.Palette()
	c.scan = NewScanAnimation(config.Scan, config.Display.Width, config.Display.Height,
		config.Colours.Band, palette, runtimeMs, observers...)

	backColour, _ := colorful.Hex(config.Colours.IdleBack)
	foreColour, _ := colorful.Hex(config.Colours.IdleFore)
	numParticles := config.Display.Width * config.Display.Height / 20
	c.idle = NewTwinkle(config.Display.Width, config.Display.Height, numParticles, foreColour, backColour)
	c.animation = c.idle
	c.nextAnimation = nil

	c.runtimeMs = runtimeMs
	c.frameRate = config.Display.FrameRate
	if c.frameRate <= 0 {
		c.frameRate = 30
	}
	c.transition = 0.0
	c.transitionTimeSecs = config.Display.TransitionSecs
	c.transitionIncrement = 1.0
	if c.transitionTimeSecs > 0 {
		c.transitionIncrement = 1.0 / (c.frameRate * c.transitionTimeSecs)
	}

	c.commands = make(chan Command, 16)
	c.snapshot = c.scan.Scanner().Snapshot()

	return c
}

// Submit queues a command for the Run loop.
func (c *Controller) Submit(cmd Command) error {
	if _, err := ParseCommand(string(cmd)); err != nil {
		return err
	}
	select {
	case c.commands <- cmd:
		return nil
	default:
		return ErrBusy
	}
}

// Snapshot returns the scanner state as of the last frame.
func (c *Controller) Snapshot() scan.Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot
}

// Handle applies a command immediately. Only call it from the goroutine
// that calculates frames.
func (c *Controller) Handle(cmd Command) error {
	// The scan clock only moves while the scan is drawn; catch it up so a
	// pass never starts at a stale time.
	c.scan.Advance(c.runtimeMs)
	scanner := c.scan.Scanner()
	var err error
	switch cmd {
	case CmdStart, CmdStartClip:
		err = scanner.Start(cmd == CmdStartClip)
		if err == nil {
			c.fadeTo(c.scan)
		}
	case CmdStop:
		scanner.Stop()
		c.fadeTo(c.idle)
	case CmdPause:
		scanner.Pause()
	case CmdResume:
		scanner.Resume()
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
	c.publishSnapshot()
	return err
}

func (c *Controller) fadeTo(a Animation) {
	if c.nextAnimation == nil && c.animation == a {
		return
	}
	if c.nextAnimation == a {
		return
	}
	if c.nextAnimation != nil {
		// Reverse a fade that is still in progress.
		c.animation, c.nextAnimation = c.nextAnimation, c.animation
		c.transition = 1.0 - c.transition
		return
	}
	c.nextAnimation = a
	c.transition = 0.0
}

func (c *Controller) publishSnapshot() {
	c.mu.Lock()
	c.snapshot = c.scan.Scanner().Snapshot()
	c.mu.Unlock()
}

// CalculateFrame renders the current animation, blending into the next one
// while a transition is running.
func (c *Controller) CalculateFrame(runtimeMs int64) *Frame {
	var f *Frame
	c.runtimeMs = runtimeMs
	c.scan.Advance(runtimeMs)

	// A single pass that ran out returns to the backdrop.
	if c.animation == c.scan && c.nextAnimation == nil && c.scan.Scanner().State() == scan.Idle {
		c.fadeTo(c.idle)
	}

	if c.nextAnimation != nil {
		f1 := c.animation.CalculateFrame(runtimeMs)
		f2 := c.nextAnimation.CalculateFrame(runtimeMs)
		f = f1.InterpolateFrame(f2, c.transition)
		c.transition += c.transitionIncrement

		if c.transition >= 1.0 {
			c.animation = c.nextAnimation
			c.nextAnimation = nil
			c.transition = 0.0
		}
	} else {
		f = c.animation.CalculateFrame(runtimeMs)
	}

	c.publishSnapshot()
	return f
}

// Run renders frames at the configured frame rate into sink and applies
// queued commands between frames until ctx is done.
func (c *Controller) Run(ctx context.Context, sink FrameSink) {
	interval := time.Duration(float64(time.Second) / c.frameRate)
	publishTimer := time.NewTicker(interval)
	defer publishTimer.Stop()

	start := time.Now()
	base := c.runtimeMs
	for {
		select {
		case <-ctx.Done():
			return
		case cmd := <-c.commands:
			if err := c.Handle(cmd); err != nil {
				log.Printf("Command %s: %v", cmd, err)
			}
		case <-publishTimer.C:
			runtimeMs := base + time.Since(start).Milliseconds()
			sink.SendFrame(c.CalculateFrame(runtimeMs))
		}
	}
}
