package stream

import (
	"errors"
	"testing"
	"time"

	"github.com/matt-g-everett/ledscan/scan"
)

func testConfig() Config {
	c := DefaultConfig()
	c.Display.Width = 4
	c.Display.Height = 8
	c.Display.TransitionSecs = 0
	c.Scan.Duration = 100 * time.Millisecond
	c.Scan.Cycle = false
	return c
}

func TestControllerCommands(t *testing.T) {
	c := NewController(testConfig(), 0)

	if err := c.Handle(CmdStart); err != nil {
		t.Fatal(err)
	}
	if got := c.Snapshot().State; got != scan.Running {
		t.Fatalf("state = %v, want running", got)
	}
	if err := c.Handle(CmdStartClip); !errors.Is(err, scan.ErrAlreadyRunning) {
		t.Errorf("err = %v, want ErrAlreadyRunning", err)
	}

	f := c.CalculateFrame(10)
	if f.Width() != 4 || f.Height() != 8 {
		t.Errorf("frame = %dx%d", f.Width(), f.Height())
	}

	c.Handle(CmdPause)
	if got := c.Snapshot().State; got != scan.Paused {
		t.Errorf("state = %v, want paused", got)
	}
	c.Handle(CmdResume)
	if got := c.Snapshot().State; got != scan.Running {
		t.Errorf("state = %v, want running", got)
	}
	c.Handle(CmdStop)
	if got := c.Snapshot().State; got != scan.Idle {
		t.Errorf("state = %v, want idle", got)
	}
}

func TestControllerReturnsToIdle(t *testing.T) {
	c := NewController(testConfig(), 0)
	c.Handle(CmdStart)

	c.CalculateFrame(0)
	if c.animation != c.scan {
		t.Fatal("scan not shown after start")
	}
	c.CalculateFrame(200)
	if got := c.Snapshot().State; got != scan.Idle {
		t.Fatalf("state = %v, want idle after a single pass", got)
	}
	c.CalculateFrame(233)
	if c.animation != c.idle || c.nextAnimation != nil {
		t.Error("controller did not fade back to the idle animation")
	}
}

func TestControllerStartAfterIdle(t *testing.T) {
	completions := 0
	c := NewController(testConfig(), 0, scan.Handlers{PassComplete: func(bool) { completions++ }})

	var now int64
	for now = 0; now < 10000; now += 33 {
		c.CalculateFrame(now)
	}
	last := now - 33
	if err := c.Handle(CmdStart); err != nil {
		t.Fatal(err)
	}

	c.CalculateFrame(last + 33)
	if got := c.Snapshot().State; got != scan.Running || completions != 0 {
		t.Fatalf("state = %v completions = %d, want a running first pass", got, completions)
	}
	snap := c.Snapshot()
	p, ok := c.scan.player.Presented(scan.BandTarget)
	if !ok || p.Y <= snap.From || p.Y >= snap.To {
		t.Errorf("band at %v, want part way down the first pass", p)
	}

	c.CalculateFrame(last + 100)
	if completions != 1 || c.Snapshot().State != scan.Idle {
		t.Errorf("completions = %d state = %v, want one pass ending after its duration", completions, c.Snapshot().State)
	}
}

func TestControllerFadeReverses(t *testing.T) {
	config := testConfig()
	config.Display.TransitionSecs = 1
	c := NewController(config, 0)

	c.Handle(CmdStart)
	c.CalculateFrame(0)
	c.CalculateFrame(33)
	progress := c.transition
	c.Handle(CmdStop)
	if c.nextAnimation != c.idle || c.animation != c.scan {
		t.Fatal("stop did not reverse the fade")
	}
	if c.transition != 1.0-progress {
		t.Errorf("transition = %v, want %v", c.transition, 1.0-progress)
	}
}

func TestControllerSubmit(t *testing.T) {
	c := NewController(testConfig(), 0)

	if err := c.Submit("rewind"); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("err = %v, want ErrUnknownCommand", err)
	}
	for i := 0; i < cap(c.commands); i++ {
		if err := c.Submit(CmdPause); err != nil {
			t.Fatal(err)
		}
	}
	if err := c.Submit(CmdPause); !errors.Is(err, ErrBusy) {
		t.Errorf("err = %v, want ErrBusy", err)
	}
}

type fakeMessage struct {
	payload []byte
}

func (m fakeMessage) Duplicate() bool   { return false }
func (m fakeMessage) Qos() byte         { return 0 }
func (m fakeMessage) Retained() bool    { return false }
func (m fakeMessage) Topic() string     { return "home/ledscan/control" }
func (m fakeMessage) MessageID() uint16 { return 1 }
func (m fakeMessage) Payload() []byte   { return m.payload }
func (m fakeMessage) Ack()              {}

func TestStreamerControlMessages(t *testing.T) {
	s := &Streamer{config: testConfig()}
	s.Controller = NewController(s.config, 0)

	for _, payload := range []string{`{"command":"start-clip"}`, "pause\n", "jump", `{"command":"stop"}`} {
		s.handleControlMessage(nil, fakeMessage{payload: []byte(payload)})
	}

	want := []Command{CmdStartClip, CmdPause, CmdStop}
	for _, w := range want {
		select {
		case got := <-s.Controller.commands:
			if got != w {
				t.Errorf("command = %v, want %v", got, w)
			}
		default:
			t.Fatalf("missing %v", w)
		}
	}
	select {
	case got := <-s.Controller.commands:
		t.Errorf("unexpected command %v", got)
	default:
	}
}
