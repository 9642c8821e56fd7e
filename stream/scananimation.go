package stream

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledscan/scan"
)

// A ScanAnimation runs a scan.Scanner on an LED matrix. The scanner's
// geometry is in pixels.
//
// The original layer is a solid palette colour. In clip mode the clip layer
// shows the previous colour inside the reveal rectangle until the band has
// wiped it away; at the end of each pass the clip takes on the original
// colour and the original moves to the next palette entry.
type ScanAnimation struct {
	player  *scan.Player
	scanner *scan.Scanner
	band    *GradientBand

	width     int
	height    int
	startMs   int64
	runtimeMs int64

	palette    []colorful.Color
	original   int
	clipColour colorful.Color
	flipped    bool
}

// NewScanAnimation creates a ScanAnimation whose clock starts at runtimeMs.
func NewScanAnimation(config scan.Config, width, height int, gradient GradientTable,
	palette []colorful.Color, runtimeMs int64, observers ...scan.Observer) *ScanAnimation {

	a := new(ScanAnimation)
	a.width = width
	a.height = height
	a.startMs = runtimeMs
	a.runtimeMs = runtimeMs
	a.palette = palette
	if len(a.palette) == 0 {
		a.palette = []colorful.Color{{}}
	}
	a.clipColour = a.palette[0]
	a.original = 1 % len(a.palette)

	if config.Bounds == (scan.Bounds{}) {
		config.Bounds = scan.Bounds{Width: float64(width), Height: float64(height)}
	}

	a.player = scan.NewPlayer(a.now)
	a.scanner = scan.New(a.player, config, scan.WithSurface(a))
	a.scanner.Observe(scan.Handlers{PassComplete: a.refresh})
	for _, o := range observers {
		a.scanner.Observe(o)
	}
	a.band = NewGradientBand(gradient, a.scanner.Config().BandThickness)

	return a
}

func (a *ScanAnimation) now() time.Duration {
	return time.Duration(a.runtimeMs-a.startMs) * time.Millisecond
}

// Scanner returns the scanner driven by this animation.
func (a *ScanAnimation) Scanner() *scan.Scanner {
	return a.scanner
}

// Original is the colour currently behind the reveal.
func (a *ScanAnimation) Original() colorful.Color {
	return a.palette[a.original]
}

// SnapClip implements scan.Surface.
func (a *ScanAnimation) SnapClip() {
	a.clipColour = a.Original()
}

// SetBandFlipped implements scan.Surface.
func (a *ScanAnimation) SetBandFlipped(flipped bool) {
	a.flipped = flipped
}

// refresh moves the original to the next palette entry once a reveal has
// finished.
func (a *ScanAnimation) refresh(reversed bool) {
	if !a.scanner.Snapshot().Clip {
		return
	}
	a.original = (a.original + 1) % len(a.palette)
}

// Advance moves the scan clock forward to runtimeMs without ticking the
// player. The clock never runs backwards.
func (a *ScanAnimation) Advance(runtimeMs int64) {
	if runtimeMs > a.runtimeMs {
		a.runtimeMs = runtimeMs
	}
}

// CalculateFrame advances the scanner to runtimeMs and renders it.
func (a *ScanAnimation) CalculateFrame(runtimeMs int64) *Frame {
	a.Advance(runtimeMs)
	a.player.Tick()

	f := NewFrame(a.width, a.height)
	f.Fill(a.Original())

	axis := a.scanner.Config().Direction.Axis()
	if lo, hi, shift, ok := a.clipSpan(); ok {
		a.paintClip(f, axis, lo, hi, shift)
	}
	if p, ok := a.player.Presented(scan.BandTarget); ok {
		a.band.Paint(f, axis, p.On(axis), a.flipped)
	}

	return f
}

// clipSpan returns the visible reveal rectangle along the axis and the
// offset of the clipped content.
func (a *ScanAnimation) clipSpan() (lo, hi, shift float64, ok bool) {
	size, ok := a.player.PresentedValue(scan.ClipTarget, scan.KeyClipSize)
	if !ok {
		return 0, 0, 0, false
	}
	anchor, _ := a.player.PresentedValue(scan.ClipTarget, scan.KeyClipAnchor)
	origin, _ := a.player.PresentedValue(scan.ClipTarget, scan.KeyClipOrigin)

	lo = anchor - size*0.5
	hi = anchor + size*0.5
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo, hi, lo - origin, true
}

// paintClip fills the reveal rectangle with the clip colour, shaded by the
// content coordinate so the picture stays put while the rectangle moves.
func (a *ScanAnimation) paintClip(f *Frame, axis scan.Axis, lo, hi, shift float64) {
	length, cross := f.Height(), f.Width()
	if axis == scan.AxisX {
		length, cross = f.Width(), f.Height()
	}
	if length == 0 {
		return
	}

	for i := 0; i < length; i++ {
		c := float64(i) + 0.5
		if c < lo || c >= hi {
			continue
		}
		shade := (c - shift) / float64(length) * 0.3
		colour := a.clipColour.BlendHcl(colorful.Color{}, shade).Clamped()
		for j := 0; j < cross; j++ {
			if axis == scan.AxisX {
				f.Set(i, j, colour)
			} else {
				f.Set(j, i, colour)
			}
		}
	}
}
