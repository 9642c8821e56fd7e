package stream

import (
	"testing"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledscan/scan"
)

var (
	red   = colorful.Color{R: 1}
	green = colorful.Color{G: 1}
	blue  = colorful.Color{B: 1}
)

func testScanConfig() scan.Config {
	c := scan.DefaultConfig()
	c.BandThickness = 2
	c.Duration = time.Second
	c.Cycle = false
	return c
}

func TestScanAnimationReveal(t *testing.T) {
	a := NewScanAnimation(testScanConfig(), 4, 10, DefaultConfig().Colours.Band,
		[]colorful.Color{red, green, blue}, 0)
	if err := a.Scanner().Start(true); err != nil {
		t.Fatal(err)
	}

	a.CalculateFrame(0)
	f := a.CalculateFrame(500)

	// Band centre is at 5: rows 4 and 5. Above it the original shows,
	// below it the clip has not been wiped yet.
	for _, y := range []int{0, 1, 2, 3} {
		if f.At(0, y) != green {
			t.Errorf("row %d = %v, want original", y, f.At(0, y))
		}
	}
	for _, y := range []int{6, 7, 8, 9} {
		c := f.At(3, y)
		if c == green || c.R <= c.G {
			t.Errorf("row %d = %v, want clip colour", y, c)
		}
	}
	if f.At(0, 4) == green && f.At(0, 5) == green {
		t.Error("band not painted")
	}

	f = a.CalculateFrame(1000)
	if a.Scanner().State() != scan.Idle {
		t.Fatalf("state = %v, want idle", a.Scanner().State())
	}
	if a.Original() != blue {
		t.Errorf("original = %v, want the next palette colour", a.Original())
	}
	for y := 0; y < f.Height(); y++ {
		if f.At(1, y) != blue {
			t.Fatalf("row %d = %v after reveal, want original", y, f.At(1, y))
		}
	}
}

func TestScanAnimationUsesDisplayBounds(t *testing.T) {
	a := NewScanAnimation(testScanConfig(), 8, 20, nil, nil, 0)
	snap := a.Scanner().Snapshot()
	if snap.From != -1 || snap.To != 21 {
		t.Errorf("range = %v..%v, want -1..21", snap.From, snap.To)
	}
}

func TestScanAnimationFlipsBand(t *testing.T) {
	c := testScanConfig()
	c.Cycle = true
	a := NewScanAnimation(c, 2, 10, nil, []colorful.Color{red}, 0)
	a.Scanner().Start(false)
	a.CalculateFrame(0)
	a.CalculateFrame(1000)
	if !a.flipped {
		t.Error("band not flipped on the return leg")
	}
	a.Scanner().Stop()
	if a.flipped {
		t.Error("band still flipped after stop")
	}
}

func TestGradientBandPaint(t *testing.T) {
	gradient := GradientTable{
		{0.0, 0.0},
		{180.0, 1.0},
	}
	band := NewGradientBand(gradient, 4)

	plain := NewFrame(1, 10)
	band.Paint(plain, scan.AxisY, 5, false)
	flipped := NewFrame(1, 10)
	band.Paint(flipped, scan.AxisY, 5, true)

	for _, y := range []int{0, 1, 2, 7, 8, 9} {
		if plain.At(0, y) != (colorful.Color{}) {
			t.Errorf("row %d painted outside the band: %v", y, plain.At(0, y))
		}
	}
	if plain.At(0, 3).AlmostEqualRgb(flipped.At(0, 3)) {
		t.Errorf("flipping did not change the gradient: %v", plain.At(0, 3))
	}

	horizontal := NewFrame(10, 1)
	band.Paint(horizontal, scan.AxisX, 0, false)
	if horizontal.At(0, 0) == (colorful.Color{}) || horizontal.At(3, 0) != (colorful.Color{}) {
		t.Errorf("horizontal band = %v", horizontal.pixels)
	}
}
