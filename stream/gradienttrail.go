package stream

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledscan/scan"
	"github.com/matt-g-everett/ledscan/util"
)

// A GradientBand paints the scan band: a hue gradient across its thickness
// with brightness shaped by an eased look-up table.
type GradientBand struct {
	gradient  GradientTable
	lut       []float64
	thickness float64
	luminance float64
}

// NewGradientBand creates a band painter for a band of the given thickness.
func NewGradientBand(gradient GradientTable, thickness float64) *GradientBand {
	b := new(GradientBand)
	b.gradient = gradient
	b.thickness = thickness
	b.luminance = 0.6

	lutLength := int(math.Ceil(thickness)) * 8
	if lutLength < 2 {
		lutLength = 2
	}
	b.lut = util.GenerateLut(lutLength)

	return b
}

// Paint draws the band centred at centre along axis onto f.
// A flipped band runs its gradient the other way.
func (b *GradientBand) Paint(f *Frame, axis scan.Axis, centre float64, flipped bool) {
	if b.thickness <= 0 {
		return
	}
	lead := centre - b.thickness*0.5
	length := f.Height()
	if axis == scan.AxisX {
		length = f.Width()
	}

	first := int(math.Max(0, math.Floor(lead)))
	last := int(math.Min(float64(length-1), math.Ceil(lead+b.thickness)))
	for i := first; i <= last; i++ {
		t := (float64(i) + 0.5 - lead) / b.thickness
		if t < 0 || t > 1 {
			continue
		}
		if flipped {
			t = 1 - t
		}
		gain := b.lut[int(t*float64(len(b.lut)-1))]
		colour := b.gradient.GetColor(t, 1.0, b.luminance)
		b.paintLine(f, axis, i, colour, gain)
	}
}

// paintLine blends colour into the row or column at i.
func (b *GradientBand) paintLine(f *Frame, axis scan.Axis, i int, colour colorful.Color, gain float64) {
	if axis == scan.AxisX {
		for y := 0; y < f.Height(); y++ {
			f.Set(i, y, f.At(i, y).BlendHcl(colour, gain))
		}
		return
	}
	for x := 0; x < f.Width(); x++ {
		f.Set(x, i, f.At(x, i).BlendHcl(colour, gain))
	}
}
