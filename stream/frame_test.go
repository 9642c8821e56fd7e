package stream

import (
	"encoding/binary"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestFrameSetAt(t *testing.T) {
	f := NewFrame(3, 2)
	red := colorful.Color{R: 1}
	f.Set(2, 1, red)
	if f.At(2, 1) != red {
		t.Errorf("At(2, 1) = %v", f.At(2, 1))
	}
	if f.At(1, 1) == red || f.At(2, 0) == red {
		t.Error("neighbour was painted")
	}
}

func TestFrameMarshalBinary(t *testing.T) {
	f := NewFrame(2, 2)
	f.Fill(colorful.Color{R: 1, G: 0.5, B: 2})

	data, err := f.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 2+4*3 {
		t.Fatalf("len = %d", len(data))
	}
	if n := binary.LittleEndian.Uint16(data); n != 4 {
		t.Errorf("pixel count = %d, want 4", n)
	}
	if data[2] != 255 || data[4] != 255 {
		t.Errorf("first pixel = %v, want clamped red and blue", data[2:5])
	}
}

func TestFrameInterpolate(t *testing.T) {
	a := NewFrame(1, 1)
	b := NewFrame(1, 1)
	white := colorful.Color{R: 1, G: 1, B: 1}
	b.Fill(white)

	if got := a.InterpolateFrame(b, 0).At(0, 0); !got.AlmostEqualRgb(colorful.Color{}) {
		t.Errorf("t=0: %v", got)
	}
	if got := a.InterpolateFrame(b, 1).At(0, 0); !got.AlmostEqualRgb(white) {
		t.Errorf("t=1: %v", got)
	}
}

func TestGradientTableGetColor(t *testing.T) {
	g := GradientTable{
		{0.0, 0.0},
		{100.0, 0.5},
		{200.0, 1.0},
	}

	tests := []struct {
		t   float64
		hue float64
	}{
		{0, 0},
		{0.25, 50},
		{0.75, 150},
		{1.5, 200},
		{-1, 0},
	}
	for _, tt := range tests {
		want := colorful.Hcl(tt.hue, 0.5, 0.5)
		if got := g.GetColor(tt.t, 0.5, 0.5); !got.AlmostEqualRgb(want) {
			t.Errorf("GetColor(%v) = %v, want %v", tt.t, got, want)
		}
	}
}
