package stream

import (
	"encoding/binary"

	"github.com/lucasb-eyer/go-colorful"
)

// Frame represents a frame of RGB pixels to display on an LED matrix,
// stored row by row.
type Frame struct {
	width  int
	height int
	pixels []colorful.Color
}

// NewFrame creates a new black Frame instance.
func NewFrame(width, height int) *Frame {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	f := new(Frame)
	f.width = width
	f.height = height
	f.pixels = make([]colorful.Color, width*height)
	return f
}

// Width of the frame in pixels.
func (f *Frame) Width() int {
	return f.width
}

// Height of the frame in pixels.
func (f *Frame) Height() int {
	return f.height
}

// At returns the colour at x, y.
func (f *Frame) At(x, y int) colorful.Color {
	return f.pixels[y*f.width+x]
}

// Set sets the colour at x, y.
func (f *Frame) Set(x, y int, c colorful.Color) {
	f.pixels[y*f.width+x] = c
}

// Fill paints every pixel.
func (f *Frame) Fill(c colorful.Color) {
	for i := range f.pixels {
		f.pixels[i] = c
	}
}

// InterpolateFrame merges two frames of the same size.
func (f *Frame) InterpolateFrame(f2 *Frame, transitionPoint float64) *Frame {
	out := NewFrame(f.width, f.height)
	for i := 0; i < len(f.pixels) && i < len(f2.pixels); i++ {
		out.pixels[i] = f.pixels[i].BlendHcl(f2.pixels[i], transitionPoint)
	}

	return out
}

// MarshalBinary converts a Frame into binary data: the pixel count as a
// little-endian uint16 followed by RGB triples.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 2, (len(f.pixels)*3)+2)
	binary.LittleEndian.PutUint16(data, uint16(len(f.pixels)))
	for _, p := range f.pixels {
		r, g, b := p.Clamped().RGB255()
		data = append(data, r, g, b)
	}

	return data, nil
}
