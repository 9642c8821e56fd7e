package stream

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledscan/util"
)

// A Twinkle is the idle Animation: a dim backdrop with a few sparkling
// pixels that wander between frames.
type Twinkle struct {
	width        int
	height       int
	numParticles int
	foreColour   colorful.Color
	backColour   colorful.Color
	moveChance   int32

	initialised bool
	particles   map[int]float64
}

// NewTwinkle creates an instance of a Twinkle object.
func NewTwinkle(width, height, numParticles int, foreColour, backColour colorful.Color) *Twinkle {
	t := new(Twinkle)
	t.width = width
	t.height = height
	t.numParticles = numParticles
	t.foreColour = foreColour
	t.backColour = backColour
	t.moveChance = 30

	t.initialised = false
	t.particles = make(map[int]float64)

	return t
}

// CalculateFrame creates a new Frame instance.
func (t *Twinkle) CalculateFrame(runtimeMs int64) *Frame {
	f := NewFrame(t.width, t.height)
	numPixels := t.width * t.height
	f.Fill(t.backColour)
	if numPixels == 0 {
		return f
	}

	if !t.initialised {
		for i := 0; i < t.numParticles; i++ {
			t.particles[rand.Intn(numPixels)] = util.RandomiseSaturation(0.3, 1.0)
		}
		t.initialised = true
	}

	for i, gain := range t.particles {
		if rand.Int31n(t.moveChance) == 0 {
			delete(t.particles, i)
			t.particles[rand.Intn(numPixels)] = util.RandomiseSaturation(0.3, 1.0)
		}
		f.pixels[i] = t.backColour.BlendHcl(t.foreColour, gain)
	}

	return f
}
