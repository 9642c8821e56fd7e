package stream

import (
	"log"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledscan/scan"
)

// Config is the YAML configuration of ledscan.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		ClientID string `yaml:"clientID"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topics   struct {
			Stream  string `yaml:"stream"`
			Control string `yaml:"control"`
			Events  string `yaml:"events"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	Display struct {
		Width          int     `yaml:"width"`
		Height         int     `yaml:"height"`
		FrameRate      float64 `yaml:"frameRate"`
		TransitionSecs float64 `yaml:"transitionSecs"`
	} `yaml:"display"`
	Colours struct {
		Band     GradientTable `yaml:"band"`
		Palette  []string      `yaml:"palette"`
		IdleBack string        `yaml:"idleBack"`
		IdleFore string        `yaml:"idleFore"`
	} `yaml:"colours"`
	Scan      scan.Config `yaml:"scan"`
	AutoStart string      `yaml:"autoStart"`
	API       struct {
		Addr string `yaml:"addr"`
		Dir  string `yaml:"dir"`
	} `yaml:"api"`
}

// DefaultConfig returns the settings used for keys missing from the file.
func DefaultConfig() Config {
	var c Config
	c.Mqtt.ClientID = "ledscan"
	c.Mqtt.Topics.Stream = "home/ledscan/stream"
	c.Mqtt.Topics.Control = "home/ledscan/control"
	c.Mqtt.Topics.Events = "home/ledscan/events"
	c.Display.Width = 16
	c.Display.Height = 32
	c.Display.FrameRate = 30
	c.Display.TransitionSecs = 1
	c.Colours.Band = GradientTable{
		{0.0, 0.0},
		{6.0, 0.25},   // Pink
		{190.0, 0.5},  // Turquoise
		{320.0, 0.75}, // Blue
		{360.0, 1.0},  // Pink wrap
	}
	c.Colours.Palette = []string{"#100505", "#051005", "#050510"}
	c.Colours.IdleBack = "#000005"
	c.Colours.IdleFore = "#404040"
	c.Scan = scan.DefaultConfig()
	c.Scan.BandThickness = 3
	c.API.Addr = ":3000"
	c.API.Dir = "client/dist"
	return c
}

// Palette parses the configured palette, skipping entries that are not hex
// colours.
func (c Config) Palette() []colorful.Color {
	palette := make([]colorful.Color, 0, len(c.Colours.Palette))
	for _, hex := range c.Colours.Palette {
		colour, err := colorful.Hex(hex)
		if err != nil {
			log.Printf("Skipping palette colour %q: %v", hex, err)
			continue
		}
		palette = append(palette, colour)
	}
	return palette
}
