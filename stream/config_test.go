package stream

import (
	"os"
	"testing"
	"time"

	"github.com/matt-g-everett/ledscan/scan"
	"gopkg.in/yaml.v2"
)

func TestSampleConfig(t *testing.T) {
	f, err := os.Open("../config.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	c := DefaultConfig()
	if err := yaml.NewDecoder(f).Decode(&c); err != nil {
		t.Fatal(err)
	}

	if c.Mqtt.Topics.Control != "home/ledscan/control" {
		t.Errorf("control topic = %q", c.Mqtt.Topics.Control)
	}
	if c.Display.Width != 16 || c.Display.Height != 32 {
		t.Errorf("display = %dx%d", c.Display.Width, c.Display.Height)
	}
	if c.Scan.Speed != scan.EaseInEaseOut || c.Scan.Duration != 1500*time.Millisecond {
		t.Errorf("scan = %+v", c.Scan)
	}
	if len(c.Colours.Band) != 5 || c.Colours.Band[2].Hue != 190 {
		t.Errorf("band = %+v", c.Colours.Band)
	}
	if len(c.Palette()) != 3 {
		t.Errorf("palette = %v", c.Palette())
	}
	if _, err := ParseCommand(c.AutoStart); err != nil {
		t.Error(err)
	}
}

func TestPaletteSkipsBadColours(t *testing.T) {
	c := DefaultConfig()
	c.Colours.Palette = []string{"#ff0000", "crimson", "#00ff00"}
	if got := len(c.Palette()); got != 2 {
		t.Errorf("palette length = %d, want 2", got)
	}
}
