package scan

import (
	"fmt"
	"strings"
)

// Direction is the way the band travels on a forward pass.
type Direction int

const (
	TopToBottom Direction = iota
	BottomToTop
	LeftToRight
	RightToLeft
)

var directionNames = map[Direction]string{
	TopToBottom: "top-to-bottom",
	BottomToTop: "bottom-to-top",
	LeftToRight: "left-to-right",
	RightToLeft: "right-to-left",
}

var directionAliases = map[string]Direction{
	"updown":    TopToBottom,
	"downup":    BottomToTop,
	"leftright": LeftToRight,
	"rightleft": RightToLeft,
}

func (d Direction) String() string {
	if s, ok := directionNames[d]; ok {
		return s
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Axis is the axis the band moves along.
func (d Direction) Axis() Axis {
	if d == LeftToRight || d == RightToLeft {
		return AxisX
	}
	return AxisY
}

// Increasing reports whether a forward pass moves towards larger coordinates.
func (d Direction) Increasing() bool {
	return d == TopToBottom || d == LeftToRight
}

// ParseDirection accepts the dashed names and the compact aliases (upDown etc).
func ParseDirection(s string) (Direction, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for d, name := range directionNames {
		if key == name {
			return d, nil
		}
	}
	if d, ok := directionAliases[key]; ok {
		return d, nil
	}
	return TopToBottom, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// UnmarshalYAML decodes a direction name.
func (d *Direction) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseDirection(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(b []byte) error {
	parsed, err := ParseDirection(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// SpeedProfile selects how waypoints are spaced along a pass.
type SpeedProfile int

const (
	Linear SpeedProfile = iota
	EaseIn
	EaseOut
	EaseInEaseOut
	EaseInEaseOutReverse
)

var speedNames = map[SpeedProfile]string{
	Linear:               "linear",
	EaseIn:               "ease-in",
	EaseOut:              "ease-out",
	EaseInEaseOut:        "ease-in-ease-out",
	EaseInEaseOutReverse: "ease-in-ease-out-reverse",
}

func (p SpeedProfile) String() string {
	if s, ok := speedNames[p]; ok {
		return s
	}
	return fmt.Sprintf("SpeedProfile(%d)", int(p))
}

// ParseSpeedProfile accepts dashed names as well as the camel-case forms.
func ParseSpeedProfile(s string) (SpeedProfile, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for p, name := range speedNames {
		if key == name || key == strings.ReplaceAll(name, "-", "") {
			return p, nil
		}
	}
	return Linear, fmt.Errorf("%w: %q", ErrUnknownSpeed, s)
}

// UnmarshalYAML decodes a speed profile name.
func (p *SpeedProfile) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseSpeedProfile(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (p SpeedProfile) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *SpeedProfile) UnmarshalText(b []byte) error {
	parsed, err := ParseSpeedProfile(string(b))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Axis is a screen axis.
type Axis int

const (
	AxisY Axis = iota
	AxisX
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}
