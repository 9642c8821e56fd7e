package scan

import (
	"errors"
	"testing"
)

func TestResolve(t *testing.T) {
	b := Bounds{Width: 300, Height: 200}
	tests := []struct {
		dir      Direction
		from, to float64
		extent   float64
	}{
		{TopToBottom, -5, 205, 200},
		{BottomToTop, 205, -5, 200},
		{LeftToRight, -5, 305, 300},
		{RightToLeft, 305, -5, 300},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			r := Resolve(b, tt.dir, 10, 0)
			if r.From != tt.from || r.To != tt.to {
				t.Errorf("from/to = %v/%v, want %v/%v", r.From, r.To, tt.from, tt.to)
			}
			if r.AxisExtent != tt.extent {
				t.Errorf("extent = %v, want %v", r.AxisExtent, tt.extent)
			}
			if r.Midpoint != tt.extent/2 {
				t.Errorf("midpoint = %v, want %v", r.Midpoint, tt.extent/2)
			}
		})
	}
}

func TestResolveOppositeDirectionsSwap(t *testing.T) {
	b := Bounds{Width: 64, Height: 48}
	pairs := [][2]Direction{{TopToBottom, BottomToTop}, {LeftToRight, RightToLeft}}
	for _, p := range pairs {
		a := Resolve(b, p[0], 6, 0)
		c := Resolve(b, p[1], 6, 0)
		if a.Swapped() != c {
			t.Errorf("%v swapped = %+v, want %+v", p[0], a.Swapped(), c)
		}
	}
}

func TestResolveMidpointOverride(t *testing.T) {
	r := Resolve(Bounds{Width: 10, Height: 100}, TopToBottom, 4, 30)
	if r.Midpoint != 30 {
		t.Errorf("midpoint = %v, want 30", r.Midpoint)
	}
}

func TestResolveZeroExtent(t *testing.T) {
	r := Resolve(Bounds{}, LeftToRight, 0, 0)
	if r.From != 0 || r.To != 0 || r.AxisExtent != 0 {
		t.Errorf("got %+v, want a zero-length sweep", r)
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
	}{
		{"top-to-bottom", TopToBottom},
		{"Bottom-To-Top", BottomToTop},
		{"leftRight", LeftToRight},
		{" rightleft ", RightToLeft},
		{"upDown", TopToBottom},
	}
	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if err != nil {
			t.Errorf("ParseDirection(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDirection(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseDirection("diagonal"); !errors.Is(err, ErrUnknownDirection) {
		t.Errorf("err = %v, want ErrUnknownDirection", err)
	}
}

func TestParseSpeedProfile(t *testing.T) {
	for p, name := range speedNames {
		got, err := ParseSpeedProfile(name)
		if err != nil || got != p {
			t.Errorf("ParseSpeedProfile(%q) = %v, %v", name, got, err)
		}
	}
	if got, _ := ParseSpeedProfile("easeInEaseOutReverse"); got != EaseInEaseOutReverse {
		t.Errorf("camel case = %v, want %v", got, EaseInEaseOutReverse)
	}
	if _, err := ParseSpeedProfile("bounce"); !errors.Is(err, ErrUnknownSpeed) {
		t.Errorf("err = %v, want ErrUnknownSpeed", err)
	}
}
