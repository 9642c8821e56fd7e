package scan

// Bounds is the size of the host view in points.
type Bounds struct {
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

// Point is a position in view coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// On returns the coordinate of p along axis a.
func (p Point) On(a Axis) float64 {
	if a == AxisX {
		return p.X
	}
	return p.Y
}

// SweepRange holds the band centre coordinates at both ends of a pass.
type SweepRange struct {
	From       float64
	To         float64
	AxisExtent float64
	Midpoint   float64
}

// Swapped returns the range for the return leg.
func (r SweepRange) Swapped() SweepRange {
	r.From, r.To = r.To, r.From
	return r
}

// Resolve computes the sweep range for a band of the given thickness.
// The band starts and finishes half its thickness outside the view.
// A zero midpoint selects the centre of the axis.
func Resolve(b Bounds, d Direction, thickness, midpoint float64) SweepRange {
	extent := b.Height
	if d.Axis() == AxisX {
		extent = b.Width
	}

	r := SweepRange{AxisExtent: extent, Midpoint: midpoint}
	if midpoint == 0 {
		r.Midpoint = extent * 0.5
	}

	lo := -thickness * 0.5
	hi := extent + thickness*0.5
	if d.Increasing() {
		r.From, r.To = lo, hi
	} else {
		r.From, r.To = hi, lo
	}
	return r
}

// Geometry is everything needed to lay out a pass over a view.
type Geometry struct {
	Bounds    Bounds
	Direction Direction
	Thickness float64
	Midpoint  float64
}

// Range resolves the forward sweep range.
func (g Geometry) Range() SweepRange {
	return Resolve(g.Bounds, g.Direction, g.Thickness, g.Midpoint)
}

// Midline is the cross-axis coordinate the band centre travels on.
func (g Geometry) Midline() float64 {
	if g.Direction.Axis() == AxisX {
		return g.Bounds.Height * 0.5
	}
	return g.Bounds.Width * 0.5
}

// point places an axis coordinate on the midline.
func (g Geometry) point(v float64) Point {
	if g.Direction.Axis() == AxisX {
		return Point{X: v, Y: g.Midline()}
	}
	return Point{X: g.Midline(), Y: v}
}
