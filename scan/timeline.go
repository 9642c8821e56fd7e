package scan

import "time"

// pathAccel is the per-waypoint step growth used by the eased profiles.
const pathAccel = 1.0

// Timeline is the band motion for a single pass.
type Timeline struct {
	Duration time.Duration
	Path     []Point
	Reversed bool
	Axis     Axis
}

// Start is the first point of the path.
func (t Timeline) Start() Point {
	return t.Path[0]
}

// End is the last point of the path.
func (t Timeline) End() Point {
	return t.Path[len(t.Path)-1]
}

// BuildTimeline lays out the band path for a pass from -> to.
//
// Linear passes are a single segment. The eased profiles enumerate
// waypoints with StepValues; a player that gives every segment the same
// share of the duration turns the widening gaps into speed changes.
func (g Geometry) BuildTimeline(from, to float64, profile SpeedProfile, reversed bool, duration time.Duration) Timeline {
	t := Timeline{Duration: duration, Reversed: reversed, Axis: g.Direction.Axis()}
	mid := g.Range().Midpoint

	var values []float64
	switch profile {
	case EaseIn:
		values = accelerate(from, to)
	case EaseOut:
		values = decelerate(from, to)
	case EaseInEaseOut:
		values = append(accelerate(from, mid), decelerate(mid, to)...)
	case EaseInEaseOutReverse:
		values = append(decelerate(from, mid), accelerate(mid, to)...)
	default:
		t.Path = []Point{g.point(from), g.point(to)}
		return t
	}

	// The runs repeat their joining points; drop zero-length segments.
	t.Path = make([]Point, 1, len(values))
	t.Path[0] = g.point(from)
	for _, v := range values {
		p := g.point(v)
		if p != t.Path[len(t.Path)-1] {
			t.Path = append(t.Path, p)
		}
	}
	if len(t.Path) == 1 {
		t.Path = append(t.Path, g.point(to))
	}
	return t
}

func accelerate(from, to float64) []float64 {
	return StepValues(from, to, pathAccel, to >= from, false)
}

func decelerate(from, to float64) []float64 {
	return StepValues(from, to, pathAccel, to < from, true)
}
