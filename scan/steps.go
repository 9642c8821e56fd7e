package scan

import "math"

// StepValues walks from one bound to the other with a growing step.
//
// The walk starts at min (increasing) or max, the first step is 1 and every
// following step is accel larger than the previous one. The last value is
// clamped to the far bound. With accel == 0 the steps are uniform; with
// accel > 0 the spacing grows quadratically, which played back at one
// keyframe per equal slice of time reads as acceleration. Reversing the
// result turns the same walk into a deceleration.
func StepValues(min, max, accel float64, increasing, reversed bool) []float64 {
	if min > max {
		min, max = max, min
	}
	start, end := min, max
	if !increasing {
		start, end = max, min
	}
	if math.IsNaN(start) || math.IsInf(start, 0) || math.IsNaN(end) || math.IsInf(end, 0) {
		return []float64{start}
	}
	if accel < 0 || math.IsNaN(accel) {
		accel = 0
	}

	values := []float64{start}
	value, step := start, 1.0
	// step never drops below 1, so the far bound is reached in at most
	// ceil(max-min) iterations.
	for value != end {
		next := math.Max(value-step, end)
		if increasing {
			next = math.Min(value+step, end)
		}
		if next == value {
			// step lost below the float precision of value
			next = end
		}
		value = next
		values = append(values, value)
		step += accel
	}

	if reversed {
		for i, j := 0, len(values)-1; i < j; i, j = i+1, j-1 {
			values[i], values[j] = values[j], values[i]
		}
	}
	return values
}
