package scan

import "math"

// ClipKeyframes drive the reveal rectangle for one pass.
//
// Origin is the bounds offset that keeps the clipped content still, Size is
// the rectangle's length along the axis and Anchor its centre. Each sequence
// is spread over the whole pass on its own; they are not index-aligned, and a
// single-value sequence holds for the full duration.
type ClipKeyframes struct {
	Axis   Axis
	Origin []float64
	Size   []float64
	Anchor []float64
}

// maxClipKeyframes bounds the length of a clip track. Longer spans are
// sampled at an even, coarser step.
const maxClipKeyframes = 4096

// BuildClipKeyframes lays out the reveal rectangle for the pass.
// Only Linear passes are supported. The held [0] origin belongs to passes
// moving towards smaller coordinates, where the rectangle's near edge is
// fixed; passes towards larger coordinates move the origin with the band.
func (g Geometry) BuildClipKeyframes(profile SpeedProfile, reversed bool) (ClipKeyframes, error) {
	k := ClipKeyframes{Axis: g.Direction.Axis()}
	if profile != Linear {
		return k, ErrClipProfileUnsupported
	}

	extent := g.Range().AxisExtent
	band := g.Thickness

	// The band moves towards larger coordinates: the leading edge of the
	// rectangle follows it and the content is shifted to stay in place.
	if g.Direction.Increasing() != reversed {
		k.Origin = clipTrack(0, extent+band, false)
		k.Size = clipTrack(0, extent, true)
		k.Anchor = clipTrack(extent*0.5, extent+band, false)
		return k, nil
	}

	// Towards smaller coordinates the near edge stays at zero.
	k.Origin = []float64{0}
	k.Size = clipTrack(-band, extent, true)
	k.Anchor = clipTrack(-band*0.5, extent*0.5, true)
	return k, nil
}

// clipTrack walks min..max in unit steps, or in maxClipKeyframes even steps
// when the span is longer. descending returns the walk from max to min.
func clipTrack(min, max float64, descending bool) []float64 {
	span := max - min
	if !(span > maxClipKeyframes) || math.IsInf(span, 0) {
		return StepValues(min, max, 0, true, descending)
	}

	values := make([]float64, maxClipKeyframes+1)
	for i := range values {
		values[i] = min + span*float64(i)/maxClipKeyframes
	}
	values[maxClipKeyframes] = max
	if descending {
		for i, j := 0, len(values)-1; i < j; i, j = i+1, j-1 {
			values[i], values[j] = values[j], values[i]
		}
	}
	return values
}
