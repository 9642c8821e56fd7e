package scan

// Observer receives scanner events on the thread that drives the host.
type Observer interface {
	// OnPassComplete is called after each pass with the pass's reversed flag.
	OnPassComplete(reversed bool)
	// OnProgress reports the band's leading edge once per tick.
	OnProgress(value float64)
	// OnThresholdReached fires at most once per pass.
	OnThresholdReached(value float64)
}

// Handlers adapts optional funcs to an Observer. Nil fields are skipped.
type Handlers struct {
	PassComplete     func(reversed bool)
	Progress         func(value float64)
	ThresholdReached func(value float64)
}

func (h Handlers) OnPassComplete(reversed bool) {
	if h.PassComplete != nil {
		h.PassComplete(reversed)
	}
}

func (h Handlers) OnProgress(value float64) {
	if h.Progress != nil {
		h.Progress(value)
	}
}

func (h Handlers) OnThresholdReached(value float64) {
	if h.ThresholdReached != nil {
		h.ThresholdReached(value)
	}
}

// probe watches one pass for the threshold crossing.
type probe struct {
	threshold  float64
	increasing bool
	fired      bool
}

func newProbe(threshold, from, to float64) probe {
	return probe{threshold: threshold, increasing: to >= from}
}

// reached reports the first sample at or past the threshold in the travel
// direction.
func (p *probe) reached(value float64) bool {
	if p.fired {
		return false
	}
	if p.increasing {
		p.fired = value >= p.threshold
	} else {
		p.fired = value <= p.threshold
	}
	return p.fired
}
