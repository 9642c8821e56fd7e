package stream

// An Animation renders one frame for the given runtime. The controller
// calls it once per display tick.
type Animation interface {
	CalculateFrame(runtimeMs int64) *Frame
}
