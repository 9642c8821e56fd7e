// Package scan sweeps a band across a rectangular view.
//
// A pass moves the band from one side of the view to the other along a
// polyline built from the configured speed profile. In clip mode three
// keyframe tracks grow or shrink a reveal rectangle so that it ends where
// the band is. Scanner runs passes on a Host animation layer, bouncing back
// and forth when cycling, and reports progress, a one-shot threshold and
// pass completion to its observers.
//
// Player is an in-process Host driven by an explicit Tick.
package scan
