package lanes

import (
	"lanedetect/internal/models"
)

// Side identifies which lane line a value belongs to.
type Side int

const (
	// LeftLane is the lane line to the left of the vehicle
	LeftLane Side = iota

	// RightLane is the lane line to the right of the vehicle
	RightLane
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case LeftLane:
		return "left"
	case RightLane:
		return "right"
	default:
		return "unknown"
	}
}

// WindowObserver receives every search band as it is processed.
// Implementations may render the bands for inspection; they must not
// influence the search itself. A nil observer disables the side channel.
type WindowObserver interface {
	// ObserveWindow is called once per band per side, in search order
	// from the bottom of the image upward.
	ObserveWindow(side Side, w models.Window)
}

// pixelsInWindow returns the coordinates of every cached foreground
// pixel that lies inside the band, boundaries inclusive. The returned
// slices are parallel and possibly empty. Pixels are returned in the
// order they appear in the feature set.
func pixelsInWindow(feat models.PixelSet, w models.Window) (xs, ys []int) {
	for i := 0; i < feat.Len(); i++ {
		if w.Contains(feat.Xs[i], feat.Ys[i]) {
			xs = append(xs, feat.Xs[i])
			ys = append(ys, feat.Ys[i])
		}
	}
	return xs, ys
}
