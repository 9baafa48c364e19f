// Package lanes locates the left and right lane lines in a bird's-eye
// binary mask and fits a quadratic curve to each.
//
// The search follows the classic sliding-window scheme: a column
// histogram of the bottom half of the mask proposes a starting x per
// side, then a fixed number of rectangular bands is stacked from the
// image bottom upward. Each band collects the foreground pixels it
// covers and recenters itself on their mean x when enough were found,
// letting the two sides drift independently and tolerate gaps. The
// pixels accumulated per side are fitted with a least-squares quadratic
// x = A*y^2 + B*y + C, gated by a minimum sample count.
//
// A Detector persists only the fitted curves between passes; everything
// else is local to one Detect call, so separate frames can be processed
// on separate detectors concurrently.
package lanes

import (
	"errors"
	"fmt"
	"image"

	"gonum.org/v1/gonum/stat"

	"lanedetect/internal/models"
)

// ErrNoFit is reported when a pass completes without any lane curve
// available, which happens only while the detector has never met the
// sample threshold on either side. The overlay is returned black in
// that case.
var ErrNoFit = errors.New("no lane fit available")

// Params configures a Detector for its lifetime.
type Params struct {
	// Windows is the number of vertically stacked search bands per pass
	Windows int

	// Margin is the half-width of each search band in pixels
	Margin int

	// MinPixels is the band pixel count that must be exceeded before
	// the band recenters on the pixels it found
	MinPixels int

	// MinSamples is the per-side pixel count that must be exceeded
	// before the accumulated pixels are refitted
	MinSamples int
}

// DefaultParams returns the search parameters used by the reference
// pipeline.
func DefaultParams() Params {
	return Params{
		Windows:    12,
		Margin:     20,
		MinPixels:  50,
		MinSamples: 1500,
	}
}

// validate rejects parameter combinations the search cannot run with.
func (p Params) validate() error {
	if p.Windows <= 0 {
		return fmt.Errorf("windows must be positive, got %d", p.Windows)
	}
	if p.Margin <= 0 {
		return fmt.Errorf("margin must be positive, got %d", p.Margin)
	}
	if p.MinPixels < 0 {
		return fmt.Errorf("minPixels must be non-negative, got %d", p.MinPixels)
	}
	if p.MinSamples < 0 {
		return fmt.Errorf("minSamples must be non-negative, got %d", p.MinSamples)
	}
	return nil
}

// LanePixels holds the pixels attributed to one lane side during a pass.
type LanePixels struct {
	Xs []int
	Ys []int
}

// Result is the outcome of one detection pass.
type Result struct {
	// Left and Right are the pixel accumulators of this pass
	Left  LanePixels
	Right LanePixels

	// LeftFit and RightFit are the curves in effect after this pass.
	// A side that has never met the sample threshold is nil. The
	// values may carry over from an earlier pass when this pass did
	// not collect enough pixels to refit.
	LeftFit  *Polynomial
	RightFit *Polynomial

	// Overlay is the rendered lane visualization, black background
	// with markers on each evaluated curve point and connectors
	// between the sides
	Overlay *image.RGBA
}

// Detector runs sliding-window lane searches and carries the fitted
// curves across passes. A Detector must not be used from multiple
// goroutines at once; use one detector per concurrent stream instead.
type Detector struct {
	params   Params
	obs      WindowObserver
	leftFit  *Polynomial
	rightFit *Polynomial
}

// NewDetector creates a detector with the given search parameters.
func NewDetector(params Params) (*Detector, error) {
	if err := params.validate(); err != nil {
		return nil, fmt.Errorf("invalid detector parameters: %w", err)
	}
	return &Detector{params: params}, nil
}

// SetObserver installs a debug observer that is notified of every
// search band. A nil observer disables the side channel. The observer
// never influences detection results.
func (d *Detector) SetObserver(obs WindowObserver) {
	d.obs = obs
}

// LeftFit returns a copy of the current left lane curve, or nil if the
// left side has never produced enough samples to fit.
func (d *Detector) LeftFit() *Polynomial {
	return copyFit(d.leftFit)
}

// RightFit returns a copy of the current right lane curve, or nil if
// the right side has never produced enough samples to fit.
func (d *Detector) RightFit() *Polynomial {
	return copyFit(d.rightFit)
}

func copyFit(p *Polynomial) *Polynomial {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

// Detect runs one full detection pass over the mask: histogram base
// estimation, sliding-window pixel search, per-side quadratic refit and
// overlay rendering.
//
// A side is refitted only when its accumulated pixel count exceeds
// MinSamples; otherwise the previous curve stays in effect. When
// neither side has ever been fitted the returned error is ErrNoFit and
// the result still carries the pass's pixel accumulators and a black
// overlay, so callers can distinguish "nothing detected yet" from a
// normal pass.
func (d *Detector) Detect(mask *models.BinaryImage) (*Result, error) {
	if mask == nil || mask.Width <= 0 || mask.Height <= 0 {
		return nil, errors.New("mask must be a non-empty single-channel image")
	}

	feat := mask.Nonzero()
	left, right := d.findLanePixels(mask, feat)

	if len(left.Ys) > d.params.MinSamples {
		if fit, err := fitQuadratic(left.Xs, left.Ys); err == nil {
			d.leftFit = fit
		}
	}
	if len(right.Ys) > d.params.MinSamples {
		if fit, err := fitQuadratic(right.Xs, right.Ys); err == nil {
			d.rightFit = fit
		}
	}

	res := &Result{
		Left:     left,
		Right:    right,
		LeftFit:  copyFit(d.leftFit),
		RightFit: copyFit(d.rightFit),
		Overlay:  renderOverlay(mask.Width, mask.Height, d.leftFit, d.rightFit, left.Ys, right.Ys),
	}

	if d.leftFit == nil && d.rightFit == nil {
		return res, ErrNoFit
	}
	return res, nil
}

// findLanePixels drives the sliding-window search over the mask. Bands
// are processed from the image bottom upward; the y cursor starts one
// half band below the bottom edge and is decremented by the band height
// each iteration, so the first band is centered half a band above the
// bottom. A side recenters on the truncated mean x of the pixels its
// band just found, but only when their count exceeds MinPixels.
func (d *Detector) findLanePixels(mask *models.BinaryImage, feat models.PixelSet) (left, right LanePixels) {
	profile := Histogram(mask)
	leftX, rightX := BasePositions(profile)

	bandHeight := mask.Height / d.params.Windows
	y := mask.Height + bandHeight/2

	for i := 0; i < d.params.Windows; i++ {
		y -= bandHeight

		lw := models.Window{CenterX: leftX, CenterY: y, Margin: d.params.Margin, Height: bandHeight}
		rw := models.Window{CenterX: rightX, CenterY: y, Margin: d.params.Margin, Height: bandHeight}
		if d.obs != nil {
			d.obs.ObserveWindow(LeftLane, lw)
			d.obs.ObserveWindow(RightLane, rw)
		}

		lx, ly := pixelsInWindow(feat, lw)
		rx, ry := pixelsInWindow(feat, rw)

		left.Xs = append(left.Xs, lx...)
		left.Ys = append(left.Ys, ly...)
		right.Xs = append(right.Xs, rx...)
		right.Ys = append(right.Ys, ry...)

		if len(lx) > d.params.MinPixels {
			leftX = int(meanInt(lx))
		}
		if len(rx) > d.params.MinPixels {
			rightX = int(meanInt(rx))
		}
	}

	return left, right
}

// meanInt computes the arithmetic mean of integer samples.
func meanInt(vs []int) float64 {
	fs := make([]float64, len(vs))
	for i, v := range vs {
		fs[i] = float64(v)
	}
	return stat.Mean(fs, nil)
}
