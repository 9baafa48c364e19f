package models

import "image"

// Window is one search band of the sliding-window lane search.
// It describes an axis-aligned rectangle by its center, half-width
// (margin) and height. Windows are ephemeral values consumed by the
// pixel collector; they are never clamped to the image edges, a window
// hanging past the border simply matches fewer pixels.
type Window struct {
	// CenterX and CenterY locate the middle of the band
	CenterX int
	CenterY int

	// Margin is the half-width of the band
	Margin int

	// Height is the full height of the band
	Height int
}

// TopLeft returns the inclusive top-left corner of the band.
func (w Window) TopLeft() image.Point {
	return image.Point{X: w.CenterX - w.Margin, Y: w.CenterY - w.Height/2}
}

// BottomRight returns the inclusive bottom-right corner of the band.
func (w Window) BottomRight() image.Point {
	return image.Point{X: w.CenterX + w.Margin, Y: w.CenterY + w.Height/2}
}

// Contains reports whether the pixel (x, y) lies inside the band.
// Both boundaries are inclusive.
func (w Window) Contains(x, y int) bool {
	tl := w.TopLeft()
	br := w.BottomRight()
	return tl.X <= x && x <= br.X && tl.Y <= y && y <= br.Y
}
