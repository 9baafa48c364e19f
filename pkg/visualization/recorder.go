// Package visualization renders debug artifacts of the lane search:
// the sliding-window band view and the column-histogram profile chart.
// Nothing in this package affects detection results.
package visualization

import (
	"image"
	"image/color"

	"lanedetect/internal/models"
	"lanedetect/pkg/lanes"
)

var (
	leftBandColor  = color.RGBA{R: 0, G: 128, B: 255, A: 255}
	rightBandColor = color.RGBA{R: 255, G: 64, B: 0, A: 255}
)

// WindowRecorder is a lanes.WindowObserver that draws every search band
// onto a 3-channel replica of the binary mask, reproducing the classic
// sliding-window debug view. Attach it with Detector.SetObserver before
// a pass and read the rendered image afterwards with Image.
type WindowRecorder struct {
	img *image.RGBA
}

// NewWindowRecorder creates a recorder whose canvas is a 3-channel
// replica of the mask, foreground pixels shown as white.
func NewWindowRecorder(mask *models.BinaryImage) *WindowRecorder {
	img := image.NewRGBA(image.Rect(0, 0, mask.Width, mask.Height))
	for y := 0; y < mask.Height; y++ {
		for x := 0; x < mask.Width; x++ {
			v := mask.Pix[y*mask.Width+x]
			img.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return &WindowRecorder{img: img}
}

// ObserveWindow draws the outline of one search band. Implements
// lanes.WindowObserver.
func (r *WindowRecorder) ObserveWindow(side lanes.Side, w models.Window) {
	c := leftBandColor
	if side == lanes.RightLane {
		c = rightBandColor
	}
	drawRect(r.img, w.TopLeft(), w.BottomRight(), c)
}

// Image returns the canvas with all bands observed so far.
func (r *WindowRecorder) Image() *image.RGBA {
	return r.img
}

// drawRect draws a one-pixel rectangle outline between the two inclusive
// corners. Out-of-bounds pixels are dropped by the RGBA setter.
func drawRect(img *image.RGBA, tl, br image.Point, c color.RGBA) {
	for x := tl.X; x <= br.X; x++ {
		img.SetRGBA(x, tl.Y, c)
		img.SetRGBA(x, br.Y, c)
	}
	for y := tl.Y; y <= br.Y; y++ {
		img.SetRGBA(tl.X, y, c)
		img.SetRGBA(br.X, y, c)
	}
}
