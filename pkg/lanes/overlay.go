package lanes

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/floats"
)

// markerRadius is the radius of the filled dot drawn at each evaluated
// curve point.
const markerRadius = 5

var (
	markerColor    = paletteColor("#ff00ff")
	connectorColor = paletteColor("#00ff00")
)

// paletteColor converts a hex color specification into an RGBA value.
func paletteColor(hex string) color.RGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic("invalid palette color " + hex + ": " + err.Error())
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// plotRange determines the shared y-range for curve evaluation. The
// default range [height/3, height-1] is widened, never narrowed, to
// cover the observed y extent of the pixels collected this pass.
func plotRange(height int, leftYs, rightYs []int) (miny, maxy int) {
	maxy = height - 1
	miny = height / 3

	for _, ys := range [][]int{leftYs, rightYs} {
		if len(ys) == 0 {
			continue
		}
		lo, hi := ys[0], ys[0]
		for _, y := range ys[1:] {
			if y < lo {
				lo = y
			}
			if y > hi {
				hi = y
			}
		}
		if lo < miny {
			miny = lo
		}
		if hi > maxy {
			maxy = hi
		}
	}

	return miny, maxy
}

// renderOverlay draws the two fitted curves onto a black buffer of the
// given dimensions. Both curves are evaluated over the shared y-range
// at `height` evenly spaced samples; each sample gets a filled marker
// per side and a horizontal connector between the sides. A side with no
// fit yet is skipped, and connectors require both sides.
func renderOverlay(width, height int, left, right *Polynomial, leftYs, rightYs []int) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(out, out.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	if left == nil && right == nil {
		return out
	}

	miny, maxy := plotRange(height, leftYs, rightYs)
	ploty := floats.Span(make([]float64, height), float64(miny), float64(maxy))

	for _, fy := range ploty {
		y := int(fy)

		if left != nil && right != nil {
			lx := int(left.Eval(fy))
			rx := int(right.Eval(fy))
			drawSegment(out, lx, rx, y, connectorColor)
			fillCircle(out, lx, y, markerRadius, markerColor)
			fillCircle(out, rx, y, markerRadius, markerColor)
			continue
		}
		if left != nil {
			fillCircle(out, int(left.Eval(fy)), y, markerRadius, markerColor)
		}
		if right != nil {
			fillCircle(out, int(right.Eval(fy)), y, markerRadius, markerColor)
		}
	}

	return out
}

// fillCircle draws a filled circle centered at (cx, cy). Pixels outside
// the image bounds are dropped by the RGBA setter.
func fillCircle(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				img.SetRGBA(cx+dx, cy+dy, c)
			}
		}
	}
}

// drawSegment draws the horizontal connector between the two lane
// curves at row y.
func drawSegment(img *image.RGBA, x0, x1, y int, c color.RGBA) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	for x := x0; x <= x1; x++ {
		img.SetRGBA(x, y, c)
	}
}
