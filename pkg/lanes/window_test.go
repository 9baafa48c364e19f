package lanes

import (
	"testing"

	"lanedetect/internal/models"
)

// TestPixelsInWindowExactMembership verifies that the collector returns
// exactly the cached pixels inside the band: x in [cx-m, cx+m] and
// y in [cy-h/2, cy+h/2], both boundaries inclusive
func TestPixelsInWindowExactMembership(t *testing.T) {
	// Window: x in [7, 13], y in [8, 12]
	w := models.Window{CenterX: 10, CenterY: 10, Margin: 3, Height: 4}

	feat := models.PixelSet{
		Xs: []int{10, 7, 13, 10, 10, 6, 14, 10, 10},
		Ys: []int{10, 8, 12, 8, 12, 10, 10, 7, 13},
	}
	// The first five pixels are inside (corners and boundaries count);
	// the last four are one past a boundary
	wantXs := []int{10, 7, 13, 10, 10}
	wantYs := []int{10, 8, 12, 8, 12}

	xs, ys := pixelsInWindow(feat, w)

	if len(xs) != len(wantXs) || len(ys) != len(wantYs) {
		t.Fatalf("Expected %d pixels, got %d", len(wantXs), len(xs))
	}
	for i := range wantXs {
		if xs[i] != wantXs[i] || ys[i] != wantYs[i] {
			t.Errorf("Pixel %d: expected (%d,%d), got (%d,%d)", i, wantXs[i], wantYs[i], xs[i], ys[i])
		}
	}
}

// TestPixelsInWindowOddHeight verifies the integer division of the band
// height: height 5 gives a half-height of 2 on both sides
func TestPixelsInWindowOddHeight(t *testing.T) {
	w := models.Window{CenterX: 0, CenterY: 10, Margin: 1, Height: 5}

	feat := models.PixelSet{
		Xs: []int{0, 0, 0, 0},
		Ys: []int{8, 12, 7, 13},
	}

	xs, _ := pixelsInWindow(feat, w)

	if len(xs) != 2 {
		t.Errorf("Expected 2 pixels inside [8,12], got %d", len(xs))
	}
}

// TestPixelsInWindowEmpty verifies that a band with no matching pixels
// returns empty slices rather than failing
func TestPixelsInWindowEmpty(t *testing.T) {
	w := models.Window{CenterX: 100, CenterY: 100, Margin: 5, Height: 10}

	feat := models.PixelSet{Xs: []int{0}, Ys: []int{0}}

	xs, ys := pixelsInWindow(feat, w)

	if len(xs) != 0 || len(ys) != 0 {
		t.Errorf("Expected no pixels, got %d/%d", len(xs), len(ys))
	}
}

// TestPixelsInWindowOutsideImage verifies that windows are not clamped:
// a band hanging past the image edge simply matches the pixels it covers
func TestPixelsInWindowOutsideImage(t *testing.T) {
	// Center near the origin, band extends to negative coordinates
	w := models.Window{CenterX: 0, CenterY: 0, Margin: 10, Height: 10}

	feat := models.PixelSet{
		Xs: []int{0, 5, 11},
		Ys: []int{0, 5, 0},
	}

	xs, _ := pixelsInWindow(feat, w)

	if len(xs) != 2 {
		t.Errorf("Expected 2 pixels, got %d", len(xs))
	}
}
