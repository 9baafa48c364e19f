package lanes

import (
	"gonum.org/v1/gonum/floats"

	"lanedetect/internal/models"
)

// Histogram computes the column-wise intensity profile of the bottom
// half of the mask. Each entry is the sum of pixel values of one column
// over rows height/2 .. height-1. Near the vehicle the lane lines are
// close to vertical, so the two strongest columns of the bottom half
// are good starting positions for the window search.
func Histogram(mask *models.BinaryImage) []float64 {
	profile := make([]float64, mask.Width)
	for y := mask.Height / 2; y < mask.Height; y++ {
		for x := 0; x < mask.Width; x++ {
			profile[x] += float64(mask.Pix[y*mask.Width+x])
		}
	}
	return profile
}

// BasePositions proposes the initial left and right lane x-positions
// from a column profile: the peak of the left half and the peak of the
// right half offset by the midpoint. A flat profile yields column 0 and
// the midpoint, which is an accepted degenerate case rather than an
// error; the search then simply collects few or no pixels.
func BasePositions(profile []float64) (left, right int) {
	mid := len(profile) / 2
	if mid == 0 {
		return 0, 0
	}
	left = floats.MaxIdx(profile[:mid])
	right = floats.MaxIdx(profile[mid:]) + mid
	return left, right
}
