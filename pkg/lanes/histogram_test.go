package lanes

import (
	"testing"

	"lanedetect/internal/models"
)

// TestHistogramBottomHalfOnly verifies that only the bottom half rows
// contribute to the column profile
func TestHistogramBottomHalfOnly(t *testing.T) {
	mask := models.NewBinaryImage(4, 4)

	// Top-half pixels must be ignored
	mask.Set(0, 0, 255)
	mask.Set(1, 1, 255)

	// Bottom-half pixels are summed per column
	mask.Set(2, 2, 10)
	mask.Set(2, 3, 20)
	mask.Set(3, 3, 5)

	profile := Histogram(mask)

	expected := []float64{0, 0, 30, 5}
	if len(profile) != len(expected) {
		t.Fatalf("Expected profile of length %d, got %d", len(expected), len(profile))
	}
	for i, want := range expected {
		if profile[i] != want {
			t.Errorf("Expected profile[%d]=%v, got %v", i, want, profile[i])
		}
	}
}

// TestBasePositionsPeaks verifies that the base positions are the peaks
// of the left and right halves of the profile
func TestBasePositionsPeaks(t *testing.T) {
	profile := make([]float64, 200)
	profile[30] = 50
	profile[170] = 40

	left, right := BasePositions(profile)

	if left != 30 {
		t.Errorf("Expected left base 30, got %d", left)
	}
	if right != 170 {
		t.Errorf("Expected right base 170, got %d", right)
	}
}

// TestBasePositionsFlatProfile verifies the degenerate all-zero profile:
// column 0 on the left and the midpoint on the right, with no error
func TestBasePositionsFlatProfile(t *testing.T) {
	profile := make([]float64, 100)

	left, right := BasePositions(profile)

	if left != 0 {
		t.Errorf("Expected left base 0 for flat profile, got %d", left)
	}
	if right != 50 {
		t.Errorf("Expected right base 50 for flat profile, got %d", right)
	}
}

// TestBasePositionsFirstPeakWins verifies that ties resolve to the
// lowest column index, matching argmax semantics
func TestBasePositionsFirstPeakWins(t *testing.T) {
	profile := make([]float64, 10)
	profile[2] = 7
	profile[4] = 7

	left, _ := BasePositions(profile)

	if left != 2 {
		t.Errorf("Expected first of equal peaks (column 2), got %d", left)
	}
}
