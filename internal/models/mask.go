package models

import (
	"fmt"
	"image"
)

// BinaryImage represents a single-channel bird's-eye binary mask.
// A pixel value of zero is background; any non-zero value is a
// lane-candidate foreground pixel.
type BinaryImage struct {
	// Pix holds the pixel values in row-major order
	Pix []uint8

	// Width is the number of columns in the mask
	Width int

	// Height is the number of rows in the mask
	Height int
}

// NewBinaryImage creates an all-background mask with the given dimensions.
func NewBinaryImage(width, height int) *BinaryImage {
	return &BinaryImage{
		Pix:    make([]uint8, width*height),
		Width:  width,
		Height: height,
	}
}

// FromGray copies a grayscale image into a BinaryImage.
// The source bounds are normalized so that (0, 0) is the top-left pixel.
func FromGray(src *image.Gray) *BinaryImage {
	bounds := src.Bounds()
	mask := NewBinaryImage(bounds.Dx(), bounds.Dy())

	for y := 0; y < mask.Height; y++ {
		row := src.Pix[(y+bounds.Min.Y-src.Rect.Min.Y)*src.Stride:]
		for x := 0; x < mask.Width; x++ {
			mask.Pix[y*mask.Width+x] = row[x+bounds.Min.X-src.Rect.Min.X]
		}
	}

	return mask
}

// FromImage converts an image into a BinaryImage. The detection pipeline
// requires exactly one channel, so anything other than a grayscale image
// is rejected rather than silently flattened.
func FromImage(img image.Image) (*BinaryImage, error) {
	gray, ok := img.(*image.Gray)
	if !ok {
		return nil, fmt.Errorf("expected single-channel image, got %T", img)
	}
	return FromGray(gray), nil
}

// At returns the pixel value at (x, y). Coordinates outside the mask
// read as background.
func (m *BinaryImage) At(x, y int) uint8 {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return 0
	}
	return m.Pix[y*m.Width+x]
}

// Set writes the pixel value at (x, y). Writes outside the mask are ignored.
func (m *BinaryImage) Set(x, y int, v uint8) {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return
	}
	m.Pix[y*m.Width+x] = v
}

// Nonzero extracts the coordinates of every foreground pixel in
// row-major order. The result is the cached feature set for one
// detection pass and must be re-extracted for each new mask.
func (m *BinaryImage) Nonzero() PixelSet {
	var set PixelSet
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Pix[y*m.Width+x] != 0 {
				set.Xs = append(set.Xs, x)
				set.Ys = append(set.Ys, y)
			}
		}
	}
	return set
}

// PixelSet holds parallel coordinate arrays of foreground pixels.
// Xs[i] and Ys[i] together address one pixel.
type PixelSet struct {
	Xs []int
	Ys []int
}

// Len returns the number of pixels in the set.
func (s PixelSet) Len() int { return len(s.Xs) }
