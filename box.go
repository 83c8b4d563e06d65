package gazefocus

import (
	"math"
)

// Box represents a face bounding box in frame pixel coordinates with
// x, y being the top left corner
type Box struct {
	X, Y, W, H float32
}

// NewBox creates a new Box with given coordinates
func NewBox(x, y, w, h float32) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Area returns the area of the box
func (b Box) Area() float32 {
	return b.W * b.H
}

// CenterX returns the horizontal center of the box
func (b Box) CenterX() float32 {
	return b.X + b.W/2
}

// CenterY returns the vertical center of the box
func (b Box) CenterY() float32 {
	return b.Y + b.H/2
}

// Empty reports whether the box has no usable area
func (b Box) Empty() bool {
	return b.W <= 0 || b.H <= 0
}

// CalcIoU calculates the Intersection over Union (IoU) with another box
func (b Box) CalcIoU(other Box) float32 {

	iw := float32(math.Min(float64(b.X+b.W), float64(other.X+other.W)) -
		math.Max(float64(b.X), float64(other.X)))

	if iw <= 0 {
		return 0
	}

	ih := float32(math.Min(float64(b.Y+b.H), float64(other.Y+other.H)) -
		math.Max(float64(b.Y), float64(other.Y)))

	if ih <= 0 {
		return 0
	}

	union := b.Area() + other.Area() - iw*ih

	if union <= 0 {
		return 0
	}

	return iw * ih / union
}
