// Package detect adapts an OpenCV Haar cascade face classifier to the
// Detection input consumed by the gazefocus core.  The cascade is a black
// box collaborator, the core itself never touches image data.
package detect

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"github.com/gazekit/go-gazefocus"
)

// CascadeParams holds the detector tuning parameters
type CascadeParams struct {
	// ScaleFactor is the image pyramid scale step
	ScaleFactor float64
	// MinNeighbors is the neighbor count required to retain a candidate
	MinNeighbors int
	// MinSize is the smallest face size considered, in pixels
	MinSize image.Point
	// OverlapThreshold is the overlap fraction above which two raw
	// cascade hits are treated as duplicates of the same face
	OverlapThreshold float64
}

// DefaultCascadeParams returns detector parameters suited to frontal face
// detection on a webcam frame
func DefaultCascadeParams() CascadeParams {
	return CascadeParams{
		ScaleFactor:      1.1,
		MinNeighbors:     5,
		MinSize:          image.Pt(50, 50),
		OverlapThreshold: 0.55,
	}
}

// Cascade wraps a loaded Haar cascade classifier and produces one Detection
// per frame.  Haar cascades emit overlapping duplicate hits around a single
// face, these are suppressed before the largest remaining face is selected
type Cascade struct {
	classifier gocv.CascadeClassifier
	params     CascadeParams
}

// NewCascade loads the Haar cascade from the given XML file
func NewCascade(cascadeFile string, params CascadeParams) (*Cascade, error) {

	classifier := gocv.NewCascadeClassifier()

	if !classifier.Load(cascadeFile) {
		classifier.Close()
		return nil, fmt.Errorf("error loading cascade file: %s", cascadeFile)
	}

	return &Cascade{
		classifier: classifier,
		params:     params,
	}, nil
}

// Detect runs face detection on a BGR frame and returns the largest face
// found, or the explicit absence marker when no face is present
func (c *Cascade) Detect(img gocv.Mat) gazefocus.Detection {

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(img, &gray, gocv.ColorBGRToGray)

	rects := c.classifier.DetectMultiScaleWithParams(gray,
		c.params.ScaleFactor, c.params.MinNeighbors, 0,
		c.params.MinSize, image.Pt(0, 0))

	faces := mergeOverlapping(rects, c.params.OverlapThreshold)

	if len(faces) == 0 {
		return gazefocus.NoDetection()
	}

	// largest face is taken as the user, suppression already ordered the
	// survivors by area
	face := faces[0]

	return gazefocus.NewDetection(gazefocus.NewBox(
		float32(face.Min.X), float32(face.Min.Y),
		float32(face.Dx()), float32(face.Dy())))
}

// Close releases the cascade classifier resources
func (c *Cascade) Close() error {
	return c.classifier.Close()
}
