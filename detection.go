package gazefocus

// Detection is one frame's raw output from the external face detector,
// either a bounding box or an explicit absence marker.  A missing face is
// a first class input value, not an error
type Detection struct {
	// Present is true when the detector located a face this frame
	Present bool
	// Box is the detected face bounding box, only valid when Present is true
	Box Box
}

// NewDetection returns a positive detection for the given box
func NewDetection(box Box) Detection {
	return Detection{Present: true, Box: box}
}

// NoDetection returns the explicit absence marker for a frame where the
// detector found no face
func NoDetection() Detection {
	return Detection{}
}

// StabilizedBox is the smoothed face box produced by the DetectionStabilizer
type StabilizedBox struct {
	// Box is the exponentially smoothed bounding box
	Box Box
	// ConfidenceAge is the count of consecutive frames the box has
	// persisted without a fresh raw detection
	ConfidenceAge int
}
