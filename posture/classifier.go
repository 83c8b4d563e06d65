package posture

// State represents the posture classification of the current frame
type State int

const (
	// Baseline not calibrated yet, no judgment possible
	Unknown State = 0
	// Posture matches the calibrated baseline
	Good State = 1
	// Face is visibly larger than baseline, user is leaning toward the
	// screen
	TooClose State = 2
	// Face center has dropped below baseline, user is slouching
	Slouched State = 3
)

// String returns the posture state name
func (s State) String() string {
	switch s {
	case Good:
		return "GOOD"
	case TooClose:
		return "TOO_CLOSE"
	case Slouched:
		return "SLOUCHED"
	default:
		return "UNKNOWN"
	}
}

// ClassifierParams holds the classification thresholds
type ClassifierParams struct {
	// TooCloseRatio is the area ratio over baseline above which the face
	// is judged too close
	TooCloseRatio float64
	// SlouchDropRatio is the downward center drift, as a fraction of
	// frame height, above which the user is judged slouched
	SlouchDropRatio float64
	// FrameHeight is the camera frame height in pixels
	FrameHeight float64
}

// Classify compares one frame's smoothed face measurements against the
// calibrated baseline.  It is a pure function of its inputs, any temporal
// smoothing has already been applied upstream so posture feedback does not
// lag twice.  Returns Unknown until the baseline is calibrated.  When both
// thresholds trip, TooClose wins since the distance risk is the more acute
func Classify(area, centerY float64, b Baseline, p ClassifierParams) State {

	if !b.Calibrated || b.ReferenceArea <= 0 {
		return Unknown
	}

	areaRatio := area / b.ReferenceArea

	if areaRatio > p.TooCloseRatio {
		return TooClose
	}

	verticalDrop := (centerY - b.ReferenceCenterY) / p.FrameHeight

	if verticalDrop > p.SlouchDropRatio {
		return Slouched
	}

	return Good
}
