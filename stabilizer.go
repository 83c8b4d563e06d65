package gazefocus

// DetectionStabilizer smooths the raw per frame box stream and tolerates
// brief detection dropouts.  A positive detection is blended with the
// previous smoothed box using exponential weighting, a missed detection
// reuses the last smoothed box until the grace window is exhausted, after
// which absence is reported instead of a stale box
type DetectionStabilizer struct {
	// alpha is the exponential weighting applied to the raw box
	alpha float32
	// graceFrames is the number of consecutive missed detections tolerated
	graceFrames int
	// smoothed is the current smoothed box
	smoothed Box
	// hasBox indicates whether a smoothed box is held
	hasBox bool
	// confidenceAge counts consecutive frames without a fresh detection
	confidenceAge int
}

// NewDetectionStabilizer initializes and returns a new DetectionStabilizer
func NewDetectionStabilizer(alpha float32, graceFrames int) *DetectionStabilizer {
	return &DetectionStabilizer{
		alpha:       alpha,
		graceFrames: graceFrames,
	}
}

// Update consumes one frame's Detection.  It returns the stabilized box and
// true, or a zero box and false when the stabilizer signals absence.  A
// detection carrying an empty box is treated the same as a missed detection
func (s *DetectionStabilizer) Update(det Detection) (StabilizedBox, bool) {

	if det.Present && !det.Box.Empty() {

		if s.hasBox {
			s.smoothed = Box{
				X: s.alpha*det.Box.X + (1-s.alpha)*s.smoothed.X,
				Y: s.alpha*det.Box.Y + (1-s.alpha)*s.smoothed.Y,
				W: s.alpha*det.Box.W + (1-s.alpha)*s.smoothed.W,
				H: s.alpha*det.Box.H + (1-s.alpha)*s.smoothed.H,
			}
		} else {
			// first detection seeds the smoothing state directly
			s.smoothed = det.Box
			s.hasBox = true
		}

		s.confidenceAge = 0

		return StabilizedBox{Box: s.smoothed}, true
	}

	if !s.hasBox {
		return StabilizedBox{}, false
	}

	s.confidenceAge++

	if s.confidenceAge > s.graceFrames {
		// sustained absence, drop the stale box so a later return seeds
		// fresh smoothing state instead of blending with an old position
		s.Reset()
		return StabilizedBox{}, false
	}

	return StabilizedBox{Box: s.smoothed, ConfidenceAge: s.confidenceAge}, true
}

// Reset clears the smoothing state
func (s *DetectionStabilizer) Reset() {
	s.smoothed = Box{}
	s.hasBox = false
	s.confidenceAge = 0
}
