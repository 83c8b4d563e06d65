// Package posture establishes a calibrated reference for good sitting
// posture from face box measurements and classifies live posture against it.
package posture

import "gonum.org/v1/gonum/stat"

// Status represents the calibration progress of the baseline
type Status int

const (
	// Baseline samples are still being accumulated
	Calibrating Status = 0
	// Baseline is calibrated and classification can run
	Ready Status = 1
)

// String returns the status name
func (s Status) String() string {
	if s == Ready {
		return "READY"
	}
	return "CALIBRATING"
}

// Baseline holds the calibrated reference posture.  Once Calibrated is true
// the reference values are immutable until an explicit recalibration
type Baseline struct {
	// ReferenceArea is the mean face box area from the calibration window
	ReferenceArea float64
	// ReferenceCenterY is the mean vertical face center from the
	// calibration window
	ReferenceCenterY float64
	// Calibrated is true once the calibration window completed
	Calibrated bool
}

// Calibrator accumulates face box samples during an initial window of
// continuous presence and produces the posture Baseline.  Samples only
// count while presence is confirmed, a presence loss before the window
// completes discards the half formed baseline and calibration restarts on
// the next confirmed presence
type Calibrator struct {
	// sampleCount is the number of valid samples required
	sampleCount int
	// areas and centerYs hold the samples accumulated so far
	areas    []float64
	centerYs []float64
	baseline Baseline
}

// NewCalibrator initializes and returns a new Calibrator requiring the
// given number of valid samples
func NewCalibrator(sampleCount int) *Calibrator {
	return &Calibrator{
		sampleCount: sampleCount,
		areas:       make([]float64, 0, sampleCount),
		centerYs:    make([]float64, 0, sampleCount),
	}
}

// Observe consumes one frame's smoothed face measurements.  present must be
// true only while presence is confirmed.  Zero or negative area samples are
// corrupt and do not count toward the window.  It returns the calibration
// status after the observation
func (c *Calibrator) Observe(area, centerY float64, present bool) Status {

	if c.baseline.Calibrated {
		return Ready
	}

	if !present {
		// half formed baseline is unreliable, start over on next presence
		c.areas = c.areas[:0]
		c.centerYs = c.centerYs[:0]
		return Calibrating
	}

	if area <= 0 {
		return Calibrating
	}

	c.areas = append(c.areas, area)
	c.centerYs = append(c.centerYs, centerY)

	if len(c.areas) >= c.sampleCount {
		c.baseline = Baseline{
			ReferenceArea:    stat.Mean(c.areas, nil),
			ReferenceCenterY: stat.Mean(c.centerYs, nil),
			Calibrated:       true,
		}
		return Ready
	}

	return Calibrating
}

// Baseline returns the current baseline.  Calibrated is false until the
// calibration window has completed
func (c *Calibrator) Baseline() Baseline {
	return c.baseline
}

// Status returns the current calibration status
func (c *Calibrator) Status() Status {
	if c.baseline.Calibrated {
		return Ready
	}
	return Calibrating
}

// Recalibrate clears the baseline and restarts sample accumulation, used
// after the user returns from a long absence or on manual request
func (c *Calibrator) Recalibrate() {
	c.baseline = Baseline{}
	c.areas = c.areas[:0]
	c.centerYs = c.centerYs[:0]
}
