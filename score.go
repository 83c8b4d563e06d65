package gazefocus

import (
	"time"

	"github.com/gazekit/go-gazefocus/posture"
)

// FocusScore accumulates a bounded productivity score.  Confirmed presence
// earns points per second scaled by a posture multiplier, absence during an
// active session decays the score.  The score is clamped to [0, max]
type FocusScore struct {
	pointsPerSecond float64
	decayPerSecond  float64
	maxScore        float64
	minMultiplier   float64
	maxMultiplier   float64
	score           float64
}

// NewFocusScore initializes and returns a new FocusScore using the score
// parameters of the given config
func NewFocusScore(cfg Config) *FocusScore {
	return &FocusScore{
		pointsPerSecond: cfg.PointsPerSecond,
		decayPerSecond:  cfg.ScoreDecayPerSecond,
		maxScore:        cfg.MaxScore,
		minMultiplier:   cfg.MinPostureMultiplier,
		maxMultiplier:   cfg.MaxPostureMultiplier,
	}
}

// Multiplier returns the score multiplier for a posture state.  Good
// posture earns the bonus multiplier, bad posture the penalty, and an
// uncalibrated UNKNOWN posture is neutral
func (f *FocusScore) Multiplier(state posture.State) float64 {
	switch state {
	case posture.Good:
		return f.maxMultiplier
	case posture.TooClose, posture.Slouched:
		return f.minMultiplier
	default:
		return 1.0
	}
}

// Update advances the score by dt.  active is false while the session timer
// is explicitly paused, in which case the score is frozen
func (f *FocusScore) Update(presence PresenceState, postureState posture.State,
	dt time.Duration, active bool) float64 {

	if !active || dt <= 0 {
		return f.score
	}

	secs := dt.Seconds()

	if presence == Present {
		f.score += f.pointsPerSecond * secs * f.Multiplier(postureState)
		if f.score > f.maxScore {
			f.score = f.maxScore
		}
	} else {
		f.score -= f.decayPerSecond * secs
		if f.score < 0 {
			f.score = 0
		}
	}

	return f.score
}

// Score returns the current score
func (f *FocusScore) Score() float64 {
	return f.score
}

// Reset returns the score to zero
func (f *FocusScore) Reset() {
	f.score = 0
}
