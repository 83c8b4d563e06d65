package gazefocus

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config defines the tunable parameters of the inference core.  All
// thresholds are supplied by the caller, nothing is hardcoded inside the
// pipeline stages.  Out of range values are rejected at construction time,
// never silently clamped
type Config struct {
	// SmoothingAlpha is the exponential weighting applied to a fresh raw
	// box when blending it with the previous smoothed box, range (0, 1]
	SmoothingAlpha float32 `validate:"gt=0,lte=1"`
	// AbsenceGraceFrames is the number of consecutive missed detections
	// tolerated before the stabilizer reports absence
	AbsenceGraceFrames int `validate:"gt=0"`
	// PresenceConfirmFrames is the number of consecutive stabilized frames
	// required to confirm presence from the UNCERTAIN state
	PresenceConfirmFrames int `validate:"gt=0"`
	// CalibrationSamples is the number of valid samples accumulated while
	// present before the posture baseline becomes ready
	CalibrationSamples int `validate:"gt=0"`
	// TooCloseRatio is the face area ratio over baseline above which
	// posture classifies as too close
	TooCloseRatio float64 `validate:"gt=1"`
	// SlouchDropRatio is the downward drift of the face center from
	// baseline, as a fraction of frame height, above which posture
	// classifies as slouched
	SlouchDropRatio float64 `validate:"gt=0,lt=1"`
	// FrameHeight is the camera frame height in pixels used to normalize
	// the slouch drop
	FrameHeight int `validate:"gt=0"`
	// AlertCooldown is the minimum interval between two alerts of the
	// same kind
	AlertCooldown time.Duration `validate:"gt=0"`
	// IdleAlertAfter is the continuous absence duration after which an
	// idle alert fires.  Zero disables idle alerts
	IdleAlertAfter time.Duration `validate:"gte=0"`
	// PointsPerSecond is the base focus score earned per second of
	// confirmed presence
	PointsPerSecond float64 `validate:"gte=0"`
	// ScoreDecayPerSecond is the focus score lost per second while absent
	// during an active session
	ScoreDecayPerSecond float64 `validate:"gte=0"`
	// MaxScore caps the focus score
	MaxScore float64 `validate:"gt=0"`
	// MinPostureMultiplier is the score multiplier applied while posture
	// is bad
	MinPostureMultiplier float64 `validate:"gt=0,lte=1"`
	// MaxPostureMultiplier is the score multiplier applied while posture
	// is good
	MaxPostureMultiplier float64 `validate:"gte=1,gtefield=MinPostureMultiplier"`
}

// DefaultConfig returns the default pipeline parameters tuned for a 30 FPS
// webcam at 640x480
func DefaultConfig() Config {
	return Config{
		SmoothingAlpha:        0.4,
		AbsenceGraceFrames:    15,
		PresenceConfirmFrames: 5,
		CalibrationSamples:    30,
		TooCloseRatio:         1.3,
		SlouchDropRatio:       0.12,
		FrameHeight:           480,
		AlertCooldown:         30 * time.Second,
		IdleAlertAfter:        5 * time.Minute,
		PointsPerSecond:       0.5,
		ScoreDecayPerSecond:   0.1,
		MaxScore:              100,
		MinPostureMultiplier:  0.3,
		MaxPostureMultiplier:  1.5,
	}
}

var validate = validator.New()

// Validate checks the configuration values and returns an error describing
// the first out of range parameter found
func (c Config) Validate() error {

	err := validate.Struct(c)

	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}
