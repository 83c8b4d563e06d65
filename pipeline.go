package gazefocus

import (
	"time"

	"github.com/gazekit/go-gazefocus/posture"
)

// FrameResult is the core's per frame output, everything the caller needs
// for HUD rendering and notification dispatch
type FrameResult struct {
	// Presence is the confirmed presence state after this frame
	Presence PresenceState
	// PresenceChanged is true when a presence transition occurred this
	// frame
	PresenceChanged bool
	// FaceVisible is true when the stabilizer produced a box this frame
	FaceVisible bool
	// Box is the stabilized face box, only valid when FaceVisible is true
	Box StabilizedBox
	// Posture is the posture classification, UNKNOWN until calibrated
	Posture posture.State
	// Calibration is the baseline calibration status
	Calibration posture.Status
	// Timer is the session timer state after this frame
	Timer SessionTimerState
	// Score is the focus score after this frame
	Score float64
	// Alerts holds zero or more alert events that fired this frame
	Alerts []AlertEvent
}

// Pipeline composes the inference stages into a single synchronous per
// frame update.  All state is owned by exactly one stage and only mutated
// inside Update, and the clock is always supplied by the caller, so the
// whole core is deterministic and replayable from a recorded detection log
type Pipeline struct {
	cfg        Config
	stabilizer *DetectionStabilizer
	presence   *PresenceStateMachine
	calibrator *posture.Calibrator
	classify   posture.ClassifierParams
	timer      *SessionTimer
	score      *FocusScore
	alerts     *AlertManager
	// lastNow is the timestamp of the previous update, used for score
	// integration
	lastNow time.Time
	hasLast bool
}

// NewPipeline validates the configuration and returns a new Pipeline.
// Invalid configuration is rejected here, never clamped
func NewPipeline(cfg Config) (*Pipeline, error) {

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Pipeline{
		cfg:        cfg,
		stabilizer: NewDetectionStabilizer(cfg.SmoothingAlpha, cfg.AbsenceGraceFrames),
		presence:   NewPresenceStateMachine(cfg.PresenceConfirmFrames),
		calibrator: posture.NewCalibrator(cfg.CalibrationSamples),
		classify: posture.ClassifierParams{
			TooCloseRatio:   cfg.TooCloseRatio,
			SlouchDropRatio: cfg.SlouchDropRatio,
			FrameHeight:     float64(cfg.FrameHeight),
		},
		timer:  NewSessionTimer(),
		score:  NewFocusScore(cfg),
		alerts: NewAlertManager(cfg.AlertCooldown, cfg.IdleAlertAfter),
	}, nil
}

// Update pushes one frame through every stage in order and returns the
// frame result.  It must be called from a single goroutine
func (p *Pipeline) Update(det Detection, now time.Time) FrameResult {

	sb, visible := p.stabilizer.Update(det)
	state, changed := p.presence.Update(visible)

	// posture runs only while presence is confirmed
	postureState := posture.Unknown
	var status posture.Status

	if state == Present && visible {
		area := float64(sb.Box.Area())
		centerY := float64(sb.Box.CenterY())
		status = p.calibrator.Observe(area, centerY, true)

		if status == posture.Ready {
			postureState = posture.Classify(area, centerY,
				p.calibrator.Baseline(), p.classify)
		}
	} else {
		status = p.calibrator.Observe(0, 0, false)
	}

	timerState := p.timer.Tick(state, now)

	var dt time.Duration
	if p.hasLast {
		dt = now.Sub(p.lastNow)
	}
	p.lastNow = now
	p.hasLast = true

	scoreVal := p.score.Update(state, postureState, dt, !p.timer.Paused())

	events := p.alerts.Evaluate(postureState, state, now)

	return FrameResult{
		Presence:        state,
		PresenceChanged: changed,
		FaceVisible:     visible,
		Box:             sb,
		Posture:         postureState,
		Calibration:     status,
		Timer:           timerState,
		Score:           scoreVal,
		Alerts:          events,
	}
}

// ResetSession starts a new session, clearing the timer, the focus score
// and the alert debounce accounting.  The posture baseline is kept
func (p *Pipeline) ResetSession() {
	p.timer.Reset()
	p.score.Reset()
	p.alerts.Reset()
}

// RecalibrateBaseline discards the posture baseline and restarts the
// calibration window, for use after the user returns from a long absence
// or on manual request
func (p *Pipeline) RecalibrateBaseline() {
	p.calibrator.Recalibrate()
}

// PauseSession suspends the session timer and score accumulation
func (p *Pipeline) PauseSession() {
	p.timer.Pause()
}

// ResumeSession lifts an explicit session pause
func (p *Pipeline) ResumeSession() {
	p.timer.Resume()
}

// Config returns the pipeline configuration
func (p *Pipeline) Config() Config {
	return p.cfg
}
