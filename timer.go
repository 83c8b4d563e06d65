package gazefocus

import "time"

// SessionTimerState is the externally visible state of the session timer
type SessionTimerState struct {
	// Accumulated is the productive time counted so far.  It never
	// decreases except on an explicit reset
	Accumulated time.Duration
	// Running is true while time is being accumulated
	Running bool
	// LastTick is the timestamp of the last accumulating tick
	LastTick time.Time
}

// SessionTimer accumulates productive wall clock time, pausing exactly when
// presence is not confirmed.  Timestamps are always supplied by the caller,
// the timer never reads the clock itself
type SessionTimer struct {
	state SessionTimerState
	// paused is set by the explicit Pause command, independent of presence
	paused bool
}

// NewSessionTimer initializes and returns a new SessionTimer
func NewSessionTimer() *SessionTimer {
	return &SessionTimer{}
}

// Tick advances the timer for one frame.  While presence is PRESENT and the
// session is not paused the elapsed time since the previous tick is added to
// the accumulated total.  On loss of presence accumulation freezes with no
// gap counted on resume
func (t *SessionTimer) Tick(presence PresenceState, now time.Time) SessionTimerState {

	if presence != Present || t.paused {
		t.state.Running = false
		return t.state
	}

	if t.state.Running && now.After(t.state.LastTick) {
		t.state.Accumulated += now.Sub(t.state.LastTick)
	}

	t.state.Running = true
	t.state.LastTick = now

	return t.state
}

// Pause suspends accumulation until Resume is called, regardless of
// presence
func (t *SessionTimer) Pause() {
	t.paused = true
	t.state.Running = false
}

// Resume lifts an explicit pause.  Accumulation restarts on the next tick
// while present, the paused interval is not counted
func (t *SessionTimer) Resume() {
	t.paused = false
}

// Paused returns whether the timer is explicitly paused
func (t *SessionTimer) Paused() bool {
	return t.paused
}

// Reset starts a new session with zero accumulated time
func (t *SessionTimer) Reset() {
	t.state = SessionTimerState{}
	t.paused = false
}

// State returns the current timer state
func (t *SessionTimer) State() SessionTimerState {
	return t.state
}
