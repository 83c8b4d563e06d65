package gazefocus

import (
	"testing"
	"time"
)

// TestSessionTimerAccumulation tests that time accumulates only while
// present and freezes without counting gaps across absences
func TestSessionTimerAccumulation(t *testing.T) {

	timer := NewSessionTimer()
	t0 := time.Unix(1000, 0)

	state := timer.Tick(Present, t0)

	if !state.Running {
		t.Error("timer should run while present")
	}

	if state.Accumulated != 0 {
		t.Errorf("first tick must not accumulate, got %v", state.Accumulated)
	}

	state = timer.Tick(Present, t0.Add(time.Second))

	if state.Accumulated != time.Second {
		t.Errorf("expected 1s accumulated, got %v", state.Accumulated)
	}

	// presence lost, timer freezes
	state = timer.Tick(Absent, t0.Add(2*time.Second))

	if state.Running {
		t.Error("timer must stop while absent")
	}

	if state.Accumulated != time.Second {
		t.Errorf("absence must not accumulate, got %v", state.Accumulated)
	}

	// a long gap while away is not counted on resume
	state = timer.Tick(Present, t0.Add(10*time.Second))

	if state.Accumulated != time.Second {
		t.Errorf("resume must not count the absent gap, got %v", state.Accumulated)
	}

	state = timer.Tick(Present, t0.Add(11*time.Second))

	if state.Accumulated != 2*time.Second {
		t.Errorf("expected 2s accumulated after resume, got %v", state.Accumulated)
	}
}

// TestSessionTimerMonotonic tests that accumulated time never decreases
// over a mixed presence sequence
func TestSessionTimerMonotonic(t *testing.T) {

	timer := NewSessionTimer()
	t0 := time.Unix(1000, 0)

	states := []PresenceState{
		Absent, Uncertain, Present, Present, Absent,
		Present, Uncertain, Present, Present, Absent,
	}

	var last time.Duration

	for i, presence := range states {
		state := timer.Tick(presence, t0.Add(time.Duration(i)*time.Second))

		if state.Accumulated < last {
			t.Fatalf("frame %d: accumulated decreased from %v to %v", i, last, state.Accumulated)
		}

		last = state.Accumulated
	}
}

// TestSessionTimerUncertainDoesNotCount tests that the transitional
// UNCERTAIN state does not accumulate time
func TestSessionTimerUncertainDoesNotCount(t *testing.T) {

	timer := NewSessionTimer()
	t0 := time.Unix(1000, 0)

	timer.Tick(Uncertain, t0)
	state := timer.Tick(Uncertain, t0.Add(time.Second))

	if state.Accumulated != 0 || state.Running {
		t.Errorf("uncertain must not accumulate, got %+v", state)
	}
}

// TestSessionTimerPauseResume tests the explicit pause command overriding
// presence
func TestSessionTimerPauseResume(t *testing.T) {

	timer := NewSessionTimer()
	t0 := time.Unix(1000, 0)

	timer.Tick(Present, t0)
	timer.Tick(Present, t0.Add(time.Second))

	timer.Pause()

	state := timer.Tick(Present, t0.Add(2*time.Second))

	if state.Running {
		t.Error("paused timer must not run even while present")
	}

	if state.Accumulated != time.Second {
		t.Errorf("paused timer must not accumulate, got %v", state.Accumulated)
	}

	timer.Resume()

	// paused interval is not counted
	state = timer.Tick(Present, t0.Add(5*time.Second))

	if state.Accumulated != time.Second {
		t.Errorf("resume must not count the paused gap, got %v", state.Accumulated)
	}

	state = timer.Tick(Present, t0.Add(6*time.Second))

	if state.Accumulated != 2*time.Second {
		t.Errorf("expected 2s after resume, got %v", state.Accumulated)
	}
}

// TestSessionTimerReset tests the explicit session reset
func TestSessionTimerReset(t *testing.T) {

	timer := NewSessionTimer()
	t0 := time.Unix(1000, 0)

	timer.Tick(Present, t0)
	timer.Tick(Present, t0.Add(time.Second))

	timer.Reset()

	state := timer.State()

	if state.Accumulated != 0 || state.Running {
		t.Errorf("reset must clear the timer, got %+v", state)
	}
}
