package gazefocus

import (
	"testing"
	"time"

	"github.com/gazekit/go-gazefocus/posture"
)

// TestAlertFiresOnTransitionOnly tests that a sustained bad posture yields
// exactly one alert, not one per frame
func TestAlertFiresOnTransitionOnly(t *testing.T) {

	a := NewAlertManager(30*time.Second, 0)
	t0 := time.Unix(1000, 0)

	events := a.Evaluate(posture.TooClose, Present, t0)

	if len(events) != 1 {
		t.Fatalf("expected 1 alert on transition, got %d", len(events))
	}

	if events[0].Kind != AlertTooClose {
		t.Errorf("expected kind %s, got %s", AlertTooClose, events[0].Kind)
	}

	if events[0].At != t0 {
		t.Errorf("expected timestamp %v, got %v", t0, events[0].At)
	}

	// stay in the same state for many frames, no further alerts
	for i := 1; i <= 10; i++ {
		events = a.Evaluate(posture.TooClose, Present, t0.Add(time.Duration(i)*time.Second))

		if len(events) != 0 {
			t.Fatalf("frame %d: alert refired while state unchanged", i)
		}
	}
}

// TestAlertCooldownSuppressesFlap tests that a flap back into a bad posture
// inside the cooldown window is suppressed
func TestAlertCooldownSuppressesFlap(t *testing.T) {

	a := NewAlertManager(30*time.Second, 0)
	t0 := time.Unix(1000, 0)

	events := a.Evaluate(posture.TooClose, Present, t0)

	if len(events) != 1 {
		t.Fatalf("expected initial alert, got %d", len(events))
	}

	a.Evaluate(posture.Good, Present, t0.Add(2*time.Second))

	// a shaky classification flapping near the threshold must not storm
	events = a.Evaluate(posture.TooClose, Present, t0.Add(4*time.Second))

	if len(events) != 0 {
		t.Errorf("alert inside cooldown must be suppressed, got %d", len(events))
	}
}

// TestAlertRefiresAfterCooldown tests that a recurrence separated by more
// than the cooldown yields a second alert
func TestAlertRefiresAfterCooldown(t *testing.T) {

	a := NewAlertManager(30*time.Second, 0)
	t0 := time.Unix(1000, 0)

	total := 0
	total += len(a.Evaluate(posture.TooClose, Present, t0))

	a.Evaluate(posture.Good, Present, t0.Add(10*time.Second))

	total += len(a.Evaluate(posture.TooClose, Present, t0.Add(45*time.Second)))

	if total != 2 {
		t.Errorf("expected two alerts separated by more than cooldown, got %d", total)
	}
}

// TestAlertKindsIndependent tests that the two posture kinds debounce
// independently
func TestAlertKindsIndependent(t *testing.T) {

	a := NewAlertManager(30*time.Second, 0)
	t0 := time.Unix(1000, 0)

	events := a.Evaluate(posture.TooClose, Present, t0)

	if len(events) != 1 {
		t.Fatalf("expected too close alert, got %d", len(events))
	}

	// a slouch shortly after is a different kind, its cooldown is separate
	events = a.Evaluate(posture.Slouched, Present, t0.Add(5*time.Second))

	if len(events) != 1 || events[0].Kind != AlertSlouched {
		t.Errorf("expected independent slouched alert, got %v", events)
	}
}

// TestIdleAlert tests the idle alert after a long continuous absence
func TestIdleAlert(t *testing.T) {

	a := NewAlertManager(30*time.Second, time.Minute)
	t0 := time.Unix(1000, 0)

	if events := a.Evaluate(posture.Unknown, Absent, t0); len(events) != 0 {
		t.Fatalf("idle alert fired too early: %v", events)
	}

	if events := a.Evaluate(posture.Unknown, Absent, t0.Add(59*time.Second)); len(events) != 0 {
		t.Fatalf("idle alert fired before threshold: %v", events)
	}

	events := a.Evaluate(posture.Unknown, Absent, t0.Add(61*time.Second))

	if len(events) != 1 || events[0].Kind != AlertSessionIdle {
		t.Fatalf("expected idle alert, got %v", events)
	}

	// fires once per absence stretch
	if events := a.Evaluate(posture.Unknown, Absent, t0.Add(5*time.Minute)); len(events) != 0 {
		t.Errorf("idle alert refired within the same absence: %v", events)
	}

	// returning and leaving again starts a fresh stretch
	a.Evaluate(posture.Unknown, Present, t0.Add(6*time.Minute))
	a.Evaluate(posture.Unknown, Absent, t0.Add(7*time.Minute))

	events = a.Evaluate(posture.Unknown, Absent, t0.Add(9*time.Minute))

	if len(events) != 1 || events[0].Kind != AlertSessionIdle {
		t.Errorf("expected idle alert for new absence stretch, got %v", events)
	}
}

// TestIdleAlertDisabled tests that a zero threshold disables idle alerts
func TestIdleAlertDisabled(t *testing.T) {

	a := NewAlertManager(30*time.Second, 0)
	t0 := time.Unix(1000, 0)

	a.Evaluate(posture.Unknown, Absent, t0)

	if events := a.Evaluate(posture.Unknown, Absent, t0.Add(24*time.Hour)); len(events) != 0 {
		t.Errorf("disabled idle alert fired: %v", events)
	}
}

// TestAlertEventIDsUnique tests emitted events carry distinct IDs
func TestAlertEventIDsUnique(t *testing.T) {

	a := NewAlertManager(time.Second, 0)
	t0 := time.Unix(1000, 0)

	first := a.Evaluate(posture.TooClose, Present, t0)
	a.Evaluate(posture.Good, Present, t0.Add(2*time.Second))
	second := a.Evaluate(posture.TooClose, Present, t0.Add(4*time.Second))

	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("expected one event each, got %d and %d", len(first), len(second))
	}

	if first[0].ID == second[0].ID {
		t.Error("alert events must carry unique IDs")
	}
}
