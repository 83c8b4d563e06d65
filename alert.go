package gazefocus

import (
	"time"

	"github.com/google/uuid"

	"github.com/gazekit/go-gazefocus/posture"
)

// AlertKind identifies the kind of alert emitted
type AlertKind string

const (
	// User is leaning too close to the screen
	AlertTooClose AlertKind = "too_close"
	// User is slouching
	AlertSlouched AlertKind = "slouched"
	// User has been away from the desk for a long continuous stretch
	AlertSessionIdle AlertKind = "session_idle"
)

// AlertEvent is a structured alert decision.  Delivery of the actual
// notification is the caller's responsibility
type AlertEvent struct {
	// ID uniquely identifies the event
	ID uuid.UUID
	// Kind is the alert kind
	Kind AlertKind
	// Message is a human readable description
	Message string
	// At is the timestamp the alert fired
	At time.Time
}

// AlertManager observes posture transitions and presence and decides when
// alerts fire.  A posture alert fires only on the transition into a bad
// state, and only when the per kind cooldown has elapsed, so a shaky
// classification near a threshold boundary cannot produce an alert storm
type AlertManager struct {
	// cooldown is the minimum interval between alerts of the same kind
	cooldown time.Duration
	// idleAfter is the continuous absence duration that triggers an idle
	// alert, zero disables it
	idleAfter time.Duration
	// lastFired records the last alert timestamp per kind
	lastFired map[AlertKind]time.Time
	// lastPosture is the posture state of the previous frame
	lastPosture posture.State
	// absentSince marks the start of the current absence stretch
	absentSince time.Time
	inAbsence   bool
	// idleFired is true once the idle alert fired for this absence stretch
	idleFired bool
}

// NewAlertManager initializes and returns a new AlertManager
func NewAlertManager(cooldown, idleAfter time.Duration) *AlertManager {
	return &AlertManager{
		cooldown:  cooldown,
		idleAfter: idleAfter,
		lastFired: make(map[AlertKind]time.Time),
	}
}

var alertMessages = map[AlertKind]string{
	AlertTooClose:    "You are leaning too close to the screen, sit back",
	AlertSlouched:    "You are slouching, straighten up",
	AlertSessionIdle: "You have been away for a while, session is idle",
}

// Evaluate consumes one frame's posture and presence results and returns
// zero or more alert events
func (a *AlertManager) Evaluate(postureState posture.State,
	presence PresenceState, now time.Time) []AlertEvent {

	var events []AlertEvent

	// posture alerts fire on the transition edge into a bad state only
	if postureState != a.lastPosture {
		switch postureState {
		case posture.TooClose:
			if ev, ok := a.fire(AlertTooClose, now); ok {
				events = append(events, ev)
			}
		case posture.Slouched:
			if ev, ok := a.fire(AlertSlouched, now); ok {
				events = append(events, ev)
			}
		}
	}

	a.lastPosture = postureState

	// idle alert fires once per continuous absence stretch
	if presence == Absent {
		if !a.inAbsence {
			a.inAbsence = true
			a.absentSince = now
			a.idleFired = false
		}

		if a.idleAfter > 0 && !a.idleFired &&
			now.Sub(a.absentSince) >= a.idleAfter {

			a.idleFired = true
			events = append(events, a.newEvent(AlertSessionIdle, now))
		}
	} else {
		a.inAbsence = false
	}

	return events
}

// fire emits an alert of the given kind unless it is still in cooldown
func (a *AlertManager) fire(kind AlertKind, now time.Time) (AlertEvent, bool) {

	if last, ok := a.lastFired[kind]; ok && now.Sub(last) < a.cooldown {
		return AlertEvent{}, false
	}

	a.lastFired[kind] = now

	return a.newEvent(kind, now), true
}

func (a *AlertManager) newEvent(kind AlertKind, now time.Time) AlertEvent {
	return AlertEvent{
		ID:      uuid.New(),
		Kind:    kind,
		Message: alertMessages[kind],
		At:      now,
	}
}

// Reset clears the debounce accounting and absence tracking
func (a *AlertManager) Reset() {
	a.lastFired = make(map[AlertKind]time.Time)
	a.lastPosture = posture.Unknown
	a.inAbsence = false
	a.idleFired = false
}
