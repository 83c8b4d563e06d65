package gazefocus

// PresenceState represents the confirmed presence of the user
type PresenceState int

const (
	// No user at the desk
	Absent PresenceState = 0
	// A face appeared but presence is not yet confirmed
	Uncertain PresenceState = 1
	// User presence is confirmed
	Present PresenceState = 2
)

// String returns the presence state name
func (p PresenceState) String() string {
	switch p {
	case Uncertain:
		return "UNCERTAIN"
	case Present:
		return "PRESENT"
	default:
		return "ABSENT"
	}
}

// PresenceStateMachine turns the stabilizer's box/absent signal into
// debounced presence transitions.  The stabilizer already smooths box level
// noise with its grace window, this machine separately smooths identity of
// presence noise by requiring a confirmation streak before reporting
// PRESENT.  Initial state is ABSENT
type PresenceStateMachine struct {
	// confirmFrames is the consecutive stabilized frame count required to
	// confirm presence from UNCERTAIN
	confirmFrames int
	// state is the current presence state
	state PresenceState
	// streak counts consecutive frames with a stabilized box
	streak int
}

// NewPresenceStateMachine initializes and returns a new PresenceStateMachine
func NewPresenceStateMachine(confirmFrames int) *PresenceStateMachine {
	return &PresenceStateMachine{
		confirmFrames: confirmFrames,
		state:         Absent,
	}
}

// Update consumes one frame's stabilizer output, true when a stabilized box
// was produced and false on an absent signal.  It returns the new presence
// state and whether a transition occurred this frame
func (m *PresenceStateMachine) Update(boxPresent bool) (PresenceState, bool) {

	prev := m.state

	switch m.state {

	case Absent:
		if boxPresent {
			// first box is not yet confirmation
			m.state = Uncertain
			m.streak = 1
		}

	case Uncertain:
		if !boxPresent {
			m.state = Absent
			m.streak = 0
		} else {
			m.streak++
			if m.streak >= m.confirmFrames {
				m.state = Present
			}
		}

	case Present:
		if !boxPresent {
			// the absent signal already reflects the stabilizer's grace
			// window so no further hysteresis is applied here
			m.state = Absent
			m.streak = 0
		}
	}

	return m.state, m.state != prev
}

// State returns the current presence state
func (m *PresenceStateMachine) State() PresenceState {
	return m.state
}

// Reset returns the machine to the initial ABSENT state
func (m *PresenceStateMachine) Reset() {
	m.state = Absent
	m.streak = 0
}
