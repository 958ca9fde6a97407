package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionConfirm            // Space, Up - start the run, flap
	ActionRestart            // Enter - restart after game over, commit a name
	ActionLeaderboard        // Tab - open name entry and the leaderboard
	ActionLetter             // A-Z with no other meaning; Event.Rune holds the letter
	ActionBackspace          // Backspace - delete the last name letter
	ActionQuit               // Q, Esc - close the game outside name entry
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionLeaderboard:
		return "Leaderboard"
	case ActionLetter:
		return "Letter"
	case ActionBackspace:
		return "Backspace"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Event is one input event. Rune is the letter typed, if any, whatever the
// action: Q carries both ActionQuit and 'q', and the game decides which one
// applies against its screen when the event is dispatched.
type Event struct {
	Action Action
	Rune   rune
}

// InputFrame holds the input events queued during one rendered frame,
// in the order they arrived. Order matters for name entry.
type InputFrame struct {
	Events []Event
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Events: make([]Event, 0, 4)}
}

// Push appends an action to the frame.
func (f *InputFrame) Push(a Action) {
	f.Events = append(f.Events, Event{Action: a})
}

// PushLetter appends a letter event to the frame.
func (f *InputFrame) PushLetter(r rune) {
	f.Events = append(f.Events, Event{Action: ActionLetter, Rune: r})
}

// PushKey appends an action together with the letter that produced it.
func (f *InputFrame) PushKey(a Action, r rune) {
	f.Events = append(f.Events, Event{Action: a, Rune: r})
}

// Empty reports whether no events were queued.
func (f InputFrame) Empty() bool {
	return len(f.Events) == 0
}

// Clear drops all events for the next frame, keeping the backing array.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
}
