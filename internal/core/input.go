package core

// Action is a semantic game intent, decoupled from the key that produced it.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionSoftDrop
	ActionRotateCW
	ActionRotateCCW
	ActionHardDrop
	ActionHold
	ActionPause
	ActionRestart
	ActionQuit
)

var actionNames = [...]string{
	ActionNone:      "None",
	ActionLeft:      "Left",
	ActionRight:     "Right",
	ActionSoftDrop:  "SoftDrop",
	ActionRotateCW:  "RotateCW",
	ActionRotateCCW: "RotateCCW",
	ActionHardDrop:  "HardDrop",
	ActionHold:      "Hold",
	ActionPause:     "Pause",
	ActionRestart:   "Restart",
	ActionQuit:      "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a >= 0 && int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "Unknown"
}

// Continuous reports whether the action is meaningful as a held state
// (movement and soft drop) rather than a one-shot press.
func (a Action) Continuous() bool {
	switch a {
	case ActionLeft, ActionRight, ActionSoftDrop:
		return true
	default:
		return false
	}
}

// InputFrame is the input for one simulation tick. Pressed actions fire
// once; held actions report a key that is still down.
type InputFrame struct {
	Actions map[Action]bool
	Held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as pressed during this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the action was pressed during this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// SetHeld marks an action as held down during this frame.
func (f *InputFrame) SetHeld(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// IsHeld returns true if the action is held down this frame.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a]
}

// Clear resets pressed and held actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	clear(f.Held)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	return clone
}
