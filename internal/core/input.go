package core

// Action represents a semantic input action, abstracted from physical keys.
type Action int

const (
	ActionNone      Action = iota
	ActionForward          // W, Up arrow
	ActionBackward         // S, Down arrow
	ActionTurnLeft         // A, Left arrow
	ActionTurnRight        // D, Right arrow
	ActionStop             // Space - drop any held motion
	ActionToggleMap        // M - show/hide the minimap
	ActionPause            // P - pause/unpause
	ActionRestart          // R - back to the start point
	ActionConfirm          // Enter - confirm selection in menu
	ActionBack             // B, Escape - go back to menu
	ActionQuit             // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionForward:
		return "Forward"
	case ActionBackward:
		return "Backward"
	case ActionTurnLeft:
		return "TurnLeft"
	case ActionTurnRight:
		return "TurnRight"
	case ActionStop:
		return "Stop"
	case ActionToggleMap:
		return "ToggleMap"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
