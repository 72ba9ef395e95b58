package core

// Action represents a semantic control action, abstracted from
// physical key presses. The platform maps keys to actions; the
// animation consumes actions without knowing the key bindings.
type Action int

const (
	ActionNone        Action = iota
	ActionPause              // P - pause/resume stepping
	ActionReseed             // R - reseed the grid with a fresh seed
	ActionGrow               // + - enlarge the grid and reseed
	ActionShrink             // - - shrink the grid and reseed
	ActionFaster             // ] - increase tick rate
	ActionSlower             // [ - decrease tick rate
	ActionToggleZeros        // Z - toggle dimming of zero cells
	ActionUp                 // W, Up - menu navigation
	ActionDown               // S, Down - menu navigation
	ActionConfirm            // Enter - confirm selection
	ActionBack               // B, Esc - go back
	ActionQuit               // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionReseed:
		return "Reseed"
	case ActionGrow:
		return "Grow"
	case ActionShrink:
		return "Shrink"
	case ActionFaster:
		return "Faster"
	case ActionSlower:
		return "Slower"
	case ActionToggleZeros:
		return "ToggleZeros"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
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

// InputFrame holds the actions triggered between two ticks.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
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
