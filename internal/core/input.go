package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // W, Up arrow - move up
	ActionDown            // S, Down arrow - move down
	ActionLeft            // A, Left arrow - move left
	ActionRight           // D, Right arrow - move right
	ActionFire            // Space, mouse click - shoot
	ActionPause           // P - pause/resume
	ActionBack            // Esc - back to menu / exit
	ActionConfirm1        // 1 - start game
	ActionConfirm2        // 2 - show high score
	ActionConfirm3        // 3 - quit from menu
	ActionQuit            // Ctrl+C - exit immediately
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "Pause"
	case ActionBack:
		return "Back"
	case ActionConfirm1:
		return "Confirm1"
	case ActionConfirm2:
		return "Confirm2"
	case ActionConfirm3:
		return "Confirm3"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input state for a single simulation tick.
// Actions holds discrete "just pressed" events, Held the actions currently held down.
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

// Set marks an action as pressed this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Hold marks an action as held this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Has returns true if the action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Holds returns true if the action is held this frame.
func (f InputFrame) Holds(a Action) bool {
	return f.Held[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	clear(f.Held)
}

// HoldTracker turns key presses into held state.
// Terminals report presses (and auto-repeats) but never releases, so a press
// keeps its action held for a fixed number of ticks and each repeat extends it.
type HoldTracker struct {
	window int
	until  map[Action]int
}

// NewHoldTracker creates a tracker that holds each press for window ticks.
func NewHoldTracker(window int) *HoldTracker {
	if window < 1 {
		window = 1
	}
	return &HoldTracker{
		window: window,
		until:  make(map[Action]int),
	}
}

// Press records a press of a at the given tick.
func (h *HoldTracker) Press(a Action, tick int) {
	h.until[a] = tick + h.window
}

// Release drops a held action immediately.
func (h *HoldTracker) Release(a Action) {
	delete(h.until, a)
}

// Reset forgets every held action.
func (h *HoldTracker) Reset() {
	clear(h.until)
}

// Apply copies the actions still held at tick into the frame and expires the rest.
func (h *HoldTracker) Apply(tick int, frame *InputFrame) {
	for a, until := range h.until {
		if tick >= until {
			delete(h.until, a)
			continue
		}
		frame.Hold(a)
	}
}
