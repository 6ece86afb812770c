package core

// Action is a player intent, independent of the key that produced it.
type Action uint8

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow - move cursor up
	ActionDown             // S, Down arrow - move cursor down
	ActionLeft             // A, Left arrow - move cursor left
	ActionRight            // D, Right arrow - move cursor right
	ActionConfirm          // Enter, Space - block the tile under the cursor
	ActionCycle            // Tab - switch search strategy
	ActionVisualize        // V - animate the current search
	ActionToggle           // T - toggle auto-visualize after each move
	ActionRestart          // R - restart after game over
	ActionPause            // P - pause/unpause
	ActionBack             // B, Escape - leave the game
	ActionQuit             // Q, Ctrl+C - exit
)

var actionNames = [...]string{
	ActionNone:      "None",
	ActionUp:        "Up",
	ActionDown:      "Down",
	ActionLeft:      "Left",
	ActionRight:     "Right",
	ActionConfirm:   "Confirm",
	ActionCycle:     "Cycle",
	ActionVisualize: "Visualize",
	ActionToggle:    "Toggle",
	ActionRestart:   "Restart",
	ActionPause:     "Pause",
	ActionBack:      "Back",
	ActionQuit:      "Quit",
}

// String returns the action name, or "Unknown".
func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "Unknown"
}

// InputFrame holds the actions triggered during one tick.
// The zero value is an empty frame.
type InputFrame struct {
	bits uint32
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks a as triggered.
func (f *InputFrame) Set(a Action) {
	f.bits |= 1 << a
}

// Has reports whether a was triggered.
func (f InputFrame) Has(a Action) bool {
	return f.bits&(1<<a) != 0
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Clear drops every action.
func (f *InputFrame) Clear() {
	f.bits = 0
}
