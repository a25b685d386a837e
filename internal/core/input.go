package core

// Action is something the player asked for, independent of the key,
// button or window event that produced it.
type Action uint8

const (
	ActionNone    Action = iota
	ActionFlap           // flap; also starts and continues
	ActionConfirm        // start or restart from a menu screen
	ActionPointer        // primary pointer press; start or restart from a menu screen
	ActionQuit           // leave the program from any state
)

var actionNames = [...]string{
	ActionNone:    "None",
	ActionFlap:    "Flap",
	ActionConfirm: "Confirm",
	ActionPointer: "Pointer",
	ActionQuit:    "Quit",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "Unknown"
}

// InputFrame is the set of actions gathered for one tick. The zero value
// is an empty frame; frames are plain values and copy freely.
type InputFrame struct {
	bits uint8
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// InputOf returns a frame holding actions.
func InputOf(actions ...Action) InputFrame {
	var f InputFrame
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set adds a to the frame. ActionNone and unknown actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || int(a) >= len(actionNames) {
		return
	}
	f.bits |= 1 << a
}

// Has reports whether a was triggered.
func (f InputFrame) Has(a Action) bool {
	return a != ActionNone && int(a) < len(actionNames) && f.bits&(1<<a) != 0
}

// Any reports whether at least one of actions was triggered.
func (f InputFrame) Any(actions ...Action) bool {
	for _, a := range actions {
		if f.Has(a) {
			return true
		}
	}
	return false
}

// Empty reports whether nothing was triggered.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Clear empties the frame for the next tick.
func (f *InputFrame) Clear() {
	f.bits = 0
}
