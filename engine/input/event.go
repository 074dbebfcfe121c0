// Package input defines the platform-neutral events delivered by a Window to the engine.
// Key codes follow GLFW numbering (see common.Key*).
package input

// KeyAction describes the transition carried by a KeyEvent.
type KeyAction int

const (
	// KeyActionRelease is sent when a key is released.
	KeyActionRelease KeyAction = iota
	// KeyActionPress is sent when a key is first pressed.
	KeyActionPress
	// KeyActionRepeat is sent while a key is held and the platform auto-repeats it.
	KeyActionRepeat
)

// Event is implemented by every input event type.
type Event interface {
	isEvent()
}

// KeyEvent is a key press, repeat, or release for a physical key.
type KeyEvent struct {
	Key    uint32
	Action KeyAction
}

// Pressed reports whether the key is down after this event.
// Repeats count as pressed.
//
// Returns:
//   - bool: true for press and repeat, false for release
func (e KeyEvent) Pressed() bool {
	return e.Action != KeyActionRelease
}

// ResizeEvent reports a new framebuffer size in pixels.
type ResizeEvent struct {
	Width  int
	Height int
}

// ScrollEvent reports vertical scroll wheel movement. Positive is away from the user.
type ScrollEvent struct {
	Delta float32
}

// MouseMoveEvent reports the cursor position in window pixels.
type MouseMoveEvent struct {
	X, Y int32
}

func (KeyEvent) isEvent()       {}
func (ResizeEvent) isEvent()    {}
func (ScrollEvent) isEvent()    {}
func (MouseMoveEvent) isEvent() {}
