package camera

import "github.com/Carmen-Shannon/oxy-orbit/engine/input"

// Direction is one of the six logical movement directions a CameraController tracks.
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionForward
	DirectionBackward
	DirectionLeft
	DirectionRight
)

// directionNames is indexed by Direction.
var directionNames = [...]string{"up", "down", "forward", "backward", "left", "right"}

// String returns the lower-case name of the direction.
func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return "unknown"
	}
	return directionNames[d]
}

// DirectionByName resolves a lower-case direction name ("forward", "left", ...).
//
// Parameters:
//   - name: the direction name
//
// Returns:
//   - Direction: the matching direction
//   - bool: false if the name is unknown
func DirectionByName(name string) (Direction, bool) {
	for i, n := range directionNames {
		if n == name {
			return Direction(i), true
		}
	}
	return 0, false
}

// CameraController tracks which logical directions are currently held, plus the movement
// speed used by the camera's orbital update. It is a pure state holder: the only mutator is
// ProcessKeyEvent (and Reset). Flags are sticky, a held key keeps reporting pressed until its
// release event arrives.
type CameraController interface {
	// ProcessKeyEvent applies a key transition if the key is bound to a direction.
	//
	// Parameters:
	//   - ev: the key event
	//
	// Returns:
	//   - bool: true if the key is bound (the event was consumed), false otherwise
	ProcessKeyEvent(ev input.KeyEvent) bool

	// Reset releases every direction.
	Reset()

	// Speed returns the distance moved per update tick while a direction is held.
	//
	// Returns:
	//   - float32: the movement speed
	Speed() float32

	// Pressed reports the held state of a direction.
	//
	// Parameters:
	//   - dir: the direction to query
	//
	// Returns:
	//   - bool: true if held
	Pressed(dir Direction) bool

	// Binding returns the direction a key is bound to.
	//
	// Parameters:
	//   - key: the key code
	//
	// Returns:
	//   - Direction: the bound direction
	//   - bool: false if the key is unbound
	Binding(key uint32) (Direction, bool)

	UpPressed() bool
	DownPressed() bool
	ForwardPressed() bool
	BackwardPressed() bool
	LeftPressed() bool
	RightPressed() bool
}
