package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
)

// DefaultSpeed is the controller speed used when none is configured.
const DefaultSpeed float32 = 0.2

// cameraControllerImpl is the single implementation of CameraController.
type cameraControllerImpl struct {
	mu *sync.Mutex

	speed float32

	// pressed is indexed by Direction.
	pressed [6]bool

	keyMap map[uint32]Direction
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// DefaultKeyMap returns the default bindings: Space and Left Shift for up/down, WASD with the
// arrow keys as alternates for the horizontal directions.
//
// Returns:
//   - map[uint32]Direction: a fresh copy of the default bindings
func DefaultKeyMap() map[uint32]Direction {
	return map[uint32]Direction{
		common.KeySpace:     DirectionUp,
		common.KeyLeftShift: DirectionDown,
		common.KeyW:         DirectionForward,
		common.KeyUp:        DirectionForward,
		common.KeyA:         DirectionLeft,
		common.KeyLeft:      DirectionLeft,
		common.KeyS:         DirectionBackward,
		common.KeyDown:      DirectionBackward,
		common.KeyD:         DirectionRight,
		common.KeyRight:     DirectionRight,
	}
}

// NewCameraController creates a controller with every direction released.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu:     &sync.Mutex{},
		speed:  DefaultSpeed,
		keyMap: DefaultKeyMap(),
	}
	for _, option := range options {
		option(cc)
	}
	return cc
}

func (cc *cameraControllerImpl) ProcessKeyEvent(ev input.KeyEvent) bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	dir, ok := cc.keyMap[ev.Key]
	if !ok {
		return false
	}
	cc.pressed[dir] = ev.Pressed()
	return true
}

func (cc *cameraControllerImpl) Reset() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.pressed = [6]bool{}
}

func (cc *cameraControllerImpl) Speed() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.speed
}

func (cc *cameraControllerImpl) Pressed(dir Direction) bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if dir < 0 || int(dir) >= len(cc.pressed) {
		return false
	}
	return cc.pressed[dir]
}

func (cc *cameraControllerImpl) Binding(key uint32) (Direction, bool) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	dir, ok := cc.keyMap[key]
	return dir, ok
}

func (cc *cameraControllerImpl) UpPressed() bool       { return cc.Pressed(DirectionUp) }
func (cc *cameraControllerImpl) DownPressed() bool     { return cc.Pressed(DirectionDown) }
func (cc *cameraControllerImpl) ForwardPressed() bool  { return cc.Pressed(DirectionForward) }
func (cc *cameraControllerImpl) BackwardPressed() bool { return cc.Pressed(DirectionBackward) }
func (cc *cameraControllerImpl) LeftPressed() bool     { return cc.Pressed(DirectionLeft) }
func (cc *cameraControllerImpl) RightPressed() bool    { return cc.Pressed(DirectionRight) }

