package camera

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithSpeed sets the distance moved per update tick while a direction is held.
//
// Parameters:
//   - speed: movement per tick (must be > 0)
//
// Returns:
//   - CameraControllerOption: functional option to set the speed
func WithSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.speed = speed
	}
}

// WithKeyBinding binds a key to a direction, replacing any previous binding for that key.
// Other keys bound to the same direction keep working.
//
// Parameters:
//   - key: the key code (see common.Key*)
//   - dir: the direction the key drives
//
// Returns:
//   - CameraControllerOption: functional option to add the binding
func WithKeyBinding(key uint32, dir Direction) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.keyMap[key] = dir
	}
}

// WithKeyMap replaces the whole key map, dropping the default bindings.
//
// Parameters:
//   - keyMap: key code to direction bindings
//
// Returns:
//   - CameraControllerOption: functional option to set the key map
func WithKeyMap(keyMap map[uint32]Direction) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.keyMap = make(map[uint32]Direction, len(keyMap))
		for k, d := range keyMap {
			cc.keyMap[k] = d
		}
	}
}
