package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
)

type cameraImpl struct {
	mu *sync.Mutex

	eye    common.Vec3
	target common.Vec3
	up     common.Vec3

	fovy   float32
	aspect float32
	near   float32
	far    float32

	viewMatrix           common.Mat4
	projectionMatrix     common.Mat4
	viewProjectionMatrix common.Mat4

	controller CameraController
	sink       UniformSink
}

// Camera is an orbit camera. It owns the eye position, a fixed look-at target and the
// perspective parameters, embeds a CameraController, and derives the view-projection matrix
// consumed by the renderer.
//
// The frame loop calls, in order: ProcessEvents for each pending event, UpdateCamera once,
// UpdateViewProj once, then uploads Uniform() through the camera's UniformSink.
//
// Eye and target must never coincide and Up must not be parallel to the viewing direction.
// These are caller preconditions and are not checked.
type Camera interface {
	// Eye returns the camera position in world space.
	//
	// Returns:
	//   - common.Vec3: the eye position
	Eye() common.Vec3

	// Target returns the fixed look-at point.
	//
	// Returns:
	//   - common.Vec3: the target position
	Target() common.Vec3

	// Up returns the world up reference axis.
	//
	// Returns:
	//   - common.Vec3: the up vector
	Up() common.Vec3

	// Fovy returns the vertical field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fovy() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// Radius returns the current distance between eye and target.
	//
	// Returns:
	//   - float32: the orbit radius
	Radius() float32

	// Controller returns the embedded CameraController.
	//
	// Returns:
	//   - CameraController: the controller
	Controller() CameraController

	// UniformSink returns the sink the frame loop uploads the camera uniform through, or nil.
	//
	// Returns:
	//   - UniformSink: the sink or nil
	UniformSink() UniformSink

	// ProcessEvents forwards key events to the controller. Every other event type is left
	// unconsumed.
	//
	// Parameters:
	//   - ev: the input event
	//
	// Returns:
	//   - bool: true if the event was consumed
	ProcessEvents(ev input.Event) bool

	// UpdateCamera moves the eye along the sphere of radius |target - eye| centred on the
	// target, according to the held directions. Right wins over left and forward wins over
	// backward; the horizontal and vertical pairs combine. Up and down are not used.
	UpdateCamera()

	// UpdateViewProj rebuilds the view, projection and view-projection matrices from the
	// current eye, target, up and projection parameters. Call it after UpdateCamera each frame.
	UpdateViewProj()

	// ViewMatrix returns the view matrix from the last UpdateViewProj (column-major).
	//
	// Returns:
	//   - [16]float32: the view matrix
	ViewMatrix() [16]float32

	// ProjectionMatrix returns the depth-remapped projection matrix from the last
	// UpdateViewProj (column-major, clip depth in [0, 1]).
	//
	// Returns:
	//   - [16]float32: the projection matrix
	ProjectionMatrix() [16]float32

	// ViewProjectionMatrix returns the combined matrix from the last UpdateViewProj
	// (column-major).
	//
	// Returns:
	//   - [16]float32: the view-projection matrix
	ViewProjectionMatrix() [16]float32

	// Uniform returns the GPU uniform record holding the current view-projection matrix.
	//
	// Returns:
	//   - GPUCameraUniform: the uniform record
	Uniform() GPUCameraUniform

	// SetAspect sets the aspect ratio (width / height), typically after a resize, and
	// rebuilds the matrices.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)
}

var _ Camera = &cameraImpl{}

// NewCamera creates an orbit camera. Without options the eye sits at (0, 1, 2) looking at the
// origin with +Y up, a 45 degree vertical field of view, aspect 1, near 0.1 and far 100, and a
// default CameraController.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera with its matrices computed
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:     &sync.Mutex{},
		eye:    common.Vec3{0, 1, 2},
		target: common.Vec3{0, 0, 0},
		up:     common.Vec3{0, 1, 0},
		fovy:   45.0 * (math.Pi / 180.0), // radians
		aspect: 1.0,
		near:   0.1,
		far:    100.0,
	}
	for _, option := range options {
		option(c)
	}
	if c.controller == nil {
		c.controller = NewCameraController()
	}
	c.updateViewProj()
	return c
}

func (c *cameraImpl) Eye() common.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eye
}

func (c *cameraImpl) Target() common.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target
}

func (c *cameraImpl) Up() common.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up
}

func (c *cameraImpl) Fovy() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fovy
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) Radius() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target.Sub(c.eye).Len()
}

func (c *cameraImpl) Controller() CameraController {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.controller
}

func (c *cameraImpl) UniformSink() UniformSink {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sink
}

func (c *cameraImpl) ViewMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *cameraImpl) Uniform() GPUCameraUniform {
	c.mu.Lock()
	defer c.mu.Unlock()
	return GPUCameraUniform{ViewProj: c.viewProjectionMatrix}
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
	c.updateViewProj()
}

func (c *cameraImpl) ProcessEvents(ev input.Event) bool {
	switch e := ev.(type) {
	case input.KeyEvent:
		return c.Controller().ProcessKeyEvent(e)
	case *input.KeyEvent:
		if e == nil {
			return false
		}
		return c.Controller().ProcessKeyEvent(*e)
	default:
		return false
	}
}

func (c *cameraImpl) UpdateCamera() {
	c.mu.Lock()
	defer c.mu.Unlock()

	ctrl := c.controller
	speed := ctrl.Speed()

	forward := c.target.Sub(c.eye)
	forwardDir := common.Normalize(forward)
	forwardMag := forward.Len()

	// The local basis is re-derived every tick so localUp stays orthogonal to the current
	// viewing direction; c.up is only the reference axis.
	right := common.Normalize(forwardDir.Cross(c.up))
	localUp := right.Cross(forwardDir)

	// Each branch rescales the offset back to forwardMag, so the eye stays on the sphere.
	if ctrl.RightPressed() {
		c.eye = c.target.Sub(common.Normalize(forward.Add(right.Mul(speed))).Mul(forwardMag))
	} else if ctrl.LeftPressed() {
		c.eye = c.target.Sub(common.Normalize(forward.Sub(right.Mul(speed))).Mul(forwardMag))
	}

	// Re-read forward so a horizontal and a vertical step in the same tick compose.
	forward = c.target.Sub(c.eye)

	if ctrl.ForwardPressed() {
		c.eye = c.target.Sub(common.Normalize(forward.Add(localUp.Mul(speed))).Mul(forwardMag))
	} else if ctrl.BackwardPressed() {
		c.eye = c.target.Sub(common.Normalize(forward.Sub(localUp.Mul(speed))).Mul(forwardMag))
	}
}

func (c *cameraImpl) UpdateViewProj() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updateViewProj()
}

// updateViewProj recalculates the view, projection and view-projection matrices.
// The projection is built in the OpenGL depth convention and remapped to WebGPU's [0, 1]
// range by common.OpenGLToWGPU. Caller must hold the mutex.
func (c *cameraImpl) updateViewProj() {
	view, proj, viewProj := common.ViewProjection(c.eye, c.target, c.up, c.fovy, c.aspect, c.near, c.far)
	c.viewMatrix = view
	c.projectionMatrix = proj
	c.viewProjectionMatrix = viewProj
}
