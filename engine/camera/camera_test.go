package camera

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-4

func assertVecInDelta(t *testing.T, want, got common.Vec3, delta float64) {
	t.Helper()
	for i := range 3 {
		assert.InDelta(t, want[i], got[i], delta, "component %d: want %v got %v", i, want, got)
	}
}

func holding(keys ...uint32) Camera {
	cam := NewCamera(WithController(NewCameraController(WithSpeed(0.2))))
	for _, k := range keys {
		cam.ProcessEvents(press(k))
	}
	return cam
}

func TestNewCameraDefaults(t *testing.T) {
	cam := NewCamera()
	assert.Equal(t, common.Vec3{0, 1, 2}, cam.Eye())
	assert.Equal(t, common.Vec3{0, 0, 0}, cam.Target())
	assert.Equal(t, common.Vec3{0, 1, 0}, cam.Up())
	assert.InDelta(t, math.Pi/4, cam.Fovy(), 1e-6)
	assert.Equal(t, float32(1), cam.Aspect())
	assert.Equal(t, float32(0.1), cam.Near())
	assert.Equal(t, float32(100), cam.Far())
	assert.NotNil(t, cam.Controller())
	assert.Nil(t, cam.UniformSink())
	assert.NotEqual(t, [16]float32{}, cam.ViewProjectionMatrix(), "matrix is computed at construction")
}

func TestUpdateCameraNoInputIsIdempotent(t *testing.T) {
	cam := NewCamera(WithEye(3, -2, 5), WithTarget(1, 1, 1))
	before := cam.Eye()
	for range 10 {
		cam.UpdateCamera()
	}
	assert.Equal(t, before, cam.Eye())
}

func TestUpdateCameraUpDownAreNoOps(t *testing.T) {
	for _, key := range []uint32{common.KeySpace, common.KeyLeftShift} {
		cam := holding(key)
		before := cam.Eye()
		cam.UpdateCamera()
		assert.Equal(t, before, cam.Eye())
	}
}

func TestUpdateCameraRightWorkedExample(t *testing.T) {
	cam := holding(common.KeyD)
	cam.UpdateCamera()

	// forward = (0,-1,-2), right = (1,0,0); eye = -normalize(forward + 0.2*right) * |forward|.
	mag := math.Sqrt(5)
	n := math.Sqrt(0.2*0.2 + 1 + 4)
	want := common.Vec3{
		float32(-0.2 / n * mag),
		float32(1 / n * mag),
		float32(2 / n * mag),
	}
	assertVecInDelta(t, want, cam.Eye(), tol)
	assert.InDelta(t, mag, cam.Radius(), tol)
	assert.Less(t, cam.Eye()[0], float32(0))
}

func TestUpdateCameraRadiusInvariance(t *testing.T) {
	type setup struct {
		eye, target, up common.Vec3
		speed           float32
	}
	setups := []setup{
		{common.Vec3{0, 1, 2}, common.Vec3{0, 0, 0}, common.Vec3{0, 1, 0}, 0.2},
		{common.Vec3{10, 4, -3}, common.Vec3{1, 2, 3}, common.Vec3{0, 1, 0}, 1.5},
		{common.Vec3{0, 0, 50}, common.Vec3{0, 0, 0}, common.Vec3{0, 0.6, 0.8}, 0.05},
		{common.Vec3{-2, 7, 1}, common.Vec3{0, 0, 0}, common.Vec3{1, 0, 0}, 0.5},
	}
	holds := [][]uint32{
		{common.KeyD},
		{common.KeyA},
		{common.KeyW},
		{common.KeyS},
		{common.KeyD, common.KeyW},
		{common.KeyA, common.KeyS},
		{common.KeyA, common.KeyD, common.KeyW, common.KeyS},
	}

	for _, s := range setups {
		for _, keys := range holds {
			cam := NewCamera(
				WithEye(s.eye[0], s.eye[1], s.eye[2]),
				WithTarget(s.target[0], s.target[1], s.target[2]),
				WithUp(s.up[0], s.up[1], s.up[2]),
				WithController(NewCameraController(WithSpeed(s.speed))),
			)
			for _, k := range keys {
				cam.ProcessEvents(press(k))
			}
			radius := s.target.Sub(s.eye).Len()
			// Few enough ticks that the viewing direction never swings parallel to up.
			for range 5 {
				before := cam.Eye()
				cam.UpdateCamera()
				assert.NotEqual(t, before, cam.Eye())
				assert.InDelta(t, radius, cam.Radius(), float64(radius)*1e-4)
			}
			assert.Equal(t, s.target, cam.Target(), "target is never mutated")
		}
	}
}

func TestUpdateCameraPrecedence(t *testing.T) {
	right := holding(common.KeyD)
	both := holding(common.KeyA, common.KeyD)
	right.UpdateCamera()
	both.UpdateCamera()
	assert.Equal(t, right.Eye(), both.Eye())

	forward := holding(common.KeyW)
	fb := holding(common.KeyS, common.KeyW)
	forward.UpdateCamera()
	fb.UpdateCamera()
	assert.Equal(t, forward.Eye(), fb.Eye())
}

func TestUpdateCameraOpposites(t *testing.T) {
	left := holding(common.KeyA)
	right := holding(common.KeyD)
	left.UpdateCamera()
	right.UpdateCamera()
	assert.InDelta(t, -right.Eye()[0], left.Eye()[0], tol)
	assert.InDelta(t, right.Eye()[1], left.Eye()[1], tol)

	forward := holding(common.KeyW)
	backward := holding(common.KeyS)
	forward.UpdateCamera()
	backward.UpdateCamera()
	// Forward tilts the eye down toward the target's horizon from (0,1,2), backward lifts it.
	assert.Less(t, forward.Eye()[1], float32(1))
	assert.Greater(t, backward.Eye()[1], float32(1))
}

func TestUpdateCameraDiagonal(t *testing.T) {
	diag := holding(common.KeyD, common.KeyW)
	forward := holding(common.KeyW)
	right := holding(common.KeyD)
	diag.UpdateCamera()
	forward.UpdateCamera()
	right.UpdateCamera()

	assert.Less(t, diag.Eye()[0], float32(0), "horizontal component is kept")
	assert.InDelta(t, forward.Eye()[1], diag.Eye()[1], 0.05, "vertical component is applied")
	assert.NotEqual(t, forward.Eye(), diag.Eye())
	assert.NotEqual(t, right.Eye(), diag.Eye())
}

func TestUpdateCameraReleaseStopsMotion(t *testing.T) {
	cam := holding(common.KeyD)
	cam.UpdateCamera()
	cam.ProcessEvents(release(common.KeyD))
	before := cam.Eye()
	cam.UpdateCamera()
	assert.Equal(t, before, cam.Eye())
}

func TestProcessEventsPassesThroughNonKeyEvents(t *testing.T) {
	cam := NewCamera()
	assert.False(t, cam.ProcessEvents(input.ResizeEvent{Width: 10, Height: 10}))
	assert.False(t, cam.ProcessEvents(input.ScrollEvent{Delta: 1}))
	assert.False(t, cam.ProcessEvents(input.MouseMoveEvent{X: 1, Y: 2}))
	assert.False(t, cam.ProcessEvents(press(common.KeyQ)))
	assert.True(t, cam.ProcessEvents(press(common.KeyW)))
}

func TestProcessEventsAcceptsKeyEventPointer(t *testing.T) {
	cam := NewCamera()
	assert.True(t, cam.ProcessEvents(&input.KeyEvent{Key: common.KeyW, Action: input.KeyActionPress}))
	assert.True(t, cam.Controller().ForwardPressed())

	assert.True(t, cam.ProcessEvents(&input.KeyEvent{Key: common.KeyW, Action: input.KeyActionRelease}))
	assert.False(t, cam.Controller().ForwardPressed())

	var nilEvent *input.KeyEvent
	assert.False(t, cam.ProcessEvents(nilEvent))
}

func TestUpdateViewProjMapsEyeToViewOrigin(t *testing.T) {
	cam := holding(common.KeyD, common.KeyW)
	for range 7 {
		cam.UpdateCamera()
	}
	cam.UpdateViewProj()

	view := cam.ViewMatrix()
	eye := cam.Eye()
	o := common.Mat4(view).Mul4x1(eye.Vec4(1))
	assert.InDelta(t, 0, o[0], tol)
	assert.InDelta(t, 0, o[1], tol)
	assert.InDelta(t, 0, o[2], tol)
	assert.InDelta(t, 1, o[3], tol)

	// The target lies straight ahead on -Z at the orbit radius.
	target := cam.Target()
	tv := common.Mat4(view).Mul4x1(target.Vec4(1))
	assert.InDelta(t, 0, tv[0], tol)
	assert.InDelta(t, 0, tv[1], tol)
	assert.InDelta(t, -cam.Radius(), tv[2], tol)
}

func TestUpdateViewProjDepthRange(t *testing.T) {
	cam := NewCamera(WithNear(0.5), WithFar(40), WithAspect(16.0/9.0))
	proj := cam.ProjectionMatrix()

	ndcZ := func(depth float32) float32 {
		c := common.Mat4(proj).Mul4x1(mgl32.Vec4{0, 0, -depth, 1})
		return c[2] / c[3]
	}
	assert.InDelta(t, 0, ndcZ(0.5), tol, "near plane maps to 0")
	assert.InDelta(t, 1, ndcZ(40), tol, "far plane maps to 1")

	// x/y scaling matches a standard perspective with the same parameters.
	f := 1 / math.Tan(float64(cam.Fovy())/2)
	assert.InDelta(t, f/(16.0/9.0), proj[0], 1e-5)
	assert.InDelta(t, f, proj[5], 1e-5)
	assert.InDelta(t, -1, proj[11], 1e-6)
}

func TestUpdateViewProjIsProjectionTimesView(t *testing.T) {
	cam := NewCamera(WithEye(4, 3, 2), WithTarget(0, 1, 0))
	view := cam.ViewMatrix()
	proj := cam.ProjectionMatrix()
	want := common.Mat4(proj).Mul4(common.Mat4(view))
	got := cam.ViewProjectionMatrix()
	for i := range 16 {
		assert.InDelta(t, want[i], got[i], 1e-5)
	}
}

func TestUpdateViewProjTracksEye(t *testing.T) {
	cam := holding(common.KeyD)
	before := cam.ViewProjectionMatrix()
	cam.UpdateCamera()
	assert.Equal(t, before, cam.ViewProjectionMatrix(), "matrix only changes on UpdateViewProj")
	cam.UpdateViewProj()
	assert.NotEqual(t, before, cam.ViewProjectionMatrix())
}

func TestSetAspectRebuildsProjection(t *testing.T) {
	cam := NewCamera()
	before := cam.ProjectionMatrix()
	cam.SetAspect(2)
	after := cam.ProjectionMatrix()
	assert.Equal(t, float32(2), cam.Aspect())
	assert.InDelta(t, before[0]/2, after[0], 1e-6)
	assert.Equal(t, before[5], after[5])
}

type recordingSink struct {
	writes [][]byte
}

func (s *recordingSink) WriteUniform(data []byte) {
	s.writes = append(s.writes, data)
}

func TestUniformMatchesViewProjection(t *testing.T) {
	sink := &recordingSink{}
	cam := NewCamera(WithUniformSink(sink))
	require.Same(t, sink, cam.UniformSink())

	u := cam.Uniform()
	assert.Equal(t, cam.ViewProjectionMatrix(), u.ViewProj)
	assert.Equal(t, 64, u.Size())

	cam.UniformSink().WriteUniform(u.Marshal())
	require.Len(t, sink.writes, 1)
	assert.Len(t, sink.writes[0], 64)
}
