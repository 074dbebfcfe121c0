package common

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Vec3 is a 3-component float32 vector used for both points and directions.
type Vec3 = mgl32.Vec3

// Mat4 is a column-major 4x4 float32 matrix, laid out the way WGSL expects a mat4x4<f32>.
type Mat4 = mgl32.Mat4

// OpenGLToWGPU remaps clip-space depth from the OpenGL convention [-1, 1] to the WebGPU
// convention [0, 1] (z' = 0.5z + 0.5w). Column-major, applied on the left of a GL projection.
var OpenGLToWGPU = Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// Normalize returns v scaled to unit length.
// The zero vector is returned unchanged instead of turning into NaNs.
//
// Parameters:
//   - v: the vector to normalize
//
// Returns:
//   - Vec3: the unit-length vector, or v itself when it has zero length
func Normalize(v Vec3) Vec3 {
	if v.Len() == 0 {
		return v
	}
	return v.Normalize()
}

// ViewProjection builds the view, WebGPU projection and combined view-projection matrices for a
// right-handed camera looking from eye towards target.
//
// Parameters:
//   - eye: camera position in world space
//   - target: point the camera looks at
//   - up: reference up vector
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
//
// Returns:
//   - view: world to view space
//   - proj: view to WebGPU clip space, depth in [0, 1]
//   - viewProj: proj * view
func ViewProjection(eye, target, up Vec3, fovY, aspect, near, far float32) (view, proj, viewProj Mat4) {
	view = mgl32.LookAtV(eye, target, up)
	proj = OpenGLToWGPU.Mul4(mgl32.Perspective(fovY, aspect, near, far))
	return view, proj, proj.Mul4(view)
}

// ApproxEqual reports whether a and b differ by no more than tol.
//
// Parameters:
//   - a, b: the values to compare
//   - tol: the largest allowed absolute difference
//
// Returns:
//   - bool: true when |a-b| <= tol
func ApproxEqual(a, b, tol float32) bool {
	return math32.Abs(a-b) <= tol
}
