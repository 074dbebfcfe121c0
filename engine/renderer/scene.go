package renderer

import (
	_ "embed"
	"encoding/binary"
	"math"

	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/cogentcore/webgpu/wgpu"
)

//go:embed assets/reference_scene.wgsl
var referenceSceneSource string

// ReferenceSceneShader returns the complete WGSL module used to draw the reference scene:
// the camera uniform struct followed by the line shader that reads it at group 0, binding 0.
//
// Returns:
//   - string: the WGSL source
func ReferenceSceneShader() string {
	return camera.GPUCameraUniformSource + "\n" + referenceSceneSource
}

// SceneVertex is one vertex of the reference scene line list.
// Size: 24 bytes (two vec3<f32> attributes, tightly packed).
type SceneVertex struct {
	Position [3]float32 // @location(0)
	Color    [3]float32 // @location(1)
}

// sceneVertexStride is the byte size of one SceneVertex in the vertex buffer.
const sceneVertexStride = 24

// sceneVertexLayout describes SceneVertex to the render pipeline.
var sceneVertexLayout = wgpu.VertexBufferLayout{
	ArrayStride: sceneVertexStride,
	StepMode:    wgpu.VertexStepModeVertex,
	Attributes: []wgpu.VertexAttribute{
		{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
		{Format: wgpu.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
	},
}

// ReferenceScene returns a line list with the three world axes (X red, Y green, Z blue) and the
// wireframe of a unit cube centred on the origin. Every pair of vertices is one line segment.
//
// Returns:
//   - []SceneVertex: the vertices, two per segment
func ReferenceScene() []SceneVertex {
	const axisLength = 1.5
	vertices := []SceneVertex{
		{Position: [3]float32{0, 0, 0}, Color: [3]float32{1, 0, 0}},
		{Position: [3]float32{axisLength, 0, 0}, Color: [3]float32{1, 0, 0}},
		{Position: [3]float32{0, 0, 0}, Color: [3]float32{0, 1, 0}},
		{Position: [3]float32{0, axisLength, 0}, Color: [3]float32{0, 1, 0}},
		{Position: [3]float32{0, 0, 0}, Color: [3]float32{0, 0, 1}},
		{Position: [3]float32{0, 0, axisLength}, Color: [3]float32{0, 0, 1}},
	}

	grey := [3]float32{0.7, 0.7, 0.7}
	corner := func(i int) [3]float32 {
		var p [3]float32
		for axis := range 3 {
			if i&(1<<axis) != 0 {
				p[axis] = 0.5
			} else {
				p[axis] = -0.5
			}
		}
		return p
	}
	// Corners are numbered by their bit pattern; an edge joins two corners that differ in one bit.
	for i := range 8 {
		for axis := range 3 {
			j := i | 1<<axis
			if j == i {
				continue
			}
			vertices = append(vertices,
				SceneVertex{Position: corner(i), Color: grey},
				SceneVertex{Position: corner(j), Color: grey},
			)
		}
	}
	return vertices
}

// MarshalSceneVertices serializes vertices into a byte buffer suitable for a vertex buffer upload.
//
// Parameters:
//   - vertices: the vertices to serialize
//
// Returns:
//   - []byte: little-endian packed vertex data
func MarshalSceneVertices(vertices []SceneVertex) []byte {
	buf := make([]byte, len(vertices)*sceneVertexStride)
	for i, v := range vertices {
		off := i * sceneVertexStride
		for k := range 3 {
			binary.LittleEndian.PutUint32(buf[off+k*4:], math.Float32bits(v.Position[k]))
			binary.LittleEndian.PutUint32(buf[off+12+k*4:], math.Float32bits(v.Color[k]))
		}
	}
	return buf
}
