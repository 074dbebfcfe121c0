package renderer

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceSceneIsLineList(t *testing.T) {
	vertices := ReferenceScene()
	require.Len(t, vertices, 2*(3+12), "three axes and twelve cube edges")

	// Every cube edge has unit length and runs along one axis.
	for i := 6; i < len(vertices); i += 2 {
		a := common.Vec3(vertices[i].Position)
		b := common.Vec3(vertices[i+1].Position)
		assert.InDelta(t, 1, b.Sub(a).Len(), 1e-6)
		assert.Equal(t, vertices[i].Color, vertices[i+1].Color)
	}

	// Axes start at the origin and point along +X, +Y and +Z.
	for axis := range 3 {
		start, end := vertices[axis*2], vertices[axis*2+1]
		assert.Equal(t, [3]float32{}, start.Position)
		assert.Greater(t, end.Position[axis], float32(0))
		assert.Equal(t, float32(1), end.Color[axis])
	}
}

func TestMarshalSceneVertices(t *testing.T) {
	vertices := []SceneVertex{
		{Position: [3]float32{1, 2, 3}, Color: [3]float32{0.25, 0.5, 0.75}},
		{Position: [3]float32{-1, -2, -3}, Color: [3]float32{1, 1, 1}},
	}
	buf := MarshalSceneVertices(vertices)
	require.Len(t, buf, 2*sceneVertexStride)

	at := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
	}
	assert.Equal(t, float32(1), at(0))
	assert.Equal(t, float32(3), at(8))
	assert.Equal(t, float32(0.25), at(12))
	assert.Equal(t, float32(-2), at(sceneVertexStride+4))
	assert.Equal(t, float32(1), at(sceneVertexStride+20))
}

func TestReferenceSceneShaderDeclaresCameraUniform(t *testing.T) {
	src := ReferenceSceneShader()
	assert.True(t, strings.Contains(src, "struct CameraUniform"))
	assert.True(t, strings.Contains(src, "@group(0) @binding(0)"))
	assert.True(t, strings.Contains(src, "fn vs_main"))
	assert.True(t, strings.Contains(src, "fn fs_main"))
	assert.Less(t, strings.Index(src, "struct CameraUniform"), strings.Index(src, "var<uniform> camera"))
}
