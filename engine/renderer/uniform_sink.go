package renderer

import (
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/renderer/bind_group_provider"
)

// BufferWriter submits buffer writes to the GPU. Renderer implements it.
type BufferWriter interface {
	WriteBuffers(writes []bind_group_provider.BufferWrite)
}

type uniformSink struct {
	writer   BufferWriter
	provider bind_group_provider.BindGroupProvider
	binding  int
}

var _ camera.UniformSink = &uniformSink{}

// NewUniformSink returns a camera.UniformSink that uploads each uniform to the provider's buffer
// at binding, at offset 0, through writer.
//
// Parameters:
//   - writer: the buffer writer, normally the Renderer
//   - provider: the provider populated by InitCameraBindGroup
//   - binding: the binding index of the uniform buffer
//
// Returns:
//   - camera.UniformSink: the sink to hand to camera.WithUniformSink
func NewUniformSink(writer BufferWriter, provider bind_group_provider.BindGroupProvider, binding int) camera.UniformSink {
	return &uniformSink{
		writer:   writer,
		provider: provider,
		binding:  binding,
	}
}

func (s *uniformSink) WriteUniform(data []byte) {
	s.writer.WriteBuffers([]bind_group_provider.BufferWrite{{
		Provider: s.provider,
		Binding:  s.binding,
		Offset:   0,
		Data:     data,
	}})
}
