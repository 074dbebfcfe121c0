package camera

// UniformSink receives the serialized camera uniform each frame. The renderer implements it
// on top of its GPU buffers; tests can implement it with a plain slice.
type UniformSink interface {
	// WriteUniform copies data into the GPU-side camera uniform.
	//
	// Parameters:
	//   - data: the marshalled GPUCameraUniform
	WriteUniform(data []byte)
}
