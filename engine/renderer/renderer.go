package renderer

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-orbit/engine/renderer/bind_group_provider"
	"github.com/cogentcore/webgpu/wgpu"
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backend wgpuRendererBackend

	cameraProvider bind_group_provider.BindGroupProvider

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	presentMode          PresentMode
	clearColor           wgpu.Color
}

// Renderer draws the orbit viewer's reference scene through WebGPU.
//
// The camera never talks to the Renderer directly: InitCameraBindGroup fills a BindGroupProvider
// with the uniform buffer and bind group, and NewUniformSink turns camera uploads into
// BufferWrites against that provider.
type Renderer interface {
	// Resize reconfigures the surface for a new framebuffer size.
	//
	// Parameters:
	//   - width: the new width in pixels
	//   - height: the new height in pixels
	Resize(width, height int)

	// InitCameraBindGroup allocates the camera uniform buffer and bind group on the provider
	// and builds the reference scene pipeline against its layout. The provider is the one
	// bound at group 0 by Draw.
	//
	// Parameters:
	//   - provider: the provider to populate
	//
	// Returns:
	//   - error: an error if GPU resource creation fails
	InitCameraBindGroup(provider bind_group_provider.BindGroupProvider) error

	// WriteBuffers submits buffer writes to the GPU queue.
	//
	// Parameters:
	//   - writes: the writes to submit
	WriteBuffers(writes []bind_group_provider.BufferWrite)

	// Draw renders and presents one frame.
	//
	// Returns:
	//   - error: an error if the frame could not be drawn
	Draw() error

	// Release frees the GPU resources held by the renderer and its camera provider.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a WebGPU renderer presenting to the window's surface and configures the
// surface at the window's current size.
//
// Parameters:
//   - window: the surface source, normally a window.Window
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: the configured renderer
//   - error: an error if no adapter or device could be obtained
func NewRenderer(window SurfaceSource, options ...RendererBuilderOption) (Renderer, error) {
	r := newRenderer(options...)

	backend, err := newWGPURendererBackend(window.SurfaceDescriptor(), r.forceFallbackAdapter, r.clearColor)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	backend.SetPresentMode(r.presentMode)
	backend.ConfigureSurface(window.Width(), window.Height())
	r.backend = backend
	return r, nil
}

// newRenderer applies defaults and options; the backend is attached by the caller.
func newRenderer(options ...RendererBuilderOption) *renderer {
	r := &renderer{
		mu:          &sync.Mutex{},
		presentMode: PresentModeVSync,
		clearColor:  wgpu.Color{R: 0.1, G: 0.1, B: 0.1, A: 1.0},
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

func (r *renderer) Resize(width, height int) {
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) InitCameraBindGroup(provider bind_group_provider.BindGroupProvider) error {
	if err := r.backend.InitCameraBindGroup(provider); err != nil {
		return err
	}
	if err := r.backend.InitReferenceScene(provider.BindGroupLayout()); err != nil {
		return err
	}

	r.mu.Lock()
	r.cameraProvider = provider
	r.mu.Unlock()
	return nil
}

func (r *renderer) WriteBuffers(writes []bind_group_provider.BufferWrite) {
	r.backend.WriteBuffers(writes)
}

func (r *renderer) Draw() error {
	r.mu.Lock()
	provider := r.cameraProvider
	r.mu.Unlock()

	return r.backend.DrawFrame(provider)
}

func (r *renderer) Release() {
	r.mu.Lock()
	provider := r.cameraProvider
	r.cameraProvider = nil
	r.mu.Unlock()

	if provider != nil {
		provider.Release()
	}
	r.backend.Release()
}
