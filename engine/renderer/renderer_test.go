package renderer

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-orbit/engine/renderer/bind_group_provider"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	calls       []string
	presentMode PresentMode
	sizes       [][2]int
	writes      []bind_group_provider.BufferWrite
	drawn       []bind_group_provider.BindGroupProvider
	initErr     error
}

func (f *fakeBackend) ConfigureSurface(width, height int) {
	f.calls = append(f.calls, "configure")
	f.sizes = append(f.sizes, [2]int{width, height})
}

func (f *fakeBackend) SetPresentMode(mode PresentMode) {
	f.calls = append(f.calls, "present-mode")
	f.presentMode = mode
}

func (f *fakeBackend) InitCameraBindGroup(provider bind_group_provider.BindGroupProvider) error {
	f.calls = append(f.calls, "camera")
	return f.initErr
}

func (f *fakeBackend) InitReferenceScene(cameraLayout *wgpu.BindGroupLayout) error {
	f.calls = append(f.calls, "scene")
	return nil
}

func (f *fakeBackend) WriteBuffers(writes []bind_group_provider.BufferWrite) {
	f.writes = append(f.writes, writes...)
}

func (f *fakeBackend) DrawFrame(cameraProvider bind_group_provider.BindGroupProvider) error {
	f.calls = append(f.calls, "draw")
	f.drawn = append(f.drawn, cameraProvider)
	return nil
}

func (f *fakeBackend) Release() {
	f.calls = append(f.calls, "release")
}

func withFake(options ...RendererBuilderOption) (*renderer, *fakeBackend) {
	r := newRenderer(options...)
	fb := &fakeBackend{}
	r.backend = fb
	return r, fb
}

func TestNewRendererDefaults(t *testing.T) {
	r := newRenderer()
	assert.Equal(t, PresentModeVSync, r.presentMode)
	assert.False(t, r.forceFallbackAdapter)
	assert.Equal(t, wgpu.Color{R: 0.1, G: 0.1, B: 0.1, A: 1.0}, r.clearColor)
}

func TestRendererBuilderOptions(t *testing.T) {
	r := newRenderer(
		WithPresentMode(PresentModeUncapped),
		WithForceSoftwareRenderer(true),
		WithClearColor(0.2, 0.3, 0.4),
	)
	assert.Equal(t, PresentModeUncapped, r.presentMode)
	assert.True(t, r.forceFallbackAdapter)
	assert.Equal(t, wgpu.Color{R: 0.2, G: 0.3, B: 0.4, A: 1.0}, r.clearColor)
}

func TestNewRendererWithoutSurface(t *testing.T) {
	_, err := NewRenderer(nilSurface{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoSurface))
}

type nilSurface struct{}

func (nilSurface) SurfaceDescriptor() *wgpu.SurfaceDescriptor { return nil }
func (nilSurface) Width() int                                 { return 640 }
func (nilSurface) Height() int                                { return 480 }

func TestInitCameraBindGroupBuildsScene(t *testing.T) {
	r, fb := withFake()
	provider := bind_group_provider.NewBindGroupProvider("Camera")

	require.NoError(t, r.InitCameraBindGroup(provider))
	assert.Equal(t, []string{"camera", "scene"}, fb.calls)

	require.NoError(t, r.Draw())
	require.Len(t, fb.drawn, 1)
	assert.Same(t, provider, fb.drawn[0])
}

func TestInitCameraBindGroupError(t *testing.T) {
	r, fb := withFake()
	fb.initErr = errors.New("out of memory")

	err := r.InitCameraBindGroup(bind_group_provider.NewBindGroupProvider("Camera"))
	require.Error(t, err)
	assert.Equal(t, []string{"camera"}, fb.calls, "scene is not built without a camera layout")

	require.NoError(t, r.Draw())
	assert.Nil(t, fb.drawn[0])
}

func TestResizeReconfigures(t *testing.T) {
	r, fb := withFake()
	r.Resize(1024, 768)
	assert.Equal(t, []string{"configure"}, fb.calls)
	assert.Equal(t, [][2]int{{1024, 768}}, fb.sizes)
}

func TestReleaseReleasesProvider(t *testing.T) {
	r, fb := withFake()
	provider := bind_group_provider.NewBindGroupProvider("Camera")
	require.NoError(t, r.InitCameraBindGroup(provider))

	r.Release()
	assert.Equal(t, "release", fb.calls[len(fb.calls)-1])
	assert.Nil(t, r.cameraProvider)
}

func TestPresentModeMapping(t *testing.T) {
	assert.Equal(t, wgpu.PresentModeFifo, PresentModeVSync.wgpuPresentMode())
	assert.Equal(t, wgpu.PresentModeImmediate, PresentModeUncapped.wgpuPresentMode())
	assert.Equal(t, wgpu.PresentModeFifo, PresentMode(7).wgpuPresentMode())
}

func TestWriteBuffersThroughUniformSink(t *testing.T) {
	r, fb := withFake()
	provider := bind_group_provider.NewBindGroupProvider("Camera")
	NewUniformSink(r, provider, 0).WriteUniform([]byte{9, 9})

	require.Len(t, fb.writes, 1)
	assert.Same(t, provider, fb.writes[0].Provider)
	assert.Equal(t, []byte{9, 9}, fb.writes[0].Data)
}
