package window

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderOptions(t *testing.T) {
	w := newEngineWindow(
		WithTitle("orbit"),
		WithSize(800, 600),
		WithMinSize(100, 50),
		WithMaxSize(1000, 900),
	)
	assert.Equal(t, "orbit", w.Title())
	assert.Equal(t, 800, w.Width())
	assert.Equal(t, 600, w.Height())
	assert.Equal(t, 100, w.minWidth)
	assert.Equal(t, 50, w.minHeight)
	assert.Equal(t, 1000, w.maxWidth)
	assert.Equal(t, 900, w.maxHeight)

	w = newEngineWindow(WithSize(0, -1))
	assert.Equal(t, 1280, w.Width())
	assert.Equal(t, 720, w.Height())
}

func TestKeyAction(t *testing.T) {
	assert.Equal(t, input.KeyActionPress, keyAction(glfw.Press))
	assert.Equal(t, input.KeyActionRepeat, keyAction(glfw.Repeat))
	assert.Equal(t, input.KeyActionRelease, keyAction(glfw.Release))
}

func TestResizedEmitsEvent(t *testing.T) {
	w := newEngineWindow()
	var got []input.Event
	w.SetEventCallback(func(ev input.Event) { got = append(got, ev) })

	w.resized(640, 480)
	w.resized(0, 0)

	require.Len(t, got, 1)
	assert.Equal(t, input.ResizeEvent{Width: 640, Height: 480}, got[0])
	assert.Equal(t, 0, w.Width(), "minimised size is still recorded")
}

func TestEmitWithoutCallback(t *testing.T) {
	w := newEngineWindow()
	assert.NotPanics(t, func() { w.emit(input.ScrollEvent{Delta: 1}) })
}

func TestUninitializedWindow(t *testing.T) {
	w := newEngineWindow()
	assert.False(t, w.IsRunning())
	assert.Nil(t, w.SurfaceDescriptor())
	assert.Error(t, w.Close())
}
