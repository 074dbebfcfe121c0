package engine

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
	"github.com/Carmen-Shannon/oxy-orbit/engine/profiler"
)

// EventSource is the windowing side of the frame loop. window.Window satisfies it.
type EventSource interface {
	SetEventCallback(callback func(ev input.Event))
	SetUpdateCallback(callback func())
	ProcessMessages()
	Width() int
	Height() int
	Close() error
}

// FrameRenderer is the drawing side of the frame loop. renderer.Renderer satisfies it.
type FrameRenderer interface {
	Resize(width, height int)
	Draw() error
	Release()
}

// engine implements the Engine interface.
type engine struct {
	mu *sync.Mutex

	window   EventSource
	camera   camera.Camera
	renderer FrameRenderer

	pending []input.Event
	frames  int

	profiler          *profiler.Profiler
	profilingEnabled  bool
	profilerToggleKey uint32

	quitOnce sync.Once
}

// Engine runs the orbit viewer's frame loop. Each frame it hands every queued input event to
// the camera, advances the camera once, rebuilds its matrices once, uploads the uniform through
// the camera's UniformSink and draws.
type Engine interface {
	// Camera returns the camera driven by the loop.
	//
	// Returns:
	//   - camera.Camera: the camera
	Camera() camera.Camera

	// HandleEvent queues an input event for the next frame. The window's event callback is wired
	// to it by Run; headless callers invoke it directly.
	//
	// Parameters:
	//   - ev: the event to queue
	HandleEvent(ev input.Event)

	// Frame runs one frame: queued events, UpdateCamera, UpdateViewProj, uniform upload and
	// draw (when a renderer is attached).
	//
	// Returns:
	//   - error: the draw error, if any
	Frame() error

	// Frames returns the number of frames run so far.
	//
	// Returns:
	//   - int: the frame count
	Frames() int

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// ProfilingEnabled reports whether profiling output is currently on.
	//
	// Returns:
	//   - bool: true while the profiler is ticked each frame
	ProfilingEnabled() bool

	// Run wires the window callbacks and runs the message loop (blocks until the window closes).
	//
	// Returns:
	//   - error: an error if no window is attached
	Run() error

	// Close releases the renderer and closes the window. Safe to call multiple times.
	//
	// Returns:
	//   - error: the window close error, if any
	Close() error
}

var _ Engine = &engine{}

// ErrNoWindow is returned by Run when the engine was built without a window.
var ErrNoWindow = errors.New("engine: no window attached")

// NewEngine creates a new Engine instance with the provided options.
// Without WithCamera a default camera is created.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		mu:       &sync.Mutex{},
		profiler: profiler.NewProfiler(),
	}
	for _, opt := range options {
		opt(e)
	}
	if e.camera == nil {
		e.camera = camera.NewCamera()
	}
	if e.window != nil && e.window.Height() > 0 {
		e.camera.SetAspect(float32(e.window.Width()) / float32(e.window.Height()))
	}
	return e
}

func (e *engine) Camera() camera.Camera {
	return e.camera
}

func (e *engine) HandleEvent(ev input.Event) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pending = append(e.pending, ev)
}

func (e *engine) Frames() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frames
}

func (e *engine) EnableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = false
}

func (e *engine) ProfilingEnabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.profilingEnabled
}

func (e *engine) Frame() error {
	e.mu.Lock()
	events := e.pending
	e.pending = nil
	e.mu.Unlock()

	consumed := 0
	for _, ev := range events {
		if e.handle(ev) {
			consumed++
		}
	}

	e.camera.UpdateCamera()
	e.camera.UpdateViewProj()
	if sink := e.camera.UniformSink(); sink != nil {
		u := e.camera.Uniform()
		sink.WriteUniform(u.Marshal())
	}

	var err error
	if e.renderer != nil {
		err = e.renderer.Draw()
	}

	e.mu.Lock()
	e.frames++
	profiling := e.profilingEnabled
	e.mu.Unlock()

	if profiling && e.profiler != nil {
		e.profiler.Tick(profiler.FrameSample{
			EventsConsumed: consumed,
			Eye:            e.camera.Eye(),
			Radius:         e.camera.Radius(),
		})
	}
	return err
}

// handle routes one event. Resizes go to the camera's aspect and the renderer's surface;
// everything else is offered to the camera.
func (e *engine) handle(ev input.Event) bool {
	switch ev := ev.(type) {
	case input.ResizeEvent:
		if ev.Width <= 0 || ev.Height <= 0 {
			return false
		}
		e.camera.SetAspect(float32(ev.Width) / float32(ev.Height))
		if e.renderer != nil {
			e.renderer.Resize(ev.Width, ev.Height)
		}
		return true
	case input.KeyEvent:
		if e.toggleProfiler(ev) {
			return true
		}
		return e.camera.ProcessEvents(ev)
	default:
		return e.camera.ProcessEvents(ev)
	}
}

// toggleProfiler flips profiling on a press of the profiler toggle key. Repeats and releases
// of that key are swallowed so they never reach the camera.
func (e *engine) toggleProfiler(ev input.KeyEvent) bool {
	if e.profilerToggleKey == 0 || ev.Key != e.profilerToggleKey {
		return false
	}
	if ev.Action != input.KeyActionPress {
		return true
	}
	if e.ProfilingEnabled() {
		e.DisableProfiler()
		log.Printf("[Engine] profiling disabled")
	} else {
		e.EnableProfiler()
		log.Printf("[Engine] profiling enabled")
	}
	return true
}

func (e *engine) Run() error {
	if e.window == nil {
		return ErrNoWindow
	}
	e.window.SetEventCallback(e.HandleEvent)
	e.window.SetUpdateCallback(e.update)
	e.window.ProcessMessages()
	return nil
}

// update is the window's per-iteration callback. Panics are recovered so a bad frame closes
// the window instead of crashing the process.
func (e *engine) update() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Engine] frame recovered from panic: %v", r)
			if err := e.Close(); err != nil {
				log.Printf("[Engine] close failed: %v", err)
			}
		}
	}()

	if err := e.Frame(); err != nil {
		log.Printf("[Engine] frame %d: %v", e.Frames(), err)
	}
}

func (e *engine) Close() error {
	var err error
	e.quitOnce.Do(func() {
		e.camera.Controller().Reset()
		if e.renderer != nil {
			e.renderer.Release()
		}
		if e.window != nil {
			if closeErr := e.window.Close(); closeErr != nil {
				err = fmt.Errorf("failed to close window: %w", closeErr)
			}
		}
	})
	return err
}
