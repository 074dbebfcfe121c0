package profiler

import (
	"log"
	"runtime"
	"time"
)

// FrameSample is what the frame loop reports to the Profiler each frame.
type FrameSample struct {
	// EventsConsumed is the number of input events the camera consumed this frame.
	EventsConsumed int

	// Eye is the camera position after the frame's update.
	Eye [3]float32

	// Radius is the eye to target distance after the frame's update.
	Radius float32
}

// Profiler tracks frame rate, input throughput, camera drift and memory statistics.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	frameCount     int
	eventCount     int
	minRadius      float32
	maxRadius      float32
	last           FrameSample
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastTotalAlloc uint64

	now  func() time.Time
	logf func(format string, args ...any)
}

// ProfilerOption configures a Profiler.
type ProfilerOption func(*Profiler)

// WithUpdateInterval sets how often statistics are logged.
// Non-positive intervals are ignored.
//
// Parameters:
//   - interval: time between log lines
//
// Returns:
//   - ProfilerOption: option function to apply
func WithUpdateInterval(interval time.Duration) ProfilerOption {
	return func(p *Profiler) {
		if interval > 0 {
			p.updateInterval = interval
		}
	}
}

// WithClock replaces time.Now.
//
// Parameters:
//   - now: the clock the profiler reads on every Tick
//
// Returns:
//   - ProfilerOption: option function to apply
func WithClock(now func() time.Time) ProfilerOption {
	return func(p *Profiler) {
		p.now = now
	}
}

// WithLogf replaces log.Printf as the output.
//
// Parameters:
//   - logf: printf-style sink for the statistics line
//
// Returns:
//   - ProfilerOption: option function to apply
func WithLogf(logf func(format string, args ...any)) ProfilerOption {
	return func(p *Profiler) {
		p.logf = logf
	}
}

// NewProfiler creates a new Profiler. Update interval defaults to 1 second.
//
// Parameters:
//   - options: functional options for the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		updateInterval: time.Second,
		now:            time.Now,
		logf:           log.Printf,
	}
	for _, opt := range options {
		opt(p)
	}
	p.lastTime = p.now()
	return p
}

// Tick should be called once per frame with that frame's sample.
// Logs statistics when the update interval has elapsed: FPS, events per second, the current eye
// and the radius range seen during the interval (which stays flat while the camera orbits),
// heap usage and allocation rate.
//
// Parameters:
//   - sample: the frame's statistics
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick(sample FrameSample) bool {
	if p.frameCount == 0 {
		p.minRadius, p.maxRadius = sample.Radius, sample.Radius
	}
	p.frameCount++
	p.eventCount += sample.EventsConsumed
	p.minRadius = min(p.minRadius, sample.Radius)
	p.maxRadius = max(p.maxRadius, sample.Radius)
	p.last = sample

	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	seconds := elapsed.Seconds()
	fps := float64(p.frameCount) / seconds
	eventRate := float64(p.eventCount) / seconds

	runtime.ReadMemStats(&p.memStats)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	allocRateMB := float64(p.memStats.TotalAlloc-p.lastTotalAlloc) / 1024 / 1024 / seconds

	p.logf("[Profiler] FPS: %.2f | Events: %.2f/s | Eye: (%.3f, %.3f, %.3f) | Radius: %.4f..%.4f | Heap: %.2f MB | Alloc Rate: %.2f MB/s",
		fps, eventRate, sample.Eye[0], sample.Eye[1], sample.Eye[2], p.minRadius, p.maxRadius, allocMB, allocRateMB)

	p.frameCount = 0
	p.eventCount = 0
	p.lastTime = currentTime
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}

// Last returns the most recent sample passed to Tick.
//
// Returns:
//   - FrameSample: the last sample, or the zero value before the first Tick
func (p *Profiler) Last() FrameSample {
	return p.last
}
