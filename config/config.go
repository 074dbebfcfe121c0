// Package config loads the orbit viewer's construction parameters from YAML or TOML and
// turns them into camera options.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/chewxy/math32"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned by Load for files that are neither YAML nor TOML.
var ErrUnsupportedFormat = errors.New("unsupported config format")

const (
	defaultTitle  = "oxy-orbit"
	defaultWidth  = 1280
	defaultHeight = 720
)

// Config holds everything needed to build the camera and the viewer around it.
// Fields omitted from a file keep the values from Default.
type Config struct {
	// Eye is the initial camera position.
	Eye [3]float32 `yaml:"eye" toml:"eye"`

	// Target is the fixed look-at point.
	Target [3]float32 `yaml:"target" toml:"target"`

	// Up is the world up reference axis.
	Up [3]float32 `yaml:"up" toml:"up"`

	// Aspect is width / height. The windowed viewer overrides it with the framebuffer size.
	Aspect float32 `yaml:"aspect" toml:"aspect"`

	// FovyDegrees is the vertical field of view in degrees.
	FovyDegrees float32 `yaml:"fovy_degrees" toml:"fovy_degrees"`
	ZNear       float32 `yaml:"znear" toml:"znear"`
	ZFar        float32 `yaml:"zfar" toml:"zfar"`

	// Speed is the per-tick orbital step.
	Speed float32 `yaml:"speed" toml:"speed"`

	// KeyBindings maps key names (see common.KeyByName) to direction names
	// (up, down, forward, backward, left, right). Entries are added on top of the default map.
	KeyBindings map[string]string `yaml:"key_bindings" toml:"key_bindings"`

	Window WindowConfig `yaml:"window" toml:"window"`

	// VSync caps presentation to the display refresh rate.
	VSync bool `yaml:"vsync" toml:"vsync"`

	// Profiling logs per-second frame statistics.
	Profiling bool `yaml:"profiling" toml:"profiling"`
}

// WindowConfig describes the viewer window. Zero fields fall back to defaults.
type WindowConfig struct {
	Title  string `yaml:"title" toml:"title"`
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
}

// Default returns the configuration used when no file is given: the eye at (0, 1, 2) looking at
// the origin with +Y up, a 45 degree field of view, near 0.1, far 100 and speed 0.2.
//
// Returns:
//   - *Config: a new default configuration
func Default() *Config {
	return &Config{
		Eye:         [3]float32{0, 1, 2},
		Target:      [3]float32{0, 0, 0},
		Up:          [3]float32{0, 1, 0},
		Aspect:      float32(defaultWidth) / float32(defaultHeight),
		FovyDegrees: 45,
		ZNear:       0.1,
		ZFar:        100,
		Speed:       camera.DefaultSpeed,
		Window: WindowConfig{
			Title:  defaultTitle,
			Width:  defaultWidth,
			Height: defaultHeight,
		},
		VSync: true,
	}
}

// Load reads and validates a configuration file. The decoder is chosen by extension:
// .yaml and .yml use YAML, .toml uses TOML.
//
// Parameters:
//   - path: the file to read
//
// Returns:
//   - *Config: the loaded configuration
//   - error: a read, parse or validation error
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the camera invariants: 0 < znear < zfar, aspect > 0, 0 < fovy < 180,
// speed > 0, eye != target, up not parallel to the viewing direction, and that every key
// binding names a known key and direction. All violations are reported together.
//
// Returns:
//   - error: the joined violations, or nil
func (c *Config) Validate() error {
	var errs []error

	if c.ZNear <= 0 {
		errs = append(errs, fmt.Errorf("znear: must be positive, got %g", c.ZNear))
	}
	if c.ZFar <= c.ZNear {
		errs = append(errs, fmt.Errorf("zfar: must be greater than znear (%g), got %g", c.ZNear, c.ZFar))
	}
	if c.Aspect <= 0 {
		errs = append(errs, fmt.Errorf("aspect: must be positive, got %g", c.Aspect))
	}
	if c.FovyDegrees <= 0 || c.FovyDegrees >= 180 {
		errs = append(errs, fmt.Errorf("fovy_degrees: must be in (0, 180), got %g", c.FovyDegrees))
	}
	if c.Speed <= 0 {
		errs = append(errs, fmt.Errorf("speed: must be positive, got %g", c.Speed))
	}

	forward := common.Vec3(c.Target).Sub(common.Vec3(c.Eye))
	up := common.Vec3(c.Up)
	switch {
	case common.ApproxEqual(forward.Len(), 0, 1e-6):
		errs = append(errs, fmt.Errorf("eye: must differ from target %v", c.Target))
	case common.ApproxEqual(up.Len(), 0, 1e-6):
		errs = append(errs, errors.New("up: must be non-zero"))
	case common.ApproxEqual(common.Normalize(up).Cross(common.Normalize(forward)).Len(), 0, 1e-4):
		errs = append(errs, fmt.Errorf("up: %v is parallel to the viewing direction", c.Up))
	}

	for _, name := range sortedKeys(c.KeyBindings) {
		if _, ok := common.KeyByName(name); !ok {
			errs = append(errs, fmt.Errorf("key_bindings: unknown key %q", name))
		}
		if _, ok := camera.DirectionByName(c.KeyBindings[name]); !ok {
			errs = append(errs, fmt.Errorf("key_bindings: unknown direction %q for key %q", c.KeyBindings[name], name))
		}
	}

	if c.Window.Width < 0 || c.Window.Height < 0 {
		errs = append(errs, fmt.Errorf("window: size must not be negative, got %dx%d", c.Window.Width, c.Window.Height))
	}

	return errors.Join(errs...)
}

// Fovy returns the vertical field of view in radians.
//
// Returns:
//   - float32: FovyDegrees converted to radians
func (c *Config) Fovy() float32 {
	return c.FovyDegrees * math32.Pi / 180
}

// WindowTitle returns the configured title or the default.
//
// Returns:
//   - string: the window title
func (c *Config) WindowTitle() string {
	return common.Coalesce(c.Window.Title, defaultTitle)
}

// WindowSize returns the configured window size, substituting defaults for zero values.
//
// Returns:
//   - width: the window width in pixels
//   - height: the window height in pixels
func (c *Config) WindowSize() (width, height int) {
	return common.Coalesce(c.Window.Width, defaultWidth), common.Coalesce(c.Window.Height, defaultHeight)
}

// ControllerOptions converts the speed and key bindings into controller options.
// Bindings that do not resolve are skipped; Validate reports them.
//
// Returns:
//   - []camera.CameraControllerOption: options for camera.NewCameraController
func (c *Config) ControllerOptions() []camera.CameraControllerOption {
	options := []camera.CameraControllerOption{camera.WithSpeed(c.Speed)}
	for _, name := range sortedKeys(c.KeyBindings) {
		key, ok := common.KeyByName(name)
		if !ok {
			continue
		}
		dir, ok := camera.DirectionByName(c.KeyBindings[name])
		if !ok {
			continue
		}
		options = append(options, camera.WithKeyBinding(key, dir))
	}
	return options
}

// CameraOptions converts the configuration into camera options, including a controller built
// from ControllerOptions.
//
// Returns:
//   - []camera.CameraBuilderOption: options for camera.NewCamera
func (c *Config) CameraOptions() []camera.CameraBuilderOption {
	return []camera.CameraBuilderOption{
		camera.WithEye(c.Eye[0], c.Eye[1], c.Eye[2]),
		camera.WithTarget(c.Target[0], c.Target[1], c.Target[2]),
		camera.WithUp(c.Up[0], c.Up[1], c.Up[2]),
		camera.WithAspect(c.Aspect),
		camera.WithFovy(c.Fovy()),
		camera.WithNear(c.ZNear),
		camera.WithFar(c.ZFar),
		camera.WithController(camera.NewCameraController(c.ControllerOptions()...)),
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
