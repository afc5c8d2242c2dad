package sceneedit

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the editor's tunable constants. Start from DefaultConfig and
// override fields, or load overrides from TOML with LoadConfig.
type Config struct {
	// DragThreshold is the pointer travel in pixels, on either axis, before a
	// right-button press becomes a look drag.
	DragThreshold float64 `toml:"drag_threshold"`
	// PanSpeed is the world units moved per pixel of wheel-button drag at
	// distance 10 or less from the origin.
	PanSpeed float64 `toml:"pan_speed"`
	// ZoomStep is the world distance moved per wheel event.
	ZoomStep float64 `toml:"zoom_step"`
	// MoveSpeed is the fly speed in world units per second.
	MoveSpeed float64 `toml:"move_speed"`
	// Acceleration is accepted for compatibility. Movement is constant-speed
	// and does not read it.
	Acceleration float64 `toml:"acceleration"`
	// MaxFrameDelta caps the seconds integrated per frame.
	MaxFrameDelta float64 `toml:"max_frame_delta"`
	// LookSensitivity is radians of rotation per pixel of locked pointer motion.
	LookSensitivity float64 `toml:"look_sensitivity"`
	// LockGlyphSize is the pixel size of the pointer-lock indicator. It is
	// drawn centered on the pointer.
	LockGlyphSize float64 `toml:"lock_glyph_size"`
	// FocusDuration is the focus animation length in seconds.
	FocusDuration float64 `toml:"focus_duration"`
	// GizmoSize is the handle length of the default transform gizmo.
	GizmoSize float64 `toml:"gizmo_size"`

	Fov            float64    `toml:"fov"`
	Near           float64    `toml:"near"`
	Far            float64    `toml:"far"`
	CameraPosition [3]float64 `toml:"camera_position"`
	CameraTarget   [3]float64 `toml:"camera_target"`

	// Debug enables per-frame timing and tree-shape warnings.
	Debug bool `toml:"debug"`

	// Logger receives all editor logging. Nil means slog.Default().
	Logger *slog.Logger `toml:"-"`
}

// DefaultConfig returns the stock editor settings.
func DefaultConfig() Config {
	return Config{
		DragThreshold:   7,
		PanSpeed:        0.01,
		ZoomStep:        1,
		MoveSpeed:       250,
		Acceleration:    10,
		MaxFrameDelta:   0.02,
		LookSensitivity: 0.002,
		LockGlyphSize:   30,
		FocusDuration:   0.4,
		GizmoSize:       1,
		Fov:             75,
		Near:            0.1,
		Far:             5000,
		CameraPosition:  [3]float64{0, 2, 3},
		CameraTarget:    [3]float64{0, 1, 0},
	}
}

// LoadConfig decodes TOML over DefaultConfig. Unknown keys are rejected.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// LoadConfigFile reads and decodes a TOML config file.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return LoadConfig(data)
}

// EncodeTOML encodes the config, e.g. to write a starter file.
func (c Config) EncodeTOML() ([]byte, error) {
	return toml.Marshal(c)
}

// Validate reports every setting that would break the editor.
func (c Config) Validate() error {
	var errs []error
	if c.DragThreshold < 0 {
		errs = append(errs, fmt.Errorf("drag_threshold %v is negative", c.DragThreshold))
	}
	if c.MaxFrameDelta <= 0 {
		errs = append(errs, fmt.Errorf("max_frame_delta %v must be positive", c.MaxFrameDelta))
	}
	if c.Fov <= 0 || c.Fov >= 180 {
		errs = append(errs, fmt.Errorf("fov %v out of range (0, 180)", c.Fov))
	}
	if c.Near <= 0 || c.Far <= c.Near {
		errs = append(errs, fmt.Errorf("near %v / far %v must satisfy 0 < near < far", c.Near, c.Far))
	}
	if c.CameraPosition == c.CameraTarget {
		errs = append(errs, errors.New("camera_position equals camera_target"))
	}
	return errors.Join(errs...)
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
