package cube

import (
	"errors"
	"fmt"
	colour "image/color"
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

// Config holds the tunable parts of the scene.  The zero value is not useful,
// start from DefaultConfig.
type Config struct {
	// InitialAngleX and InitialAngleY are the rotation, in degrees, applied
	// to the cube when the pipeline is initialized.
	InitialAngleX float32 `yaml:"initial_angle_x"`
	InitialAngleY float32 `yaml:"initial_angle_y"`

	// Background is the color the surface is cleared to every frame.
	Background colour.RGBA `yaml:"background"`

	// KeyStep is the rotation, in degrees, applied per arrow key press.
	KeyStep float32 `yaml:"key_step"`

	// WrapAngles keeps the accumulated rotation angles within (-360, 360).
	// Angles accumulate without bound when false.
	WrapAngles bool `yaml:"wrap_angles"`

	// ShowFPS draws a frame rate gauge over the scene, for hosts that
	// support it.
	ShowFPS bool `yaml:"show_fps"`
}

// DefaultConfig returns the configuration of the stock sample: a cube turned
// 45 degrees about x and y over an opaque white background.
func DefaultConfig() Config {
	return Config{
		InitialAngleX: 45,
		InitialAngleY: 45,
		Background:    colour.RGBA{R: 255, G: 255, B: 255, A: 255},
		KeyStep:       1,
	}
}

// Validate reports whether c can be used to render.
func (c *Config) Validate() error {
	for _, v := range []struct {
		name string
		x    float32
	}{
		{"initial_angle_x", c.InitialAngleX},
		{"initial_angle_y", c.InitialAngleY},
		{"key_step", c.KeyStep},
	} {
		if !finite(v.x) {
			return fmt.Errorf("cube: %s must be finite, got %v", v.name, v.x)
		}
	}
	if c.KeyStep <= 0 {
		return fmt.Errorf("cube: key_step must be positive, got %v", c.KeyStep)
	}
	return nil
}

func finite(x float32) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// ParseConfig decodes YAML from r over the defaults.  Empty input yields
// DefaultConfig and unknown keys are rejected.
func ParseConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err := dec.Decode(&cfg)
	if err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("cube: decode config: %w", err)
	}
	err = cfg.Validate()
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}
