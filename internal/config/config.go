// Package config handles renderer configuration loading and management.
package config

import "math"

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics" toml:"graphics"`
	Camera   CameraConfig   `yaml:"camera" toml:"camera"`
	Scene    SceneConfig    `yaml:"scene" toml:"scene"`
	Logging  LoggingConfig  `yaml:"logging" toml:"logging"`
	Debug    DebugConfig    `yaml:"debug" toml:"debug"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width" toml:"width"`
	Height     int  `yaml:"height" toml:"height"`
	Fullscreen bool `yaml:"fullscreen" toml:"fullscreen"`
	VSync      bool `yaml:"vsync" toml:"vsync"`
}

// CameraConfig holds the camera tunables. These may change while running.
type CameraConfig struct {
	Perspective bool    `yaml:"perspective" toml:"perspective"`
	Distance    float32 `yaml:"distance" toml:"distance"`
	FixedWidth  float32 `yaml:"fixed_width" toml:"fixed_width"` // orthographic horizontal extent
	OrbitSpeed  float32 `yaml:"orbit_speed" toml:"orbit_speed"` // radians per tick, 0 = static
}

// SceneConfig holds scene construction settings. Read once at startup.
type SceneConfig struct {
	GridWidth     int        `yaml:"grid_width" toml:"grid_width"`
	GridHeight    int        `yaml:"grid_height" toml:"grid_height"`
	Ambient       [3]float32 `yaml:"ambient" toml:"ambient"`
	LightRadius   float32    `yaml:"light_radius" toml:"light_radius"`
	LightOrbit    float32    `yaml:"light_orbit" toml:"light_orbit"`
	CuboidSize    [3]float32 `yaml:"cuboid_size" toml:"cuboid_size"`
	CuboidColor   [4]float32 `yaml:"cuboid_color" toml:"cuboid_color"`
	RandomColor   bool       `yaml:"random_color" toml:"random_color"`
	Seed          int64      `yaml:"seed" toml:"seed"` // 0 = time based
	DebugTriangle bool       `yaml:"debug_triangle" toml:"debug_triangle"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
	JSON    bool   `yaml:"json" toml:"json"`
}

// DebugConfig holds frame capture settings.
type DebugConfig struct {
	CaptureTick      int    `yaml:"capture_tick" toml:"capture_tick"` // 0 = disabled
	CaptureDir       string `yaml:"capture_dir" toml:"capture_dir"`
	ExitAfterCapture bool   `yaml:"exit_after_capture" toml:"exit_after_capture"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Camera: CameraConfig{
			Perspective: false,
			Distance:    16,
			FixedWidth:  float32(16 * math.Sqrt2),
		},
		Scene: SceneConfig{
			GridWidth:   16,
			GridHeight:  16,
			Ambient:     [3]float32{0.3, 0.3, 0.3},
			LightRadius: 4,
			LightOrbit:  4,
			CuboidSize:  [3]float32{0.5, 2, 0.5},
			CuboidColor: [4]float32{0.1, 0.24, 0.76, 1},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Debug: DebugConfig{
			CaptureDir: "captures",
		},
	}
}
