package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file (.yaml, .yml or .toml)")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed    = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen  = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth       = flag.Int("width", 0, "Window width")
	flagHeight      = flag.Int("height", 0, "Window height")
	flagPerspective = flag.Bool("perspective", false, "Use a perspective projection")
	flagDistance    = flag.Float64("distance", 0, "Camera distance from the origin")
	flagCapture     = flag.Int("capture", 0, "Write the frame rendered at this tick to a PNG and exit")
	flagWriteConfig = flag.String("write-config", "", "Write the effective config to this path (.yaml or .toml) and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// WriteConfigPath returns the path given with --write-config, or "".
func WriteConfigPath() string {
	return *flagWriteConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagPerspective {
		cfg.Camera.Perspective = true
	}
	if *flagDistance > 0 {
		cfg.Camera.Distance = float32(*flagDistance)
	}
	if *flagCapture > 0 {
		cfg.Debug.CaptureTick = *flagCapture
		cfg.Debug.ExitAfterCapture = true
	}
}
