// Package app implements the host loop: it owns the window, renderer, scene
// and camera and drives one frame update per display refresh.
package app

import (
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/gridlight/internal/config"
	"github.com/Faultbox/gridlight/internal/engine/camera"
	"github.com/Faultbox/gridlight/internal/engine/debug"
	"github.com/Faultbox/gridlight/internal/engine/frame"
	"github.com/Faultbox/gridlight/internal/engine/input"
	"github.com/Faultbox/gridlight/internal/engine/renderer"
	"github.com/Faultbox/gridlight/internal/engine/window"
	"github.com/Faultbox/gridlight/internal/logger"
	"github.com/Faultbox/gridlight/internal/world"
)

const title = "gridlight"

// App is the running renderer instance.
type App struct {
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	watcher  *config.Watcher

	state    *frame.State
	settings atomic.Pointer[frame.Settings]
	tick     uint64

	capture     *debug.Capture
	captureTick uint64
	captureExit bool
}

// New creates the window and GL resources, builds the scene and uploads its
// meshes. configPath, when non-empty, is watched for camera changes.
func New(cfg *config.Config, configPath string) (*App, error) {
	logger.Info("initializing",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Int("grid_width", cfg.Scene.GridWidth),
		zap.Int("grid_height", cfg.Scene.GridHeight),
	)

	a := &App{}

	sc, err := world.Build(cfg.Scene)
	if err != nil {
		return nil, err
	}

	// Create window (this also creates OpenGL context)
	a.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	w, h := a.window.DrawableSize()
	rcfg := renderer.DefaultConfig(w, h)
	rcfg.VSync = cfg.Graphics.VSync
	a.renderer, err = renderer.New(rcfg)
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	for _, m := range sc.Meshes() {
		gpu, err := a.renderer.Upload(m)
		if err != nil {
			a.Close()
			return nil, err
		}
		sc.BindGeometry(m, gpu)
	}

	a.input = input.New()
	if cfg.Debug.CaptureTick > 0 {
		a.capture = debug.NewCapture(cfg.Debug.CaptureDir, title)
		a.captureTick = uint64(cfg.Debug.CaptureTick)
		a.captureExit = cfg.Debug.ExitAfterCapture
	}
	a.state = frame.NewState(sc, camera.New(cfg.Camera.FixedWidth))

	settings := world.Settings(cfg)
	a.settings.Store(&settings)

	if configPath != "" {
		a.watcher, err = config.Watch(configPath, func(c *config.Config) {
			s := world.Settings(c)
			a.settings.Store(&s)
		})
		if err != nil {
			// Hot reload is optional.
			logger.Warn("config hot reload disabled", zap.String("path", configPath), zap.Error(err))
		}
	}

	logger.Info("initialized", zap.Int("models", len(sc.Models)))
	return a, nil
}

// Run starts the main loop and returns when the window is closed.
func (a *App) Run() error {
	a.running = true

	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting render loop")

	for a.running {
		if a.input.Update() {
			a.running = false
			break
		}

		if a.input.Resized() {
			a.renderer.Resize(a.window.DrawableSize())
		}

		tick := a.tick
		stats := a.Frame()
		if a.capture != nil && tick == a.captureTick {
			if err := a.writeCapture(tick); err != nil {
				return err
			}
			if a.captureExit {
				a.running = false
			}
		}
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.Uint64("tick", a.tick),
				zap.Int("draw_calls", stats.DrawCalls),
				zap.Int("vertices", stats.Vertices),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Frame renders one tick and advances the tick counter.
func (a *App) Frame() frame.Stats {
	w, h := a.window.DrawableSize()
	ctx := frame.Context{Tick: a.tick, ViewportWidth: w, ViewportHeight: h}
	if ctx.Aspect() == 0 {
		logger.Debug("degenerate viewport", zap.Int("width", w), zap.Int("height", h))
	}

	// One snapshot per tick; the watcher may publish a new one at any time.
	settings := *a.settings.Load()

	a.renderer.Begin()
	stats := frame.Update(ctx, settings, a.state, a.renderer)
	a.renderer.End()

	a.tick++
	return stats
}

func (a *App) writeCapture(tick uint64) error {
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.capture.Write(pixels, w, h, tick)
	if err != nil {
		return fmt.Errorf("capturing tick %d: %w", tick, err)
	}
	logger.Info("frame captured", zap.Uint64("tick", tick), zap.String("path", path))
	return nil
}

// Close releases all resources.
func (a *App) Close() {
	logger.Info("closing")

	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			logger.Warn("closing config watcher", zap.Error(err))
		}
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
