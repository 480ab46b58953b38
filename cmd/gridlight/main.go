// Package main is the entry point for gridlight.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/gridlight/internal/app"
	"github.com/Faultbox/gridlight/internal/config"
	"github.com/Faultbox/gridlight/internal/logger"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code. Deferred cleanup runs before main exits.
func run() int {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, configPath, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	if path := config.WriteConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			fmt.Fprintf(os.Stderr, "Writing config: %v\n", err)
			return 1
		}
		fmt.Printf("Config written to %s\n", path)
		return 0
	}

	if err := initLogger(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.Info("=== gridlight ===", zap.String("config", configPath))
	logger.Sugar.Debugf("Config: %+v", cfg)

	a, err := app.New(cfg, configPath)
	if err != nil {
		logger.Error("failed to initialize", zap.Error(err))
		return 1
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		logger.Error("render loop error", zap.Error(err))
		return 1
	}

	logger.Info("closed normally")
	return 0
}

func initLogger(cfg config.LoggingConfig) error {
	if cfg.LogFile == "" || !cfg.JSON {
		return logger.Init(cfg.Level, cfg.LogFile)
	}
	fileCfg := logger.DefaultFileConfig(cfg.LogFile)
	fileCfg.JSON = true
	return logger.InitWithFileConfig(cfg.Level, fileCfg, true)
}
