package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/jollyjumper/internal/config"
	"github.com/vovakirdan/jollyjumper/internal/core"
	"github.com/vovakirdan/jollyjumper/internal/games/jolly"
)

// newLogger builds the program logger. With no log file it writes to
// fallback, which the terminal driver sets to io.Discard because the
// alternate screen owns stdout.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("--log-level: %w", err)
	}

	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		path := expandHome(flagLogFile)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("log file: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("log file: %w", err)
		}
		w = f
		//nolint:errcheck // Best-effort close on exit
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "jolly",
		Level:           level,
	})
	return logger, closeFn, nil
}

// setupLogger returns the logger for problems found before a driver owns the
// terminal. Without a log file they go to stderr, so a discarded program log
// cannot hide them.
func setupLogger(logger *log.Logger) *log.Logger {
	if flagLogFile != "" {
		return logger
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "jolly",
		Level:  max(logger.GetLevel(), log.WarnLevel),
	})
}

// loadConfig resolves the game configuration from --config and --difficulty.
func loadConfig(logger *log.Logger) (config.JollyConfig, error) {
	cfg, source, err := config.Load(expandHome(flagConfig), setupLogger(logger))
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	logger.Info("configuration loaded", "source", source, "difficulty", flagDifficulty)
	return cfg, nil
}

// runtimeConfig builds the driver settings. A zero seed means a time-based
// one.
func runtimeConfig(width, height int) core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.ScreenW = width
	rc.ScreenH = height
	rc.TickRate = flagFPS
	rc.Seed = flagSeed
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	return rc
}

// newSimulation loads the config and builds an idle simulation.
func newSimulation(logger *log.Logger, rc core.RuntimeConfig) (*jolly.Simulation, config.JollyConfig, error) {
	cfg, err := loadConfig(logger)
	if err != nil {
		return nil, cfg, err
	}

	sim, err := jolly.New(cfg,
		jolly.WithSeed(rc.Seed),
		jolly.WithLogger(logger.WithPrefix("jolly/sim")),
	)
	if err != nil {
		return nil, cfg, err
	}
	logger.Debug("simulation ready", "seed", rc.Seed, "fps", rc.TickRate)
	return sim, cfg, nil
}

// initialColor is the configured ball color, when it is one of the picker
// colors.
func initialColor(cfg config.JollyConfig) core.Color {
	c, err := core.ParseColor(cfg.Ball.DefaultColor)
	if err != nil {
		return core.ColorNone
	}
	return c
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
