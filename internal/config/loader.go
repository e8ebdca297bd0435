package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/jollyjumper/internal/core"
)

// Format is a config file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Source describes where a loaded config came from.
type Source string

// SourceEmbedded is reported when no file was found.
const SourceEmbedded Source = "embedded"

// FormatFor picks the decoder for a path by its extension.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Load loads the simulation configuration.
// Search order: customPath -> ~/.jolly/jolly.yaml -> ~/.jolly/jolly.toml ->
// ./configs/jolly.yaml -> embedded default.
// Only a failing customPath is an error. Other candidates fall through; one
// that exists but cannot be read or parsed is reported on logger, which may be
// nil.
func Load(customPath string, logger *log.Logger) (JollyConfig, Source, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, "", err
		}
		return cfg, Source(customPath), nil
	}

	candidates := []string{
		userConfigPath("jolly.yaml"),
		userConfigPath("jolly.toml"),
		filepath.Join("configs", "jolly.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		cfg, err := loadFile(path)
		if err == nil {
			return cfg, Source(path), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn("config file ignored", "path", path, "error", err)
		}
	}

	cfg, err := Decode(DefaultYAML(), FormatYAML)
	if err != nil {
		return DefaultJollyConfig(), SourceEmbedded, nil
	}
	return cfg, SourceEmbedded, nil
}

func loadFile(path string) (JollyConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return JollyConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Decode(data, FormatFor(path))
	if err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses data on top of the defaults, so files only need the keys
// they change.
func Decode(data []byte, format Format) (JollyConfig, error) {
	cfg := DefaultJollyConfig()
	// Lists replace rather than merge.
	cfg.Obstacles.Palette = nil

	var err error
	switch format {
	case FormatTOML:
		_, err = toml.Decode(string(data), &cfg)
	default:
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return cfg, err
	}

	if len(cfg.Obstacles.Palette) == 0 {
		cfg.Obstacles.Palette = DefaultJollyConfig().Obstacles.Palette
	}
	return cfg, nil
}

// Encode renders cfg in the given format.
func Encode(cfg JollyConfig, format Format) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("config: encode toml: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return nil, fmt.Errorf("config: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("config: encode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("config: unknown format %q", format)
	}
	return buf.Bytes(), nil
}

// Validate reports every value the simulation cannot run with.
func (c JollyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Field.Width > 0 && c.Field.Height > 0,
		"field: dimensions must be positive, got %vx%v", c.Field.Width, c.Field.Height)
	check(c.Ball.Radius > 0, "ball: radius must be positive, got %v", c.Ball.Radius)
	check(c.Field.Width >= 2*c.Ball.Radius && c.Field.Height >= 2*c.Ball.Radius,
		"field: %vx%v cannot hold a ball of radius %v", c.Field.Width, c.Field.Height, c.Ball.Radius)
	check(c.Ball.StartOffset >= c.Ball.Radius && c.Ball.StartOffset <= c.Field.Height-c.Ball.Radius,
		"ball: start_offset %v must keep the ball inside the field", c.Ball.StartOffset)
	check(c.Ball.Bounce >= 0 && c.Ball.Bounce <= 1, "ball: bounce must be in [0, 1], got %v", c.Ball.Bounce)
	if c.Ball.DefaultColor != "" {
		if _, err := core.ParseColor(c.Ball.DefaultColor); err != nil {
			errs = append(errs, fmt.Errorf("ball: default_color: %w", err))
		}
	}

	check(c.Obstacles.SpawnInterval > 0, "obstacles: spawn_interval must be positive, got %d", c.Obstacles.SpawnInterval)
	check(c.Obstacles.MaxActive > 0, "obstacles: max_active must be positive, got %d", c.Obstacles.MaxActive)
	check(c.Obstacles.BaseWidth > 0 && c.Obstacles.BaseHeight > 0, "obstacles: base size must be positive")
	check(c.Obstacles.WidthJitter >= 0 && c.Obstacles.HeightJitter >= 0, "obstacles: jitter must not be negative")
	check(c.Obstacles.BaseSpeed > 0, "obstacles: base_speed must be positive, got %v", c.Obstacles.BaseSpeed)
	check(len(c.Obstacles.Palette) > 0, "obstacles: palette must not be empty")
	for i, p := range c.Obstacles.Palette {
		if _, err := core.ParseColor(p); err != nil {
			errs = append(errs, fmt.Errorf("obstacles: palette[%d]: %w", i, err))
		}
	}

	check(c.Pieces.MinCount > 0 && c.Pieces.MaxCount >= c.Pieces.MinCount,
		"pieces: need 0 < min_count <= max_count, got %d..%d", c.Pieces.MinCount, c.Pieces.MaxCount)
	check(c.Pieces.SizeDivisor > 0, "pieces: size_divisor must be positive")
	check(c.Pieces.MinLife > 0 && c.Pieces.LifeJitter >= 0, "pieces: lifetime must be positive")
	check(c.Pieces.FadeFrames > 0, "pieces: fade_frames must be positive")

	check(!c.Difficulty.Enabled || c.Difficulty.PointsPerTier > 0,
		"difficulty: points_per_tier must be positive when enabled")
	check(c.Controls.HoldTicks >= 0, "controls: hold_ticks must not be negative")

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is
// unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".jolly", filename)
}
