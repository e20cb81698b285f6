package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	EnvPath     = "AURAMIXER_CONFIG"
	DefaultPath = "auramixer.yaml"
)

type Config struct {
	Portable           bool    `yaml:"portable"`
	AssetDir           string  `yaml:"asset_dir"`
	LockFile           string  `yaml:"lock_file"`
	CrossfadeMS        int     `yaml:"crossfade_ms"`
	BackgroundInterval int     `yaml:"background_interval_ms"`
	BlendStep          int     `yaml:"blend_step"`
	VolumeStep         float64 `yaml:"volume_step"`
	MusicVolume        float64 `yaml:"music_volume"`
	EffectVolume       float64 `yaml:"effect_volume"`
	Voices             int     `yaml:"voices"`
	WatchAssets        bool    `yaml:"watch_assets"`
	PlaceholderColor   string  `yaml:"placeholder_color"`
	Logger             Logger  `yaml:"logger"`
}

type Logger struct {
	Level             string `yaml:"level"`
	TimeFieldFormat   string `yaml:"time_field_format"`
	PrettyPrint       bool   `yaml:"pretty_print"`
	DisableSampling   bool   `yaml:"disable_sampling"`
	RedirectStdLogger bool   `yaml:"redirect_std_logger"`
	ErrorStack        bool   `yaml:"error_stack"`
	ShowCaller        bool   `yaml:"show_caller"`
}

func Default() *Config {
	return &Config{
		CrossfadeMS:        2000,
		BackgroundInterval: 10000,
		BlendStep:          5,
		VolumeStep:         0.1,
		MusicVolume:        0.5,
		EffectVolume:       0.7,
		Voices:             8,
		WatchAssets:        true,
		PlaceholderColor:   "#000000",
		LockFile:           defaultLockFile(),
		Logger: Logger{
			Level:           "info",
			TimeFieldFormat: time.RFC3339,
			PrettyPrint:     true,
		},
	}
}

// Path returns the config file location, honoring EnvPath.
func Path() string {
	if p, ok := os.LookupEnv(EnvPath); ok && p != "" {
		return p
	}
	return DefaultPath
}

// Load overlays the YAML file at path on the defaults. A missing file is
// not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate clamps volumes and rejects values the soundboard cannot run with.
func (c *Config) Validate() error {
	if c.CrossfadeMS <= 0 {
		return fmt.Errorf("crossfade_ms must be positive, got %d", c.CrossfadeMS)
	}
	if c.BackgroundInterval <= 0 {
		return fmt.Errorf("background_interval_ms must be positive, got %d", c.BackgroundInterval)
	}
	if c.BlendStep <= 0 || c.BlendStep > 255 {
		return fmt.Errorf("blend_step must be in 1..255, got %d", c.BlendStep)
	}
	if c.VolumeStep <= 0 || c.VolumeStep > 1 {
		return fmt.Errorf("volume_step must be in (0,1], got %v", c.VolumeStep)
	}
	if c.Voices <= 0 {
		return fmt.Errorf("voices must be positive, got %d", c.Voices)
	}
	if _, err := ParseColor(c.PlaceholderColor); err != nil {
		return err
	}
	c.MusicVolume = clamp(c.MusicVolume)
	c.EffectVolume = clamp(c.EffectVolume)
	return nil
}

func (c *Config) Crossfade() time.Duration {
	return time.Duration(c.CrossfadeMS) * time.Millisecond
}

func (c *Config) BackgroundEvery() time.Duration {
	return time.Duration(c.BackgroundInterval) * time.Millisecond
}

func (c *Config) Placeholder() color.Color {
	col, err := ParseColor(c.PlaceholderColor)
	if err != nil {
		return color.Black
	}
	return col
}

// ParseColor reads "#rrggbb".
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("placeholder_color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("placeholder_color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

func defaultLockFile() string {
	return filepath.Join(os.TempDir(), "auramixer.pid")
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
