// Package config loads trail-sketch settings from TOML and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/trail-sketch/pointset"
)

// Environment overrides, applied after the file
const (
	EnvCapacity     = "TRAIL_SKETCH_CAPACITY"
	EnvAudioEnabled = "TRAIL_SKETCH_AUDIO_ENABLED"
)

// Duration wraps time.Duration for TOML string parsing ("16ms", "1s")
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

type Config struct {
	Trail  TrailConfig  `toml:"trail"`
	Frame  FrameConfig  `toml:"frame"`
	Audio  AudioConfig  `toml:"audio"`
	Colors ColorsConfig `toml:"colors"`
}

type TrailConfig struct {
	Capacity int `toml:"capacity"`
}

type FrameConfig struct {
	Interval Duration `toml:"interval"`
}

type AudioConfig struct {
	Enabled    bool     `toml:"enabled"`
	Volume     float64  `toml:"volume"`
	Frequency  float64  `toml:"frequency"`
	Duration   Duration `toml:"duration"`
	SampleRate int      `toml:"sample_rate"`
}

// ColorsConfig holds hex colors ("#rrggbb")
type ColorsConfig struct {
	Background string `toml:"background"`
	Trail      string `toml:"trail"`
	Band       string `toml:"band"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Trail: TrailConfig{Capacity: pointset.DefaultCapacity},
		Frame: FrameConfig{Interval: Duration{16 * time.Millisecond}},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.5,
			Frequency:  880,
			Duration:   Duration{50 * time.Millisecond},
			SampleRate: 44100,
		},
		Colors: ColorsConfig{
			Background: "#d3d3d3",
			Trail:      "#1e3a8a",
			Band:       "#202020",
		},
	}
}

// Load reads path over the defaults, then applies environment overrides.
// An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvCapacity); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvCapacity, err)
		}
		c.Trail.Capacity = n
	}
	if v := os.Getenv(EnvAudioEnabled); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvAudioEnabled, err)
		}
		c.Audio.Enabled = b
	}
	return nil
}

// Validate checks ranges and color syntax
func (c *Config) Validate() error {
	var errs []error

	if c.Trail.Capacity <= 0 {
		errs = append(errs, fmt.Errorf("trail.capacity must be positive, got %d", c.Trail.Capacity))
	}
	if c.Frame.Interval.Duration <= 0 {
		errs = append(errs, fmt.Errorf("frame.interval must be positive, got %s", c.Frame.Interval.Duration))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be in [0, 1], got %g", c.Audio.Volume))
	}
	if c.Audio.Enabled {
		if c.Audio.Frequency <= 0 {
			errs = append(errs, fmt.Errorf("audio.frequency must be positive, got %g", c.Audio.Frequency))
		}
		if c.Audio.Duration.Duration <= 0 {
			errs = append(errs, fmt.Errorf("audio.duration must be positive, got %s", c.Audio.Duration.Duration))
		}
		if c.Audio.SampleRate <= 0 {
			errs = append(errs, fmt.Errorf("audio.sample_rate must be positive, got %d", c.Audio.SampleRate))
		}
	}

	for key, hex := range map[string]string{
		"colors.background": c.Colors.Background,
		"colors.trail":      c.Colors.Trail,
		"colors.band":       c.Colors.Band,
	} {
		if _, err := colorful.Hex(hex); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
	}

	return errors.Join(errs...)
}
