// Package config holds the runtime settings of the astral engine.
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Env overrides, applied after the file and before flags.
const (
	EnvAPIKey   = "ASTRAL_API_KEY"
	EnvEndpoint = "ASTRAL_ENDPOINT"
	EnvAudio    = "ASTRAL_AUDIO"
)

// Startup modes.
const (
	ModeDome   = "dome"
	ModeFlight = "flight"
)

const (
	minTimeout = time.Second
	maxTimeout = 2 * time.Minute
)

// Config is the full application configuration.
type Config struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	TPS    int    `json:"tps"`
	Mode   string `json:"mode"`

	BackgroundStars int   `json:"background_stars"`
	Seed            int64 `json:"seed"` // 0 = derive from wall clock

	Endpoint string   `json:"endpoint"`
	APIKey   string   `json:"-"`
	Timeout  Duration `json:"timeout"`
	Warp     Duration `json:"warp"`

	// LevelFile, when set, replaces the built-in primer level.
	LevelFile string `json:"level_file"`

	Audio    bool   `json:"audio"`
	LogLevel string `json:"log_level"`
}

// Duration is a time.Duration that reads "2.5s" style strings from JSON.
type Duration time.Duration

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Width:           1280,
		Height:          720,
		TPS:             60,
		Mode:            ModeDome,
		BackgroundStars: 3500,
		Timeout:         Duration(30 * time.Second),
		Warp:            Duration(2500 * time.Millisecond),
		Audio:           true,
		LogLevel:        "info",
	}
}

// Load reads a JSON file over the defaults. Fields absent from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overlays environment variables read through getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvAPIKey); v != "" {
		c.APIKey = v
	}
	if v := getenv(EnvEndpoint); v != "" {
		c.Endpoint = v
	}
	if v := getenv(EnvAudio); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Audio = b
		}
	}
}

// RegisterFlags binds command-line flags to c. Values already in c become
// the flag defaults, so flags override file and environment.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "Window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "Window height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "Simulation ticks per second")
	fs.StringVar(&c.Mode, "mode", c.Mode, "Startup mode (dome, flight)")
	fs.IntVar(&c.BackgroundStars, "stars", c.BackgroundStars, "Procedural background star count")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "Random seed (0 = time based)")
	fs.StringVar(&c.Endpoint, "endpoint", c.Endpoint, "Level generator URL")
	fs.Func("timeout", "Generator request timeout (e.g. 30s)", durationFlag(&c.Timeout))
	fs.Func("warp", "Warp sequence duration (e.g. 2.5s)", durationFlag(&c.Warp))
	fs.StringVar(&c.LevelFile, "level", c.LevelFile, "JSON file with the opening level")
	fs.BoolVar(&c.Audio, "audio", c.Audio, "Enable audio cues")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level (debug, info, warn, error)")
}

func durationFlag(dst *Duration) func(string) error {
	return func(s string) error {
		v, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		*dst = Duration(v)
		return nil
	}
}

// Validate rejects unusable values and clamps the generator timeout.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps %d must be positive", c.TPS))
	}
	if c.BackgroundStars < 0 {
		errs = append(errs, fmt.Errorf("background star count %d is negative", c.BackgroundStars))
	}
	if c.Mode != ModeDome && c.Mode != ModeFlight {
		errs = append(errs, fmt.Errorf("unknown mode %q", c.Mode))
	}
	if c.Warp <= 0 {
		errs = append(errs, fmt.Errorf("warp duration %v must be positive", c.Warp.Std()))
	}

	switch {
	case c.Timeout.Std() < minTimeout:
		c.Timeout = Duration(minTimeout)
	case c.Timeout.Std() > maxTimeout:
		c.Timeout = Duration(maxTimeout)
	}
	return errors.Join(errs...)
}

// FromArgs resolves the configuration for a command line: defaults, then the
// file named by -config, then the environment, then the remaining flags.
func FromArgs(name string, args []string, getenv func(string) string) (Config, error) {
	var path string
	probe := flag.NewFlagSet(name, flag.ContinueOnError)
	probe.SetOutput(io.Discard)
	probe.StringVar(&path, "config", "", "")
	scratch := Default()
	scratch.RegisterFlags(probe)
	_ = probe.Parse(args) // errors are reported by the real parse below

	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = Load(path); err != nil {
			return cfg, err
		}
	}
	cfg.ApplyEnv(getenv)

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.String("config", path, "JSON configuration file")
	cfg.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}
