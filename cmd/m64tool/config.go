package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/m64kit/m64/format"
)

// m64tool config.toml keys.
type fileConfig struct {
	Compression string `toml:"compression"`
	LogLevel    string `toml:"log_level"`
	LogFormat   string `toml:"log_format"`
	FrameLimit  int    `toml:"frame_limit"`
}

type config struct {
	Compression format.CompressionType
	LogLevel    zapcore.Level
	LogFormat   string // "console" or "json"
	FrameLimit  int    // frames printed by the frames command, 0 for all
}

func defaultConfig() config {
	return config{
		Compression: format.CompressionZstd,
		LogLevel:    zapcore.WarnLevel,
		LogFormat:   "console",
		FrameLimit:  0,
	}
}

// loadConfig overlays the keys defined in the TOML file at path on top of
// the defaults. An empty path returns the defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return config{}, fmt.Errorf("load m64tool config: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return config{}, fmt.Errorf("load m64tool config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("compression") {
		ct, ok := format.ParseCompressionType(raw.Compression)
		if !ok {
			return config{}, fmt.Errorf("load m64tool config: unsupported compression %q", raw.Compression)
		}
		cfg.Compression = ct
	}
	if meta.IsDefined("log_level") {
		if err := cfg.setLogLevel(raw.LogLevel); err != nil {
			return config{}, fmt.Errorf("load m64tool config: %w", err)
		}
	}
	if meta.IsDefined("log_format") {
		if err := cfg.setLogFormat(raw.LogFormat); err != nil {
			return config{}, fmt.Errorf("load m64tool config: %w", err)
		}
	}
	if meta.IsDefined("frame_limit") {
		if raw.FrameLimit < 0 {
			return config{}, fmt.Errorf("load m64tool config: frame_limit must not be negative, got %d", raw.FrameLimit)
		}
		cfg.FrameLimit = raw.FrameLimit
	}

	return cfg, nil
}

func (c *config) setLogLevel(s string) error {
	level, err := zapcore.ParseLevel(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	c.LogLevel = level

	return nil
}

func (c *config) setLogFormat(s string) error {
	switch f := strings.ToLower(strings.TrimSpace(s)); f {
	case "console", "json":
		c.LogFormat = f
		return nil
	default:
		return fmt.Errorf("unsupported log format %q (expected console or json)", s)
	}
}

// newLogger builds the zap logger described by c, writing to stderr.
func (c config) newLogger() (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if c.LogFormat == "console" {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(c.LogLevel)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	return zc.Build()
}
