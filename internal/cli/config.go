package cli

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/consolidated/pkg/errors"
	"github.com/matzehuels/consolidated/pkg/io"
	"github.com/matzehuels/consolidated/pkg/render"
	"github.com/matzehuels/consolidated/pkg/render/nodelink"
)

// configFile is the config file name inside configDir.
const configFile = "config.toml"

// Config holds defaults read from the TOML config file. Command-line flags
// always take precedence.
//
//	verbose = true
//	format = "toml"
//
//	[dot]
//	format = "svg"
//	highlight_color = "#ffcc00"
//	rankdir = "LR"
//
//	[cache]
//	disabled = false
//	ttl = "168h"
type Config struct {
	Verbose bool        `toml:"verbose"`
	Format  string      `toml:"format"`
	Dot     DotConfig   `toml:"dot"`
	Cache   CacheConfig `toml:"cache"`
}

// DotConfig holds defaults for the dot command.
type DotConfig struct {
	Format         string `toml:"format"`
	HighlightColor string `toml:"highlight_color"`
	RankDir        string `toml:"rankdir"`
}

// CacheConfig controls the rendered diagram cache.
type CacheConfig struct {
	Disabled bool     `toml:"disabled"`
	TTL      duration `toml:"ttl"`
}

// duration is a time.Duration read from a TOML string such as "24h".
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// defaultCacheTTL is how long rendered diagrams are kept.
const defaultCacheTTL = 7 * 24 * time.Hour

// defaultConfig returns the configuration used when no file exists.
func defaultConfig() Config {
	return Config{
		Dot: DotConfig{
			Format:         render.FormatSVG,
			HighlightColor: nodelink.DefaultHighlightColor,
			RankDir:        nodelink.DefaultRankDir,
		},
		Cache: CacheConfig{TTL: duration{defaultCacheTTL}},
	}
}

// loadConfig reads the config file at path on top of the defaults. An empty
// path means the default location, where a missing file is not an error.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, configFile)
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !explicit {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "read config")
	}

	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse config %s", path)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Format != "" {
		if _, err := io.ParseFormat(c.Format); err != nil {
			return err
		}
	}
	if err := render.ValidateFormat(c.Dot.Format); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "config [dot]")
	}
	switch c.Dot.RankDir {
	case "TB", "LR", "BT", "RL":
	default:
		return errors.New(errors.ErrCodeInvalidInput, "config [dot]: invalid rankdir %q", c.Dot.RankDir)
	}
	if c.Cache.TTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "config [cache]: negative ttl %s", c.Cache.TTL)
	}
	return nil
}
