package cli

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/snail-lang/snail/log"
	"github.com/snail-lang/snail/pkg"
)

// ConfigEnv overrides the configuration file path.
const ConfigEnv = "SNAIL_CONFIG"

// LogEnv overrides the configured log level.
const LogEnv = "SNAIL_LOG"

// Config holds the optional user defaults read at startup. It never alters
// the flag grammar and never overrides an explicit flag; it only supplies
// values no flag exists for.
type Config struct {
	// Engine is the external engine command; SNAIL_ENGINE wins over it.
	Engine string `yaml:"engine"`

	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`

	// Color forces colored diagnostics on or off; unset follows the TTY.
	Color *bool `yaml:"color"`
}

// configPath returns the configuration file location: $SNAIL_CONFIG, or
// config.yaml under the user config directory.
func configPath() string {
	if path := os.Getenv(ConfigEnv); path != "" {
		return path
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	return filepath.Join(dir, pkg.Name, "config.yaml")
}

// LoadConfig reads the user configuration file. A missing file yields the
// zero configuration; a malformed file is reported at warn level and
// otherwise ignored, since startup must not fail over cosmetics.
func LoadConfig() Config {
	var cfg Config

	path := configPath()
	if path == "" {
		return cfg
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	err = yaml.Unmarshal(buf, &cfg)
	if err != nil {
		log.Warn("ignoring malformed config file",
			slog.String("path", path),
			slog.Any("error", err),
		)

		return Config{}
	}

	return cfg
}

// ConfigureLogging applies the configuration file and SNAIL_LOG to the
// default logger. colorDefault is the TTY-derived fallback used when the
// file does not pin color explicitly.
func ConfigureLogging(cfg Config, colorDefault bool) {
	level := cfg.Log.Level
	if env := os.Getenv(LogEnv); env != "" {
		level = env
	}

	color := colorDefault
	if cfg.Color != nil {
		color = *cfg.Color
	}

	opts := []log.Option{log.WithColor(color)}

	if level != "" {
		opts = append(opts, log.WithLevel(log.ParseLevel(level)))
	}

	if cfg.Log.Format != "" {
		opts = append(opts, log.WithFormat(log.ParseFormat(cfg.Log.Format)))
	}

	log.Config(opts...)
}
