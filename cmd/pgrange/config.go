package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

type Config struct {
	LogLevel    string            `toml:"log_level"`
	LogFormat   string            `toml:"log_format"`
	DatabaseURL string            `toml:"database_url"`
	LoadTypes   []string          `toml:"load_types"`
	Aliases     map[string]string `toml:"aliases"`
}

func defaultConfig() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "console",
		Aliases:   map[string]string{},
	}
}

// loadConfig reads path over the defaults. An empty path returns the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("unknown keys in config %s: %v", path, undecoded)
	}
	if cfg.Aliases == nil {
		cfg.Aliases = map[string]string{}
	}

	return cfg, nil
}

// resolveTypeName maps an alias to its range type name. Names that are not aliases are returned unchanged.
func (cfg Config) resolveTypeName(name string) string {
	if canonical, ok := cfg.Aliases[name]; ok {
		return canonical
	}
	return name
}

func (cfg Config) newLogger(w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("invalid log_level %q: %w", cfg.LogLevel, err)
	}

	switch cfg.LogFormat {
	case "console", "":
		w = zerolog.ConsoleWriter{Out: w, NoColor: w != os.Stderr}
	case "json":
	default:
		return zerolog.Logger{}, fmt.Errorf("invalid log_format %q", cfg.LogFormat)
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
