// Package config layers the ekiti configuration from defaults, an
// optional YAML file, EKITI_* environment variables and command-line
// flags, in that order.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config is the full application configuration.
type Config struct {
	DataDir  string `koanf:"data_dir"`
	Language string `koanf:"language"`
	Quiz     Quiz   `koanf:"quiz"`
	Tuning   Tuning `koanf:"tuning"`
}

// Quiz holds session-level settings.
type Quiz struct {
	// Questions is the working-set size for one session.
	Questions int `koanf:"questions"`
	// Options is the option count in choice mode.
	Options int `koanf:"options"`
}

// Tuning holds the difficulty-adjustment constants. These are pacing
// knobs, not a contract; see the session engine for how they apply.
type Tuning struct {
	InitialDifficulty float64 `koanf:"initial_difficulty"`
	StepDown          float64 `koanf:"step_down"`
	StepUp            float64 `koanf:"step_up"`
}

// Default returns the built-in configuration.
func Default() Config {
	dir := ".ekiti"
	if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, ".config", "ekiti")
	}
	return Config{
		DataDir: dir,
		Quiz: Quiz{
			Questions: 10,
			Options:   4,
		},
		Tuning: Tuning{
			InitialDifficulty: 2.5,
			StepDown:          0.3,
			StepUp:            0.5,
		},
	}
}

// flagKeys maps command-line flag names onto config keys. Flags not
// listed here do not feed the config.
var flagKeys = map[string]string{
	"data-dir": "data_dir",
	"lang":     "language",
	"count":    "quiz.questions",
	"options":  "quiz.options",
}

// Load builds the effective configuration. The config file defaults to
// <data_dir>/config.yaml, where the data dir already honors the
// --data-dir flag and EKITI_DATA_DIR; --config moves the file anywhere.
// A missing file is fine.
func Load(flags *pflag.FlagSet) (Config, error) {
	cfg := Default()
	k := koanf.New(".")

	path := configPath(cfg.DataDir, flags)
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return cfg, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	err := k.Load(env.ProviderWithValue("EKITI_", ".", func(key, value string) (string, interface{}) {
		key = strings.ToLower(strings.TrimPrefix(key, "EKITI_"))
		// EKITI_QUIZ__QUESTIONS maps to quiz.questions.
		return strings.ReplaceAll(key, "__", "."), value
	}), nil)
	if err != nil {
		return cfg, fmt.Errorf("loading environment: %w", err)
	}

	if flags != nil {
		err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			key, ok := flagKeys[f.Name]
			if !ok {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil)
		if err != nil {
			return cfg, fmt.Errorf("loading flags: %w", err)
		}
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}

// configPath resolves where the config file lives. A relocated data
// dir (flag or environment) relocates the file with it.
func configPath(defaultDir string, flags *pflag.FlagSet) string {
	if flags != nil {
		if p, err := flags.GetString("config"); err == nil && p != "" {
			return p
		}
	}

	dir := defaultDir
	if v := os.Getenv("EKITI_DATA_DIR"); v != "" {
		dir = v
	}
	if flags != nil {
		if f := flags.Lookup("data-dir"); f != nil && f.Changed {
			dir = f.Value.String()
		}
	}
	return filepath.Join(dir, "config.yaml")
}
