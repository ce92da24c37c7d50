package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/smasher164/untyped/term"
)

// Config holds the user settings read from config.yaml.
type Config struct {
	UseUTF8     bool `yaml:"useUtf8"`
	UseColor    bool `yaml:"useColor"`
	MergeArgs   bool `yaml:"mergeArgs"`
	PrintEffect bool `yaml:"printEffect"`
	// StepLimit bounds the reduction steps of a single eval; 0 means no bound.
	StepLimit int `yaml:"stepLimit"`
}

func DefaultConfig() Config {
	return Config{
		UseUTF8:     true,
		MergeArgs:   true,
		PrintEffect: true,
		StepLimit:   10000,
	}
}

// Style is the rendering style selected by c.
func (c Config) Style() term.Style {
	return term.Style{Unicode: c.UseUTF8, Color: c.UseColor, Merge: c.MergeArgs}
}

// ConfigPath returns the default location of config.yaml.
func ConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config directory: %w", err)
	}
	return filepath.Join(dir, "untyped", "config.yaml"), nil
}

// LoadConfig reads the config file at path, writing the defaults there first
// if it does not exist. Keys missing from the file keep their default value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, writeConfig(path, cfg)
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func writeConfig(path string, cfg Config) error {
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
