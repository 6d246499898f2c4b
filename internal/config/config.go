package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape. Unset fields are nil
// so callers can tell "not configured" from a zero value.
type FileConfig struct {
	NoColor *bool   `yaml:"no_color,omitempty"`
	Lang    *string `yaml:"lang,omitempty"`
	Seed    *uint64 `yaml:"seed,omitempty"`
	Verbose *bool   `yaml:"verbose,omitempty"`
}

// LocalNames are the file names LoadLocal looks for, in order.
var LocalNames = []string{".rps.yml", ".rps.yaml", "rps.yml", "rps.yaml"}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches dir for a config file named in LocalNames.
func LoadLocal(dir string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range LocalNames {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// GlobalPath returns the global config location under XDG_CONFIG_HOME or
// ~/.config. It is empty when neither can be determined.
func GlobalPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return ""
	}
	return filepath.Join(base, "rps", "config.yml")
}

// LoadGlobal loads the global config file.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	p := GlobalPath()
	if p == "" {
		return cfg, errors.New("no config dir")
	}
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}

// Save writes cfg as YAML to path.
func Save(path string, cfg FileConfig) error {
	b, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}
