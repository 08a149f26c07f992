package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultConfigFile = ".goaround-icons.yml"

// Config is the top-level goaround-icons configuration.
type Config struct {
	Version  int            `yaml:"version"`
	Render   RenderConfig   `yaml:"render"`
	Generate GenerateConfig `yaml:"generate"`
	Server   ServerConfig   `yaml:"server"`
}

// Load reads configuration from a YAML file.
// If path is empty, it tries the default file.
// Returns defaults if the default file doesn't exist; an explicit path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Defaults(), nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML config bytes on top of the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Defaults returns the configuration used when no file is present.
func Defaults() *Config {
	return &Config{
		Version:  1,
		Render:   DefaultRenderConfig(),
		Generate: DefaultGenerateConfig(),
		Server:   DefaultServerConfig(),
	}
}
