package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// defaultPaths are tried in order when no file is named.
var defaultPaths = []string{"./polyglot.yaml", "./config.yaml"}

// Load reads configuration from the file named by CONFIG_PATH, or the first
// of ./polyglot.yaml and ./config.yaml that exists, then applies environment
// variables and env-default tags. Priority: ENV > YAML > defaults.
func Load() (*Config, error) {
	return LoadFrom(os.Getenv("CONFIG_PATH"))
}

// LoadFrom is Load with an explicit file path. A named file that does not
// exist is an error; with an empty path and no default file present the
// configuration comes from the environment alone.
func LoadFrom(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		path = firstExisting(defaultPaths)
	} else if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	}

	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func firstExisting(paths []string) string {
	for _, p := range paths {
		if _, err := os.Stat(p); !errors.Is(err, fs.ErrNotExist) {
			return p
		}
	}
	return ""
}
