package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
)

// AppDir is the per-user directory under $HOME holding state and overrides.
const AppDir = ".numbermaster"

// Env holds settings read from the process environment. Command-line flags
// take precedence; these values become the flag defaults.
type Env struct {
	DBPath       string `env:"NUMBERMASTER_DB" envDefault:"~/.numbermaster/prefs.db"`
	ProfilesPath string `env:"NUMBERMASTER_PROFILES"`
	LogLevel     string `env:"NUMBERMASTER_LOG_LEVEL" envDefault:"info"`
	LogFile      string `env:"NUMBERMASTER_LOG_FILE" envDefault:"~/.numbermaster/numbermaster.log"`
	Seed         int64  `env:"NUMBERMASTER_SEED" envDefault:"0"`
}

// LoadEnv parses Env from the environment.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("config: parse env: %w", err)
	}
	return e, nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
// The path is returned unchanged if home cannot be resolved.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
