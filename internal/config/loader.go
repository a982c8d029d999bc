package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const profilesFile = "profiles.yaml"

// LoadProfiles loads the difficulty table.
// Search order: customPath -> ~/.numbermaster/profiles.yaml -> ./configs/profiles.yaml -> embedded default
func LoadProfiles(customPath string) (Profiles, error) {
	// Try custom path first; errors here are reported, not skipped
	if customPath != "" {
		path := ExpandHome(customPath)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: failed to read profiles %s: %w", path, err)
		}
		profiles, err := ParseProfiles(data)
		if err != nil {
			return nil, fmt.Errorf("config: failed to parse profiles %s: %w", path, err)
		}
		return profiles, nil
	}

	// Try user config directory
	if userPath := userConfigPath(profilesFile); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if profiles, err := ParseProfiles(data); err == nil {
				return profiles, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", profilesFile)); err == nil {
		if profiles, err := ParseProfiles(data); err == nil {
			return profiles, nil
		}
	}

	// Use embedded default YAML
	profiles, err := ParseProfiles(defaultProfilesYAML)
	if err != nil {
		return DefaultProfiles(), nil // Fallback to hardcoded if embed fails
	}
	return profiles, nil
}

// ParseProfiles decodes a profiles YAML document. Difficulties missing from
// the document keep their default profile; unknown names and invalid
// profiles are errors.
func ParseProfiles(data []byte) (Profiles, error) {
	var file ProfilesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	profiles := DefaultProfiles()
	for name, p := range file.Profiles {
		d, err := ParseDifficulty(name)
		if err != nil {
			return nil, err
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("profile %s: %w", d, err)
		}
		profiles[d] = p
	}
	return profiles, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, filename)
}
