package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

const (
	// FileName is the config file kept in the user's home directory.
	FileName = ".project-switch.yml"
	// EnvConfigPath overrides the config location.
	EnvConfigPath = "PROJECT_SWITCH_CONFIG"
)

// DefaultPath returns ~/.project-switch.yml.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("unable to determine home directory: %w", err)
	}
	return filepath.Join(home, FileName), nil
}

// ResolvePath picks the config location: explicit path, then the
// PROJECT_SWITCH_CONFIG environment variable, then DefaultPath.
func ResolvePath(explicit string) (string, error) {
	if explicit == "" {
		explicit = os.Getenv(EnvConfigPath)
	}
	if explicit == "" {
		return DefaultPath()
	}
	expanded, err := homedir.Expand(explicit)
	if err != nil {
		return "", fmt.Errorf("failed to expand config path %q: %w", explicit, err)
	}
	return expanded, nil
}
