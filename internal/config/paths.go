package config

import (
	"os"
	"path/filepath"
)

// GetUserConfigDir returns ~/.config/wtedit, creating neither the
// directory nor its contents.
func GetUserConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "wtedit"), nil
}

// GetProjectDir walks up from the current working directory looking
// for a .wtedit or .git directory, returning the first one found (the
// project root). If neither is found it falls back to the working
// directory itself.
func GetProjectDir() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := wd
	for {
		if _, err := os.Stat(filepath.Join(dir, ".wtedit")); err == nil {
			return dir, nil
		}
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return wd, nil
		}
		dir = parent
	}
}

// EnsureConfigDirs creates the user config directory if it does not
// already exist.
func EnsureConfigDirs(userConfigDir string) error {
	return os.MkdirAll(userConfigDir, 0o755)
}
