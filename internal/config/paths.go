package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Paths holds the path configuration for pickline.
type Paths struct {
	// ConfigDir is the directory for configuration files (~/.config/pickline)
	ConfigDir string
}

// DefaultPaths returns the default paths based on the XDG Base Directory
// spec. On Windows, %APPDATA% is used instead.
func DefaultPaths() *Paths {
	home := homeDir()

	if runtime.GOOS == "windows" {
		appData := os.Getenv("APPDATA")
		if appData == "" {
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		return &Paths{ConfigDir: filepath.Join(appData, "pickline")}
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}
	return &Paths{ConfigDir: filepath.Join(configHome, "pickline")}
}

// ConfigFile returns the path to the main configuration file.
func (p *Paths) ConfigFile() string {
	return filepath.Join(p.ConfigDir, "config.yaml")
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		if runtime.GOOS == "windows" {
			return os.Getenv("USERPROFILE")
		}
		return os.Getenv("HOME")
	}
	return home
}
