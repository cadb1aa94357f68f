// Package paths resolves where tradebook keeps its configuration and its
// database.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppDirName is the directory created under the platform config and data
// roots.
const AppDirName = "tradebook"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "TRADEBOOK_CONFIG_DIR"
	EnvDataDir   = "TRADEBOOK_DATA_DIR"
)

// File names inside the config directory.
const (
	ConfigFileName = "config.yaml"
	EnvFileName    = ".env"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	goos          string
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	goos:          runtime.GOOS,
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// xdgDir returns $xdgVar/tradebook, or ~/fallback/tradebook when the
// variable is unset. Outside Linux it returns os.UserConfigDir()/tradebook.
func xdgDir(xdgVar string, fallback ...string) (string, error) {
	if platformDir.goos != "linux" {
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, AppDirName), nil
	}
	if xdg := os.Getenv(xdgVar); xdg != "" {
		return filepath.Join(xdg, AppDirName), nil
	}
	home, err := platformDir.homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(append(append([]string{home}, fallback...), AppDirName)...), nil
}

// DefaultConfigDir returns the platform configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/tradebook (fallback ~/.config/tradebook)
// macOS:   ~/Library/Application Support/tradebook
// Windows: %APPDATA%/tradebook
func DefaultConfigDir() (string, error) {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// DefaultDataDir returns the platform data directory.
//
// Linux:   $XDG_DATA_HOME/tradebook (fallback ~/.local/share/tradebook)
// Elsewhere the config directory is used.
func DefaultDataDir() (string, error) {
	return xdgDir("XDG_DATA_HOME", ".local", "share")
}

// ResolveConfigDir applies flag > TRADEBOOK_CONFIG_DIR > DefaultConfigDir.
func ResolveConfigDir(flag string) (string, error) {
	return resolve(flag, os.Getenv(EnvConfigDir), DefaultConfigDir)
}

// ResolveDataDir applies flag > TRADEBOOK_DATA_DIR > config file value >
// DefaultDataDir.
func ResolveDataDir(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	return resolve(os.Getenv(EnvDataDir), configValue, DefaultDataDir)
}

func resolve(first, second string, fallback func() (string, error)) (string, error) {
	for _, dir := range []string{first, second} {
		if dir != "" {
			return filepath.Abs(dir)
		}
	}
	return fallback()
}
