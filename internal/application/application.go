package application

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

const (
	// AppName is the application name used for directories and identification
	AppName = "ghexplorer"

	// Version is reported by the version command
	Version = "0.1.0"

	// HomeEnv overrides the data directory when set
	HomeEnv = "GHEXPLORER_HOME"

	// ConfigFileName is the INI configuration file inside the data directory
	ConfigFileName = "config.ini"

	// LogFileName receives log output while the dashboard owns the terminal
	LogFileName = "ghexplorer.log"
)

var (
	once   sync.Once
	appDir string
	errDir error
)

// GetApplicationDirectory returns the ghexplorer data directory, creating it
// on first use. $GHEXPLORER_HOME wins over the platform default:
// Linux: ~/.config/ghexplorer (via os.UserConfigDir)
// Windows: C:\Users\{username}\AppData\Local\ghexplorer (via os.UserCacheDir)
func GetApplicationDirectory() (string, error) {
	once.Do(func() {
		appDir, errDir = resolveDirectory()
	})

	return appDir, errDir
}

// ConfigPath returns the default location of the configuration file.
func ConfigPath() (string, error) {
	return inDirectory(ConfigFileName)
}

// LogPath returns the location of the dashboard log file.
func LogPath() (string, error) {
	return inDirectory(LogFileName)
}

func inDirectory(name string) (string, error) {
	dir, err := GetApplicationDirectory()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, name), nil
}

func resolveDirectory() (string, error) {
	dir := os.Getenv(HomeEnv)

	if dir == "" {
		base, err := platformBase()
		if err != nil {
			return "", fmt.Errorf("failed to get config directory: %w", err)
		}

		dir = filepath.Join(base, AppName)
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create application directory: %w", err)
	}

	return dir, nil
}

func platformBase() (string, error) {
	if runtime.GOOS == "windows" {
		return os.UserCacheDir()
	}

	return os.UserConfigDir()
}
