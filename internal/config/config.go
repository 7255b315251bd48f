// Package config reads and writes the INI configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/inovacc/ghexplorer/internal/model"
	"gopkg.in/ini.v1"
)

const (
	sectionAPI     = "api"
	sectionStorage = "storage"
	sectionUI      = "ui"
)

// Keys lists the settable keys in section.key form.
var Keys = []string{"api.base_url", "api.timeout", "storage.path", "ui.locale"}

// Load reads the configuration at path. A missing file yields the defaults;
// keys absent from the file keep their default values.
func Load(path string) (model.Config, error) {
	cfg := model.DefaultConfig()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	f, err := ini.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	api := f.Section(sectionAPI)
	cfg.API.BaseURL = api.Key("base_url").MustString(cfg.API.BaseURL)

	if api.HasKey("timeout") {
		d, err := api.Key("timeout").Duration()
		if err != nil {
			return cfg, fmt.Errorf("invalid api.timeout: %w", err)
		}

		cfg.API.Timeout = d
	}

	cfg.Storage.Path = f.Section(sectionStorage).Key("path").MustString(cfg.Storage.Path)
	cfg.UI.Locale = f.Section(sectionUI).Key("locale").MustString(cfg.UI.Locale)

	return cfg, nil
}

// Save writes cfg to path, creating the parent directory.
func Save(path string, cfg model.Config) error {
	f := ini.Empty()

	api := f.Section(sectionAPI)
	api.Key("base_url").SetValue(cfg.API.BaseURL)
	api.Key("timeout").SetValue(cfg.API.Timeout.String())

	f.Section(sectionStorage).Key("path").SetValue(cfg.Storage.Path)
	f.Section(sectionUI).Key("locale").SetValue(cfg.UI.Locale)

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := f.SaveTo(path); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}

	return nil
}

// Set assigns value to a section.key name on cfg.
func Set(cfg *model.Config, key, value string) error {
	switch key {
	case "api.base_url":
		cfg.API.BaseURL = value
	case "api.timeout":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}

		if d < 0 {
			return fmt.Errorf("timeout must not be negative: %s", value)
		}

		cfg.API.Timeout = d
	case "storage.path":
		cfg.Storage.Path = value
	case "ui.locale":
		cfg.UI.Locale = value
	default:
		return fmt.Errorf("unknown config key %q (known: %v)", key, Keys)
	}

	return nil
}

// Values returns the configuration as sorted section.key pairs.
func Values(cfg model.Config) [][2]string {
	values := map[string]string{
		"api.base_url": cfg.API.BaseURL,
		"api.timeout":  cfg.API.Timeout.String(),
		"storage.path": cfg.Storage.Path,
		"ui.locale":    cfg.UI.Locale,
	}

	out := make([][2]string, 0, len(values))
	for k, v := range values {
		out = append(out, [2]string{k, v})
	}

	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out
}
