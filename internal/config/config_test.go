package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/inovacc/ghexplorer/internal/model"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.ini"))
	require.NoError(t, err)
	require.Equal(t, model.DefaultConfig(), cfg)
}

func TestLoad_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\nlocale = pt-BR\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "pt-BR", cfg.UI.Locale)
	require.Equal(t, model.DefaultBaseURL, cfg.API.BaseURL)
	require.Zero(t, cfg.API.Timeout)
}

func TestLoad_InvalidTimeout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	require.NoError(t, os.WriteFile(path, []byte("[api]\ntimeout = soon\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.ini")
	want := model.Config{
		API:     model.APIConfig{BaseURL: "http://localhost:9999/", Timeout: 15 * time.Second},
		Storage: model.StorageConfig{Path: "/var/lib/board.bolt"},
		UI:      model.UIConfig{Locale: "pt-BR"},
	}

	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestSet(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		check   func(t *testing.T, cfg model.Config)
		wantErr bool
	}{
		{key: "api.base_url", value: "http://ghe/", check: func(t *testing.T, cfg model.Config) {
			require.Equal(t, "http://ghe/", cfg.API.BaseURL)
		}},
		{key: "api.timeout", value: "3s", check: func(t *testing.T, cfg model.Config) {
			require.Equal(t, 3*time.Second, cfg.API.Timeout)
		}},
		{key: "storage.path", value: "/tmp/x.bolt", check: func(t *testing.T, cfg model.Config) {
			require.Equal(t, "/tmp/x.bolt", cfg.Storage.Path)
		}},
		{key: "ui.locale", value: "pt", check: func(t *testing.T, cfg model.Config) {
			require.Equal(t, "pt", cfg.UI.Locale)
		}},
		{key: "api.timeout", value: "-1s", wantErr: true},
		{key: "api.timeout", value: "later", wantErr: true},
		{key: "api.token", value: "x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			cfg := model.DefaultConfig()

			err := Set(&cfg, tt.key, tt.value)
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestValues_Sorted(t *testing.T) {
	values := Values(model.DefaultConfig())

	keys := make([]string, 0, len(values))
	for _, kv := range values {
		keys = append(keys, kv[0])
	}

	require.Equal(t, []string{"api.base_url", "api.timeout", "storage.path", "ui.locale"}, keys)
}
