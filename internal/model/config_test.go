package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.API.BaseURL != "https://api.github.com/" {
		t.Errorf("API.BaseURL = %q, want %q", cfg.API.BaseURL, "https://api.github.com/")
	}

	// No timeout unless configured
	if cfg.API.Timeout != 0 {
		t.Errorf("API.Timeout = %v, want 0", cfg.API.Timeout)
	}

	if cfg.Storage.Path != "" {
		t.Errorf("Storage.Path = %q, want empty string", cfg.Storage.Path)
	}

	if cfg.UI.Locale != "en" {
		t.Errorf("UI.Locale = %q, want %q", cfg.UI.Locale, "en")
	}
}

func TestConfig_JSONKeys(t *testing.T) {
	cfg := Config{
		API:     APIConfig{BaseURL: "http://localhost:8080/", Timeout: 5 * time.Second},
		Storage: StorageConfig{Path: "/tmp/board.bolt"},
		UI:      UIConfig{Locale: "pt-BR"},
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var m map[string]map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if m["api"]["base_url"] != "http://localhost:8080/" {
		t.Errorf("api.base_url = %v", m["api"]["base_url"])
	}

	if m["storage"]["path"] != "/tmp/board.bolt" {
		t.Errorf("storage.path = %v", m["storage"]["path"])
	}

	if m["ui"]["locale"] != "pt-BR" {
		t.Errorf("ui.locale = %v", m["ui"]["locale"])
	}
}
