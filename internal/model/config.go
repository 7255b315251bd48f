package model

import "time"

// DefaultBaseURL is the public GitHub REST API root.
const DefaultBaseURL = "https://api.github.com/"

// DefaultLocale selects English user-facing messages.
const DefaultLocale = "en"

// APIConfig configures the repository lookup service.
type APIConfig struct {
	// BaseURL is the API root; lookups GET {BaseURL}repos/{owner}/{name}
	BaseURL string `json:"base_url"`

	// Timeout bounds a single lookup; zero means no timeout
	Timeout time.Duration `json:"timeout"`
}

// StorageConfig configures the key-value store.
type StorageConfig struct {
	// Path is the database file; empty selects the default under the application directory
	Path string `json:"path"`
}

// UIConfig configures presentation.
type UIConfig struct {
	// Locale is a BCP 47 tag for user-facing messages (e.g., "en", "pt-BR")
	Locale string `json:"locale"`
}

// Config holds the application configuration
type Config struct {
	API     APIConfig     `json:"api"`
	Storage StorageConfig `json:"storage"`
	UI      UIConfig      `json:"ui"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL: DefaultBaseURL,
		},
		UI: UIConfig{
			Locale: DefaultLocale,
		},
	}
}
