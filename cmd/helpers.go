package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/inovacc/ghexplorer/internal/application"
	"github.com/inovacc/ghexplorer/internal/board"
	"github.com/inovacc/ghexplorer/internal/config"
	"github.com/inovacc/ghexplorer/internal/database"
	"github.com/inovacc/ghexplorer/internal/i18n"
	"github.com/inovacc/ghexplorer/internal/lookup"
	"github.com/inovacc/ghexplorer/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// globalFlags holds the persistent flags shared by every command
type globalFlags struct {
	ConfigPath string
	BaseURL    string
	StorePath  string
	Locale     string
	Timeout    time.Duration
	Verbose    bool
	LogJSON    bool
}

var globals globalFlags

func addGlobalFlags(fs *pflag.FlagSet) {
	fs.StringVar(&globals.ConfigPath, "config", "", "Config file (default: <app dir>/config.ini)")
	fs.StringVar(&globals.BaseURL, "base-url", "", "Repository API base URL")
	fs.StringVar(&globals.StorePath, "store", "", "Key-value database file")
	fs.StringVar(&globals.Locale, "locale", "", "Message language (en, pt-BR)")
	fs.DurationVar(&globals.Timeout, "timeout", 0, "Lookup timeout (0 = none)")
	fs.BoolVarP(&globals.Verbose, "verbose", "v", false, "Enable debug logging")
	fs.BoolVar(&globals.LogJSON, "log-json", false, "Write logs as JSON")
}

// newLogger creates a logger for command output
// Uses JSON handler when requested, text otherwise
func newLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelWarn}
	if globals.Verbose {
		opts.Level = slog.LevelDebug
	}

	if globals.LogJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// configPath returns the --config flag or the default location
func configPath() (string, error) {
	if globals.ConfigPath != "" {
		return expandPath(globals.ConfigPath)
	}

	return application.ConfigPath()
}

// loadConfig reads the config file and applies flags set on cmd
func loadConfig(cmd *cobra.Command) (model.Config, error) {
	path, err := configPath()
	if err != nil {
		return model.Config{}, err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return model.Config{}, err
	}

	flags := cmd.Flags()

	if flags.Changed("base-url") {
		cfg.API.BaseURL = globals.BaseURL
	}

	if flags.Changed("store") {
		cfg.Storage.Path = globals.StorePath
	}

	if flags.Changed("locale") {
		cfg.UI.Locale = globals.Locale
	}

	if flags.Changed("timeout") {
		cfg.API.Timeout = globals.Timeout
	}

	return cfg, nil
}

// resolveStorePath returns the configured database file or the default one
func resolveStorePath(cfg model.Config) (string, error) {
	if cfg.Storage.Path != "" {
		return expandPath(cfg.Storage.Path)
	}

	dir, err := application.GetApplicationDirectory()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, database.FileName), nil
}

// session bundles an opened store and the board loaded from it
type session struct {
	cfg   model.Config
	store database.Store
	board *board.Board
}

func openSession(cmd *cobra.Command, logger *slog.Logger) (*session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	path, err := resolveStorePath(cfg)
	if err != nil {
		return nil, err
	}

	client, err := lookup.NewClient(cfg.API.BaseURL,
		lookup.WithTimeout(cfg.API.Timeout),
		lookup.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	store, err := database.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store %s: %w", path, err)
	}

	b, err := board.New(store, client,
		board.WithMessages(i18n.New(cfg.UI.Locale)),
		board.WithLogger(logger),
	)
	if err != nil {
		_ = store.Close()

		return nil, err
	}

	logger.Debug("session opened", "store", path, "base_url", client.BaseURL(), "entries", b.Len())

	return &session{cfg: cfg, store: store, board: b}, nil
}

func (s *session) Close() error {
	return s.store.Close()
}

// outputJSON encodes data as indented JSON to w
func outputJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(data)
}

// expandPath expands ~ to the user's home directory and returns an absolute path
func expandPath(path string) (string, error) {
	if len(path) == 0 {
		return "", fmt.Errorf("path is empty")
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}

		path = filepath.Join(home, path[1:])
	}

	// Make path absolute
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}

	return absPath, nil
}

// truncateString truncates a string to the specified length with ellipsis
func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}

	if maxLen <= 3 {
		return string(r[:maxLen])
	}

	return string(r[:maxLen-3]) + "..."
}

// centerString centers a string in a field of given width
func centerString(s string, width int) string {
	if len(s) >= width {
		return s
	}

	padding := (width - len(s)) / 2

	return fmt.Sprintf("%*s%s%*s", padding, "", s, width-len(s)-padding, "")
}

// boxWidth is the standard width for info boxes
const boxWidth = 64

// printInfoBox prints a boxed title followed by label: value lines
func printInfoBox(w io.Writer, title string, items [][2]string) {
	_, _ = fmt.Fprintln(w, "╔══════════════════════════════════════════════════════════════╗")
	_, _ = fmt.Fprintf(w, "║%s║\n", centerString(title, boxWidth-2))
	_, _ = fmt.Fprintln(w, "╠══════════════════════════════════════════════════════════════╣")

	for _, item := range items {
		content := truncateString(fmt.Sprintf("  %s: %s", item[0], item[1]), boxWidth-2)

		padding := boxWidth - 2 - len([]rune(content))

		_, _ = fmt.Fprintf(w, "║%s%*s║\n", content, padding, "")
	}

	_, _ = fmt.Fprintln(w, "╚══════════════════════════════════════════════════════════════╝")
}
