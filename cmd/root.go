package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/ghexplorer/internal/application"
	"github.com/inovacc/ghexplorer/internal/cli"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "Explore GitHub repositories from the terminal",
	Long: `ghexplorer keeps a board of GitHub repositories you have looked up.

Type an owner/name identifier (for example facebook/react) and press Enter to
look it up; the result is appended to the board and saved locally. Select an
entry to print its detail route.

When standard output is not a terminal the board is printed as a plain list.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return runList(cmd, false)
		}

		return runDashboard(cmd)
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

// GetRootCmd returns the root command for introspection purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	addGlobalFlags(rootCmd.PersistentFlags())
}

func runDashboard(cmd *cobra.Command) error {
	// The dashboard owns the terminal, so logs go to a file
	logPath, err := application.LogPath()
	if err != nil {
		return err
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	defer func() { _ = logFile.Close() }()

	s, err := openSession(cmd, newLogger(logFile))
	if err != nil {
		return err
	}

	defer func() { _ = s.Close() }()

	p := tea.NewProgram(cli.NewDashboard(cmd.Context(), s.board), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(cli.DashboardModel); ok {
		if selected := m.Selected(); selected != nil {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), selected.Route())
		}
	}

	return nil
}
