package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <owner/name>...",
	Short: "Look up repositories and add them to the board",
	Long: `Look up each repository on the configured API and append it to the board.

Identifiers are processed in order. Failed lookups leave the board unchanged
and are reported on stderr; the command exits non-zero if any failed.

Examples:
  ghexplorer add facebook/react
  ghexplorer add golang/go charmbracelet/bubbletea`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, newLogger(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}

	defer func() { _ = s.Close() }()

	var (
		out    = cmd.OutOrStdout()
		errOut = cmd.ErrOrStderr()
		failed int
	)

	for _, id := range args {
		s.board.QueryText = id

		if err := s.board.Submit(cmd.Context(), id); err != nil {
			failed++

			_, _ = fmt.Fprintf(errOut, "✗ %q: %s\n", id, s.board.ErrorMessage)

			continue
		}

		repos := s.board.Repositories()
		added := repos[len(repos)-1]

		_, _ = fmt.Fprintf(out, "✓ %s  %s\n", added.FullName, added.Route())
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d lookups failed", failed, len(args))
	}

	return nil
}
