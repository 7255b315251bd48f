package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "Print the repositories on the board",
	Long:    `Print every repository on the board in the order it was added.`,
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd, listJSON)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
}

func runList(cmd *cobra.Command, asJSON bool) error {
	s, err := openSession(cmd, newLogger(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}

	defer func() { _ = s.Close() }()

	repos := s.board.Repositories()
	out := cmd.OutOrStdout()

	if asJSON {
		return outputJSON(out, repos)
	}

	if len(repos) == 0 {
		_, _ = fmt.Fprintln(out, s.board.Messages().Empty())

		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "REPOSITORY\tOWNER\tDESCRIPTION\tROUTE")

	for _, r := range repos {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			r.FullName, r.Owner.Login, truncateString(r.Description, 50), r.Route())
	}

	return w.Flush()
}
