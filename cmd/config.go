package cmd

import (
	"fmt"

	"github.com/inovacc/ghexplorer/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show ghexplorer configuration",
	Long: `Show the effective configuration, after command-line overrides.

Available Commands:
  set   Change a value in the config file`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		path, err := configPath()
		if err != nil {
			return err
		}

		items := append(config.Values(cfg), [2]string{"file", path})
		printInfoBox(cmd.OutOrStdout(), "ghexplorer configuration", items)

		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a value in the config file",
	Long: `Change a value in the config file.

Keys:
  api.base_url   Repository API root (default https://api.github.com/)
  api.timeout    Lookup timeout, e.g. 10s (0s = none)
  storage.path   Key-value database file
  ui.locale      Message language (en, pt-BR)`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configPath()
		if err != nil {
			return err
		}

		// Flags must not leak into the file, so start from the file alone
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}

		if err := config.Set(&cfg, args[0], args[1]); err != nil {
			return err
		}

		if err := config.Save(path, cfg); err != nil {
			return err
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", args[0], args[1])

		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSetCmd)
}
