package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nightfall/orrery/internal/orreryconfig"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect orrery's effective configuration",
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective, fully-resolved configuration as TOML",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := orreryconfig.DumpTOML(cfg)
		if err != nil {
			return fmt.Errorf("dump config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	configCmd.AddCommand(configDumpCmd)
	rootCmd.AddCommand(configCmd)
}
