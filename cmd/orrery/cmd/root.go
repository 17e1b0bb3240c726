// Package cmd defines the orrery command tree.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nightfall/orrery/internal/logging"
	"github.com/nightfall/orrery/internal/orreryconfig"
)

var (
	cfgFile  string
	logLevel string

	log *logging.Logger
	cfg orreryconfig.Config
)

var rootCmd = &cobra.Command{
	Use:   "orrery",
	Short: "Stellar classification and JPL/INPOP ephemeris evaluation",
	Long:  "orrery parses and packs Morgan-Keenan stellar spectral types and evaluates planetary positions from JPL DE and INPOP binary ephemeris files.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := orreryconfig.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}
		log = logging.New(logging.ParseLevel(cfg.LogLevel))
		orreryconfig.WatchReload(log, func(reloaded orreryconfig.Config) {
			cfg = reloaded
			log.SetLevel(logging.ParseLevel(cfg.LogLevel))
			log.Info("config reloaded from %s", cfgFile)
		})
		return nil
	},
}

// Execute runs the orrery command tree, exiting the process on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./orrery.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(ephemCmd)
	rootCmd.AddCommand(skyCmd)
}
