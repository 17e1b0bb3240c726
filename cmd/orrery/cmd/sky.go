package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nightfall/orrery/internal/skyview"
)

var skyCmd = &cobra.Command{
	Use:   "sky",
	Short: "Show the default star catalog, color-coded by spectral classification",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return runSkyHeadless(cmd)
		}
		p := tea.NewProgram(skyview.New())
		_, err := p.Run()
		return err
	},
}

// runSkyHeadless prints the catalog as a plain table for non-interactive
// stdout (pipes, redirected output, CI logs).
func runSkyHeadless(cmd *cobra.Command) error {
	for _, line := range skyview.RenderPlainTable() {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}
