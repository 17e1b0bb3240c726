package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nightfall/orrery/internal/stellar"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <spectral-type>",
	Short: "Parse a Morgan-Keenan spectral type string and print its classification",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		class := stellar.Parse(args[0])
		r, g, b := class.ApparentColor()

		fmt.Fprintf(cmd.OutOrStdout(), "input:        %s\n", args[0])
		fmt.Fprintf(cmd.OutOrStdout(), "normalized:   %s\n", class.Str())
		fmt.Fprintf(cmd.OutOrStdout(), "star type:    %s\n", class.StarType)
		fmt.Fprintf(cmd.OutOrStdout(), "packed (v2):  0x%04X\n", class.PackV2())
		fmt.Fprintf(cmd.OutOrStdout(), "packed (v1):  0x%04X\n", class.PackV1())
		fmt.Fprintf(cmd.OutOrStdout(), "color (rgb):  %.3f %.3f %.3f\n", r, g, b)
		return nil
	},
}
