package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nightfall/orrery/internal/astro"
	"github.com/nightfall/orrery/internal/ephemeris"
)

var bodyNames = map[string]ephemeris.Body{
	"mercury":   ephemeris.Mercury,
	"venus":     ephemeris.Venus,
	"embary":    ephemeris.EarthMoonBary,
	"mars":      ephemeris.Mars,
	"jupiter":   ephemeris.Jupiter,
	"saturn":    ephemeris.Saturn,
	"uranus":    ephemeris.Uranus,
	"neptune":   ephemeris.Neptune,
	"pluto":     ephemeris.Pluto,
	"moon":      ephemeris.Moon,
	"sun":       ephemeris.Sun,
	"nutation":  ephemeris.Nutation,
	"libration": ephemeris.Libration,
	"ssb":       ephemeris.SSB,
	"earth":     ephemeris.Earth,
}

var (
	ephemFile string
	ephemBody string
	ephemTJD  float64
)

var ephemCmd = &cobra.Command{
	Use:   "ephem",
	Short: "Evaluate a body's position from a JPL DE / INPOP binary ephemeris file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if ephemFile == "" {
			return fmt.Errorf("--file is required")
		}
		body, ok := bodyNames[strings.ToLower(ephemBody)]
		if !ok {
			return fmt.Errorf("unknown body %q", ephemBody)
		}

		f, err := os.Open(ephemFile)
		if err != nil {
			return fmt.Errorf("open ephemeris file: %w", err)
		}
		defer f.Close()

		eph, err := ephemeris.LoadWithLogger(f, log)
		if err != nil {
			return fmt.Errorf("load ephemeris: %w", err)
		}

		pos := eph.GetPlanetPosition(body, ephemTJD)
		distAU := astro.KmToAU(pos.Norm())
		fmt.Fprintf(cmd.OutOrStdout(), "denum:   %d\n", eph.DENum)
		fmt.Fprintf(cmd.OutOrStdout(), "body:    %s\n", body)
		fmt.Fprintf(cmd.OutOrStdout(), "tjd:     %.6f\n", ephemTJD)
		fmt.Fprintf(cmd.OutOrStdout(), "x, y, z: %.9f %.9f %.9f km\n", pos.X, pos.Y, pos.Z)
		fmt.Fprintf(cmd.OutOrStdout(), "dist:    %.9f AU\n", distAU)
		fmt.Fprintf(cmd.OutOrStdout(), "ecl lat: %.6f deg\n", astro.EclipticLatitude(pos))
		fmt.Fprintf(cmd.OutOrStdout(), "ecl lon: %.6f deg\n", astro.EclipticLongitude(pos))
		fmt.Fprintf(cmd.OutOrStdout(), "lt:      %s\n", astro.FormatLightTime(astro.LightTimeFromAU(distAU)))
		return nil
	},
}

func init() {
	ephemCmd.Flags().StringVar(&ephemFile, "file", "", "path to a JPL DE / INPOP binary ephemeris file")
	ephemCmd.Flags().StringVar(&ephemBody, "body", "earth", "body to evaluate (mercury, venus, embary, mars, jupiter, saturn, uranus, neptune, pluto, moon, sun, nutation, libration, ssb, earth)")
	ephemCmd.Flags().Float64Var(&ephemTJD, "tjd", 2451545.0, "Julian day (TDB) to evaluate at")
}
