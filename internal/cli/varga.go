package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/maheshsubedi/grahas/pkg/varga"
)

// vargaCommand creates the varga command for divisional charts.
func (c *CLI) vargaCommand() *cobra.Command {
	var (
		birth       birthFlags
		frame       frameFlags
		divisionStr string
		jsonOut     bool
		noCache     bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "varga",
		Short: "Compute divisional (varga) charts",
		Long: `Compute divisional charts from a natal chart.

Each varga divides every sign into equal parts and maps each part to a
destination sign by its classical rule (the trimsamsa uses unequal parts).
Houses are re-counted whole-sign from the divisional ascendant.

Supported divisions: ` + strings.Join(divisionLabels(), ", ") + `.`,
		Example: `  grahas varga --date 1990-05-15 --time 14:30 --zone Asia/Kathmandu --lat 27.7172 --lon 85.3240 -d D9
  grahas varga --date 1990-05-15 --zone UTC --lat 51.5 --lon 0 -d all`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive || !birth.provided() {
				filled, err := runBirthForm(cmd.Context(), birth)
				if err != nil {
					return err
				}
				birth = filled
			}

			moment, err := birth.moment()
			if err != nil {
				return err
			}
			ayanamsa, system, err := frame.resolve()
			if err != nil {
				return err
			}

			divisions, err := parseDivisions(divisionStr)
			if err != nil {
				return err
			}

			natal, mode, cached, err := c.computeChart(cmd.Context(), moment, ayanamsa, system, frame.dataDir, noCache)
			if err != nil {
				return err
			}

			results := make([]*varga.Result, 0, len(divisions))
			for _, d := range divisions {
				r, err := varga.Compute(natal, d)
				if err != nil {
					return err
				}
				results = append(results, r)
			}

			if jsonOut {
				if len(results) == 1 {
					return printJSON(results[0])
				}
				return printJSON(results)
			}

			for _, r := range results {
				fmt.Println(renderVarga(r))
			}
			printProvenance(mode, cached)
			return nil
		},
	}

	birth.register(cmd)
	frame.register(cmd, c.Config)
	cmd.Flags().StringVarP(&divisionStr, "division", "d", "D9", "division to compute (e.g. D9, navamsa, or 'all')")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit results as JSON")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "enter birth data interactively")

	return cmd
}

// parseDivisions parses the --division flag: one division, a comma-separated
// list, or "all".
func parseDivisions(v string) ([]varga.Division, error) {
	if strings.EqualFold(strings.TrimSpace(v), "all") {
		return varga.Divisions(), nil
	}

	parts := strings.Split(v, ",")
	out := make([]varga.Division, 0, len(parts))
	for _, part := range parts {
		d, err := varga.ParseDivision(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// divisionLabels lists the supported divisions as "D9 (navamsa)" strings.
func divisionLabels() []string {
	out := make([]string, 0, len(varga.Divisions()))
	for _, d := range varga.Divisions() {
		out = append(out, fmt.Sprintf("%s (%s)", d, d.Name()))
	}
	return out
}
