package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maheshsubedi/grahas/pkg/cache"
	"github.com/maheshsubedi/grahas/pkg/chart"
	"github.com/maheshsubedi/grahas/pkg/ephemeris"
	"github.com/maheshsubedi/grahas/pkg/houses"
	"github.com/maheshsubedi/grahas/pkg/observability"
)

// chartCommand creates the chart command for computing natal charts.
func (c *CLI) chartCommand() *cobra.Command {
	var (
		birth       birthFlags
		frame       frameFlags
		record      string
		jsonOut     bool
		noCache     bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Compute a sidereal natal chart",
		Long: `Compute a sidereal natal chart for a birth moment.

The birth time is interpreted as wall-clock time in the given IANA timezone.
Positions are sidereal: tropical longitudes minus the selected ayanamsa.
Rahu is the mean ascending lunar node; Ketu is derived from it, 180 degrees
opposite with matching retrograde motion.

Results are cached locally; identical inputs render instantly on repeat runs.`,
		Example: `  grahas chart --date 1990-05-15 --time 14:30 --zone Asia/Kathmandu --lat 27.7172 --lon 85.3240
  grahas chart -i
  grahas chart --record "Suresh"
  grahas chart --date 1990-05-15 --zone Asia/Kathmandu --lat 27.7 --lon 85.3 --house-system placidus --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var moment chart.BirthMoment

			if record != "" {
				rec, err := c.loadRecord(cmd, record)
				if err != nil {
					return err
				}
				moment = rec.Moment
				// The record's frame applies unless overridden on the line.
				if !cmd.Flags().Changed("ayanamsa") {
					frame.ayanamsa = rec.Ayanamsa
				}
				if !cmd.Flags().Changed("house-system") {
					frame.houseSystem = rec.HouseSystem
				}
			} else {
				if interactive || !birth.provided() {
					filled, err := runBirthForm(cmd.Context(), birth)
					if err != nil {
						return err
					}
					birth = filled
				}
				m, err := birth.moment()
				if err != nil {
					return err
				}
				moment = m
			}

			ayanamsa, system, err := frame.resolve()
			if err != nil {
				return err
			}

			natal, mode, cached, err := c.computeChart(cmd.Context(), moment, ayanamsa, system, frame.dataDir, noCache)
			if err != nil {
				return err
			}

			if jsonOut {
				return printJSON(natal)
			}
			fmt.Println(renderChart(natal))
			printProvenance(mode, cached)
			return nil
		},
	}

	birth.register(cmd)
	frame.register(cmd, c.Config)
	cmd.Flags().StringVar(&record, "record", "", "compute from a saved record (id or name) instead of birth flags")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit the chart as JSON")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "enter birth data interactively")

	return cmd
}

// computeChart computes a natal chart, going through the cache. It returns
// the chart, the provider mode label and whether the result was a cache hit.
func (c *CLI) computeChart(ctx context.Context, moment chart.BirthMoment, ayanamsa ephemeris.AyanamsaSystem, system houses.System, dataDir string, noCache bool) (*chart.VedicChart, string, bool, error) {
	assembler, eph, err := c.newAssembler(ayanamsa, dataDir)
	if err != nil {
		return nil, "", false, err
	}
	defer func() { _ = eph.Close() }()

	if eph.Degraded() {
		printWarning("no ephemeris data files found, using built-in analytic model (reduced precision)")
	}

	results := c.newCache(noCache)
	defer func() { _ = results.Close() }()

	mode := eph.Mode()
	key := cache.ChartKey(moment, ayanamsa.String(), system.String(), mode)
	if data, ok, err := results.Get(ctx, key); err == nil && ok {
		var cached chart.VedicChart
		if err := json.Unmarshal(data, &cached); err == nil {
			observability.Cache().OnCacheHit(ctx, "chart")
			return &cached, mode, true, nil
		}
		// Corrupt entry; fall through and recompute.
		_ = results.Delete(ctx, key)
	}
	observability.Cache().OnCacheMiss(ctx, "chart")

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, "Computing chart...")
	spinner.Start()

	natal, err := assembler.Natal(ctx, moment, chart.Options{HouseSystem: system})
	if err != nil {
		spinner.StopWithError("Chart calculation failed")
		return nil, "", false, err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Computed chart for %s", moment.Civil.Format("2006-01-02")))

	if data, err := json.Marshal(natal); err == nil {
		if err := results.Set(ctx, key, data, 0); err != nil {
			c.Logger.Debug("cache write failed", "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "chart", len(data))
		}
	}

	return natal, mode, false, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
