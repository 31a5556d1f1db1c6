package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/maheshsubedi/grahas/pkg/chart"
	"github.com/maheshsubedi/grahas/pkg/ephemeris"
	"github.com/maheshsubedi/grahas/pkg/houses"
)

// Accepted layouts for --date and --time.
const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// birthFlags collects the flags that identify a birth moment, shared by the
// chart, varga and store commands.
type birthFlags struct {
	date string
	time string
	zone string
	lat  float64
	lon  float64
}

// register adds the birth flags to cmd.
func (b *birthFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&b.date, "date", "", "birth date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&b.time, "time", "12:00", "birth time (HH:MM, 24-hour)")
	cmd.Flags().StringVar(&b.zone, "zone", "UTC", "IANA timezone of the birth place (e.g. Asia/Kathmandu)")
	cmd.Flags().Float64Var(&b.lat, "lat", 0, "latitude of the birth place, north positive")
	cmd.Flags().Float64Var(&b.lon, "lon", 0, "longitude of the birth place, east positive")
}

// provided reports whether the user supplied any birth data at all.
func (b *birthFlags) provided() bool {
	return b.date != ""
}

// moment parses and validates the flags into a birth moment.
func (b *birthFlags) moment() (chart.BirthMoment, error) {
	if b.date == "" {
		return chart.BirthMoment{}, fmt.Errorf("--date is required (or run interactively with -i)")
	}

	d, err := time.Parse(dateLayout, b.date)
	if err != nil {
		return chart.BirthMoment{}, fmt.Errorf("invalid --date %q: want YYYY-MM-DD", b.date)
	}
	t, err := time.Parse(timeLayout, b.time)
	if err != nil {
		return chart.BirthMoment{}, fmt.Errorf("invalid --time %q: want HH:MM", b.time)
	}

	civil := time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
	return chart.NewBirthMoment(civil, b.zone, b.lat, b.lon)
}

// frameFlags collects the calculation-frame flags shared by chart and varga.
type frameFlags struct {
	ayanamsa    string
	houseSystem string
	dataDir     string
}

// register adds the frame flags to cmd, defaulting from config.
func (f *frameFlags) register(cmd *cobra.Command, cfg *Config) {
	cmd.Flags().StringVarP(&f.ayanamsa, "ayanamsa", "a", cfg.Ayanamsa, "ayanamsa system (lahiri, raman, krishnamurti, fagan-bradley, yukteshwar, bhasin)")
	cmd.Flags().StringVar(&f.houseSystem, "house-system", cfg.HouseSystem, "house system (whole-sign, equal, placidus, porphyry or W/E/P/O)")
	cmd.Flags().StringVar(&f.dataDir, "data-dir", "", "ephemeris coefficient directory (overrides config)")
}

// resolve parses the frame flags into typed values.
func (f *frameFlags) resolve() (ephemeris.AyanamsaSystem, houses.System, error) {
	ayanamsa, err := ephemeris.ParseAyanamsa(f.ayanamsa)
	if err != nil {
		return 0, 0, err
	}
	system, err := houses.ParseSystem(f.houseSystem)
	if err != nil {
		return 0, 0, err
	}
	return ayanamsa, system, nil
}
