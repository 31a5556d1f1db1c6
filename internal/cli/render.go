package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/maheshsubedi/grahas/pkg/chart"
	"github.com/maheshsubedi/grahas/pkg/store"
	"github.com/maheshsubedi/grahas/pkg/varga"
	"github.com/maheshsubedi/grahas/pkg/zodiac"
)

// =============================================================================
// Table Styles
// =============================================================================

var (
	tableHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	tableBorderStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// newTable creates a table with the shared border and header styling.
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return tableHeaderStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

// =============================================================================
// Formatting Helpers
// =============================================================================

// formatPlacement renders an in-sign position: "Taurus 1°08′13″".
func formatPlacement(sign zodiac.Sign, dms zodiac.DMS) string {
	return fmt.Sprintf("%s %s", sign, dms)
}

// formatLongitude renders an absolute ecliptic longitude as its placement.
func formatLongitude(lon float64) string {
	cls := zodiac.Classify(lon)
	return formatPlacement(cls.Sign, cls.DMS)
}

// formatMotion renders direct/retrograde motion. The lunar nodes are always
// retrograde by convention; flagging them would be noise, but the column keeps
// every body's direction visible at a glance.
func formatMotion(p chart.BodyPosition) string {
	if p.Retrograde() {
		return styleRetro.Render("R")
	}
	return StyleDim.Render("D")
}

// =============================================================================
// Natal Chart
// =============================================================================

// renderChart renders the chart header and position table.
func renderChart(c *chart.VedicChart) string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Natal Chart"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("%s %s  ·  %.4f°N %.4f°E  ·  JD %.6f",
		c.Moment.Civil.Format("2006-01-02 15:04"), c.Moment.Zone,
		c.Moment.Latitude, c.Moment.Longitude, float64(c.JulianDay))))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("ayanamsa %s %.6f°  ·  houses %s",
		c.AyanamsaName, c.Ayanamsa, c.HouseSystem)))
	b.WriteString("\n\n")

	b.WriteString(renderAngles(c))
	b.WriteString("\n")
	b.WriteString(renderPositions(c.Positions))
	b.WriteString("\n")

	return b.String()
}

// renderAngles renders the ascendant and midheaven lines.
func renderAngles(c *chart.VedicChart) string {
	var b strings.Builder
	kv := lipgloss.NewStyle().Foreground(colorGray).Width(11)
	b.WriteString(kv.Render("Ascendant") + " " + StyleValue.Render(formatLongitude(c.Ascendant)) + "\n")
	b.WriteString(kv.Render("Midheaven") + " " + StyleValue.Render(formatLongitude(c.Midheaven)) + "\n")
	return b.String()
}

// renderPositions renders the body position table.
func renderPositions(positions []chart.BodyPosition) string {
	t := newTable("Body", "Position", "Nakshatra", "Pada", "House", "Motion")
	for _, p := range positions {
		house := fmt.Sprintf("%d", p.House)
		if p.HousedByFallback {
			house += StyleWarning.Render("*")
		}
		t.Row(
			p.Body.String(),
			formatPlacement(p.Sign, p.DMS),
			zodiac.NakshatraName(p.Nakshatra),
			fmt.Sprintf("%d", p.Pada),
			house,
			formatMotion(p),
		)
	}
	return t.Render()
}

// =============================================================================
// Divisional Charts
// =============================================================================

// renderVarga renders one divisional chart.
func renderVarga(r *varga.Result) string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("%s — %s", r.Division, r.Division.Name())))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("Ascendant " + formatLongitude(r.Ascendant)))
	b.WriteString("\n\n")

	t := newTable("Body", "Position", "Nakshatra", "Pada", "House")
	for _, p := range r.Positions {
		t.Row(
			p.Body.String(),
			formatPlacement(p.Sign, p.DMS),
			zodiac.NakshatraName(p.Nakshatra),
			fmt.Sprintf("%d", p.Pada),
			fmt.Sprintf("%d", p.House),
		)
	}
	b.WriteString(t.Render())
	b.WriteString("\n")

	return b.String()
}

// =============================================================================
// Saved Records
// =============================================================================

// renderRecords renders the saved birth record table.
func renderRecords(records []*store.Record) string {
	t := newTable("ID", "Name", "Born", "Zone", "Ayanamsa", "Houses")
	for _, r := range records {
		t.Row(
			shortID(r.ID),
			r.Name,
			r.Moment.Civil.Format("2006-01-02 15:04"),
			r.Moment.Zone,
			r.Ayanamsa,
			r.HouseSystem,
		)
	}
	return t.Render()
}

// shortID truncates a UUID for display. Lookups accept the full ID only.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
