package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Form styles
var (
	formActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	formLabelStyle  = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	formDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// BirthFormModel - Interactive birth data entry
// =============================================================================

// formField is one editable line of the birth form.
type formField struct {
	label       string
	value       string
	placeholder string
}

// BirthFormModel is the bubbletea model for entering birth data.
type BirthFormModel struct {
	Fields    []formField
	Cursor    int
	Submitted bool
	Cancelled bool
}

// Field order in the form.
const (
	fieldDate = iota
	fieldTime
	fieldZone
	fieldLat
	fieldLon
)

// NewBirthFormModel creates a birth form prefilled from any flags already set.
func NewBirthFormModel(initial birthFlags) BirthFormModel {
	return BirthFormModel{
		Fields: []formField{
			{label: "Date", value: initial.date, placeholder: "YYYY-MM-DD"},
			{label: "Time", value: initial.time, placeholder: "HH:MM"},
			{label: "Zone", value: initial.zone, placeholder: "Asia/Kathmandu"},
			{label: "Latitude", value: floatValue(initial.lat), placeholder: "27.7172"},
			{label: "Longitude", value: floatValue(initial.lon), placeholder: "85.3240"},
		},
	}
}

// floatValue renders a prefilled coordinate, leaving zero blank so the
// placeholder shows instead.
func floatValue(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (m BirthFormModel) Init() tea.Cmd {
	return nil
}

func (m BirthFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		m.Cancelled = true
		return m, tea.Quit
	case "up", "shift+tab":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "tab":
		if m.Cursor < len(m.Fields)-1 {
			m.Cursor++
		}
	case "enter":
		if m.Cursor < len(m.Fields)-1 {
			m.Cursor++
			return m, nil
		}
		m.Submitted = true
		return m, tea.Quit
	case "backspace":
		f := &m.Fields[m.Cursor]
		if len(f.value) > 0 {
			f.value = f.value[:len(f.value)-1]
		}
	default:
		if keyMsg.Type == tea.KeyRunes {
			m.Fields[m.Cursor].value += string(keyMsg.Runes)
		}
	}
	return m, nil
}

func (m BirthFormModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Birth Data"))
	b.WriteString("\n")
	b.WriteString(formDimStyle.Render("tab/↑/↓ move  ⏎ next/submit  esc cancel"))
	b.WriteString("\n\n")

	for i, f := range m.Fields {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		value := f.value
		if value == "" {
			value = formDimStyle.Render(f.placeholder)
		} else if i == m.Cursor {
			value = formActiveStyle.Render(value)
		} else {
			value = StyleValue.Render(value)
		}

		b.WriteString(cursor + formLabelStyle.Render(f.label) + value + "\n")
	}

	return b.String()
}

// =============================================================================
// Entry Point
// =============================================================================

// runBirthForm collects birth data interactively, layered over any flags the
// user already provided.
func runBirthForm(ctx context.Context, initial birthFlags) (birthFlags, error) {
	p := tea.NewProgram(NewBirthFormModel(initial), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return birthFlags{}, err
	}

	model, ok := final.(BirthFormModel)
	if !ok || model.Cancelled || !model.Submitted {
		return birthFlags{}, fmt.Errorf("cancelled")
	}

	out := birthFlags{
		date: strings.TrimSpace(model.Fields[fieldDate].value),
		time: strings.TrimSpace(model.Fields[fieldTime].value),
		zone: strings.TrimSpace(model.Fields[fieldZone].value),
	}
	if out.time == "" {
		out.time = "12:00"
	}
	if out.zone == "" {
		out.zone = "UTC"
	}

	out.lat, err = parseCoordinate(model.Fields[fieldLat].value, "latitude")
	if err != nil {
		return birthFlags{}, err
	}
	out.lon, err = parseCoordinate(model.Fields[fieldLon].value, "longitude")
	if err != nil {
		return birthFlags{}, err
	}

	return out, nil
}

// parseCoordinate parses a decimal-degree coordinate field.
func parseCoordinate(v, name string) (float64, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: want decimal degrees", name, v)
	}
	return f, nil
}
