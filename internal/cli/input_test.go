package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(m BirthFormModel, keys ...string) BirthFormModel {
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(BirthFormModel)
	}
	return m
}

func TestBirthFormPrefill(t *testing.T) {
	m := NewBirthFormModel(birthFlags{date: "1990-05-15", zone: "Asia/Kathmandu", lat: 27.7172})

	if m.Fields[fieldDate].value != "1990-05-15" {
		t.Errorf("date prefill = %q", m.Fields[fieldDate].value)
	}
	if m.Fields[fieldZone].value != "Asia/Kathmandu" {
		t.Errorf("zone prefill = %q", m.Fields[fieldZone].value)
	}
	if m.Fields[fieldLat].value != "27.7172" {
		t.Errorf("lat prefill = %q", m.Fields[fieldLat].value)
	}

	// Zero coordinates stay blank so the placeholder shows.
	if m.Fields[fieldLon].value != "" {
		t.Errorf("lon prefill = %q, want blank", m.Fields[fieldLon].value)
	}
}

func TestBirthFormTyping(t *testing.T) {
	m := NewBirthFormModel(birthFlags{})

	m = update(m, "1990")
	if m.Fields[fieldDate].value != "1990" {
		t.Errorf("typed value = %q", m.Fields[fieldDate].value)
	}

	m = update(m, "backspace")
	if m.Fields[fieldDate].value != "199" {
		t.Errorf("after backspace = %q", m.Fields[fieldDate].value)
	}
}

func TestBirthFormNavigation(t *testing.T) {
	m := NewBirthFormModel(birthFlags{})

	m = update(m, "down", "down")
	if m.Cursor != fieldZone {
		t.Errorf("cursor = %d, want %d", m.Cursor, fieldZone)
	}

	m = update(m, "up")
	if m.Cursor != fieldTime {
		t.Errorf("cursor = %d, want %d", m.Cursor, fieldTime)
	}

	// Enter advances through the fields and submits on the last one.
	m = update(m, "enter", "enter", "enter")
	if m.Cursor != fieldLon || m.Submitted {
		t.Errorf("cursor = %d, submitted %v; want at last field, not submitted", m.Cursor, m.Submitted)
	}
	m = update(m, "enter")
	if !m.Submitted {
		t.Error("enter on the last field should submit")
	}
}

func TestBirthFormCancel(t *testing.T) {
	m := update(NewBirthFormModel(birthFlags{}), "esc")
	if !m.Cancelled {
		t.Error("esc should cancel the form")
	}
}

func TestBirthFormCursorBounds(t *testing.T) {
	m := NewBirthFormModel(birthFlags{})

	m = update(m, "up", "up")
	if m.Cursor != 0 {
		t.Errorf("cursor moved above the first field: %d", m.Cursor)
	}

	m = update(m, "down", "down", "down", "down", "down", "down")
	if m.Cursor != fieldLon {
		t.Errorf("cursor moved past the last field: %d", m.Cursor)
	}
}

func TestBirthFormView(t *testing.T) {
	m := NewBirthFormModel(birthFlags{date: "1990-05-15"})

	out := m.View()
	for _, want := range []string{"Birth Data", "Date", "Time", "Zone", "Latitude", "Longitude", "1990-05-15"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}
