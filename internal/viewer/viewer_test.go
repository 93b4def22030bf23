package viewer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func pressEnter(m *model) *model {
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(*model)
}

func Test_Viewer_MenuToSummaryAndBack(t *testing.T) {
	m := newModel(testResults(), filepath.Join(t.TempDir(), "out.csv"))
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	// First menu entry is the summary.
	m = pressEnter(m)
	if m.state != viewReport {
		t.Fatalf("expected report state, got %v", m.state)
	}
	if !strings.Contains(m.report, "TEST RESULTS SUMMARY") {
		t.Fatalf("unexpected report:\n%s", m.report)
	}
	if !strings.Contains(m.View(), "esc: back") {
		t.Fatalf("report view missing key hints:\n%s", m.View())
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(*model)
	if m.state != viewMenu {
		t.Fatalf("expected menu state after esc, got %v", m.state)
	}
}

func Test_Viewer_QuitFromMenu(t *testing.T) {
	m := newModel(testResults(), "out.csv")
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Fatalf("expected tea.QuitMsg, got %T", msg)
	}
}

func Test_Viewer_ExportWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	m := newModel(testResults(), path)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	// Move the selection down to the export entry.
	for i := 0; i < choiceExport; i++ {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = updated.(*model)
	}
	m = pressEnter(m)

	if m.state != viewMenu {
		t.Fatalf("export should stay on the menu, got state %v", m.state)
	}
	if !strings.Contains(m.status, "exported") {
		t.Fatalf("missing export confirmation: %q", m.status)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("export file not written: %v", err)
	}
	if !strings.Contains(m.View(), "exported") {
		t.Fatalf("menu view missing status line:\n%s", m.View())
	}
}
