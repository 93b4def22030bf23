// internal/viewer/viewer.go
// Package: viewer
package viewer

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwiater/gollamabench/internal/results"
)

// viewState represents the current state of the results browser.
type viewState int

const (
	// viewMenu is the state where the user picks a report.
	viewMenu viewState = iota
	// viewReport is the state where a rendered report is shown.
	viewReport
)

// Menu choice identifiers. Indices match the order of menuItems.
const (
	choiceSummary = iota
	choiceLatest
	choiceAll
	choiceCompare
	choiceExport
	choiceQuit
)

// latestLimit is the number of results shown by the "latest" report.
const latestLimit = 5

// model is the Bubble Tea model for the interactive results browser.
type model struct {
	state      viewState
	results    []results.TestResult
	exportPath string

	menu     list.Model
	viewport viewport.Model
	report   string
	status   string

	width, height int
}

// item is a selectable menu entry.
type item struct {
	title string
	desc  string
	id    int
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return i.title }

func menuItems() []list.Item {
	return []list.Item{
		item{title: "Summary Statistics", desc: "Counts, models, averages, rating histogram", id: choiceSummary},
		item{title: "Latest 5 Results", desc: "Most recent runs in detail", id: choiceLatest},
		item{title: "All Results", desc: "Every logged run in detail", id: choiceAll},
		item{title: "Model Comparison", desc: "Grouped means per model, fastest first", id: choiceCompare},
		item{title: "Export to CSV", desc: "Write all results to a tabular file", id: choiceExport},
		item{title: "Quit", desc: "Leave the results viewer", id: choiceQuit},
	}
}

// newModel builds the initial browser model over the given results.
func newModel(rs []results.TestResult, exportPath string) *model {
	menu := list.New(menuItems(), list.NewDefaultDelegate(), 0, 0)
	menu.Title = "Ollama Test Results Viewer"
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(false)

	return &model{
		state:      viewMenu,
		results:    rs,
		exportPath: exportPath,
		menu:       menu,
		viewport:   viewport.New(100, 30),
	}
}

// Init implements tea.Model.
func (m *model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.menu.SetSize(msg.Width, msg.Height-2)
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 2
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case viewMenu:
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "enter":
				return m.selectChoice()
			}
		case viewReport:
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "esc":
				m.state = viewMenu
				return m, nil
			}
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	if m.state == viewMenu {
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}
	return m, nil
}

// selectChoice runs the highlighted menu action.
func (m *model) selectChoice() (tea.Model, tea.Cmd) {
	sel, ok := m.menu.SelectedItem().(item)
	if !ok {
		return m, nil
	}

	switch sel.id {
	case choiceSummary:
		m.showReport(RenderSummary(results.Summarize(m.results)))
	case choiceLatest:
		m.showReport(RenderDetails(m.results, latestLimit))
	case choiceAll:
		m.showReport(RenderDetails(m.results, 0))
	case choiceCompare:
		m.showReport(RenderComparison(results.CompareModels(m.results)))
	case choiceExport:
		if err := results.ExportCSVFile(m.exportPath, m.results); err != nil {
			m.status = badStyle.Render(fmt.Sprintf("Error exporting to CSV: %v", err))
		} else {
			m.status = goodStyle.Render("Results exported to " + m.exportPath)
		}
	case choiceQuit:
		return m, tea.Quit
	}
	return m, nil
}

func (m *model) showReport(content string) {
	m.state = viewReport
	m.report = content
	m.status = ""
	m.viewport.SetContent(content)
	m.viewport.GotoTop()
}

// View implements tea.Model.
func (m *model) View() string {
	switch m.state {
	case viewReport:
		return m.viewport.View() + "\n" + labelStyle.Render("esc: back  q: quit")
	default:
		out := m.menu.View()
		if m.status != "" {
			out += "\n" + m.status
		}
		return out
	}
}

// Start runs the interactive results browser over the given results.
// exportPath is where the CSV export menu action writes its file.
func Start(rs []results.TestResult, exportPath string) error {
	p := tea.NewProgram(newModel(rs, exportPath), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
