// Package tui renders one solved grid and its cycle in a bordered,
// scrollable view, in the style of the bubbletea/lipgloss list models this
// lineage uses for interactive selection: here there's nothing to select,
// just a grid pane and a scrollable list of the cycle's lattice points.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ancientHacker/slitherlink/internal/grid"
	"github.com/ancientHacker/slitherlink/internal/printer"
	"github.com/ancientHacker/slitherlink/internal/state"
	"github.com/ancientHacker/slitherlink/internal/validate"
)

var (
	colorCyan = lipgloss.Color("36")
	colorDim  = lipgloss.Color("240")

	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim   = lipgloss.NewStyle().Foreground(colorDim)
	styleBox   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1)
)

// Model is the bubbletea model for the static solution viewer.
type Model struct {
	gridText string
	cycle    []validate.Point
	offset   int
	height   int
}

// NewModel builds a viewer for g/s's rendered grid and the already-
// extracted cycle.
func NewModel(g *grid.Grid, s *state.State, cycle []validate.Point) Model {
	var b strings.Builder
	printer.Grid(&b, g, s)
	return Model{gridText: strings.TrimRight(b.String(), "\n"), cycle: cycle, height: 12}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc", "enter":
			return m, tea.Quit
		case "up", "k":
			if m.offset > 0 {
				m.offset--
			}
		case "down", "j":
			if m.offset < len(m.cycle)-m.height {
				m.offset++
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 10
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Slitherlink solution"))
	b.WriteString("\n\n")
	b.WriteString(styleBox.Render(m.gridText))
	b.WriteString("\n\n")
	b.WriteString(styleTitle.Render("Cycle"))
	b.WriteString("  ")
	b.WriteString(styleDim.Render("↑/↓ scroll  q quit"))
	b.WriteString("\n")

	end := m.offset + m.height
	if end > len(m.cycle) {
		end = len(m.cycle)
	}
	for i := m.offset; i < end; i++ {
		p := m.cycle[i]
		fmt.Fprintf(&b, "  %3d: (%d,%d)\n", i, p.Row, p.Col)
	}
	b.WriteString(styleDim.Render(fmt.Sprintf("  [%d/%d points]", end, len(m.cycle))))
	return b.String()
}

// Run starts the bubbletea program for the given grid/solution and blocks
// until the user quits.
func Run(g *grid.Grid, s *state.State, cycle []validate.Point) error {
	_, err := tea.NewProgram(NewModel(g, s, cycle)).Run()
	return err
}
