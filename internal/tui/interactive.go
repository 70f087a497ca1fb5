package tui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/emach-lab/statmodal/internal/machine"
	"github.com/emach-lab/statmodal/internal/modal"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// Model is the interactive parameter tuner: pick a machine parameter, nudge
// it, and watch the frequency table recompute.
type Model struct {
	base     machine.Parameters
	params   machine.Parameters
	radial   []int
	tol      float64
	names    []string
	cursor   int
	table    *modal.Table
	tableErr error
	width    int
	height   int
}

func NewModel(params machine.Parameters, radial []int, tol float64) Model {
	names := make([]string, 0)
	for name := range params.GetParams() {
		names = append(names, name)
	}
	sort.Strings(names)

	m := Model{
		base:   params,
		params: params,
		radial: radial,
		tol:    tol,
		names:  names,
		width:  100,
		height: 30,
	}
	m.recompute()
	return m
}

func (m *Model) recompute() {
	est := &modal.Estimator{Params: m.params, Tolerance: m.tol}
	m.table, m.tableErr = est.Estimate(m.radial)
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.names)-1 {
				m.cursor++
			}
		case "left", "h", "-":
			m.adjust(-1)
		case "right", "l", "+", "=":
			m.adjust(1)
		case "r":
			m.params = m.base
			m.recompute()
		}
	}
	return m, nil
}

// adjust nudges the selected parameter by 2%, or one slot for the slot
// count, then recomputes the table.
func (m *Model) adjust(dir int) {
	name := m.names[m.cursor]
	val := m.params.GetParams()[name]

	if name == "slots" {
		val += float64(dir)
	} else {
		val *= 1 + 0.02*float64(dir)
	}

	if err := m.params.SetParam(name, val); err != nil {
		return
	}
	m.recompute()
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(cyan.Render("statmodal") + dim.Render("  interactive tuner") + "\n\n")

	values := m.params.GetParams()
	baseValues := m.base.GetParams()

	var left strings.Builder
	for i, name := range m.names {
		marker := "  "
		style := white
		if i == m.cursor {
			marker = magenta.Render("> ")
			style = magenta
		}
		line := marker + style.Render(fmt.Sprintf("%-16s", name)) + fmt.Sprintf(" %11.5g", values[name])
		if values[name] != baseValues[name] {
			line += yellow.Render(" *")
		}
		left.WriteString(line + "\n")
	}

	var right strings.Builder
	if m.tableErr != nil {
		right.WriteString(red.Render(m.tableErr.Error()) + "\n")
	} else {
		right.WriteString(dim.Render(fmt.Sprintf("%-8s %10s %10s %10s", "mode", "core", "frame", "system")) + "\n")
		for _, row := range m.table.Rows {
			right.WriteString(fmt.Sprintf("%-8s %10.1f %10.1f %s\n",
				row.Mode, row.Core, row.Frame,
				green.Render(fmt.Sprintf("%10.1f", row.System))))
		}
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().MarginRight(4).Render(left.String()),
		right.String()))

	b.WriteString("\n" + dim.Render("↑/↓ select  ←/→ adjust  r reset  q quit") + "\n")

	return b.String()
}
