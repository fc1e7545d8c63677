package preview

import (
	"fmt"
	"math"
	"strings"

	"readingFmt/internal/excel"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xuri/excelize/v2"
)

// UI States
type state int

const (
	stateBrowse state = iota
	stateConfirm
	stateDone
)

type model struct {
	changes []excel.Change
	swatch  map[string]lipgloss.Style // level -> legend color

	state state

	cursor  int
	page    int
	perPage int

	width  int
	height int

	titleStyle    lipgloss.Style
	selectedStyle lipgloss.Style
	normalStyle   lipgloss.Style
	helpStyle     lipgloss.Style
	progressStyle lipgloss.Style
	mutedStyle    lipgloss.Style
}

func initialModel(changes []excel.Change, legend *excel.Legend, rowsPerPage int) model {
	if rowsPerPage < 1 {
		rowsPerPage = 15
	}
	m := model{
		changes: changes,
		swatch:  make(map[string]lipgloss.Style),
		state:   stateBrowse,
		perPage: rowsPerPage,

		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")),
		selectedStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Background(lipgloss.Color("235")),
		normalStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		helpStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		progressStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		mutedStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
	}

	for _, lvl := range legend.Levels() {
		fill, _ := legend.Lookup(lvl)
		if hex := FillHex(fill); hex != "" {
			m.swatch[lvl] = lipgloss.NewStyle().
				Background(lipgloss.Color(hex)).
				Foreground(lipgloss.Color("0")).
				Padding(0, 1)
		}
	}
	return m
}

// FillHex returns the fill's foreground color as "#RRGGBB", or "" when it has none.
func FillHex(fill excelize.Fill) string {
	if len(fill.Color) == 0 {
		return ""
	}
	c := strings.TrimPrefix(fill.Color[0], "#")
	if len(c) == 8 { // ARGB
		c = c[2:]
	}
	if len(c) != 6 {
		return ""
	}
	return "#" + strings.ToUpper(c)
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.perPage = m.height - 8
		if m.perPage < 5 {
			m.perPage = 5
		}
		m.clampCursor()
	case tea.KeyMsg:
		switch m.state {
		case stateBrowse:
			return m.updateBrowse(msg)
		case stateConfirm:
			return m.updateConfirm(msg)
		}
	}
	return m, nil
}

func (m model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		} else if m.page > 0 {
			m.page--
			m.cursor = m.itemsOnPage() - 1
		}

	case "down", "j":
		if m.cursor < m.itemsOnPage()-1 {
			m.cursor++
		} else if m.page < m.totalPages()-1 {
			m.page++
			m.cursor = 0
		}

	case "left", "h":
		if m.page > 0 {
			m.page--
			m.clampCursor()
		}

	case "right", "l":
		if m.page < m.totalPages()-1 {
			m.page++
			m.clampCursor()
		}

	case "n":
		m.moveToNextUncolored()

	case "s":
		m.state = stateConfirm
	}
	return m, nil
}

func (m model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.state = stateDone
		return m, tea.Quit
	case "n", "N", "esc":
		m.state = stateBrowse
	case "ctrl+c", "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m *model) totalPages() int {
	pages := int(math.Ceil(float64(len(m.changes)) / float64(m.perPage)))
	if pages == 0 {
		pages = 1
	}
	return pages
}

func (m *model) itemsOnPage() int {
	start := m.page * m.perPage
	n := len(m.changes) - start
	if n > m.perPage {
		n = m.perPage
	}
	if n < 0 {
		n = 0
	}
	return n
}

func (m *model) clampCursor() {
	if m.page > m.totalPages()-1 {
		m.page = m.totalPages() - 1
	}
	if last := m.itemsOnPage() - 1; m.cursor > last {
		m.cursor = last
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *model) currentIndex() int {
	return m.page*m.perPage + m.cursor
}

// moveToNextUncolored jumps to the next cell that will not receive a legend color
func (m *model) moveToNextUncolored() {
	n := len(m.changes)
	for step := 1; step <= n; step++ {
		idx := (m.currentIndex() + step) % n
		if !m.changes[idx].Colored {
			m.page = idx / m.perPage
			m.cursor = idx % m.perPage
			return
		}
	}
}

func (m model) View() string {
	switch m.state {
	case stateConfirm:
		return m.viewConfirm()
	case stateDone:
		return ""
	}
	return m.viewBrowse()
}

func (m model) viewBrowse() string {
	var b strings.Builder

	b.WriteString(m.titleStyle.Render("Reading Records Preview"))
	b.WriteString("\n\n")

	colored := 0
	for _, c := range m.changes {
		if c.Colored {
			colored++
		}
	}
	progress := fmt.Sprintf("%d cells, %d colored from legend", len(m.changes), colored)
	b.WriteString(m.progressStyle.Render(progress))
	b.WriteString("\n")
	b.WriteString(m.helpStyle.Render(fmt.Sprintf("Page %d/%d", m.page+1, m.totalPages())))
	b.WriteString("\n\n")

	start := m.page * m.perPage
	for i := 0; i < m.itemsOnPage(); i++ {
		c := m.changes[start+i]
		b.WriteString(m.renderRow(c, i == m.cursor))
		b.WriteString("\n")
	}

	if len(m.changes) > 0 {
		c := m.changes[m.currentIndex()]
		b.WriteString("\n")
		b.WriteString(m.mutedStyle.Render(fmt.Sprintf("%s before: %q", c.Cell, c.Before)))
		b.WriteString("\n")
		b.WriteString(m.mutedStyle.Render(fmt.Sprintf("%s after:  %q", c.Cell, c.After)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.helpStyle.Render("↑↓: navigate | ←→: prev/next page | n: next uncolored | s: save | q: quit"))
	return b.String()
}

func (m model) renderRow(c excel.Change, selected bool) string {
	name := strings.SplitN(c.After, "\n", 2)[0]
	if width := m.width - 20; width > 10 && len(name) > width {
		name = name[:width-3] + "..."
	}

	style := m.normalStyle
	prefix := "  "
	if selected {
		style = m.selectedStyle
		prefix = "> "
	}
	row := style.Render(fmt.Sprintf("%s%-6s %s", prefix, c.Cell, name))

	var lvl string
	switch {
	case c.Level == "":
		lvl = m.mutedStyle.Render("(no level)")
	case c.Colored:
		if sw, ok := m.swatch[c.Level]; ok {
			lvl = sw.Render(c.Level)
		} else {
			lvl = c.Level
		}
	default:
		lvl = m.mutedStyle.Render(c.Level + " (not in legend)")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, row, " ", lvl)
}

func (m model) viewConfirm() string {
	var b strings.Builder

	b.WriteString(m.titleStyle.Render("Write Updated Workbook?"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Cells to rewrite: %d\n", len(m.changes)))
	b.WriteString("\n")
	b.WriteString(m.helpStyle.Render("y/n to confirm, Esc to go back"))
	return b.String()
}

// Run shows the planned changes and reports whether the user asked to save them
func Run(changes []excel.Change, legend *excel.Legend, rowsPerPage int) (bool, error) {
	p := tea.NewProgram(initialModel(changes, legend, rowsPerPage), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("error running TUI: %w", err)
	}
	return finalModel.(model).state == stateDone, nil
}
