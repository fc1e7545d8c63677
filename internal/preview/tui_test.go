package preview

import (
	"fmt"
	"testing"

	"readingFmt/internal/excel"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m model, keys ...string) model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(model)
	}
	return m
}

func sampleChanges(n int) []excel.Change {
	changes := make([]excel.Change, n)
	for i := range changes {
		changes[i] = excel.Change{
			Cell:    fmt.Sprintf("F%d", i+2),
			Before:  fmt.Sprintf("book %d", i%3+1),
			After:   fmt.Sprintf("Book\n%d", i%3+1),
			Level:   fmt.Sprintf("%d", i%3+1),
			Colored: i%3 != 2,
		}
	}
	return changes
}

func sampleLegend() *excel.Legend {
	legend := excel.NewLegend()
	legend.Set("1", excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFC000"}})
	legend.Set("2", excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FF92D050"}})
	return legend
}

func TestFillHex(t *testing.T) {
	assert.Equal(t, "#FFC000", FillHex(excelize.Fill{Color: []string{"ffc000"}}))
	assert.Equal(t, "#92D050", FillHex(excelize.Fill{Color: []string{"FF92D050"}}))
	assert.Equal(t, "#00B0F0", FillHex(excelize.Fill{Color: []string{"#00B0F0"}}))
	assert.Equal(t, "", FillHex(excelize.Fill{}))
	assert.Equal(t, "", FillHex(excelize.Fill{Color: []string{"red"}}))
}

func TestInitialModel_Swatches(t *testing.T) {
	m := initialModel(sampleChanges(3), sampleLegend(), 0)
	assert.Equal(t, 15, m.perPage)
	assert.Len(t, m.swatch, 2)
	assert.Contains(t, m.swatch, "1")
	assert.Contains(t, m.swatch, "2")
}

func TestNavigation(t *testing.T) {
	m := initialModel(sampleChanges(7), sampleLegend(), 3)
	assert.Equal(t, 3, m.totalPages())

	m = press(t, m, "down", "down")
	assert.Equal(t, 0, m.page)
	assert.Equal(t, 2, m.cursor)

	// Moving past the last row turns the page.
	m = press(t, m, "j")
	assert.Equal(t, 1, m.page)
	assert.Equal(t, 0, m.cursor)

	m = press(t, m, "k")
	assert.Equal(t, 0, m.page)
	assert.Equal(t, 2, m.cursor)

	// The last page only has one row.
	m = press(t, m, "right", "right")
	assert.Equal(t, 2, m.page)
	assert.Equal(t, 0, m.cursor)

	m = press(t, m, "right", "down")
	assert.Equal(t, 2, m.page)
	assert.Equal(t, 0, m.cursor)

	m = press(t, m, "left")
	assert.Equal(t, 1, m.page)
}

func TestNextUncolored(t *testing.T) {
	m := initialModel(sampleChanges(7), sampleLegend(), 3)

	m = press(t, m, "n")
	assert.Equal(t, 2, m.currentIndex())

	m = press(t, m, "n")
	assert.Equal(t, 5, m.currentIndex())
	assert.Equal(t, 1, m.page)

	m = press(t, m, "n")
	assert.Equal(t, 2, m.currentIndex())
}

func TestConfirm(t *testing.T) {
	m := initialModel(sampleChanges(2), sampleLegend(), 5)

	m = press(t, m, "s")
	assert.Equal(t, stateConfirm, m.state)
	assert.Contains(t, m.View(), "Cells to rewrite: 2")

	m = press(t, m, "esc")
	assert.Equal(t, stateBrowse, m.state)

	m = press(t, m, "s")
	next, cmd := m.Update(key("y"))
	m = next.(model)
	assert.Equal(t, stateDone, m.state)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestView(t *testing.T) {
	changes := []excel.Change{
		{Cell: "F2", Before: "a day in london 1", After: "A Day In London\n1", Level: "1", Colored: true},
		{Cell: "F3", Before: "Charlotte's Web", After: "Charlotte's Web"},
		{Cell: "F4", Before: "book 9", After: "Book\n9", Level: "9"},
	}
	m := initialModel(changes, sampleLegend(), 10)

	view := m.View()
	assert.Contains(t, view, "3 cells, 1 colored from legend")
	assert.Contains(t, view, "A Day In London")
	assert.Contains(t, view, "(no level)")
	assert.Contains(t, view, "9 (not in legend)")
	assert.Contains(t, view, `F2 before: "a day in london 1"`)
}

func TestEmptyChanges(t *testing.T) {
	m := initialModel(nil, excel.NewLegend(), 5)
	m = press(t, m, "down", "up", "n", "right")
	assert.Equal(t, 0, m.currentIndex())
	assert.Contains(t, m.View(), "0 cells")
}
