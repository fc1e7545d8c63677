package excel

import (
	"fmt"
	"readingFmt/internal/logger"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LegendRange locates the level legend: one column scanned over an inclusive row range.
type LegendRange struct {
	Column   string
	FirstRow int
	LastRow  int
}

// Legend maps a level string, verbatim, to the fill of its legend cell.
type Legend struct {
	fills map[string]excelize.Fill
	order []string
}

func NewLegend() *Legend {
	return &Legend{fills: make(map[string]excelize.Fill)}
}

// Set stores the fill for a level; a later call for the same level replaces it.
func (l *Legend) Set(level string, fill excelize.Fill) {
	if _, ok := l.fills[level]; !ok {
		l.order = append(l.order, level)
	}
	l.fills[level] = fill
}

// Lookup returns a copy of the fill registered for level
func (l *Legend) Lookup(level string) (excelize.Fill, bool) {
	fill, ok := l.fills[level]
	if !ok {
		return excelize.Fill{}, false
	}
	cp, err := copyFill(fill)
	if err != nil {
		return excelize.Fill{}, false
	}
	return cp, true
}

func (l *Legend) Has(level string) bool {
	_, ok := l.fills[level]
	return ok
}

// Levels lists the levels in the order they first appeared
func (l *Legend) Levels() []string {
	return append([]string(nil), l.order...)
}

func (l *Legend) Len() int {
	return len(l.fills)
}

// BuildLegend reads the level legend from the given range of a sheet
func BuildLegend(e *Editor, sheet string, r LegendRange) (*Legend, error) {
	col, err := excelize.ColumnNameToNumber(r.Column)
	if err != nil {
		return nil, fmt.Errorf("invalid legend column %q: %w", r.Column, err)
	}

	legend := NewLegend()
	for row := r.FirstRow; row <= r.LastRow; row++ {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return nil, err
		}

		value, err := e.GetCellValue(sheet, cell)
		if err != nil {
			return nil, fmt.Errorf("failed to read legend cell %s: %w", cell, err)
		}
		key := strings.TrimSpace(value)
		if key == "" {
			continue
		}

		fill, err := e.CellFill(sheet, cell)
		if err != nil {
			return nil, err
		}
		if legend.Has(key) {
			logger.Debug("Legend level redefined", "level", key, "cell", cell)
		}
		legend.Set(key, fill)
	}

	logger.Info("Built level legend", "sheet", sheet, "levels", legend.Levels())
	return legend, nil
}
