package excel

import (
	"fmt"
	"path/filepath"
	"readingFmt/internal/config"
	"readingFmt/internal/level"
	"readingFmt/internal/logger"

	"github.com/xuri/excelize/v2"
)

// Table is the data region: an inclusive row range from FirstColumn to the last used column.
type Table struct {
	FirstRow    int
	LastRow     int
	FirstColumn string
}

// Change describes the rewrite of one non-empty data cell
type Change struct {
	Cell    string
	Before  string
	After   string
	Level   string
	Colored bool
}

type Options struct {
	InputFile  string
	OutputFile string
	Sheet      string
	Legend     LegendRange
	Table      Table
}

// Result summarises one run over the records sheet
type Result struct {
	OutputFile   string
	Levels       []string
	Changes      []Change
	Colored      int
	WithoutLevel int
	UnknownLevel int
}

// OptionsFromConfig maps the loaded configuration onto run options
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		InputFile:  cfg.Workbook.InputFile,
		OutputFile: cfg.Workbook.OutputFile,
		Sheet:      cfg.Workbook.Sheet,
		Legend: LegendRange{
			Column:   cfg.Legend.Column,
			FirstRow: cfg.Legend.FirstRow,
			LastRow:  cfg.Legend.LastRow,
		},
		Table: Table{
			FirstRow:    cfg.Table.FirstRow,
			LastRow:     cfg.Table.LastRow,
			FirstColumn: cfg.Table.FirstColumn,
		},
	}
}

// DefaultOptions returns the options for the fixed workbook layout
func DefaultOptions() Options {
	return OptionsFromConfig(config.Default())
}

// PlanTable normalizes every non-empty cell of the table without touching the workbook
func PlanTable(e *Editor, sheet string, t Table, legend *Legend) ([]Change, error) {
	firstCol, err := excelize.ColumnNameToNumber(t.FirstColumn)
	if err != nil {
		return nil, fmt.Errorf("invalid table column %q: %w", t.FirstColumn, err)
	}
	lastCol, err := e.MaxColumn(sheet)
	if err != nil {
		return nil, err
	}

	var changes []Change
	for row := t.FirstRow; row <= t.LastRow; row++ {
		for col := firstCol; col <= lastCol; col++ {
			cell, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				return nil, err
			}
			value, err := e.GetCellValue(sheet, cell)
			if err != nil {
				return nil, fmt.Errorf("failed to read cell %s: %w", cell, err)
			}
			if value == "" {
				continue
			}

			text, lvl := level.Normalize(value)
			changes = append(changes, Change{
				Cell:    cell,
				Before:  value,
				After:   text,
				Level:   lvl,
				Colored: lvl != "" && legend.Has(lvl),
			})
		}
	}
	return changes, nil
}

// ApplyChanges writes planned changes back into the sheet
func ApplyChanges(e *Editor, sheet string, changes []Change, legend *Legend) error {
	for _, c := range changes {
		if err := e.SetCellValue(sheet, c.Cell, c.After); err != nil {
			return fmt.Errorf("failed to set value in cell %s: %w", c.Cell, err)
		}

		var fill *excelize.Fill
		if c.Level != "" {
			if f, ok := legend.Lookup(c.Level); ok {
				fill = &f
			} else {
				logger.Warn("Level has no legend color", "cell", c.Cell, "level", c.Level)
			}
		}
		if err := e.FormatCell(sheet, c.Cell, fill); err != nil {
			return err
		}
	}
	return nil
}

// UpdateFile runs the whole pass: open, read legend, rewrite table, save to OutputFile.
// Nothing is written when the input or the sheet is missing.
func UpdateFile(opts Options) (*Result, error) {
	if filepath.Clean(opts.InputFile) == filepath.Clean(opts.OutputFile) {
		return nil, fmt.Errorf("output file must differ from input file %s", opts.InputFile)
	}

	logger.Info("Loading workbook", "file", opts.InputFile)
	editor, err := OpenFile(opts.InputFile)
	if err != nil {
		return nil, err
	}
	defer editor.Close()

	if err := editor.RequireSheet(opts.Sheet); err != nil {
		return nil, err
	}

	legend, err := BuildLegend(editor, opts.Sheet, opts.Legend)
	if err != nil {
		return nil, err
	}

	changes, err := PlanTable(editor, opts.Sheet, opts.Table, legend)
	if err != nil {
		return nil, err
	}
	if err := ApplyChanges(editor, opts.Sheet, changes, legend); err != nil {
		return nil, err
	}

	if err := editor.SaveAs(opts.OutputFile); err != nil {
		return nil, fmt.Errorf("failed to save %s: %w", opts.OutputFile, err)
	}

	result := Summarize(legend, changes)
	result.OutputFile = opts.OutputFile
	logger.Info("Updated reading records",
		"output_file", opts.OutputFile,
		"cells", len(changes),
		"colored", result.Colored,
		"without_level", result.WithoutLevel,
		"unknown_level", result.UnknownLevel)
	return result, nil
}

// Summarize counts what a set of changes does
func Summarize(legend *Legend, changes []Change) *Result {
	r := &Result{
		Levels:  legend.Levels(),
		Changes: changes,
	}
	for _, c := range changes {
		switch {
		case c.Colored:
			r.Colored++
		case c.Level == "":
			r.WithoutLevel++
		default:
			r.UnknownLevel++
		}
	}
	return r
}
