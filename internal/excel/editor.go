package excel

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/tiendc/go-deepcopy"
	"github.com/xuri/excelize/v2"
)

var (
	ErrFileNotFound  = errors.New("file not found")
	ErrSheetNotFound = errors.New("sheet not found")
)

type Editor struct {
	file     *excelize.File
	filepath string
}

// OpenFile opens an existing Excel file
func OpenFile(filepath string) (*Editor, error) {
	if _, err := os.Stat(filepath); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFileNotFound, filepath, err)
	}
	file, err := excelize.OpenFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open %s as a workbook: %v", ErrFileNotFound, filepath, err)
	}
	return &Editor{
		file:     file,
		filepath: filepath,
	}, nil
}

// Path returns the path the workbook was opened from or last saved to
func (e *Editor) Path() string {
	return e.filepath
}

// GetSheetNames returns all sheet names in the workbook
func (e *Editor) GetSheetNames() []string {
	return e.file.GetSheetList()
}

// RequireSheet fails with ErrSheetNotFound when the workbook has no such sheet
func (e *Editor) RequireSheet(sheet string) error {
	names := e.GetSheetNames()
	if !slices.Contains(names, sheet) {
		return fmt.Errorf("%w: '%s' (available sheets: %s)", ErrSheetNotFound, sheet, strings.Join(names, ", "))
	}
	return nil
}

// GetCellValue returns the stored value of a cell, without applying its number format
func (e *Editor) GetCellValue(sheet, cell string) (string, error) {
	return e.file.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
}

// SetCellValue sets a value in a specific cell
func (e *Editor) SetCellValue(sheet, cell string, value interface{}) error {
	return e.file.SetCellValue(sheet, cell, value)
}

// MaxColumn returns the 1-based index of the right-most column holding data
func (e *Editor) MaxColumn(sheet string) (int, error) {
	rows, err := e.file.GetRows(sheet)
	if err != nil {
		return 0, fmt.Errorf("failed to get rows: %w", err)
	}
	maxCol := 0
	for _, row := range rows {
		if len(row) > maxCol {
			maxCol = len(row)
		}
	}
	return maxCol, nil
}

// CellFill returns an independent copy of the fill applied to a cell
func (e *Editor) CellFill(sheet, cell string) (excelize.Fill, error) {
	style, err := e.cellStyle(sheet, cell)
	if err != nil {
		return excelize.Fill{}, err
	}
	return copyFill(style.Fill)
}

// FormatCell gives a cell wrapped text centered on both axes. When fill is not nil a copy of
// it replaces the cell's fill; otherwise the cell keeps the fill it has.
// The cell always gets a style record of its own.
func (e *Editor) FormatCell(sheet, cell string, fill *excelize.Fill) error {
	style, err := e.cellStyle(sheet, cell)
	if err != nil {
		return err
	}

	style.Alignment = &excelize.Alignment{
		Horizontal: "center",
		Vertical:   "center",
		WrapText:   true,
	}
	if fill != nil {
		if style.Fill, err = copyFill(*fill); err != nil {
			return err
		}
	}

	styleID, err := e.file.NewStyle(style)
	if err != nil {
		return fmt.Errorf("failed to create style for cell %s: %w", cell, err)
	}
	if err := e.file.SetCellStyle(sheet, cell, cell, styleID); err != nil {
		return fmt.Errorf("failed to apply style to cell %s: %w", cell, err)
	}
	return nil
}

func (e *Editor) cellStyle(sheet, cell string) (*excelize.Style, error) {
	styleID, err := e.file.GetCellStyle(sheet, cell)
	if err != nil {
		return nil, fmt.Errorf("failed to get style of cell %s: %w", cell, err)
	}
	style, err := e.file.GetStyle(styleID)
	if err != nil {
		return nil, fmt.Errorf("failed to read style %d of cell %s: %w", styleID, cell, err)
	}
	return style, nil
}

func copyFill(src excelize.Fill) (excelize.Fill, error) {
	var dst excelize.Fill
	if err := deepcopy.Copy(&dst, src); err != nil {
		return excelize.Fill{}, fmt.Errorf("failed to copy fill: %w", err)
	}
	return dst, nil
}

// SaveAs saves the Excel file with a new name
func (e *Editor) SaveAs(filepath string) error {
	e.filepath = filepath
	return e.file.SaveAs(filepath)
}

// Close closes the Excel file
func (e *Editor) Close() error {
	return e.file.Close()
}
