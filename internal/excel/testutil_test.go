package excel

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const testSheet = "2B Liben 2.0"

func solidFill(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1}
}

func fillColor(t *testing.T, fill excelize.Fill) string {
	t.Helper()
	require.NotEmpty(t, fill.Color)
	return strings.ToUpper(fill.Color[0])
}

// createRecordsWorkbook builds a small reading records sheet.
// Layout:
//
//	A2: "Tom 3" (identifying column, never rewritten)
//	F2: "a day in london 8"     G2: "book 9" (grey fill, level not in legend)
//	F3: "Charlotte's Web"       G3: "Level 3 readers 12+"
//	C57: "8" (orange)  C58: " 12+ " (green)  C60: "8" (blue, overrides C57)
//	F57: "not table 8"
func createRecordsWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", testSheet))

	style := func(fill excelize.Fill) int {
		id, err := f.NewStyle(&excelize.Style{Fill: fill})
		require.NoError(t, err)
		return id
	}

	values := map[string]string{
		"A2":  "Tom 3",
		"F2":  "a day in london 8",
		"G2":  "book 9",
		"F3":  "Charlotte's Web",
		"G3":  "Level 3 readers 12+",
		"C57": "8",
		"C58": " 12+ ",
		"C60": "8",
		"F57": "not table 8",
	}
	for cell, v := range values {
		require.NoError(t, f.SetCellValue(testSheet, cell, v))
	}

	require.NoError(t, f.SetCellStyle(testSheet, "G2", "G2", style(solidFill("DDDDDD"))))
	require.NoError(t, f.SetCellStyle(testSheet, "C57", "C57", style(solidFill("FFC000"))))
	require.NoError(t, f.SetCellStyle(testSheet, "C58", "C58", style(solidFill("92D050"))))
	require.NoError(t, f.SetCellStyle(testSheet, "C60", "C60", style(solidFill("00B0F0"))))

	path := filepath.Join(t.TempDir(), "records.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func testOptions(input string) Options {
	opts := DefaultOptions()
	opts.InputFile = input
	opts.OutputFile = filepath.Join(filepath.Dir(input), "records_updated.xlsx")
	return opts
}
