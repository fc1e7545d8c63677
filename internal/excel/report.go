package excel

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// WriteReport writes a plain-text summary of a run into dir and returns the file path
func WriteReport(dir string, r *Result, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("reading_records_%s.txt", now.Format("2006-01-02_15-04-05")))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "Reading Records Update - %s\n", now.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(file, "===========================================\n\n")
	if r.OutputFile != "" {
		fmt.Fprintf(file, "Output: %s\n\n", r.OutputFile)
	}

	fmt.Fprintf(file, "LEGEND LEVELS (%d): %s\n\n", len(r.Levels), strings.Join(r.Levels, ", "))

	fmt.Fprintf(file, "CELLS (%d):\n", len(r.Changes))
	for _, c := range r.Changes {
		mark := " "
		if c.Colored {
			mark = "*"
		}
		fmt.Fprintf(file, "%s %-6s %q → %q\n", mark, c.Cell, c.Before, c.After)
	}

	fmt.Fprintf(file, "\nColored: %d\n", r.Colored)
	fmt.Fprintf(file, "No level found: %d\n", r.WithoutLevel)
	fmt.Fprintf(file, "Level missing from legend: %d\n", r.UnknownLevel)
	for _, c := range r.Changes {
		if c.Level != "" && !c.Colored {
			fmt.Fprintf(file, "  %s: level %s\n", c.Cell, c.Level)
		}
	}

	fmt.Fprintf(file, "\n===========================================\n")
	return path, nil
}
