package main

import (
	"errors"
	"fmt"
	"os"
	"readingFmt/internal/config"
	"readingFmt/internal/excel"
	"readingFmt/internal/level"
	"readingFmt/internal/logger"
	"readingFmt/internal/preview"
	"strings"
	"time"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		return
	}

	command := os.Args[1]

	if command == "parse" {
		if len(os.Args) < 3 {
			fmt.Println("Error: parse command requires the cell text")
			fmt.Println("Usage: readingfmt parse <text>")
			return
		}
		runParse(strings.Join(os.Args[2:], " "))
		return
	}

	cfg, err := config.LoadConfig("configs/config.toml")
	if err != nil {
		logger.Error("Failed to load config", "error", err)
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	switch command {
	case "update":
		runUpdate(cfg)
	case "legend":
		runLegend(cfg)
	case "preview":
		runPreview(cfg)
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
	}
}

func printUsage() {
	fmt.Println("ReadingFmt - Reading Records Formatter")
	fmt.Println("\nUsage:")
	fmt.Println("  readingfmt update              - Rewrite and color the records table, save to the output file")
	fmt.Println("  readingfmt legend              - List the levels found in the color legend")
	fmt.Println("  readingfmt preview             - Browse the planned changes before saving")
	fmt.Println("  readingfmt parse <text>        - Show how a single cell value is normalized")
}

// fail reports a failed run and exits
func fail(op string, cfg *config.Config, err error) {
	logger.Error(op+" operation failed", "error", err)
	switch {
	case errors.Is(err, excel.ErrFileNotFound):
		fmt.Printf("Error: File not found: %s. Please ensure the Excel file is in the same folder.\n", cfg.Workbook.InputFile)
	case errors.Is(err, excel.ErrSheetNotFound):
		fmt.Printf("Error: Sheet '%s' not found.\n", cfg.Workbook.Sheet)
		fmt.Printf("Details: %v\n", err)
	default:
		fmt.Printf("Error: %v\n", err)
	}
	os.Exit(1)
}

func runUpdate(cfg *config.Config) {
	logger.Info("Starting update operation", "input_file", cfg.Workbook.InputFile)
	fmt.Printf("Loading %s...\n", cfg.Workbook.InputFile)

	result, err := excel.UpdateFile(excel.OptionsFromConfig(cfg))
	if err != nil {
		fail("Update", cfg, err)
	}

	fmt.Printf("Found color codes for levels: %v\n", result.Levels)
	fmt.Printf("✓ Rewrote %d cells (%d colored, %d without level, %d with a level missing from the legend)\n",
		len(result.Changes), result.Colored, result.WithoutLevel, result.UnknownLevel)

	reportPath, err := excel.WriteReport(cfg.Workbook.ReportDir, result, time.Now())
	if err != nil {
		logger.Warn("Failed to write report", "error", err)
	} else {
		fmt.Printf("✓ Report saved to: %s\n", reportPath)
	}
	fmt.Printf("✓ Done! Saved updated file as: %s\n", result.OutputFile)
}

func runLegend(cfg *config.Config) {
	editor, legend, err := openRecords(cfg)
	if err != nil {
		fail("Legend", cfg, err)
	}
	defer editor.Close()

	fmt.Printf("Legend %s%d:%s%d in sheet '%s' of %s\n",
		cfg.Legend.Column, cfg.Legend.FirstRow, cfg.Legend.Column, cfg.Legend.LastRow, cfg.Workbook.Sheet, editor.Path())
	for _, lvl := range legend.Levels() {
		fill, _ := legend.Lookup(lvl)
		color := preview.FillHex(fill)
		if color == "" {
			color = "(no color)"
		}
		fmt.Printf("  %-4s %s\n", lvl, color)
	}
	fmt.Printf("Found %d levels\n", legend.Len())
}

func runPreview(cfg *config.Config) {
	editor, legend, err := openRecords(cfg)
	if err != nil {
		fail("Preview", cfg, err)
	}
	defer editor.Close()

	sheet := cfg.Workbook.Sheet
	changes, err := excel.PlanTable(editor, sheet, excel.OptionsFromConfig(cfg).Table, legend)
	if err != nil {
		fail("Preview", cfg, err)
	}

	save, err := preview.Run(changes, legend, cfg.UI.RowsPerPage)
	if err != nil {
		fail("Preview", cfg, err)
	}
	if !save {
		fmt.Println("No changes written.")
		return
	}

	if err := excel.ApplyChanges(editor, sheet, changes, legend); err != nil {
		fail("Preview", cfg, err)
	}
	if err := editor.SaveAs(cfg.Workbook.OutputFile); err != nil {
		fail("Preview", cfg, err)
	}
	logger.Info("Saved previewed changes", "output_file", editor.Path(), "cells", len(changes))
	fmt.Printf("✓ Done! Saved updated file as: %s\n", cfg.Workbook.OutputFile)
}

func openRecords(cfg *config.Config) (*excel.Editor, *excel.Legend, error) {
	editor, err := excel.OpenFile(cfg.Workbook.InputFile)
	if err != nil {
		return nil, nil, err
	}
	if err := editor.RequireSheet(cfg.Workbook.Sheet); err != nil {
		editor.Close()
		return nil, nil, err
	}
	legend, err := excel.BuildLegend(editor, cfg.Workbook.Sheet, excel.OptionsFromConfig(cfg).Legend)
	if err != nil {
		editor.Close()
		return nil, nil, err
	}
	return editor, legend, nil
}

func runParse(text string) {
	formatted, lvl := level.Normalize(text)
	if lvl == "" {
		fmt.Printf("No level found, text kept as: %q\n", formatted)
		return
	}
	fmt.Printf("Level: %s\n", lvl)
	fmt.Println(formatted)
}
