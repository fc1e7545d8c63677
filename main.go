package main

import (
	"errors"
	"fmt"
	"os"
	"readingFmt/internal/excel"
)

func main() {
	opts := excel.DefaultOptions()

	fmt.Printf("Loading %s...\n", opts.InputFile)
	result, err := excel.UpdateFile(opts)
	switch {
	case errors.Is(err, excel.ErrFileNotFound):
		fmt.Println("Error: File not found. Please ensure the Excel file is in the same folder.")
		os.Exit(1)
	case errors.Is(err, excel.ErrSheetNotFound):
		fmt.Printf("Error: Sheet '%s' not found.\n", opts.Sheet)
		os.Exit(1)
	case err != nil:
		fmt.Printf("Error updating reading records: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Found color codes for levels: %v\n", result.Levels)
	fmt.Printf("✓ Done! Saved updated file as: %s\n", result.OutputFile)
}
