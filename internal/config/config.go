package config

import (
	"fmt"
	"os"
	"path/filepath"
	"readingFmt/internal/logger"

	"github.com/BurntSushi/toml"
)

// Fixed layout of the reading records workbook.
const (
	DefaultInputFile   = "Liben Kbely Reading records (2).xlsx"
	DefaultOutputFile  = "Liben_Kbely_Reading_records_Updated.xlsx"
	DefaultSheet       = "2B Liben 2.0"
	DefaultLegendCol   = "C"
	DefaultLegendFirst = 57
	DefaultLegendLast  = 77
	DefaultTableFirst  = 2
	DefaultTableLast   = 56
	DefaultTableCol    = "F"
	DefaultReportDir   = "logs/reports"
)

type Config struct {
	Workbook WorkbookConfig `toml:"workbook"`
	Legend   LegendConfig   `toml:"legend"`
	Table    TableConfig    `toml:"table"`
	UI       UIConfig       `toml:"ui"`
}

type WorkbookConfig struct {
	InputFile  string `toml:"input_file"`
	OutputFile string `toml:"output_file"`
	Sheet      string `toml:"sheet"`
	ReportDir  string `toml:"report_directory"`
}

type LegendConfig struct {
	Column   string `toml:"column"`
	FirstRow int    `toml:"first_row"`
	LastRow  int    `toml:"last_row"`
}

type TableConfig struct {
	FirstRow    int    `toml:"first_row"`
	LastRow     int    `toml:"last_row"`
	FirstColumn string `toml:"first_column"`
}

type UIConfig struct {
	RowsPerPage int `toml:"rows_per_page"`
}

// Default returns the configuration matching the fixed workbook layout
func Default() *Config {
	return &Config{
		Workbook: WorkbookConfig{
			InputFile:  DefaultInputFile,
			OutputFile: DefaultOutputFile,
			Sheet:      DefaultSheet,
			ReportDir:  DefaultReportDir,
		},
		Legend: LegendConfig{
			Column:   DefaultLegendCol,
			FirstRow: DefaultLegendFirst,
			LastRow:  DefaultLegendLast,
		},
		Table: TableConfig{
			FirstRow:    DefaultTableFirst,
			LastRow:     DefaultTableLast,
			FirstColumn: DefaultTableCol,
		},
		UI: UIConfig{
			RowsPerPage: 15,
		},
	}
}

// LoadConfig loads configuration from the specified config file path.
// A missing file is created with the defaults.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configDir := filepath.Dir(configPath)
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}

		defaultConfig := Default()
		if err := SaveConfig(configPath, defaultConfig); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}

		logger.Info("Created default config file", "path", configPath)
		return defaultConfig, nil
	}

	var config Config
	if _, err := toml.DecodeFile(configPath, &config); err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
	}

	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	logger.Info("Loaded configuration", "path", configPath)
	return &config, nil
}

func (c *Config) applyDefaults() {
	d := Default()
	if c.Workbook.InputFile == "" {
		c.Workbook.InputFile = d.Workbook.InputFile
	}
	if c.Workbook.OutputFile == "" {
		c.Workbook.OutputFile = d.Workbook.OutputFile
	}
	if c.Workbook.Sheet == "" {
		c.Workbook.Sheet = d.Workbook.Sheet
	}
	if c.Workbook.ReportDir == "" {
		c.Workbook.ReportDir = d.Workbook.ReportDir
	}
	if c.Legend.Column == "" {
		c.Legend.Column = d.Legend.Column
	}
	if c.Legend.FirstRow == 0 {
		c.Legend.FirstRow = d.Legend.FirstRow
	}
	if c.Legend.LastRow == 0 {
		c.Legend.LastRow = d.Legend.LastRow
	}
	if c.Table.FirstRow == 0 {
		c.Table.FirstRow = d.Table.FirstRow
	}
	if c.Table.LastRow == 0 {
		c.Table.LastRow = d.Table.LastRow
	}
	if c.Table.FirstColumn == "" {
		c.Table.FirstColumn = d.Table.FirstColumn
	}
	if c.UI.RowsPerPage == 0 {
		c.UI.RowsPerPage = d.UI.RowsPerPage
	}
}

// Validate checks row ranges and that input and output differ
func (c *Config) Validate() error {
	if c.Legend.FirstRow < 1 || c.Legend.LastRow < c.Legend.FirstRow {
		return fmt.Errorf("legend rows %d-%d are not a valid range", c.Legend.FirstRow, c.Legend.LastRow)
	}
	if c.Table.FirstRow < 1 || c.Table.LastRow < c.Table.FirstRow {
		return fmt.Errorf("table rows %d-%d are not a valid range", c.Table.FirstRow, c.Table.LastRow)
	}
	if filepath.Clean(c.Workbook.InputFile) == filepath.Clean(c.Workbook.OutputFile) {
		return fmt.Errorf("output file must differ from input file %s", c.Workbook.InputFile)
	}
	return nil
}

// SaveConfig saves configuration to the specified config file path
func SaveConfig(configPath string, config *Config) error {
	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	logger.Info("Saved configuration", "path", configPath)
	return nil
}
