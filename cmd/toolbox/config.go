package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/toolbox/tables"
)

// Config is the optional YAML configuration file. Flags override it;
// absent keys keep their defaults.
type Config struct {
	Tables   TablesConfig `yaml:"tables"`
	Calc     CalcConfig   `yaml:"calc"`
	Output   OutputConfig `yaml:"output"`
	LogLevel string       `yaml:"log_level"`
}

// TablesConfig mirrors tables.Config.
type TablesConfig struct {
	MinRows            int     `yaml:"min_rows"`
	MinCols            int     `yaml:"min_cols"`
	MinFragmentsPerRow int     `yaml:"min_fragments_per_row"`
	ColumnTolerance    float64 `yaml:"column_tolerance"`
}

// CalcConfig configures the calc command.
type CalcConfig struct {
	AngleMode string `yaml:"angle_mode"`
}

// OutputConfig configures how tables are printed.
type OutputConfig struct {
	Format string `yaml:"format"`
}

func defaultConfig() Config {
	tc := tables.DefaultConfig()
	return Config{
		Tables: TablesConfig{
			MinRows:            tc.MinRows,
			MinCols:            tc.MinCols,
			MinFragmentsPerRow: tc.MinFragmentsPerRow,
			ColumnTolerance:    tc.ColumnTolerance,
		},
		Calc:   CalcConfig{AngleMode: "rad"},
		Output: OutputConfig{Format: "text"},
	}
}

// loadConfig reads path over the defaults. An empty path returns the
// defaults unchanged. Unknown keys are rejected.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// tablesConfig converts the file section into detector configuration.
func (c Config) tablesConfig() tables.Config {
	cfg := tables.DefaultConfig()
	cfg.MinRows = c.Tables.MinRows
	cfg.MinCols = c.Tables.MinCols
	cfg.MinFragmentsPerRow = c.Tables.MinFragmentsPerRow
	cfg.ColumnTolerance = c.Tables.ColumnTolerance
	return cfg
}
