package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/tsawler/toolbox"
	"github.com/tsawler/toolbox/export"
)

// tablesFlags holds the raw flag values; set records which were given.
type tablesFlags struct {
	format       string
	pages        string
	configPath   string
	minRows      int
	minCols      int
	minFragments int
	tolerance    float64
	lang         string
	verbose      bool
	set          map[string]bool
}

func parseTablesFlags(args []string, stderr io.Writer) (*tablesFlags, string, error) {
	f := &tablesFlags{set: make(map[string]bool)}
	fs := flag.NewFlagSet("tables", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.format, "format", "", "output format: csv, md, html, text, json")
	fs.StringVar(&f.pages, "pages", "", `page selection, e.g. "1,3-4"`)
	fs.StringVar(&f.configPath, "config", "", "YAML configuration file")
	fs.IntVar(&f.minRows, "min-rows", 0, "rows a table needs")
	fs.IntVar(&f.minCols, "min-cols", 0, "columns a table needs")
	fs.IntVar(&f.minFragments, "min-fragments", 0, "fragments a row needs")
	fs.Float64Var(&f.tolerance, "tolerance", 0, "column merge tolerance in points")
	fs.StringVar(&f.lang, "lang", "", "OCR languages for images")
	fs.BoolVar(&f.verbose, "v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return nil, "", err
	}
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })

	if fs.NArg() != 1 {
		return nil, "", fmt.Errorf("expected exactly one input file, got %d", fs.NArg())
	}
	return f, fs.Arg(0), nil
}

// apply overrides the file configuration with explicitly given flags.
func (f *tablesFlags) apply(cfg *Config) {
	if f.set["format"] {
		cfg.Output.Format = f.format
	}
	if f.set["min-rows"] {
		cfg.Tables.MinRows = f.minRows
	}
	if f.set["min-cols"] {
		cfg.Tables.MinCols = f.minCols
	}
	if f.set["min-fragments"] {
		cfg.Tables.MinFragmentsPerRow = f.minFragments
	}
	if f.set["tolerance"] {
		cfg.Tables.ColumnTolerance = f.tolerance
	}
}

func runTables(args []string, stdout, stderr io.Writer) int {
	flags, input, err := parseTablesFlags(args, stderr)
	if err != nil {
		if err != flag.ErrHelp {
			fmt.Fprintf(stderr, "tables: %v\n", err)
		}
		return exitUsage
	}

	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "tables: %v\n", err)
		return exitUsage
	}
	flags.apply(&cfg)

	logger, err := newLogger(stderr, cfg.LogLevel, flags.verbose)
	if err != nil {
		fmt.Fprintf(stderr, "tables: %v\n", err)
		return exitUsage
	}

	outFormat, err := export.ParseFormat(cfg.Output.Format)
	if err != nil {
		fmt.Fprintf(stderr, "tables: %v\n", err)
		return exitUsage
	}
	pages, err := parsePages(flags.pages)
	if err != nil {
		fmt.Fprintf(stderr, "tables: %v\n", err)
		return exitUsage
	}
	tc := cfg.tablesConfig()
	if err := tc.Validate(); err != nil {
		fmt.Fprintf(stderr, "tables: %v\n", err)
		return exitUsage
	}

	ext := toolbox.Open(input).
		Pages(pages...).
		MinRows(tc.MinRows).
		MinCols(tc.MinCols).
		MinFragmentsPerRow(tc.MinFragmentsPerRow).
		ColumnTolerance(tc.ColumnTolerance).
		Language(flags.lang)

	log := logger.WithFields(logrus.Fields{
		"file":   input,
		"format": outFormat,
	})
	log.WithField("config", fmt.Sprintf("%+v", tc)).Debug("extracting tables")

	found, warnings, err := ext.Tables()
	if err != nil {
		log.WithError(err).Error("extraction failed")
		return exitFailure
	}
	for _, w := range warnings {
		log.WithField("page", w.Page).Warn(w.Message)
	}
	log.WithField("tables", len(found)).Info("extraction finished")

	if err := export.Write(stdout, outFormat, found); err != nil {
		log.WithError(err).Error("write failed")
		return exitFailure
	}
	return exitOK
}

// parsePages parses a selection such as "1,3-4" into page numbers.
// An empty selection means all pages.
func parsePages(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var pages []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		lo, hi, isRange := strings.Cut(part, "-")
		start, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil {
			return nil, fmt.Errorf("invalid page %q", part)
		}
		end := start
		if isRange {
			end, err = strconv.Atoi(strings.TrimSpace(hi))
			if err != nil {
				return nil, fmt.Errorf("invalid page range %q", part)
			}
		}
		if start < 1 || end < start {
			return nil, fmt.Errorf("invalid page range %q", part)
		}
		for p := start; p <= end; p++ {
			pages = append(pages, p)
		}
	}
	return pages, nil
}
