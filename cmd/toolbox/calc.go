package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/tsawler/toolbox/calc"
)

// runCalc evaluates each argument as one expression and prints one result
// per line. Failing expressions are reported and evaluation continues.
func runCalc(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("calc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	mode := fs.String("mode", "", "angle mode for trig functions: deg or rad (default rad)")
	configPath := fs.String("config", "", "YAML configuration file")
	verbose := fs.Bool("v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "calc: no expression given")
		return exitUsage
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "calc: %v\n", err)
		return exitUsage
	}
	logger, err := newLogger(stderr, cfg.LogLevel, *verbose)
	if err != nil {
		fmt.Fprintf(stderr, "calc: %v\n", err)
		return exitUsage
	}

	modeName := cfg.Calc.AngleMode
	if *mode != "" {
		modeName = *mode
	}
	angle, err := calc.ParseAngleMode(modeName)
	if err != nil {
		fmt.Fprintf(stderr, "calc: %v\n", err)
		return exitUsage
	}

	status := exitOK
	for _, expr := range fs.Args() {
		v, err := calc.Evaluate(expr, angle)
		if err != nil {
			logger.WithFields(logrus.Fields{
				"expression": expr,
				"mode":       angle,
			}).Debug("evaluation failed")
			fmt.Fprintf(stderr, "error: %v\n", err)
			status = exitFailure
			continue
		}
		fmt.Fprintln(stdout, strconv.FormatFloat(v, 'g', -1, 64))
	}
	return status
}
