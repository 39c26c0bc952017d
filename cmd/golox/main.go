package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"

	"golox/internal"
)

const (
	exitUsage = 64
	exitIO    = 74
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := flag.NewFlagSet("golox", flag.ContinueOnError)
	configPath := flags.String("config", "", "path to a golox.yaml configuration file")
	debug := flags.Bool("debug", false, "log every pipeline phase")
	dumpAST := flags.Bool("ast", false, "print the syntax tree instead of running")
	noColor := flags.Bool("no-color", false, "disable colored diagnostics")
	flags.Usage = func() {
		fmt.Fprintln(flags.Output(), "Usage: golox [flags] [script]")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return exitUsage
	}
	if flags.NArg() > 1 {
		flags.Usage()
		return exitUsage
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}
	if *debug {
		cfg.LogLevel = "debug"
	}
	if *dumpAST {
		cfg.DumpAST = true
	}
	if *noColor {
		cfg.Color = false
	}

	logger := newLogger(cfg)
	printer := newStdPrinter(cfg.Color)
	opts := []internal.Option{internal.WithLogger(logger)}

	if flags.NArg() == 1 {
		return runFile(flags.Arg(0), cfg, printer, opts, logger)
	}
	return runPrompt(cfg, printer, opts, logger)
}

func newLogger(cfg config) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.WarnLevel
	}
	logger.SetLevel(level)
	return logger
}

func runFile(path string, cfg config, p stdPrinter, opts []internal.Option, logger *logrus.Logger) int {
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	b, err := ioutil.ReadFile(absPath)
	if err != nil {
		logger.WithError(err).WithField("path", absPath).Error("cannot read script")
		return exitIO
	}
	logger.WithField("path", absPath).Debug("running file")

	if cfg.DumpAST {
		return internal.PrintTree(string(b), p, opts...).ExitCode()
	}
	return internal.RunSourceWithPrinter(string(b), p, opts...).ExitCode()
}

// runPrompt reads one line at a time into a single session, so
// declarations accumulate until the prompt is closed.
func runPrompt(cfg config, p stdPrinter, opts []internal.Option, logger *logrus.Logger) int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(cfg.HistoryFile); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		f, err := os.Create(cfg.HistoryFile)
		if err != nil {
			logger.WithError(err).Debug("cannot write history")
			return
		}
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}()

	session := internal.NewSession(p, opts...)
	for {
		line, err := ln.Prompt(cfg.Prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if err != nil {
			logger.WithError(err).Error("cannot read input")
			return exitIO
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)

		if cfg.DumpAST {
			internal.PrintTree(line, p, opts...)
			continue
		}
		session.Run(line)
	}
}
