package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	autop "github.com/alnah/go-autop"
	"github.com/alnah/go-autop/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrReadInput            = errors.New("failed to read input")
	ErrWriteOutput          = errors.New("failed to write output")
	ErrOutputIsInput        = errors.New("output would overwrite input")
	ErrInvalidWorkerCount   = errors.New("invalid worker count")
	errConflictingVerbosity = errors.New("--quiet and --verbose are mutually exclusive")
)

// renderFunc is Formatter.Content or Formatter.Excerpt.
type renderFunc func(text string) string

// run orchestrates one invocation: config, formatter, then stdin or batch.
func run(ctx context.Context, positional []string, flags *cliFlags, env *Environment, logger *slog.Logger) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg := config.DefaultConfig()
	if flags.config != "" {
		var err error
		cfg, err = config.LoadConfig(flags.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		logger.Debug("config loaded", "source", flags.config)
	}

	// Flag names are reported as --shortcode[i], not as config entries
	if err := config.ValidateShortcodes("--shortcode", flags.shortcodes); err != nil {
		return err
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	formatter, err := autop.NewFormatter(
		autop.WithShortcodes(cfg.Shortcodes...),
		autop.WithLineBreaks(cfg.LineBreaksEnabled()),
	)
	if err != nil {
		return err
	}
	logger.Debug("formatter ready", "shortcodes", formatter.Shortcodes(), "lineBreaks", formatter.LineBreaks())

	render := renderFunc(formatter.Content)
	if flags.excerpt {
		render = formatter.Excerpt
	}

	if len(positional) == 0 {
		return formatStream(env.Stdin, env.Stdout, render)
	}

	files, err := planOutputs(positional, cfg.Output.DefaultDir, cfg.OutputExtension())
	if err != nil {
		return err
	}

	workers := resolveWorkers(flags.workers)
	logger.Debug("formatting files", "files", len(files), "workers", workers)

	results := formatBatch(ctx, render, files, workers, logger)
	return printResults(results, flags.quiet, env)
}

// mergeFlags applies CLI flags over cfg. Shortcodes accumulate; the other
// flags replace config values when set.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	cfg.Shortcodes = append(cfg.Shortcodes, flags.shortcodes...)
	if flags.noBreaks {
		off := false
		cfg.LineBreaks = &off
	}
	if flags.outputDir != "" {
		cfg.Output.DefaultDir = flags.outputDir
	}
}

// formatStream formats all of r into w.
func formatStream(r io.Reader, w io.Writer, render renderFunc) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("%w: stdin: %v", ErrReadInput, err)
	}
	if _, err := io.WriteString(w, render(string(data))); err != nil {
		return fmt.Errorf("%w: stdout: %v", ErrWriteOutput, err)
	}
	return nil
}
