package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"vttclean/internal/config"
	"vttclean/internal/logging"
	"vttclean/internal/subtitles"
)

type cleanOptions struct {
	source      string
	outputPath  string
	stats       *bool
	statsFormat string
}

func runClean(cmd *cobra.Command, ctx *commandContext, opts cleanOptions) error {
	cfg := ctx.configValue()

	showStats := cfg.Output.Stats
	if opts.stats != nil {
		showStats = *opts.stats
	}
	statsFormat := strings.ToLower(strings.TrimSpace(opts.statsFormat))
	if statsFormat == "" {
		statsFormat = cfg.Output.StatsFormat
	}
	if !config.ValidStatsFormat(statsFormat) {
		return fmt.Errorf("unsupported stats format %q (use table, json, or yaml)", opts.statsFormat)
	}

	logger, err := ctx.logger(cmd, "cleaner")
	if err != nil {
		return err
	}
	logger = logger.With(logging.String(logging.FieldSource, opts.source))

	if _, err := os.Stat(opts.source); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fileNotFoundError{path: opts.source}
		}
		return processingError{err: err}
	}

	start := time.Now()
	text, stats, err := subtitles.CleanFile(opts.source)
	if err != nil {
		logger.Error("vtt cleanup failed", logging.Args(logging.Error(err))...)
		return processingError{err: err}
	}
	logger.Debug("vtt cleaned", logging.Args(
		logging.Int("input_lines", stats.InputLines),
		logging.Int("dropped_lines", stats.DroppedLines()),
		logging.Int("duplicate_cue_lines", stats.DuplicateCueLines),
		logging.Int("duplicate_utterances", stats.DuplicateUtterances),
		logging.Int("output_lines", stats.OutputLines),
		logging.Duration("elapsed", time.Since(start)),
	)...)
	if stats.OutputLines == 0 {
		logger.Info("no cue text found", logging.Args(logging.Int("input_lines", stats.InputLines))...)
	}

	if err := writeTranscript(cmd, opts.outputPath, text); err != nil {
		return processingError{err: err}
	}

	if showStats {
		errOut := cmd.ErrOrStderr()
		if err := renderStats(errOut, statsFormat, opts.source, stats, ctx.colorize(errOut)); err != nil {
			return fmt.Errorf("render stats: %w", err)
		}
	}
	return nil
}

func writeTranscript(cmd *cobra.Command, outputPath, text string) error {
	target := strings.TrimSpace(outputPath)
	if target == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), text)
		return err
	}
	expanded, err := config.ExpandPath(target)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}
	if err := os.WriteFile(expanded, []byte(text+"\n"), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
