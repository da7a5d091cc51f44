package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"vttclean/internal/subtitles"
)

// statsReport is the machine-readable shape of a cleanup report.
type statsReport struct {
	Source string               `json:"source" yaml:"source"`
	Stats  subtitles.CleanStats `json:"stats" yaml:"stats"`
}

func renderStats(w io.Writer, format, source string, stats subtitles.CleanStats, colorize bool) error {
	switch format {
	case "json":
		return writeJSON(w, statsReport{Source: source, Stats: stats})
	case "yaml":
		return writeYAML(w, statsReport{Source: source, Stats: stats})
	case "table", "":
		return writeStatsTable(w, source, stats, colorize)
	default:
		return fmt.Errorf("unsupported stats format %q", format)
	}
}

func writeStatsTable(w io.Writer, source string, stats subtitles.CleanStats, colorize bool) error {
	rows := [][]string{
		{"Input lines", strconv.Itoa(stats.InputLines)},
		{"Blank lines", strconv.Itoa(stats.BlankLines)},
		{"Timing lines", strconv.Itoa(stats.TimingLines)},
		{"Cue settings", strconv.Itoa(stats.SettingLines)},
		{"Header lines", strconv.Itoa(stats.HeaderLines)},
		{"Markup only", strconv.Itoa(stats.MarkupOnlyLines)},
		{"Cue lines", strconv.Itoa(stats.CueLines)},
		{"Repeated cue lines", strconv.Itoa(stats.DuplicateCueLines)},
		{"Empty utterances", strconv.Itoa(stats.EmptyUtterances)},
		{"Repeated utterances", strconv.Itoa(stats.DuplicateUtterances)},
		{"Output lines", strconv.Itoa(stats.OutputLines)},
	}
	for _, line := range renderSectionHeader("Cleanup stats: "+source, colorize) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, renderTable([]string{"Stage", "Lines"}, rows, []columnAlignment{alignLeft, alignRight}))
	return err
}

// writeJSON encodes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeYAML encodes v as a YAML document.
func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
