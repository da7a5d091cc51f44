package subtitles

import "strings"

// CleanStats reports the effects of VTT cleanup on a single document.
type CleanStats struct {
	InputLines          int `json:"input_lines" yaml:"input_lines"`
	BlankLines          int `json:"blank_lines" yaml:"blank_lines"`
	TimingLines         int `json:"timing_lines" yaml:"timing_lines"`
	SettingLines        int `json:"setting_lines" yaml:"setting_lines"`
	HeaderLines         int `json:"header_lines" yaml:"header_lines"`
	MarkupOnlyLines     int `json:"markup_only_lines" yaml:"markup_only_lines"`
	CueLines            int `json:"cue_lines" yaml:"cue_lines"`
	DuplicateCueLines   int `json:"duplicate_cue_lines" yaml:"duplicate_cue_lines"`
	EmptyUtterances     int `json:"empty_utterances" yaml:"empty_utterances"`
	DuplicateUtterances int `json:"duplicate_utterances" yaml:"duplicate_utterances"`
	OutputLines         int `json:"output_lines" yaml:"output_lines"`
}

// DroppedLines returns the number of raw lines filtered out before
// deduplication.
func (s CleanStats) DroppedLines() int {
	return s.BlankLines + s.TimingLines + s.SettingLines + s.HeaderLines + s.MarkupOnlyLines
}

// CleanVTT converts raw WebVTT content into plain transcript text, one
// utterance per line. It never fails: anything that is not cue text is
// dropped.
func CleanVTT(raw string) string {
	text, _ := CleanVTTWithStats(raw)
	return text
}

// CleanVTTWithStats is CleanVTT that also reports what each stage removed.
func CleanVTTWithStats(raw string) (string, CleanStats) {
	var stats CleanStats
	cueLines := extractCueLines(raw, &stats)

	deduped, removed := dedupeConsecutive(cueLines)
	stats.DuplicateCueLines = removed

	utterances, empty, repeated := compactUtterances(splitSpeakerTurns(deduped))
	stats.EmptyUtterances = empty
	stats.DuplicateUtterances = repeated
	stats.OutputLines = len(utterances)

	return strings.Join(utterances, "\n"), stats
}

// extractCueLines filters structural lines and normalizes the remaining cue
// text. Returned lines are never empty.
func extractCueLines(raw string, stats *CleanStats) []string {
	lines := strings.Split(raw, "\n")
	stats.InputLines = len(lines)
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		switch classifyLine(line) {
		case lineBlank:
			stats.BlankLines++
			continue
		case lineTiming:
			stats.TimingLines++
			continue
		case lineSetting:
			stats.SettingLines++
			continue
		case lineHeader:
			stats.HeaderLines++
			continue
		}
		line = normalizeCueLine(line)
		if line == "" {
			stats.MarkupOnlyLines++
			continue
		}
		cleaned = append(cleaned, line)
	}
	stats.CueLines = len(cleaned)
	return cleaned
}
