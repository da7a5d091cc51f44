package subtitles

import "strings"

// dedupeConsecutive drops a line when it equals the previously kept line.
// Non-adjacent repeats survive. It returns the kept lines and how many were
// dropped.
func dedupeConsecutive(lines []string) ([]string, int) {
	kept := make([]string, 0, len(lines))
	removed := 0
	for _, line := range lines {
		if len(kept) > 0 && line == kept[len(kept)-1] {
			removed++
			continue
		}
		kept = append(kept, line)
	}
	return kept, removed
}

// splitSpeakerTurns joins cue lines into one blob and re-splits it on the
// speaker-turn marker, so a turn that spanned several physical lines becomes
// one utterance.
func splitSpeakerTurns(lines []string) []string {
	if len(lines) == 0 {
		return nil
	}
	return strings.Split(strings.Join(lines, " "), speakerTurnMarker)
}

// compactUtterances trims each utterance, drops empty ones, and suppresses
// consecutive duplicates. It reports empty fragments and repeats separately.
func compactUtterances(utterances []string) (kept []string, empty, repeated int) {
	trimmed := make([]string, 0, len(utterances))
	for _, utterance := range utterances {
		utterance = strings.TrimSpace(utterance)
		if utterance == "" {
			empty++
			continue
		}
		trimmed = append(trimmed, utterance)
	}
	kept, repeated = dedupeConsecutive(trimmed)
	return kept, empty, repeated
}
