package subtitles

import "strings"

// lineKind classifies a trimmed raw VTT line.
type lineKind int

const (
	lineText lineKind = iota
	lineBlank
	lineTiming
	lineSetting
	lineHeader
)

// timingSeparator marks a cue-timing line such as
// "00:39:44.960 --> 00:39:46.310 align:start position:0%".
const timingSeparator = " --> "

var (
	settingPrefixes = []string{"align:", "position:"}
	headerPrefixes  = []string{"WEBVTT", "Kind:", "Language:"}
)

// classifyLine reports what kind of line a trimmed VTT line is. Anything
// that is not recognized structure is treated as cue text.
func classifyLine(line string) lineKind {
	switch {
	case line == "":
		return lineBlank
	case isTimestampLine(line):
		return lineTiming
	case hasAnyPrefix(line, settingPrefixes):
		return lineSetting
	case hasAnyPrefix(line, headerPrefixes):
		return lineHeader
	default:
		return lineText
	}
}

func isTimestampLine(line string) bool {
	return strings.Contains(line, timingSeparator)
}

func hasAnyPrefix(line string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}
