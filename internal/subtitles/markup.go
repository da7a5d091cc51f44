package subtitles

import (
	"regexp"
	"strings"
)

// speakerTurnMarker replaces the escaped ">>" that auto-captions use to
// flag a new speaker inside a cue line.
const speakerTurnMarker = "\n"

// entitySubstitutions are applied one pass at a time, in order. A combined
// strings.Replacer would change the outcome for double-encoded input such as
// "&amp;gt;", which must decode to the literal "&gt;".
var entitySubstitutions = []struct {
	entity      string
	replacement string
}{
	{"&gt;&gt;", speakerTurnMarker},
	{"&gt;", ">"},
	{"&lt;", "<"},
	{"&amp;", "&"},
	{"&nbsp;", " "},
}

var (
	// inlineTimestampPattern matches word-level timing tags like <00:39:45.119>.
	inlineTimestampPattern = regexp.MustCompile(`<\d{2}:\d{2}:\d{2}\.\d{3}>`)
	// tagPattern matches the shortest <...> span: <c>, </c>, <b>, <v Speaker>.
	tagPattern = regexp.MustCompile(`<.*?>`)
)

// decodeEntities applies the fixed entity substitutions to a cue line.
func decodeEntities(line string) string {
	for _, sub := range entitySubstitutions {
		line = strings.ReplaceAll(line, sub.entity, sub.replacement)
	}
	return line
}

// removeTimestampTags strips inline karaoke timing tags.
func removeTimestampTags(text string) string {
	return inlineTimestampPattern.ReplaceAllString(text, "")
}

// removeTags strips every remaining angle-bracket tag while keeping the
// enclosed text. Unpaired brackets are left alone.
func removeTags(text string) string {
	return tagPattern.ReplaceAllString(text, "")
}

// normalizeCueLine decodes entities, strips tags, and trims the result. An
// empty return means the line carried nothing but markup.
func normalizeCueLine(line string) string {
	line = decodeEntities(line)
	line = removeTimestampTags(line)
	line = removeTags(line)
	return strings.TrimSpace(line)
}
