// Package subtitles turns WebVTT caption files into plain transcript text.
//
// Cleaning drops cue-timing, header, and positioning lines, decodes a fixed
// set of HTML entities, strips inline timing and styling tags, and then
// removes consecutive duplicate lines twice: once per cue line and once per
// speaker utterance after ">>" turn markers are expanded. Auto-generated
// captions repeat the previous cue as context, which is why both passes are
// needed.
//
// CleanVTT is pure and safe for concurrent use. ReadFile and CleanFile add
// UTF-8 validation and byte-order-mark handling for content read from disk.
package subtitles
