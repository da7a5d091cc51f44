package subtitles

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrInvalidEncoding indicates subtitle content that is not valid UTF-8.
var ErrInvalidEncoding = errors.New("invalid utf-8 encoding")

// ReadFile loads a VTT file and decodes it to text.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read vtt: %w", err)
	}
	return Decode(data)
}

// Decode validates UTF-8 content and drops a leading byte-order mark.
func Decode(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("decode vtt: %w", ErrInvalidEncoding)
	}
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	text, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return "", fmt.Errorf("decode vtt: %w", err)
	}
	return string(text), nil
}

// CleanFile reads and cleans a VTT file in one step.
func CleanFile(path string) (string, CleanStats, error) {
	raw, err := ReadFile(path)
	if err != nil {
		return "", CleanStats{}, err
	}
	text, stats := CleanVTTWithStats(raw)
	return text, stats, nil
}
