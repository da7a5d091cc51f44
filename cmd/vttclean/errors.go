package main

import "fmt"

const usageText = "Usage: vttclean <vtt_file>"

// usageError reports a missing or malformed positional argument.
type usageError struct{}

func (usageError) Error() string { return usageText }

// fileNotFoundError reports an input path that does not exist.
type fileNotFoundError struct {
	path string
}

func (e fileNotFoundError) Error() string {
	return fmt.Sprintf("Error: File not found: %s", e.path)
}

// processingError wraps any failure while reading, decoding, cleaning, or
// writing a file.
type processingError struct {
	err error
}

func (e processingError) Error() string {
	return fmt.Sprintf("Error processing file: %v", e.err)
}

func (e processingError) Unwrap() error { return e.err }
