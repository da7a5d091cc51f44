// Package main hosts the vttclean CLI entrypoint and command graph.
//
// The root command reads one WebVTT file, cleans it with the subtitles
// package, and prints plain transcript text on stdout. Diagnostics, errors,
// and optional cleanup stats go to stderr so the transcript can be piped
// untouched. The config subcommands scaffold and validate the optional TOML
// configuration.
//
// Keep this package lean: cleaning rules live in internal/subtitles and are
// only surfaced here.
package main
