// Package config loads, normalizes, and validates vttclean configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads optional TOML files, and honours the VTTCLEAN_LOG_LEVEL
// environment override. A missing configuration file is normal: the cleaner
// needs no settings, so defaults cover every knob.
package config
