// Package config loads, normalizes, and validates multiview-seed configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// MULTIVIEW_DATA_DIR. The Config type centralizes every knob the generator
// needs: where fixtures and docs land, how many records to synthesize, the
// random seed, and how the run logs.
//
// Always obtain settings through this package so downstream code receives
// absolute paths, canonical log formats, and clear validation errors.
package config
