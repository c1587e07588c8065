// Package config loads the doubler binary configuration from YAML with
// SANSIO_* environment overrides.
package config
