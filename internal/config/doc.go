// Package config handles configuration loading, parsing, and validation
// from various sources (.env files, config.yaml, environment variables). It
// provides type-safe access to the settings needed by the Pokedex server and
// terminal client while keeping configuration details separate from the
// identification logic.
package config
