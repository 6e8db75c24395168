// Package config handles configuration loading, parsing, and validation
// from an optional YAML file. It provides type-safe access to the logger
// settings while keeping configuration details separate from the logger itself.
package config
