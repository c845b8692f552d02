// Package config handles configuration management for plugchain.
// It layers embedded defaults, a TOML or YAML config file, PLUGCHAIN_
// environment variables and command-line overrides, in that order.
package config
