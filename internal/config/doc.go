// Package config loads the bulletin board configuration from environment
// variables, command-line flags, and an optional JSON file, merging the three
// sources with earlier sources taking precedence.
package config
