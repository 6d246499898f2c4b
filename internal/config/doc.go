// Package config loads game settings from local and global YAML files with
// precedence rules. The CLI merges these with its flags.
package config
