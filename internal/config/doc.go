// Package config loads keycalc's configuration.
//
// Configuration is layered, lowest priority first:
//
//  1. Built-in defaults
//  2. The config file (TOML or YAML, chosen by extension)
//  3. KEYCALC_* environment variables
//
// A missing config file is not an error. The merged result is decoded
// into a Config and validated; theme colors must be "#rrggbb", "#rgb" or
// "default", and the log level must be one the application knows.
//
// Example config.toml:
//
//	[log]
//	level = "debug"
//	file = "/tmp/keycalc.log"
//
//	[theme]
//	background = "#000000"
//	tertiary = "#ff8800"
//
//	[keys]
//	"Ctrl+C" = "quit"
//	"k" = "press:C"
//	"q" = "none"
//
// Watcher reloads the file when it changes on disk.
package config
