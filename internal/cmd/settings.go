// Package cmd holds the kong command structs behind the keywright CLI.
package cmd

// LogSettings are the logging flags shared by every command.
type LogSettings struct {
	Level string `help:"Log level (debug, info, warn, error)" default:"info" env:"KEYWRIGHT_LOG_LEVEL"`
	File  string `help:"Also write logs to this file" type:"path" env:"KEYWRIGHT_LOG_FILE"`
}
