// Package config declares the root CLI grammar.
package config

import "github.com/keywright/keywright/internal/cmd"

// CLI is the kong root for the keywright command line.
type CLI struct {
	ConfigFile string          `name:"config" help:"Path to a configuration file" type:"path"`
	Log        cmd.LogSettings `embed:"" prefix:"log."`

	Inspect cmd.Inspect       `cmd:"" help:"Decode a keycode and show its classification and fields"`
	Search  cmd.Search        `cmd:"" help:"Search the keycode catalog"`
	Export  cmd.Export        `cmd:"" help:"Render a keymap file as plain text"`
	Convert cmd.Convert       `cmd:"" help:"Convert a keymap file between formats"`
	Config  cmd.ConfigCommand `cmd:"" help:"Manage configuration files"`
}
