package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"github.com/keywright/keywright/internal/configpaths"
)

// ConfigCommand groups config-related subcommands.
type ConfigCommand struct {
	Init ConfigInit `cmd:"" help:"Generate a configuration file template"`
}

// ConfigInit scaffolds a configuration file with every setting at its
// default. The template is derived from the flag structs themselves,
// so it cannot drift from the CLI grammar.
type ConfigInit struct {
	Format string `help:"Output format" enum:"json,yaml,toml" default:"json"`
	Output string `help:"Destination file path (defaults to the user config dir)"`
	Force  bool   `help:"Overwrite if the file already exists"`
}

func (c *ConfigInit) Run() error {
	root := map[string]any{
		"log": settingsMap(reflect.TypeOf(LogSettings{})),
	}

	dest := c.Output
	if dest == "" {
		dir, err := configpaths.DefaultConfigDir()
		if err != nil {
			return fmt.Errorf("resolve config dir: %w", err)
		}
		dest = filepath.Join(dir, "config."+c.Format)
	}
	if !c.Force {
		if _, err := os.Stat(dest); err == nil {
			return errors.New("destination exists; use --force to overwrite")
		}
	}
	if err := configpaths.EnsureDir(dest); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	switch c.Format {
	case "json":
		data, err = json.MarshalIndent(root, "", "  ")
	case "yaml":
		data, err = yaml.Marshal(root)
	case "toml":
		data, err = toml.Marshal(root)
	default:
		return fmt.Errorf("unsupported format: %s", c.Format)
	}
	if err != nil {
		return err
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return err
	}
	fmt.Println("wrote", dest)
	return nil
}

// settingsMap turns a flag struct into a key/default-value map using
// the kong `default` tags.
func settingsMap(t reflect.Type) map[string]any {
	out := map[string]any{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Tag.Get("kong") == "-" {
			continue
		}
		key := strings.ToLower(f.Name)
		def := f.Tag.Get("default")
		switch f.Type.Kind() {
		case reflect.String:
			out[key] = def
		case reflect.Bool:
			b, _ := strconv.ParseBool(def)
			out[key] = b
		case reflect.Int:
			n, _ := strconv.Atoi(def)
			out[key] = n
		}
	}
	return out
}
