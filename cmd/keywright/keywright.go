package main

import (
	"os"
	"strings"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"

	"github.com/keywright/keywright/internal/config"
	"github.com/keywright/keywright/internal/configpaths"
	"github.com/keywright/keywright/internal/log"
)

func main() {
	userCfg := findUserConfig(os.Args[1:])
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(userCfg)

	var cli config.CLI
	ctx := kong.Parse(&cli,
		kong.Name("keywright"),
		kong.Description("Keymap configurator for programmable keyboards"),
		kong.UsageOnError(),
		// Configuration may come from JSON/YAML/TOML files in priority
		// order; flags and environment variables override file values.
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	logger, closeFiles, err := log.Setup(cli.Log.Level, cli.Log.File)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to set up logger: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() {
		for _, c := range closeFiles {
			_ = c.Close()
		}
	}()

	ctx.Bind(logger)

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}

// findUserConfig pre-scans the arguments for --config so the kong
// configuration loaders can be pointed at the user's file before the
// real parse happens.
func findUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	if v := os.Getenv("KEYWRIGHT_CONFIG"); v != "" {
		return v
	}
	return ""
}
