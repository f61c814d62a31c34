package main

import (
	"fmt"
	"os"

	"inventoryviewer/internal/config"
	"inventoryviewer/internal/handler"

	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

// globalFlags are shared by every subcommand
type globalFlags struct {
	cfgFile string
	debug   bool
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "inventory-viewer",
		Short: "Read-only inventory of modules grouped by module type",
		Long: `Inventory Viewer lists hardware modules grouped by module type, with
serial number, year introduced, asset tag, location, cable connectivity,
notes and measurement point for each module.

The data lives in a SQLite store that mirrors the inventory host's
device, module, port and cable records. Populate it with "import" and
browse it with "serve".`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&flags.cfgFile, "config", "",
		fmt.Sprintf("config file (default searches $%s, ./%s, ~/.config/%s/config.yaml)",
			config.EnvConfigPath, config.ConfigFileName, config.ConfigDirName))
	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newServeCmd(flags))
	rootCmd.AddCommand(newImportCmd(flags))
	rootCmd.AddCommand(newConfigCmd(flags))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// loadConfig reads the config file named by --config, or the first one found
// on the search path, or the defaults
func (f *globalFlags) loadConfig() (*config.Config, string, error) {
	var (
		cfg  *config.Config
		path string
		err  error
	)
	if f.cfgFile != "" {
		cfg, path, err = config.LoadFromPath(f.cfgFile)
	} else {
		cfg, path, err = config.Load()
	}
	if err != nil {
		return nil, path, err
	}

	if f.debug {
		cfg.Log.Level = "debug"
	}
	return cfg, path, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (plugin %s v%s)\n",
				cmd.Root().Name(), version, handler.Plugin.Name, handler.Plugin.Version)
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
