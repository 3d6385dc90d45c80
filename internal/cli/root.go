// Package cli provides the Cobra command structure for codeditor.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/codeditor/internal/config"
	"github.com/dshills/codeditor/internal/logging"
	"github.com/dshills/codeditor/internal/ui/pretty"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root codeditor command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "codeditor",
		Short: "Headless code editing with an incremental line index",
		Long: `codeditor drives the editing core of a code editor from the command line.

It reports the line layout of a file, runs Lua edit scripts against an
editing session, and prints or watches the effective editor settings.
Settings come from defaults, an optional TOML or YAML file, and
CODEDITOR_* environment variables, in that order.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to settings file (.toml, .yaml)")
	rootCmd.PersistentFlags().StringVar(&color, "color", pretty.ColorAuto,
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newLinesCommand())
	rootCmd.AddCommand(newRunCommand())
	rootCmd.AddCommand(newSettingsCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}

// loadSettings loads the settings named by --config and applies their log
// level unless --debug is set.
func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return config.Settings{}, fmt.Errorf("get config flag: %w", err)
	}

	settings, err := config.Load(configPath)
	if err != nil {
		return config.Settings{}, fmt.Errorf("load settings: %w", err)
	}

	if debug, _ := cmd.Flags().GetBool("debug"); !debug {
		logging.SetLevel(settings.LogLevel)
	}
	return settings, nil
}

// stylesFor returns output styles for cmd's --color mode and writer.
func stylesFor(cmd *cobra.Command) (*pretty.Styles, error) {
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		return nil, fmt.Errorf("get color flag: %w", err)
	}
	switch colorMode {
	case pretty.ColorAuto, pretty.ColorAlways, pretty.ColorNever:
	default:
		return nil, fmt.Errorf("invalid --color %q: want auto, always or never", colorMode)
	}
	return pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout())), nil
}
