package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dshills/codeditor/internal/config"
	"github.com/dshills/codeditor/internal/logging"
	"github.com/dshills/codeditor/internal/ui/pretty"
)

func newSettingsCommand() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Print the effective editor settings",
		Long: `Print the effective editor settings: defaults, then the --config file,
then CODEDITOR_* environment variables.

With --watch, the settings are printed again every time the --config file
changes, until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSettings(cmd, watch)
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "reprint settings when the config file changes")

	return cmd
}

func runSettings(cmd *cobra.Command, watch bool) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	styles, err := stylesFor(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printSettings(out, styles, settings)
	if !watch {
		return nil
	}

	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		return errors.New("--watch requires --config")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.Default()
	ctx = logging.WithLogger(ctx, logger)

	return config.Watch(ctx, configPath, func(s config.Settings, err error) {
		if err != nil {
			logger.Error("reload failed", logging.FieldPath, configPath, logging.FieldError, err)
			return
		}
		fmt.Fprintln(out)
		printSettings(out, styles, s)
	})
}

func printSettings(w io.Writer, styles *pretty.Styles, s config.Settings) {
	fields := s.Fields()
	width := 0
	for _, f := range fields {
		width = max(width, len(f.Key))
	}
	for _, f := range fields {
		key := fmt.Sprintf("%-*s", width, f.Key)
		fmt.Fprintf(w, "%s = %s\n", styles.Key.Render(key), styles.Value.Render(fmt.Sprint(f.Value)))
	}
}
