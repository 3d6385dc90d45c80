package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/codeditor/internal/engine"
	"github.com/dshills/codeditor/internal/logging"
	"github.com/dshills/codeditor/internal/ui/pretty"
)

func newLinesCommand() *cobra.Command {
	var termWidth int

	cmd := &cobra.Command{
		Use:   "lines FILE",
		Short: "Print the line table of a file",
		Long: `Print one row per line of FILE: its number, start and end offsets in
characters, and its display width in terminal cells.

End offsets exclude the line's newline. Offsets count Unicode code points.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLines(cmd, args[0], termWidth)
		},
	}

	cmd.Flags().IntVar(&termWidth, "width", 0, "table width in cells (default 100)")

	return cmd
}

func runLines(cmd *cobra.Command, path string, termWidth int) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	styles, err := stylesFor(cmd)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	eng, err := engine.NewFromReader(f, engine.WithSettings(settings))
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	rows, err := lineRows(eng)
	if err != nil {
		return err
	}

	logging.Default().Debug("line table",
		logging.FieldPath, path,
		logging.FieldLines, len(rows),
		logging.FieldLength, eng.Len())

	formatter := pretty.NewLineTableFormatter(styles, termWidth)
	_, err = fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTable(rows))
	return err
}

func lineRows(eng *engine.Engine) ([]pretty.LineRow, error) {
	rows := make([]pretty.LineRow, 0, eng.LineCount())
	for line, n := 0, eng.LineCount(); line < n; line++ {
		start, err := eng.LineStartOffset(line)
		if err != nil {
			return nil, err
		}
		end, err := eng.LineEndOffset(line)
		if err != nil {
			return nil, err
		}
		text, err := eng.LineText(line)
		if err != nil {
			return nil, err
		}
		rows = append(rows, pretty.LineRow{Line: line, Start: start, End: end, Text: text})
	}
	return rows, nil
}
