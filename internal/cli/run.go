package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dshills/codeditor/internal/config"
	"github.com/dshills/codeditor/internal/editor"
	"github.com/dshills/codeditor/internal/engine"
	"github.com/dshills/codeditor/internal/logging"
	"github.com/dshills/codeditor/internal/script"
)

// ErrIndexMismatch is returned by run --check when the incrementally
// maintained line index differs from a full rebuild.
var ErrIndexMismatch = errors.New("line index check failed")

type runOptions struct {
	write           bool
	check           bool
	timeout         time.Duration
	systemClipboard bool
}

func newRunCommand() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run SCRIPT [FILE]",
		Short: "Run a Lua edit script",
		Long: `Run the Lua script SCRIPT against an editing session holding FILE, or an
empty buffer when FILE is omitted. The resulting text is printed unless
--write is given, in which case FILE is rewritten when the script changed it.

Scripts use the global "editor" table (editor.text, editor.replace,
editor.insert, editor.line_start, editor.find, editor.undo, ...). Lines
and offsets are 0-based.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := ""
			if len(args) == 2 {
				file = args[1]
			}
			return runScript(cmd, args[0], file, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.write, "write", "w", false, "write the result back to FILE")
	cmd.Flags().BoolVar(&opts.check, "check", false, "verify the line index against a full rebuild")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", script.DefaultTimeout, "script timeout (0 disables)")
	cmd.Flags().BoolVar(&opts.systemClipboard, "system-clipboard", false, "use the system clipboard for cut, copy and paste")

	return cmd
}

func runScript(cmd *cobra.Command, scriptPath, file string, opts runOptions) error {
	if opts.write && file == "" {
		return errors.New("--write requires FILE")
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	styles, err := stylesFor(cmd)
	if err != nil {
		return err
	}

	logger := logging.Default()
	ctx := logging.WithLogger(cmd.Context(), logger)

	session, err := openSession(file, settings, opts)
	if err != nil {
		return err
	}
	defer session.Close()

	rt := script.New(session,
		script.WithOutput(cmd.ErrOrStderr()),
		script.WithTimeout(opts.timeout))
	defer rt.Close()

	if err := rt.RunFile(ctx, scriptPath); err != nil {
		return err
	}

	if opts.check {
		if err := session.CheckIndex(); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), styles.Failure.Render("index check failed"))
			return fmt.Errorf("%w: %w", ErrIndexMismatch, err)
		}
		lines, _ := session.LineCount()
		fmt.Fprintln(cmd.ErrOrStderr(), styles.Success.Render(fmt.Sprintf("index ok (%d lines)", lines)))
	}

	if !opts.write {
		_, err := io.WriteString(cmd.OutOrStdout(), session.Text())
		return err
	}

	if !session.IsDirty() {
		logger.Debug("script made no changes", logging.FieldPath, file)
		return nil
	}
	if err := writeFile(file, session.Text()); err != nil {
		return err
	}
	session.MarkClean()
	logger.Info("wrote file", logging.FieldPath, file)
	return nil
}

func openSession(file string, settings config.Settings, opts runOptions) (*editor.Session, error) {
	var clip engine.Clipboard = &engine.MemoryClipboard{}
	if opts.systemClipboard {
		clip = engine.SystemClipboard{}
	}

	var content io.Reader = strings.NewReader("")
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", file, err)
		}
		defer f.Close()
		content = f
	}

	eng, err := engine.NewFromReader(content,
		engine.WithSettings(settings),
		engine.WithClipboard(clip))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", file, err)
	}

	session := editor.NewSession(
		editor.WithFileName(file),
		editor.WithLogger(logging.Default()))
	if err := session.Open(eng, settings); err != nil {
		return nil, err
	}
	return session, nil
}

func writeFile(path, text string) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(text), mode); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
