package config

import (
	"context"

	"github.com/dshills/codeditor/internal/config/watcher"
	"github.com/dshills/codeditor/internal/logging"
)

// Watch reloads the settings at path every time the file changes and passes
// the result to fn. A reload that fails is passed as an error and the
// watch continues. Watch blocks until ctx is cancelled.
func Watch(ctx context.Context, path string, fn func(Settings, error), opts ...LoadOption) error {
	w, err := watcher.New(path)
	if err != nil {
		return err
	}

	logger := logging.FromContext(ctx)
	logger.Debug("watching settings", logging.FieldPath, w.Path())

	return w.Run(ctx, func(ev watcher.Event) {
		logger.Debug("settings changed", logging.FieldPath, ev.Path, logging.FieldOp, ev.Op.String())
		fn(Load(path, opts...))
	})
}
