// Package editor provides the editing session a code editor front end
// talks to.
//
// A Session is created closed. Open binds it to a Processor (normally an
// *engine.Engine) and a config.Settings record; from then until Close
// every operation is delegated to the processor. Before Open and after
// Close each operation fails with a *NotInitializedError, which matches
// ErrNotInitialized under errors.Is:
//
//	s := editor.NewSession(editor.WithFileName("main.go"))
//	if err := s.Open(engine.New(engine.WithContent(src)), settings); err != nil {
//		return err
//	}
//	defer s.Close()
//
//	s.ReplaceText(0, 0, "// header\n")
//	line, _ := s.LineForIndex(12)
//
// Line and offset queries are answered from the processor's line index,
// which is updated incrementally on every edit.
package editor
