// Package config defines the editor Settings record and loads it from a
// settings file and the environment.
//
// Settings are an immutable value. Loading starts from Default, merges the
// file (TOML or YAML, chosen by extension) and then CODEDITOR_ environment
// variables, and finally normalizes the result:
//
//	s, err := config.Load("codeditor.toml")
//	if err != nil {
//		return err
//	}
//	session.Refresh(s)
//
// Watch reloads the file whenever it changes:
//
//	err := config.Watch(ctx, "codeditor.toml", func(s config.Settings, err error) {
//		if err == nil {
//			session.Refresh(s)
//		}
//	})
package config
