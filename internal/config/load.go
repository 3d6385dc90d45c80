package config

import (
	"fmt"

	"github.com/dshills/codeditor/internal/config/loader"
)

// EnvPrefix is the prefix of environment variables that override settings.
const EnvPrefix = "CODEDITOR_"

type loadOptions struct {
	fs      loader.FileSystem
	environ []string
	useEnv  bool
}

// LoadOption configures Load.
type LoadOption func(*loadOptions)

// WithFileSystem reads settings files from fsys instead of the OS.
func WithFileSystem(fsys loader.FileSystem) LoadOption {
	return func(o *loadOptions) {
		o.fs = fsys
	}
}

// WithEnviron uses environ (KEY=VALUE pairs) instead of the process
// environment.
func WithEnviron(environ []string) LoadOption {
	return func(o *loadOptions) {
		o.environ = environ
	}
}

// WithoutEnv ignores environment overrides.
func WithoutEnv() LoadOption {
	return func(o *loadOptions) {
		o.useEnv = false
	}
}

// Load returns the effective settings: defaults, then the file at path (if
// path is not empty and the file exists), then environment overrides.
func Load(path string, opts ...LoadOption) (Settings, error) {
	o := loadOptions{fs: loader.DefaultFS(), useEnv: true}
	for _, opt := range opts {
		opt(&o)
	}

	merged := map[string]any{}

	if path != "" {
		l, err := loader.ForPath(o.fs, path)
		if err != nil {
			return Settings{}, err
		}
		m, err := l.Load()
		if err != nil {
			return Settings{}, err
		}
		merged = loader.DeepMerge(merged, m)
	}

	if o.useEnv {
		env := loader.NewEnvLoader(EnvPrefix)
		if o.environ != nil {
			env = loader.NewEnvLoaderFrom(EnvPrefix, o.environ)
		}
		m, err := env.Load()
		if err != nil {
			return Settings{}, fmt.Errorf("loading environment: %w", err)
		}
		// Unrelated CODEDITOR_ variables are not settings errors.
		for key := range m {
			if !isSettingKey(key) {
				delete(m, key)
			}
		}
		merged = loader.DeepMerge(merged, m)
	}

	s, err := FromMap(merged)
	if err != nil {
		if path != "" {
			return Settings{}, fmt.Errorf("%s: %w", path, err)
		}
		return Settings{}, err
	}
	return s, nil
}

func isSettingKey(key string) bool {
	for _, f := range Default().Fields() {
		if f.Key == key {
			return true
		}
	}
	return false
}
