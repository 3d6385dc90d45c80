package loader

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memFS(files map[string]string) FileSystem {
	m := fstest.MapFS{}
	for name, content := range files {
		m[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return FSAdapter{FS: m}
}

func TestForPath(t *testing.T) {
	fsys := memFS(nil)

	tests := []struct {
		path string
		want any
	}{
		{"settings.toml", &TOMLLoader{}},
		{"settings.TOML", &TOMLLoader{}},
		{"settings.yaml", &YAMLLoader{}},
		{"settings.yml", &YAMLLoader{}},
	}
	for _, tt := range tests {
		l, err := ForPath(fsys, tt.path)
		require.NoError(t, err, tt.path)
		assert.IsType(t, tt.want, l, tt.path)
	}

	_, err := ForPath(fsys, "settings.json")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestTOMLLoader(t *testing.T) {
	fsys := memFS(map[string]string{
		"settings.toml": "font_size = 18\nread_only = true\nlanguage = \"go\"\n",
	})

	m, err := NewTOMLLoaderWithFS(fsys, "/settings.toml").Load()
	require.NoError(t, err)

	assert.Equal(t, int64(18), m["font_size"])
	assert.Equal(t, true, m["read_only"])
	assert.Equal(t, "go", m["language"])
}

func TestTOMLLoaderParseError(t *testing.T) {
	fsys := memFS(map[string]string{
		"bad.toml": "font_size = 18\nwrap_content = = true\n",
	})

	_, err := NewTOMLLoaderWithFS(fsys, "bad.toml").Load()

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "bad.toml", perr.Path)
	assert.Equal(t, 2, perr.Line)
	assert.Contains(t, perr.Error(), "line 2")
}

func TestYAMLLoader(t *testing.T) {
	fsys := memFS(map[string]string{
		"settings.yml": "font_size: 12\nshow_line_numbers: false\n",
	})

	m, err := NewYAMLLoaderWithFS(fsys, "settings.yml").Load()
	require.NoError(t, err)

	assert.Equal(t, 12, m["font_size"])
	assert.Equal(t, false, m["show_line_numbers"])
}

func TestYAMLLoaderParseError(t *testing.T) {
	fsys := memFS(map[string]string{
		"bad.yaml": "font_size: [1, 2\n",
	})

	_, err := NewYAMLLoaderWithFS(fsys, "bad.yaml").Load()

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "bad.yaml", perr.Path)
}

func TestEmptyFilesYieldEmptyMaps(t *testing.T) {
	fsys := memFS(map[string]string{"a.toml": "", "b.yaml": ""})

	m, err := NewTOMLLoaderWithFS(fsys, "a.toml").Load()
	require.NoError(t, err)
	assert.NotNil(t, m)
	assert.Empty(t, m)

	m, err = NewYAMLLoaderWithFS(fsys, "b.yaml").Load()
	require.NoError(t, err)
	assert.NotNil(t, m)
	assert.Empty(t, m)
}

func TestMissingFileIsNotAnError(t *testing.T) {
	fsys := memFS(nil)

	for _, path := range []string{"missing.toml", "missing.yaml"} {
		l, err := ForPath(fsys, path)
		require.NoError(t, err)

		m, err := l.Load()
		assert.NoError(t, err, path)
		assert.Nil(t, m, path)
	}
}

func TestEnvLoader(t *testing.T) {
	l := NewEnvLoaderFrom("CODEDITOR_", []string{
		"CODEDITOR_FONT_SIZE=20",
		"CODEDITOR_READ_ONLY=yes",
		"CODEDITOR_WRAP_CONTENT=off",
		"CODEDITOR_LANGUAGE=python",
		"CODEDITOR_SCALE=1.5",
		"CODEDITOR_=ignored",
		"HOME=/root",
		"MALFORMED",
	})

	m, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"font_size":    int64(20),
		"read_only":    true,
		"wrap_content": false,
		"language":     "python",
		"scale":        1.5,
	}, m)
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"", ""},
		{"true", true},
		{"ON", true},
		{"no", false},
		{"0", int64(0)},
		{"1", int64(1)},
		{"-7", int64(-7)},
		{"2.25", 2.25},
		{"1.2.3", "1.2.3"},
		{"javascript", "javascript"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseValue(tt.in), "parseValue(%q)", tt.in)
	}
}

func TestDeepMerge(t *testing.T) {
	dst := map[string]any{
		"font_size": 14,
		"theme":     map[string]any{"name": "dark", "contrast": "low"},
	}
	src := map[string]any{
		"font_size": int64(18),
		"theme":     map[string]any{"contrast": "high"},
		"read_only": true,
	}

	got := DeepMerge(dst, src)

	assert.Equal(t, map[string]any{
		"font_size": int64(18),
		"theme":     map[string]any{"name": "dark", "contrast": "high"},
		"read_only": true,
	}, got)
	assert.Equal(t, map[string]any{"a": 1}, DeepMerge(nil, map[string]any{"a": 1}))
}
