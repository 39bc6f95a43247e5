package gen

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"text/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTemplate(t *testing.T, text string) *template.Template {
	t.Helper()
	return template.Must(template.New("test").Parse(text))
}

func TestGenWritesFiles(t *testing.T) {
	dir := t.TempDir()

	fs := &FileSystem{}
	fs.AddFile("{{.FileName}}.go", testTemplate(t, "package {{.PkgName}}\n"))

	err := fs.Gen(&Output{Directory: dir}, map[string]string{
		"FileName": "http_error",
		"PkgName":  "httperr",
	})
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dir, "http_error.go"))
	require.NoError(t, err)
	assert.Equal(t, "package httperr\n", string(content))
}

func TestGenRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "existing.go")
	require.NoError(t, os.WriteFile(target, []byte("package old\n"), 0o644))

	fs := &FileSystem{}
	fs.AddFile("existing.go", testTemplate(t, "package new\n"))

	err := fs.Gen(&Output{Directory: dir}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, KindExists))

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "package old\n", string(content))

	// With Overwrite set the file is replaced.
	require.NoError(t, fs.Gen(&Output{Directory: dir, Overwrite: true}, nil))

	content, err = os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "package new\n", string(content))
}

func TestGenCollectsErrors(t *testing.T) {
	dir := t.TempDir()

	fs := &FileSystem{}
	fs.AddFile("{{.Missing}}.go", testTemplate(t, "package a\n"))
	fs.AddFile("ok.go", testTemplate(t, "package b\n"))

	err := fs.Gen(&Output{Directory: dir}, struct{}{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, KindFilename))

	// The failing pattern must not stop the remaining files.
	_, statErr := os.Stat(filepath.Join(dir, "ok.go"))
	assert.NoError(t, statErr)
}
