package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hysios/etrace/gen"
	icli "github.com/hysios/etrace/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func genWrapper(t *testing.T, fs *gen.FileSystem) string {
	t.Helper()

	spec, err := icli.ParseTypeSpec("HTTPError:httperr")
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, fs.Gen(&gen.Output{Directory: dir}, NewWrapperContext(spec)))

	content, err := os.ReadFile(filepath.Join(dir, "http_error.go"))
	require.NoError(t, err)
	return string(content)
}

func TestAliasWrapper(t *testing.T) {
	content := genWrapper(t, Alias)

	assert.Contains(t, content, "// Code generated by etrace gen. DO NOT EDIT.")
	assert.Contains(t, content, "package httperr")
	assert.Contains(t, content, "type HTTPError[E any] = etrace.Error[E]")
	assert.Contains(t, content, "func NewHTTPError[E any](cause E) *HTTPError[E] {")
	assert.Contains(t, content, "func DescribeHTTPError[E any](cause E, desc string) *HTTPError[E] {")
}

func TestStructWrapper(t *testing.T) {
	content := genWrapper(t, Struct)

	assert.Contains(t, content, "package httperr")
	assert.Contains(t, content, "type HTTPError[E any] struct {")
	assert.Contains(t, content, "wrapped *etrace.Error[E]")
	assert.Contains(t, content, "func (h HTTPError[E]) Error() string {")
	assert.Contains(t, content, "func (h HTTPError[E]) Format(f fmt.State, verb rune) {")
	assert.Contains(t, content, "func (h HTTPError[E]) WithDescription(desc string) HTTPError[E] {")
}

func TestWrapperContextCasing(t *testing.T) {
	spec, err := icli.ParseTypeSpec("DatabaseError")
	require.NoError(t, err)

	ctx := NewWrapperContext(spec)
	assert.Equal(t, "DatabaseError", ctx.TypeName)
	assert.Equal(t, "databaseerror", ctx.PkgName)
	assert.Equal(t, "database_error", ctx.FileName)
	assert.Equal(t, "d", ctx.Receiver)
}
