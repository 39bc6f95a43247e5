package httperr

import (
	"fmt"
	"testing"

	"github.com/hysios/etrace/backtrace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratedWrapper(t *testing.T) {
	t.Setenv(backtrace.EnvVar, "1")

	w := NewHTTPError(404).WithDescription("not found")
	var _ error = w

	assert.Equal(t, 404, w.Err())
	assert.Equal(t, "not found", w.Desc())
	require.NotNil(t, w.Backtrace())

	debug := fmt.Sprintf("%+v", w)
	assert.Contains(t, debug, "not found")
	assert.Contains(t, debug, "Backtrace:")
}
