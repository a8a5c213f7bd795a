package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, text string, data any) (string, error) {
	t.Helper()
	var b strings.Builder
	err := MustParse("test", text).Execute(&b, data)
	return b.String(), err
}

func TestMustParse_NoHTMLEscaping(t *testing.T) {
	out, err := execute(t, "Tópico: {{.Topic}}", struct{ Topic string }{`"tênis" & <corrida>`})
	require.NoError(t, err)
	assert.Equal(t, `Tópico: "tênis" & <corrida>`, out)
}

func TestMustParse_Join(t *testing.T) {
	out, err := execute(t, `{{join ", " .Links}}`, struct{ Links []string }{[]string{"a", "b"}})
	require.NoError(t, err)
	assert.Equal(t, "a, b", out)
}

func TestMustParse_MissingKey(t *testing.T) {
	_, err := execute(t, "{{.missing}}", map[string]any{})
	assert.Error(t, err)
}

func TestMustParse_PanicsOnSyntaxError(t *testing.T) {
	assert.Panics(t, func() { MustParse("broken", "{{.broken") })
}
