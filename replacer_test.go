package rangecomine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReplace_SubstitutesPlaceholders(t *testing.T) {
	got := Replace("{{greeting}}, {{name}}!", map[string]interface{}{
		"greeting": "hello",
		"name":     "world",
	})
	require.Equal(t, "hello, world!", got)
}

func TestReplace_NonStringValues(t *testing.T) {
	got := Replace("k={{k}}", map[string]interface{}{"k": 42})
	require.Equal(t, "k=42", got)
}

func TestReplace_MissingPlaceholderKeptVerbatim(t *testing.T) {
	got := Replace("{{missing}}", map[string]interface{}{})
	require.Equal(t, "{{missing}}", got)
}
