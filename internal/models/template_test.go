package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTemplateFeatures(t *testing.T) {
	var tpl Template
	tpl.SetFeatures([]string{"Hero + Pricing", "Blog"})
	require.Equal(t, []string{"Hero + Pricing", "Blog"}, tpl.Features())
}

func TestTemplateFeaturesCorruptPayload(t *testing.T) {
	cases := []string{"", "not json", `{"a":1}`, "null", `[1,2,3]`}
	for _, raw := range cases {
		tpl := Template{FeaturesJSON: raw}
		require.Equal(t, []string{}, tpl.Features(), "payload %q", raw)
	}
}

func TestTemplateSetFeaturesNil(t *testing.T) {
	var tpl Template
	tpl.SetFeatures(nil)
	require.Equal(t, "[]", tpl.FeaturesJSON)
	require.Empty(t, tpl.Features())
}
