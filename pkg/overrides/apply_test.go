package overrides

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/fieldmatch/pkg/errors"
	"github.com/arthur-debert/fieldmatch/pkg/matchers"
	"github.com/arthur-debert/fieldmatch/pkg/types"
)

func hiddenByName(result []FieldOverrides) map[string]bool {
	out := map[string]bool{}
	for _, f := range result {
		out[f.DisplayName] = f.HiddenFromGraph()
	}
	return out
}

func TestApply_HideSeriesRule(t *testing.T) {
	reg := matchers.NewRegistry()
	frames := testFrames()

	source := HideSeriesConfigFactory(click(0, 1, types.ToggleSelection), types.FieldConfigSource{}, frames)

	result, err := Apply(reg, source, frames)
	require.NoError(t, err)
	require.Len(t, result, 3)

	assert.Equal(t, map[string]bool{
		"temperature": true,
		"humidity":    false,
		"pressure":    true,
	}, hiddenByName(result))

	assert.Equal(t, 1, result[2].FrameIndex)
	assert.Equal(t, 0, result[2].FieldIndex)
}

func TestApply_DecodedDocumentRule(t *testing.T) {
	reg := matchers.NewRegistry()
	frames := testFrames()

	source := types.FieldConfigSource{Overrides: []types.ConfigOverrideRule{{
		SystemRef: DisplayOverrideRef,
		Matcher: types.MatcherConfig{
			ID: "readOnly",
			Options: map[string]interface{}{
				"innerId":      "byRegexp",
				"innerOptions": "^(?!humidity$|pressure$).*$",
			},
		},
		Properties: []types.DynamicConfigValue{{
			ID:    HideFromPropertyID,
			Value: map[string]interface{}{"graph": true, "legend": false, "tooltip": false},
		}},
	}}}

	result, err := Apply(reg, source, frames)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{
		"temperature": true,
		"humidity":    false,
		"pressure":    false,
	}, hiddenByName(result))
}

func TestApply_LaterRuleWins(t *testing.T) {
	reg := matchers.NewRegistry()
	frames := testFrames()

	source := types.FieldConfigSource{Overrides: []types.ConfigOverrideRule{
		{
			Matcher: types.MatcherConfig{ID: matchers.ByNameID, Options: "temperature"},
			Properties: []types.DynamicConfigValue{
				{ID: "unit", Value: "celsius"},
				{ID: "decimals", Value: 1},
			},
		},
		{
			Matcher:    types.MatcherConfig{ID: matchers.ByFrameRefID, Options: "A"},
			Properties: []types.DynamicConfigValue{{ID: "unit", Value: "percent"}},
		},
	}}

	result, err := Apply(reg, source, frames)
	require.NoError(t, err)
	require.Len(t, result, 3)

	assert.Equal(t, []types.DynamicConfigValue{
		{ID: "unit", Value: "percent"},
		{ID: "decimals", Value: 1},
	}, result[0].Properties)
	assert.Equal(t, []types.DynamicConfigValue{{ID: "unit", Value: "percent"}}, result[1].Properties)
	assert.Empty(t, result[2].Properties)

	unit, ok := result[0].Property("unit")
	require.True(t, ok)
	assert.Equal(t, "percent", unit.Value)
}

func TestApply_UnresolvableRules(t *testing.T) {
	reg := matchers.NewRegistry()
	frames := testFrames()

	user := types.FieldConfigSource{Overrides: []types.ConfigOverrideRule{
		{Matcher: types.MatcherConfig{ID: "byMagic"}},
	}}
	_, err := Apply(reg, user, frames)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMatcherNotFound), "got %v", err)

	system := types.FieldConfigSource{Overrides: []types.ConfigOverrideRule{
		{SystemRef: "somewhere_else", Matcher: types.MatcherConfig{ID: "byMagic"}},
		{Matcher: types.MatcherConfig{ID: matchers.ByNameID, Options: "pressure"}, Properties: []types.DynamicConfigValue{{ID: "unit", Value: "hPa"}}},
	}}
	result, err := Apply(reg, system, frames)
	require.NoError(t, err)
	assert.Equal(t, []types.DynamicConfigValue{{ID: "unit", Value: "hPa"}}, result[2].Properties)
}

func TestDecodeHideFrom(t *testing.T) {
	cfg, err := DecodeHideFrom(map[string]interface{}{"graph": true, "tooltip": "true"})
	require.NoError(t, err)
	assert.Equal(t, types.HideSeriesConfig{Graph: true, Tooltip: true}, cfg)

	cfg, err = DecodeHideFrom(types.HideSeriesConfig{Legend: true})
	require.NoError(t, err)
	assert.True(t, cfg.Legend)

	_, err = DecodeHideFrom("hidden")
	assert.Error(t, err)
}
