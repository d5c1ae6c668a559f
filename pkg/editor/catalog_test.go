package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/fieldmatch/pkg/errors"
	"github.com/arthur-debert/fieldmatch/pkg/matchers"
	"github.com/arthur-debert/fieldmatch/pkg/types"
)

func newCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog(matchers.NewRegistry())
	require.NoError(t, err)
	return c
}

func ids(items []MatcherUIItem) []string {
	var out []string
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func TestReadOnlyFieldMatcherItem(t *testing.T) {
	item, err := ReadOnlyFieldMatcherItem(matchers.NewRegistry())
	require.NoError(t, err)

	assert.Equal(t, "readOnly", item.ID)
	assert.Equal(t, "Fields matching", item.Name)
	assert.Equal(t, "Display inner matcher as read only value for the end user.", item.Description)
	assert.True(t, item.ExcludeFromPicker)
	assert.Equal(t, "", item.OptionsToLabel(matchers.ReadOnlyFieldMatcherOptions{InnerID: "byName", InnerOptions: "x"}))
	assert.Equal(t, matchers.ReadOnlyID, item.Matcher.ID)
}

func TestCatalog_Order(t *testing.T) {
	c := newCatalog(t)

	assert.Equal(t, []string{"byName", "byRegexp", "byNames", "byRegexpOrNames", "byFrameRefID", "readOnly"}, ids(c.Items()))
	assert.Equal(t, []string{"byName", "byRegexp", "byNames", "byRegexpOrNames", "byFrameRefID"}, ids(c.Pickable()))
}

func TestCatalog_Labels(t *testing.T) {
	c := newCatalog(t)

	tests := []struct {
		config types.MatcherConfig
		want   string
	}{
		{types.MatcherConfig{ID: matchers.ByNameID, Options: "cpu"}, "cpu"},
		{types.MatcherConfig{ID: matchers.ByRegexpID, Options: "/^cpu/"}, "/^cpu/"},
		{types.MatcherConfig{ID: matchers.ByFrameRefID, Options: "A"}, "A"},
		{types.MatcherConfig{ID: matchers.ByNamesID, Options: map[string]interface{}{"names": []interface{}{"a", "b"}}}, "a, b"},
		{
			types.MatcherConfig{ID: matchers.ByRegexpOrNamesID, Options: matchers.RegexpOrNamesMatcherOptions{Pattern: "/x/", Names: []string{"a"}}},
			"Field name by pattern: /x/ or names: a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.config.ID, func(t *testing.T) {
			view, err := c.Describe(tt.config)
			require.NoError(t, err)
			assert.Equal(t, EditorView{MatcherID: tt.config.ID, Label: tt.want}, view)
		})
	}
}

func TestCatalog_DescribeReadOnly(t *testing.T) {
	c := newCatalog(t)

	view, err := c.Describe(types.MatcherConfig{
		ID: matchers.ReadOnlyID,
		Options: matchers.ReadOnlyFieldMatcherOptions{
			InnerID:        matchers.ByRegexpID,
			InnerOptions:   "^(?!humidity$).*$",
			Prefix:         "Hide series",
			FormattedValue: "Except fields: humidity",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, EditorView{
		MatcherID: matchers.ByRegexpID,
		Label:     "^(?!humidity$).*$",
		Prefix:    "Hide series",
		ReadOnly:  true,
	}, view)
}

func TestCatalog_DescribeNestedReadOnly(t *testing.T) {
	c := newCatalog(t)

	view, err := c.Describe(types.MatcherConfig{
		ID: matchers.ReadOnlyID,
		Options: map[string]interface{}{
			"innerId": "readOnly",
			"prefix":  "outer",
			"innerOptions": map[string]interface{}{
				"innerId":      "byName",
				"innerOptions": "cpu",
				"prefix":       "inner",
			},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, EditorView{MatcherID: "byName", Label: "cpu", Prefix: "outer", ReadOnly: true}, view)
}

func TestCatalog_UnknownMatcher(t *testing.T) {
	c := newCatalog(t)

	_, err := c.Describe(types.MatcherConfig{ID: "byMagic"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrMatcherNotFound))

	_, err = c.Describe(types.MatcherConfig{ID: matchers.ReadOnlyID, Options: matchers.ReadOnlyFieldMatcherOptions{InnerID: "byMagic"}})
	assert.True(t, errors.IsErrorCode(err, errors.ErrMatcherNotFound))
}
