package matchers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/fieldmatch/pkg/types"
)

// scenarioFrames builds two frames: A carries temperature and humidity,
// B was produced by query "B"
func scenarioFrames() []*types.DataFrame {
	return []*types.DataFrame{
		{
			Name:  "A",
			RefID: "A",
			Fields: []*types.Field{
				{Name: "temperature", Type: types.FieldTypeNumber},
				{Name: "humidity", Type: types.FieldTypeNumber},
			},
		},
		{
			Name:  "A",
			RefID: "B",
			Fields: []*types.Field{
				{Name: "pressure", Type: types.FieldTypeNumber},
				{Name: "wind", Type: types.FieldTypeNumber},
			},
		},
	}
}

// matched returns the display names of all fields matcher accepts
func matched(t *testing.T, m FieldMatcher, frames []*types.DataFrame) []string {
	t.Helper()
	var names []string
	for _, frame := range frames {
		for _, field := range frame.Fields {
			if m.Match(field, frame, frames) {
				names = append(names, field.Name)
			}
		}
	}
	return names
}

func TestByNameMatcher(t *testing.T) {
	frames := scenarioFrames()

	tests := []struct {
		name    string
		options interface{}
		want    []string
	}{
		{"exact name", "humidity", []string{"humidity"}},
		{"no partial match", "humid", nil},
		{"case sensitive", "Humidity", nil},
		{"empty matches nothing", "", nil},
		{"nil options match nothing", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := fieldNameMatcher.Get(tt.options)
			require.NoError(t, err)
			assert.Equal(t, tt.want, matched(t, m, frames))
		})
	}
}

func TestByNameMatcher_UsesDisplayName(t *testing.T) {
	field := &types.Field{Name: "temp_c", Config: types.FieldConfig{DisplayName: "Temperature"}}
	frame := &types.DataFrame{Fields: []*types.Field{field}}
	frames := []*types.DataFrame{frame}

	byDisplay, err := fieldNameMatcher.Get("Temperature")
	require.NoError(t, err)
	byRaw, err := fieldNameMatcher.Get("temp_c")
	require.NoError(t, err)

	assert.True(t, byDisplay.Match(field, frame, frames))
	assert.False(t, byRaw.Match(field, frame, frames))
}

func TestByNameMatcher_InvalidOptions(t *testing.T) {
	_, err := fieldNameMatcher.Get(42)
	assert.Error(t, err)
}

func TestByNamesMatcher(t *testing.T) {
	frames := scenarioFrames()
	all := []string{"temperature", "humidity", "pressure", "wind"}

	tests := []struct {
		name    string
		options interface{}
		want    []string
	}{
		{
			name:    "allIn",
			options: ByNamesMatcherOptions{Mode: ByNamesModeAllIn, Names: []string{"wind", "humidity"}},
			want:    []string{"humidity", "wind"},
		},
		{
			name:    "allExcept",
			options: ByNamesMatcherOptions{Mode: ByNamesModeAllExcept, Names: []string{"wind", "humidity"}},
			want:    []string{"temperature", "pressure"},
		},
		{
			name:    "duplicates are ignored",
			options: ByNamesMatcherOptions{Mode: ByNamesModeAllIn, Names: []string{"wind", "wind"}},
			want:    []string{"wind"},
		},
		{
			name:    "empty allIn matches nothing",
			options: ByNamesMatcherOptions{Mode: ByNamesModeAllIn},
			want:    nil,
		},
		{
			name:    "empty allExcept matches everything",
			options: ByNamesMatcherOptions{Mode: ByNamesModeAllExcept},
			want:    all,
		},
		{
			name:    "missing mode behaves like allIn",
			options: map[string]interface{}{"names": []interface{}{"pressure"}},
			want:    []string{"pressure"},
		},
		{
			name:    "map options from a document",
			options: map[string]interface{}{"mode": "allExcept", "names": []interface{}{"temperature"}},
			want:    []string{"humidity", "pressure", "wind"},
		},
		{
			name:    "pointer options",
			options: &ByNamesMatcherOptions{Names: []string{"temperature"}},
			want:    []string{"temperature"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := multipleFieldNamesMatcher.Get(tt.options)
			require.NoError(t, err)
			assert.Equal(t, tt.want, matched(t, m, frames))
		})
	}
}

func TestByNamesMatcher_ModesAreComplementary(t *testing.T) {
	frames := scenarioFrames()
	sets := [][]string{nil, {"humidity"}, {"humidity", "wind", "nope"}}

	for _, names := range sets {
		in, err := multipleFieldNamesMatcher.Get(ByNamesMatcherOptions{Mode: ByNamesModeAllIn, Names: names})
		require.NoError(t, err)
		except, err := multipleFieldNamesMatcher.Get(ByNamesMatcherOptions{Mode: ByNamesModeAllExcept, Names: names})
		require.NoError(t, err)

		for _, frame := range frames {
			for _, field := range frame.Fields {
				assert.NotEqual(t, in.Match(field, frame, frames), except.Match(field, frame, frames),
					"names=%v field=%s", names, field.Name)
			}
		}
	}
}

func TestByRegexpMatcher(t *testing.T) {
	frames := scenarioFrames()

	tests := []struct {
		name    string
		options interface{}
		want    []string
	}{
		{"slash pattern", "/^(temp|hum)/", []string{"temperature", "humidity"}},
		{"anchored bare pattern", "p.*e", []string{"pressure"}},
		{"negated set", "^(?!humidity$|wind$).*$", []string{"temperature", "pressure"}},
		{"malformed pattern matches nothing", "/(/", nil},
		{"empty pattern matches nothing", "", nil},
		{"wrong option type matches nothing", []int{1}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := regexpFieldNameMatcher.Get(tt.options)
			require.NoError(t, err, "byRegexp must never fail")
			assert.Equal(t, tt.want, matched(t, m, frames))
		})
	}
}

func TestByRegexpOrNamesMatcher(t *testing.T) {
	frames := scenarioFrames()

	tests := []struct {
		name    string
		options interface{}
		want    []string
	}{
		{
			name:    "names only",
			options: RegexpOrNamesMatcherOptions{Names: []string{"wind"}},
			want:    []string{"wind"},
		},
		{
			name:    "pattern only",
			options: RegexpOrNamesMatcherOptions{Pattern: "/^t/"},
			want:    []string{"temperature"},
		},
		{
			name:    "union",
			options: RegexpOrNamesMatcherOptions{Pattern: "/^t/", Names: []string{"wind"}},
			want:    []string{"temperature", "wind"},
		},
		{
			name:    "malformed pattern keeps names",
			options: RegexpOrNamesMatcherOptions{Pattern: "/(/", Names: []string{"humidity"}},
			want:    []string{"humidity"},
		},
		{
			name:    "map options",
			options: map[string]interface{}{"pattern": "/ure$/", "names": []interface{}{"wind"}},
			want:    []string{"temperature", "pressure", "wind"},
		},
		{
			name:    "nil options match nothing",
			options: nil,
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := regexpOrMultipleNamesMatcher.Get(tt.options)
			require.NoError(t, err)
			assert.Equal(t, tt.want, matched(t, m, frames))
		})
	}
}

func TestByRegexpOrNamesMatcher_IsUnionOfParts(t *testing.T) {
	frames := scenarioFrames()
	cases := []RegexpOrNamesMatcherOptions{
		{Pattern: "/^h/", Names: []string{"wind"}},
		{Pattern: "/(/", Names: []string{"temperature"}},
		{Pattern: "", Names: nil},
		{Pattern: "/.*/", Names: []string{"x"}},
	}

	for _, opts := range cases {
		combined, err := regexpOrMultipleNamesMatcher.Get(opts)
		require.NoError(t, err)
		names, err := multipleFieldNamesMatcher.Get(ByNamesMatcherOptions{Mode: ByNamesModeAllIn, Names: opts.Names})
		require.NoError(t, err)
		re, err := regexpFieldNameMatcher.Get(opts.Pattern)
		require.NoError(t, err)

		for _, frame := range frames {
			for _, field := range frame.Fields {
				want := names.Match(field, frame, frames) || re.Match(field, frame, frames)
				assert.Equal(t, want, combined.Match(field, frame, frames), "opts=%+v field=%s", opts, field.Name)
			}
		}
	}
}

func TestByFrameRefIDMatcher(t *testing.T) {
	frames := scenarioFrames()

	m, err := fieldsInFrameMatcher.Get("B")
	require.NoError(t, err)

	for _, field := range frames[1].Fields {
		assert.True(t, m.Match(field, frames[1], frames), "field %s of B", field.Name)
	}
	for _, field := range frames[0].Fields {
		assert.False(t, m.Match(field, frames[0], frames), "field %s of A", field.Name)
	}

	assert.False(t, m.Match(frames[1].Fields[0], nil, frames), "missing frame never matches")
}

func TestOptionsDisplayText(t *testing.T) {
	tests := []struct {
		name    string
		info    FieldMatcherInfo
		options interface{}
		want    string
	}{
		{"byName", fieldNameMatcher, "cpu", "Field name: cpu"},
		{"byNames allIn", multipleFieldNamesMatcher, ByNamesMatcherOptions{Names: []string{"a", "b"}}, "All of: a, b"},
		{"byNames allExcept", multipleFieldNamesMatcher, ByNamesMatcherOptions{Mode: ByNamesModeAllExcept, Names: []string{"a"}}, "All except: a"},
		{"byRegexp", regexpFieldNameMatcher, "/.*/", "Field name by pattern: /.*/"},
		{"byRegexpOrNames", regexpOrMultipleNamesMatcher, RegexpOrNamesMatcherOptions{Pattern: "/x/", Names: []string{"a", "b"}}, "Field name by pattern: /x/ or names: a,b"},
		{"byFrameRefID", fieldsInFrameMatcher, "A", "Math all fields returned by query with reference ID: A"},
		{"byName with odd options", fieldNameMatcher, 7, "Field name: 7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.OptionsDisplayText(tt.options))
		})
	}
}

func TestGetFieldNameMatchers_Order(t *testing.T) {
	var ids []string
	for _, info := range GetFieldNameMatchers() {
		ids = append(ids, info.ID)
		assert.False(t, info.ExcludeFromPicker)
	}
	assert.Equal(t, []string{ByNameID, ByRegexpID, ByNamesID, ByRegexpOrNamesID, ByFrameRefID}, ids)
}
