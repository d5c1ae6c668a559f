package matchers

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/fieldmatch/pkg/errors"
	"github.com/arthur-debert/fieldmatch/pkg/types"
)

func TestNewRegistry_Catalogs(t *testing.T) {
	reg := NewRegistry()

	var fieldIDs []string
	for _, info := range reg.FieldMatchers() {
		fieldIDs = append(fieldIDs, info.ID)
	}
	assert.Equal(t, []string{ByNameID, ByRegexpID, ByNamesID, ByRegexpOrNamesID, ByFrameRefID, ReadOnlyID}, fieldIDs)

	frames := reg.FrameMatchers()
	require.Len(t, frames, 1)
	assert.Equal(t, FrameByNameID, frames[0].ID)

	readOnly, err := reg.FieldMatcherInfo(ReadOnlyID)
	require.NoError(t, err)
	assert.True(t, readOnly.ExcludeFromPicker)
}

func TestRegistry_IsSealed(t *testing.T) {
	reg := NewRegistry()

	err := reg.fields.Register("byMagic", FieldMatcherInfo{ID: "byMagic"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrRegistrySealed))

	err = reg.frames.Register("byMagic", FrameMatcherInfo{ID: "byMagic"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrRegistrySealed))
}

func TestRegistry_UnknownIDs(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.GetFieldMatcher(types.MatcherConfig{ID: "byMagic"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrMatcherNotFound))

	_, err = reg.GetFrameMatcher(types.MatcherConfig{ID: "byMagic"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrMatcherNotFound))

	assert.Equal(t, "", reg.FieldOptionsDisplayText(types.MatcherConfig{ID: "byMagic"}))
}

func TestRegistry_OptionErrorsKeepTheirCode(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.GetFieldMatcher(types.MatcherConfig{ID: ByNameID, Options: 3.5})
	assert.True(t, errors.IsErrorCode(err, errors.ErrMatcherOptions), "got %v", err)

	_, err = reg.GetFrameMatcher(types.MatcherConfig{ID: FrameByNameID, Options: "/(/"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrPatternInvalid), "got %v", err)
}

func TestRegistry_DefaultOptionsBuild(t *testing.T) {
	reg := NewRegistry()

	for _, info := range reg.FieldMatchers() {
		if info.ID == ReadOnlyID {
			continue
		}
		_, err := reg.GetFieldMatcher(types.MatcherConfig{ID: info.ID, Options: info.DefaultOptions})
		assert.NoError(t, err, "default options of %s", info.ID)
	}

	for _, info := range reg.FrameMatchers() {
		_, err := reg.GetFrameMatcher(types.MatcherConfig{ID: info.ID, Options: info.DefaultOptions})
		assert.NoError(t, err, "default options of %s", info.ID)
	}
}

func TestRegistry_ConcurrentLookups(t *testing.T) {
	reg := NewRegistry()
	frames := scenarioFrames()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				m, err := reg.GetFieldMatcher(types.MatcherConfig{ID: ByRegexpID, Options: "/^t/"})
				if err != nil {
					t.Errorf("GetFieldMatcher() error = %v", err)
					return
				}
				if !m.Match(frames[0].Fields[0], frames[0], frames) {
					t.Errorf("expected temperature to match")
					return
				}
			}
		}()
	}
	wg.Wait()
}
