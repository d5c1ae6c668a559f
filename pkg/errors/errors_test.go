package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/fieldmatch/pkg/errors"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *errors.Error
		want string
	}{
		{
			name: "plain",
			err:  errors.New(errors.ErrMatcherNotFound, "matcher 'byColor' not found"),
			want: "[MATCHER_NOT_FOUND] matcher 'byColor' not found",
		},
		{
			name: "formatted",
			err:  errors.Newf(errors.ErrMatcherOptions, "options for %s must be a string, got %T", "byName", 42),
			want: "[MATCHER_OPTIONS] options for byName must be a string, got int",
		},
		{
			name: "wrapped",
			err:  errors.Wrap(stderrors.New("missing )"), errors.ErrPatternInvalid, "invalid frame name pattern"),
			want: "[PATTERN_INVALID] invalid frame name pattern: missing )",
		},
		{
			name: "wrapped formatted",
			err:  errors.Wrapf(stderrors.New("EOF"), errors.ErrDocumentRead, "cannot decode %s", "panel.json"),
			want: "[DOCUMENT_READ] cannot decode panel.json: EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.NotNil(t, tt.err.Details)
		})
	}
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "unused"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "unused %d", 1))
}

func TestCodeSurvivesWrapping(t *testing.T) {
	inner := errors.New(errors.ErrPatternInvalid, "bad pattern").WithDetail("pattern", "/(/")
	outer := fmt.Errorf("loading rule 2: %w", inner)

	assert.True(t, errors.IsErrorCode(outer, errors.ErrPatternInvalid))
	assert.False(t, errors.IsErrorCode(outer, errors.ErrMatcherOptions))
	assert.Equal(t, errors.ErrPatternInvalid, errors.GetErrorCode(outer))
	assert.Equal(t, "/(/", errors.GetErrorDetails(outer)["pattern"])

	var target *errors.Error
	require.True(t, stderrors.As(outer, &target))
	assert.Equal(t, "bad pattern", target.Message)
}

func TestOuterCodeWins(t *testing.T) {
	inner := errors.New(errors.ErrMatcherOptions, "options must be a string")
	outer := errors.Wrap(inner, errors.ErrPatternInvalid, "invalid frame name pattern")

	assert.Equal(t, errors.ErrPatternInvalid, errors.GetErrorCode(outer))
	assert.True(t, stderrors.Is(outer, inner), "Is follows the chain by code")
	assert.Same(t, inner, stderrors.Unwrap(outer))
}

func TestIsComparesCodes(t *testing.T) {
	a := errors.New(errors.ErrMatcherNotFound, "byColor")
	b := errors.New(errors.ErrMatcherNotFound, "byShape")
	c := errors.New(errors.ErrNotFound, "byColor")

	assert.True(t, stderrors.Is(a, b))
	assert.False(t, stderrors.Is(a, c))
	assert.False(t, stderrors.Is(a, stderrors.New("byColor")))
}

func TestDetails(t *testing.T) {
	err := errors.New(errors.ErrDocumentFormat, "cannot tell the format").
		WithDetail("path", "panel").
		WithDetails(map[string]interface{}{"extension": "", "compressed": false})

	assert.Equal(t, map[string]interface{}{
		"path":       "panel",
		"extension":  "",
		"compressed": false,
	}, err.Details)

	bare := &errors.Error{Code: errors.ErrInternal}
	bare.WithDetail("k", "v")
	assert.Equal(t, "v", bare.Details["k"])
}

func TestHelpersOnForeignErrors(t *testing.T) {
	plain := stderrors.New("boom")

	assert.False(t, errors.IsErrorCode(plain, errors.ErrUnknown))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(plain))
	assert.Nil(t, errors.GetErrorDetails(plain))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))
}
