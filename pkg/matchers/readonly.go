package matchers

import (
	"github.com/arthur-debert/fieldmatch/pkg/types"
)

// readOnlyMatcher delegates to the wrapped matcher unchanged
type readOnlyMatcher struct {
	inner FieldMatcher
}

func (m readOnlyMatcher) Match(field *types.Field, frame *types.DataFrame, allFrames []*types.DataFrame) bool {
	return m.inner.Match(field, frame, allFrames)
}

// readOnlyInfo builds the readOnly entry; inner ids resolve against r
func (r *Registry) readOnlyInfo() FieldMatcherInfo {
	return FieldMatcherInfo{
		ID:                ReadOnlyID,
		Name:              "Fields matching",
		Description:       "Display inner matcher as read only value for the end user.",
		DefaultOptions:    ReadOnlyFieldMatcherOptions{},
		ExcludeFromPicker: true,

		Get: func(options interface{}) (FieldMatcher, error) {
			opts, err := DecodeReadOnlyOptions(options)
			if err != nil {
				return nil, err
			}
			inner, err := r.GetFieldMatcher(types.MatcherConfig{ID: opts.InnerID, Options: opts.InnerOptions})
			if err != nil {
				return nil, err
			}
			return readOnlyMatcher{inner: inner}, nil
		},

		OptionsDisplayText: func(options interface{}) string {
			opts, err := DecodeReadOnlyOptions(options)
			if err != nil {
				return ""
			}
			if opts.FormattedValue != "" {
				return opts.FormattedValue
			}
			info, err := r.FieldMatcherInfo(opts.InnerID)
			if err != nil {
				return ""
			}
			return info.OptionsDisplayText(opts.InnerOptions)
		},
	}
}
