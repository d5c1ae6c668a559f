package matchers

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/fieldmatch/pkg/displayname"
	"github.com/arthur-debert/fieldmatch/pkg/logging"
	"github.com/arthur-debert/fieldmatch/pkg/pattern"
	"github.com/arthur-debert/fieldmatch/pkg/types"
)

// nameMatcher matches fields whose display name equals name
type nameMatcher struct {
	name string
}

func (m nameMatcher) Match(field *types.Field, frame *types.DataFrame, allFrames []*types.DataFrame) bool {
	return displayname.Get(field, frame, allFrames) == m.name
}

// namesMatcher matches display names in a set, or outside it when exclude is set
type namesMatcher struct {
	names   map[string]struct{}
	exclude bool
}

func newNamesMatcher(names []string, mode ByNamesMatcherMode) namesMatcher {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return namesMatcher{names: set, exclude: mode == ByNamesModeAllExcept}
}

func (m namesMatcher) Match(field *types.Field, frame *types.DataFrame, allFrames []*types.DataFrame) bool {
	_, found := m.names[displayname.Get(field, frame, allFrames)]
	if m.exclude {
		return !found
	}
	return found
}

// regexpMatcher matches display names against a compiled pattern; a nil
// pattern matches nothing
type regexpMatcher struct {
	re *pattern.Regex
}

func (m regexpMatcher) Match(field *types.Field, frame *types.DataFrame, allFrames []*types.DataFrame) bool {
	if m.re == nil {
		return false
	}
	return m.re.MatchString(displayname.Get(field, frame, allFrames))
}

// regexpOrNamesMatcher checks names first, then the pattern
type regexpOrNamesMatcher struct {
	names  namesMatcher
	regexp regexpMatcher
}

func (m regexpOrNamesMatcher) Match(field *types.Field, frame *types.DataFrame, allFrames []*types.DataFrame) bool {
	return m.names.Match(field, frame, allFrames) || m.regexp.Match(field, frame, allFrames)
}

// frameRefIDMatcher matches every field of frames produced by one query
type frameRefIDMatcher struct {
	refID string
}

func (m frameRefIDMatcher) Match(field *types.Field, frame *types.DataFrame, allFrames []*types.DataFrame) bool {
	return frame != nil && frame.RefID == m.refID
}

var fieldNameMatcher = FieldMatcherInfo{
	ID:             ByNameID,
	Name:           "Field Name",
	Description:    "match the field name",
	DefaultOptions: "",

	Get: func(options interface{}) (FieldMatcher, error) {
		name, err := StringOption(options)
		if err != nil {
			return nil, err
		}
		return nameMatcher{name: name}, nil
	},

	OptionsDisplayText: func(options interface{}) string {
		return fmt.Sprintf("Field name: %s", displayString(options))
	},
}

var multipleFieldNamesMatcher = FieldMatcherInfo{
	ID:          ByNamesID,
	Name:        "Field Names",
	Description: "match any of the given the field names",
	DefaultOptions: ByNamesMatcherOptions{
		Mode:  ByNamesModeAllIn,
		Names: []string{},
	},

	Get: func(options interface{}) (FieldMatcher, error) {
		opts, err := DecodeByNamesOptions(options)
		if err != nil {
			return nil, err
		}
		return newNamesMatcher(opts.Names, opts.Mode), nil
	},

	OptionsDisplayText: func(options interface{}) string {
		opts, err := DecodeByNamesOptions(options)
		if err != nil {
			return fmt.Sprintf("All of: %v", options)
		}
		names := strings.Join(opts.Names, ", ")
		if opts.Mode == ByNamesModeAllExcept {
			return fmt.Sprintf("All except: %s", names)
		}
		return fmt.Sprintf("All of: %s", names)
	},
}

var regexpFieldNameMatcher = FieldMatcherInfo{
	ID:             ByRegexpID,
	Name:           "Field Name by Regexp",
	Description:    "match the field name by a given regexp pattern",
	DefaultOptions: "/.*/",

	Get: func(options interface{}) (FieldMatcher, error) {
		return newRegexpMatcher(options), nil
	},

	OptionsDisplayText: func(options interface{}) string {
		return fmt.Sprintf("Field name by pattern: %s", displayString(options))
	},
}

var fieldsInFrameMatcher = FieldMatcherInfo{
	ID:             ByFrameRefID,
	Name:           "Fields by frame refId",
	Description:    "match all fields returned in data frame with refId.",
	DefaultOptions: "",

	Get: func(options interface{}) (FieldMatcher, error) {
		refID, err := StringOption(options)
		if err != nil {
			return nil, err
		}
		return frameRefIDMatcher{refID: refID}, nil
	},

	OptionsDisplayText: func(options interface{}) string {
		return fmt.Sprintf("Math all fields returned by query with reference ID: %s", displayString(options))
	},
}

var regexpOrMultipleNamesMatcher = FieldMatcherInfo{
	ID:          ByRegexpOrNamesID,
	Name:        "Field Name by Regexp or Names",
	Description: "match the field name by a given regexp pattern or given names",
	DefaultOptions: RegexpOrNamesMatcherOptions{
		Pattern: "/.*/",
		Names:   []string{},
	},

	Get: func(options interface{}) (FieldMatcher, error) {
		opts, err := DecodeRegexpOrNamesOptions(options)
		if err != nil {
			logger := logging.GetLogger("matchers")
			logger.Error().
				Err(err).
				Str("matcher", ByRegexpOrNamesID).
				Msg("invalid options, matcher will not match any field")
		}
		return regexpOrNamesMatcher{
			names:  newNamesMatcher(opts.Names, ByNamesModeAllIn),
			regexp: newRegexpMatcher(opts.Pattern),
		}, nil
	},

	OptionsDisplayText: func(options interface{}) string {
		opts, _ := DecodeRegexpOrNamesOptions(options)
		return fmt.Sprintf("Field name by pattern: %s or names: %s", opts.Pattern, strings.Join(opts.Names, ","))
	},
}

// newRegexpMatcher never fails: options that are not a usable pattern
// produce a matcher that matches nothing
func newRegexpMatcher(options interface{}) regexpMatcher {
	expr, err := StringOption(options)
	if err != nil {
		logger := logging.GetLogger("matchers")
		logger.Error().
			Err(err).
			Str("matcher", ByRegexpID).
			Msg("invalid options, matcher will not match any field")
		return regexpMatcher{}
	}
	return regexpMatcher{re: pattern.Compile(expr)}
}

// GetFieldNameMatchers returns the pickable field matchers in listing order
func GetFieldNameMatchers() []FieldMatcherInfo {
	return []FieldMatcherInfo{
		fieldNameMatcher,
		regexpFieldNameMatcher,
		multipleFieldNamesMatcher,
		regexpOrMultipleNamesMatcher,
		fieldsInFrameMatcher,
	}
}

func displayString(options interface{}) string {
	if s, err := StringOption(options); err == nil {
		return s
	}
	return fmt.Sprintf("%v", options)
}
