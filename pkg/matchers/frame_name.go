package matchers

import (
	"fmt"

	"github.com/arthur-debert/fieldmatch/pkg/errors"
	"github.com/arthur-debert/fieldmatch/pkg/pattern"
	"github.com/arthur-debert/fieldmatch/pkg/types"
)

// frameNameMatcher matches frames whose name (empty when unset) fits the pattern
type frameNameMatcher struct {
	re *pattern.Regex
}

func (m frameNameMatcher) Match(frame *types.DataFrame) bool {
	name := ""
	if frame != nil {
		name = frame.Name
	}
	return m.re.MatchString(name)
}

var frameNameMatcherInfo = FrameMatcherInfo{
	ID:             FrameByNameID,
	Name:           "Frame Name",
	Description:    "match the frame name",
	DefaultOptions: "/.*/",

	// Frame patterns are structural configuration: failures are returned
	Get: func(options interface{}) (FrameMatcher, error) {
		expr, err := StringOption(options)
		if err != nil {
			return nil, err
		}
		re, err := pattern.StringToRegex(expr)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrPatternInvalid, "invalid frame name pattern").
				WithDetail("matcher", FrameByNameID)
		}
		return frameNameMatcher{re: re}, nil
	},

	OptionsDisplayText: func(options interface{}) string {
		return fmt.Sprintf("Frame name: %s", displayString(options))
	},
}

// GetFrameNameMatchers returns the frame matchers in listing order
func GetFrameNameMatchers() []FrameMatcherInfo {
	return []FrameMatcherInfo{frameNameMatcherInfo}
}
