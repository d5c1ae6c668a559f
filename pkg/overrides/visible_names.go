package overrides

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/fieldmatch/pkg/matchers"
	"github.com/arthur-debert/fieldmatch/pkg/types"
)

// visibleNamesPattern extracts the alternation of an encoded name set
var visibleNamesPattern = regexp.MustCompile(`^\^\(\?!([\w$|-]+)\$\)\.\*\$$`)

// EncodeVisibleNames renders names as a pattern matching every other name
func EncodeVisibleNames(names []string) string {
	return "^(?!" + strings.Join(names, "$|") + "$).*$"
}

// DecodeVisibleNames returns the names encoded by EncodeVisibleNames. Patterns
// of any other shape decode to an empty set.
func DecodeVisibleNames(pattern string) []string {
	m := visibleNamesPattern.FindStringSubmatch(pattern)
	if m == nil {
		return []string{}
	}
	return strings.Split(m[1], "$|")
}

// FormatVisibleNames is the label shown instead of the raw pattern
func FormatVisibleNames(names []string) string {
	return "Except fields: " + strings.Join(names, ", ")
}

// VisibleNames decodes the name set held by a hide-series rule. Rules that
// were not produced by this package yield an empty set.
func VisibleNames(rule types.ConfigOverrideRule) []string {
	if rule.Matcher.ID != matchers.ReadOnlyID {
		return []string{}
	}

	opts, err := matchers.DecodeReadOnlyOptions(rule.Matcher.Options)
	if err != nil {
		return []string{}
	}

	inner, err := matchers.StringOption(opts.InnerOptions)
	if err != nil {
		return []string{}
	}
	return DecodeVisibleNames(inner)
}
