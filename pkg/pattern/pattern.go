package pattern

import (
	"regexp"
	"strings"
	"sync/atomic"
	"time"

	"github.com/dlclark/regexp2"

	"github.com/arthur-debert/fieldmatch/pkg/errors"
	"github.com/arthur-debert/fieldmatch/pkg/logging"
)

// DefaultMatchTimeout bounds a single match so a pathological pattern
// cannot stall rendering
const DefaultMatchTimeout = 250 * time.Millisecond

var matchTimeout atomic.Int64

func init() {
	matchTimeout.Store(int64(DefaultMatchTimeout))
}

// SetMatchTimeout changes the timeout applied to patterns compiled afterwards.
// Non-positive values restore the default.
func SetMatchTimeout(d time.Duration) {
	if d <= 0 {
		d = DefaultMatchTimeout
	}
	matchTimeout.Store(int64(d))
}

// MatchTimeout returns the timeout applied to newly compiled patterns
func MatchTimeout() time.Duration {
	return time.Duration(matchTimeout.Load())
}

// slashDelimited splits "/pattern/flags"
var slashDelimited = regexp.MustCompile(`^/(.*?)/(g?i?m?y?)$`)

// Regex is a compiled pattern. A nil *Regex matches nothing.
type Regex struct {
	source string
	re     *regexp2.Regexp
}

// StringToRegex compiles a pattern string. Strings starting with a slash
// must have the form /pattern/flags; anything else is anchored with ^ and $.
func StringToRegex(s string) (*Regex, error) {
	expr := "^" + s + "$"
	var opts regexp2.RegexOptions = regexp2.ECMAScript

	if strings.HasPrefix(s, "/") {
		m := slashDelimited.FindStringSubmatch(s)
		if m == nil {
			return nil, errors.Newf(errors.ErrPatternInvalid, "'%s' is not a valid regular expression", s)
		}
		expr = m[1]
		opts |= flagOptions(m[2])
	}

	re, err := regexp2.Compile(expr, opts)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPatternInvalid, "'%s' is not a valid regular expression", s).
			WithDetail("pattern", s)
	}
	re.MatchTimeout = MatchTimeout()

	return &Regex{source: s, re: re}, nil
}

// Compile is the defensive variant of StringToRegex. Empty input and
// compile failures return nil; failures are logged.
func Compile(s string) *Regex {
	if s == "" {
		return nil
	}

	re, err := StringToRegex(s)
	if err != nil {
		logger := logging.GetLogger("pattern")
		logger.Error().
			Err(err).
			Str("pattern", s).
			Msg("failed to compile pattern")
		return nil
	}
	return re
}

// MatchString reports whether s matches. Timeouts count as no match.
func (r *Regex) MatchString(s string) bool {
	if r == nil || r.re == nil {
		return false
	}

	ok, err := r.re.MatchString(s)
	if err != nil {
		logger := logging.GetLogger("pattern")
		logger.Warn().
			Err(err).
			Str("pattern", r.source).
			Msg("pattern match aborted")
		return false
	}
	return ok
}

// String returns the pattern as given by the user
func (r *Regex) String() string {
	if r == nil {
		return ""
	}
	return r.source
}

// flagOptions maps JavaScript flags onto regexp2 options. g and y only
// affect stateful iteration and are ignored.
func flagOptions(flags string) regexp2.RegexOptions {
	var opts regexp2.RegexOptions
	for _, f := range flags {
		switch f {
		case 'i':
			opts |= regexp2.IgnoreCase
		case 'm':
			opts |= regexp2.Multiline
		}
	}
	return opts
}
