package style

import (
	"regexp"

	"github.com/charmbracelet/lipgloss"
)

// markupTag matches the innermost [tag]content[/tag] pair
var markupTag = regexp.MustCompile(`\[([a-z_]+)\]([^\[]*)\[/([a-z_]+)\]`)

// MarkupParser renders [tag]text[/tag] markup with lipgloss styles
type MarkupParser struct {
	styles map[string]lipgloss.Style
}

// NewMarkupParser creates a parser knowing the package styles
func NewMarkupParser() *MarkupParser {
	return &MarkupParser{
		styles: map[string]lipgloss.Style{
			"title":   TitleStyle,
			"muted":   MutedStyle,
			"success": SuccessStyle,
			"error":   ErrorStyle,
			"warning": WarningStyle,
			"code":    CodeStyle,
			"path":    PathStyle,
			"bold":    lipgloss.NewStyle().Bold(true),
			"matcher": MatcherIDStyle,
			"system":  SystemRuleStyle,
			"user":    UserRuleStyle,
			"hidden":  HiddenStyle,
		},
	}
}

// Render replaces known tags, innermost first. Unknown tags are left as is.
func (p *MarkupParser) Render(text string) string {
	for {
		changed := false
		text = markupTag.ReplaceAllStringFunc(text, func(match string) string {
			m := markupTag.FindStringSubmatch(match)
			if m[1] != m[3] {
				return match
			}
			s, ok := p.styles[m[1]]
			if !ok {
				return match
			}
			changed = true
			return s.Render(m[2])
		})
		if !changed {
			return text
		}
	}
}

// AddStyle registers or replaces a tag
func (p *MarkupParser) AddStyle(tag string, style lipgloss.Style) {
	p.styles[tag] = style
}

var defaultParser = NewMarkupParser()

// Render is a convenience function using the default parser
func Render(text string) string {
	return defaultParser.Render(text)
}
