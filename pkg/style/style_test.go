package style

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "no tags", "no tags"},
		{"known tag", "[matcher]byName[/matcher]", "byName"},
		{"two tags", "[bold]a[/bold] and [hidden]b[/hidden]", "a and b"},
		{"nested", "[bold]x [code]y[/code][/bold]", "x y"},
		{"unknown tag", "[blink]x[/blink]", "[blink]x[/blink]"},
		{"mismatched", "[bold]x[/code]", "[bold]x[/code]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.in))
		})
	}
}

func TestTable(t *testing.T) {
	out := Table([]string{"ID", "NAME"}, [][]string{
		{"byName", "Field Name"},
		{"byRegexp", "Field Name by Regexp"},
	})

	lines := strings.Split(out, "\n")
	assert.GreaterOrEqual(t, len(lines), 5)
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "Field Name by Regexp")
	assert.Less(t, strings.Index(out, "byName"), strings.Index(out, "byRegexp"))
}

func TestColorEnabled(t *testing.T) {
	assert.True(t, ColorEnabled("always", nil))
	assert.False(t, ColorEnabled("never", os.Stdout))
	assert.False(t, ColorEnabled("auto", nil))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, ColorEnabled("auto", os.Stdout))
}

func TestHiddenIndicatorIsPlainWithoutColor(t *testing.T) {
	assert.Equal(t, "⊘", HiddenIndicator())
}
