package overrides

import (
	"github.com/mitchellh/copystructure"

	"github.com/arthur-debert/fieldmatch/pkg/displayname"
	"github.com/arthur-debert/fieldmatch/pkg/logging"
	"github.com/arthur-debert/fieldmatch/pkg/matchers"
	"github.com/arthur-debert/fieldmatch/pkg/types"
)

const (
	// DisplayOverrideRef tags the rule maintained by HideSeriesConfigFactory
	DisplayOverrideRef = "hide_series_from"

	// HideFromPropertyID is the property carrying types.HideSeriesConfig
	HideFromPropertyID = "custom.hideFrom"
)

var isDisplayOverride = types.IsSystemOverride(DisplayOverrideRef)

// hiddenFromGraph is the only hideFrom value the synthesized rule carries
func hiddenFromGraph() types.HideSeriesConfig {
	return types.HideSeriesConfig{Graph: true, Legend: false, Tooltip: false}
}

// HideSeriesConfigFactory returns the field config that results from a
// legend click on the field addressed by event.
//
// In ToggleSelection mode clicking a series isolates it, and clicking the
// isolated series again restores every series. Any other mode adds the
// clicked series to the isolated set or removes it. The input is never
// modified; the returned overrides never share a backing array with it.
func HideSeriesConfigFactory(event types.LegendEvent, fieldConfig types.FieldConfigSource, data []*types.DataFrame) types.FieldConfigSource {
	logger := logging.GetLogger("overrides")

	frame := types.FrameAt(data, event.FieldIndex.FrameIndex)
	if frame == nil {
		logger.Debug().
			Int("frame", event.FieldIndex.FrameIndex).
			Msg("legend event for unknown frame ignored")
		return fieldConfig
	}

	field := frame.FieldAt(event.FieldIndex.FieldIndex)
	if field == nil {
		logger.Debug().
			Int("frame", event.FieldIndex.FrameIndex).
			Int("field", event.FieldIndex.FieldIndex).
			Msg("legend event for unknown field ignored")
		return fieldConfig
	}

	displayName := displayname.Get(field, frame, data)
	result := copySource(fieldConfig)

	currentIndex := -1
	for i, rule := range result.Overrides {
		if isDisplayOverride(rule) {
			currentIndex = i
			break
		}
	}

	if currentIndex < 0 {
		result.Overrides = prepend(createFreshOverride(displayName), result.Overrides)
		logger.Debug().Str("field", displayName).Msg("hide series rule created")
		return result
	}

	current := result.Overrides[currentIndex]
	rest := make([]types.ConfigOverrideRule, 0, len(result.Overrides)-1)
	rest = append(rest, result.Overrides[:currentIndex]...)
	rest = append(rest, result.Overrides[currentIndex+1:]...)

	if event.Mode == types.ToggleSelection {
		if contains(VisibleNames(current), displayName) {
			result.Overrides = rest
			logger.Debug().Str("field", displayName).Msg("hide series rule removed")
			return result
		}

		result.Overrides = prepend(createFreshOverride(displayName), rest)
		logger.Debug().Str("field", displayName).Msg("hide series rule replaced")
		return result
	}

	result.Overrides = prepend(createExtendedOverride(current, displayName), rest)
	logger.Debug().Str("field", displayName).Msg("hide series rule extended")
	return result
}

func createFreshOverride(displayName string) types.ConfigOverrideRule {
	return newDisplayOverride([]string{displayName}, types.DynamicConfigValue{
		ID:    HideFromPropertyID,
		Value: hiddenFromGraph(),
	})
}

func createExtendedOverride(current types.ConfigOverrideRule, displayName string) types.ConfigOverrideRule {
	property, ok := current.Property(HideFromPropertyID)
	if !ok {
		property = types.DynamicConfigValue{ID: HideFromPropertyID}
	}
	property.Value = hiddenFromGraph()

	names := VisibleNames(current)
	if i := indexOf(names, displayName); i < 0 {
		names = append(names, displayName)
	} else {
		names = append(names[:i], names[i+1:]...)
	}

	return newDisplayOverride(names, property)
}

func newDisplayOverride(names []string, property types.DynamicConfigValue) types.ConfigOverrideRule {
	return types.ConfigOverrideRule{
		SystemRef: DisplayOverrideRef,
		Matcher: types.MatcherConfig{
			ID: matchers.ReadOnlyID,
			Options: matchers.ReadOnlyFieldMatcherOptions{
				InnerID:        matchers.ByRegexpID,
				InnerOptions:   EncodeVisibleNames(names),
				FormattedValue: FormatVisibleNames(names),
			},
		},
		Properties: []types.DynamicConfigValue{property},
	}
}

// copySource deep copies a field config so results never share state with
// the caller's value
func copySource(source types.FieldConfigSource) types.FieldConfigSource {
	copied, err := copystructure.Copy(source)
	if err != nil {
		logger := logging.GetLogger("overrides")
		logger.Warn().Err(err).Msg("deep copy failed, falling back to shallow copy")

		shallow := source
		shallow.Overrides = append([]types.ConfigOverrideRule(nil), source.Overrides...)
		return shallow
	}
	return copied.(types.FieldConfigSource)
}

func prepend(rule types.ConfigOverrideRule, rules []types.ConfigOverrideRule) []types.ConfigOverrideRule {
	out := make([]types.ConfigOverrideRule, 0, len(rules)+1)
	out = append(out, rule)
	return append(out, rules...)
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}

func contains(names []string, name string) bool {
	return indexOf(names, name) >= 0
}
