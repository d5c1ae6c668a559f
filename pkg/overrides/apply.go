package overrides

import (
	"github.com/go-viper/mapstructure/v2"

	"github.com/arthur-debert/fieldmatch/pkg/displayname"
	"github.com/arthur-debert/fieldmatch/pkg/errors"
	"github.com/arthur-debert/fieldmatch/pkg/logging"
	"github.com/arthur-debert/fieldmatch/pkg/matchers"
	"github.com/arthur-debert/fieldmatch/pkg/types"
)

// FieldOverrides lists the properties that apply to one field
type FieldOverrides struct {
	FrameIndex  int                        `json:"frameIndex" yaml:"frameIndex" toml:"frameIndex"`
	FieldIndex  int                        `json:"fieldIndex" yaml:"fieldIndex" toml:"fieldIndex"`
	DisplayName string                     `json:"displayName" yaml:"displayName" toml:"displayName"`
	Properties  []types.DynamicConfigValue `json:"properties" yaml:"properties" toml:"properties"`
}

// Property returns the effective value of a property for this field
func (f FieldOverrides) Property(id string) (types.DynamicConfigValue, bool) {
	for _, p := range f.Properties {
		if p.ID == id {
			return p, true
		}
	}
	return types.DynamicConfigValue{}, false
}

// Apply evaluates every override rule against every field of frames. The
// result has one entry per field in frame order. When several rules set the
// same property the later rule wins, keeping the position of the first.
//
// A user rule whose matcher cannot be resolved fails the whole call. A system
// rule that cannot be resolved is skipped.
func Apply(reg *matchers.Registry, source types.FieldConfigSource, frames []*types.DataFrame) ([]FieldOverrides, error) {
	logger := logging.GetLogger("overrides")
	defer logging.LogOperationStart(logger, "apply")()

	resolved := make([]matchers.FieldMatcher, len(source.Overrides))
	for i, rule := range source.Overrides {
		m, err := reg.GetFieldMatcher(rule.Matcher)
		if err != nil {
			if rule.IsSystem() {
				logger.Warn().
					Err(err).
					Str("systemRef", rule.SystemRef).
					Msg("skipping system override with unusable matcher")
				continue
			}
			return nil, errors.Wrapf(err, errors.GetErrorCode(err), "override rule %d", i).
				WithDetail("matcher", rule.Matcher.ID)
		}
		resolved[i] = m
	}

	var result []FieldOverrides
	for frameIndex, frame := range frames {
		if frame == nil {
			continue
		}
		for fieldIndex, field := range frame.Fields {
			if field == nil {
				continue
			}

			entry := FieldOverrides{
				FrameIndex:  frameIndex,
				FieldIndex:  fieldIndex,
				DisplayName: displayname.Get(field, frame, frames),
				Properties:  []types.DynamicConfigValue{},
			}

			positions := map[string]int{}
			for i, rule := range source.Overrides {
				m := resolved[i]
				if m == nil || !m.Match(field, frame, frames) {
					continue
				}
				for _, p := range rule.Properties {
					if pos, ok := positions[p.ID]; ok {
						entry.Properties[pos] = p
						continue
					}
					positions[p.ID] = len(entry.Properties)
					entry.Properties = append(entry.Properties, p)
				}
			}

			result = append(result, entry)
		}
	}

	logger.Debug().
		Int("rules", len(source.Overrides)).
		Int("fields", len(result)).
		Msg("overrides applied")
	return result, nil
}

// DecodeHideFrom converts a custom.hideFrom value, typed or as decoded from
// a document, into types.HideSeriesConfig
func DecodeHideFrom(value interface{}) (types.HideSeriesConfig, error) {
	switch v := value.(type) {
	case types.HideSeriesConfig:
		return v, nil
	case *types.HideSeriesConfig:
		if v != nil {
			return *v, nil
		}
		return types.HideSeriesConfig{}, nil
	}

	var out types.HideSeriesConfig
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return out, errors.Wrap(err, errors.ErrInternal, "failed to create hideFrom decoder")
	}
	if err := decoder.Decode(value); err != nil {
		return out, errors.Wrapf(err, errors.ErrInvalidInput, "invalid %s value", HideFromPropertyID)
	}
	return out, nil
}

// HiddenFromGraph reports whether the field's effective hideFrom hides it
// from the graph
func (f FieldOverrides) HiddenFromGraph() bool {
	p, ok := f.Property(HideFromPropertyID)
	if !ok {
		return false
	}
	cfg, err := DecodeHideFrom(p.Value)
	return err == nil && cfg.Graph
}
