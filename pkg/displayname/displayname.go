// Package displayname resolves the name a field is identified by when
// matching and presenting it.
package displayname

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arthur-debert/fieldmatch/pkg/types"
)

const (
	// TimeSeriesValueFieldName is the conventional name of a series value column
	TimeSeriesValueFieldName = "Value"

	// TimeSeriesTimeFieldName is the conventional name of a series time column
	TimeSeriesTimeFieldName = "Time"
)

// Get returns the display name of field within frame, considering allFrames
// for disambiguation. The result is deterministic for identical inputs.
func Get(field *types.Field, frame *types.DataFrame, allFrames []*types.DataFrame) string {
	if field == nil {
		return ""
	}

	if field.Config.DisplayName != "" {
		return field.Config.DisplayName
	}

	if field.Config.DisplayNameFromDS != "" {
		return field.Config.DisplayNameFromDS
	}

	// Time fields without labels keep their own name so series can be joined on them
	if field.Type == types.FieldTypeTime && len(field.Labels) == 0 {
		if field.Name == "" {
			return TimeSeriesTimeFieldName
		}
		return field.Name
	}

	var parts []string
	frameNameAdded := false
	labelsAdded := false

	if frame != nil && frame.Name != "" && frameNamesDiffer(allFrames) {
		parts = append(parts, frame.Name)
		frameNameAdded = true
	}

	if field.Name != "" && field.Name != TimeSeriesValueFieldName {
		parts = append(parts, field.Name)
	}

	if len(field.Labels) > 0 && frame != nil {
		frames := allFrames
		if len(frames) == 0 {
			frames = []*types.DataFrame{frame}
		}
		if single := singleLabelName(frames); single == "" {
			if formatted := FormatLabels(field.Labels); formatted != "" {
				parts = append(parts, formatted)
				labelsAdded = true
			}
		} else if value := field.Labels[single]; value != "" {
			parts = append(parts, value)
			labelsAdded = true
		}
	}

	if frame != nil && !frameNameAdded && !labelsAdded && field.Name == TimeSeriesValueFieldName && frame.Name != "" {
		parts = append(parts, frame.Name)
	}

	var name string
	switch {
	case len(parts) > 0:
		name = strings.Join(parts, " ")
	case field.Name != "":
		name = field.Name
	default:
		name = TimeSeriesValueFieldName
	}

	if name == field.Name {
		name = uniqueFieldName(field, frame)
	}

	return name
}

// FormatLabels renders labels as {k1="v1", k2="v2"} with keys sorted
func FormatLabels(labels types.Labels) string {
	if len(labels) == 0 {
		return ""
	}

	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+`="`+labels[k]+`"`)
	}
	return "{" + strings.Join(pairs, ", ") + "}"
}

func frameNamesDiffer(frames []*types.DataFrame) bool {
	for i := 1; i < len(frames); i++ {
		if frameName(frames[i]) != frameName(frames[i-1]) {
			return true
		}
	}
	return false
}

func frameName(frame *types.DataFrame) string {
	if frame == nil {
		return ""
	}
	return frame.Name
}

// singleLabelName returns the label key when every labelled field across
// frames uses exactly that one key, otherwise "".
func singleLabelName(frames []*types.DataFrame) string {
	single := ""
	for _, frame := range frames {
		if frame == nil {
			continue
		}
		for _, field := range frame.Fields {
			if field == nil {
				continue
			}
			for key := range field.Labels {
				if single == "" {
					single = key
				} else if key != single {
					return ""
				}
			}
		}
	}
	return single
}

// uniqueFieldName numbers repeated field names within a frame in order, so
// two "cpu" fields become "cpu 1" and "cpu 2".
func uniqueFieldName(field *types.Field, frame *types.DataFrame) string {
	dupeCount := 0
	foundSelf := false

	if frame != nil {
		for _, other := range frame.Fields {
			if other == field {
				foundSelf = true
				if dupeCount > 0 {
					dupeCount++
					break
				}
			} else if other != nil && other.Name == field.Name {
				dupeCount++
				if foundSelf {
					break
				}
			}
		}
	}

	if dupeCount > 0 {
		return fmt.Sprintf("%s %d", field.Name, dupeCount)
	}
	return field.Name
}
