package editor

import (
	"strings"

	"github.com/arthur-debert/fieldmatch/pkg/matchers"
)

// MatcherUIItem is the editor-side entry of a field matcher
type MatcherUIItem struct {
	ID          string
	Name        string
	Description string

	// Matcher is the catalog entry the item edits
	Matcher matchers.FieldMatcherInfo

	// OptionsToLabel renders options as a short label
	OptionsToLabel func(options interface{}) string

	// ExcludeFromPicker hides the item when choosing a matcher for a new rule
	ExcludeFromPicker bool
}

// ReadOnlyFieldMatcherItem displays another matcher's options without
// allowing edits. It is used for rules maintained by the application.
func ReadOnlyFieldMatcherItem(reg *matchers.Registry) (MatcherUIItem, error) {
	info, err := reg.FieldMatcherInfo(matchers.ReadOnlyID)
	if err != nil {
		return MatcherUIItem{}, err
	}

	return MatcherUIItem{
		ID:                matchers.ReadOnlyID,
		Name:              "Fields matching",
		Description:       "Display inner matcher as read only value for the end user.",
		Matcher:           info,
		OptionsToLabel:    func(interface{}) string { return "" },
		ExcludeFromPicker: true,
	}, nil
}

func pickerItems(reg *matchers.Registry) ([]MatcherUIItem, error) {
	var items []MatcherUIItem
	for _, id := range []string{
		matchers.ByNameID,
		matchers.ByRegexpID,
		matchers.ByNamesID,
		matchers.ByRegexpOrNamesID,
		matchers.ByFrameRefID,
	} {
		info, err := reg.FieldMatcherInfo(id)
		if err != nil {
			return nil, err
		}
		items = append(items, MatcherUIItem{
			ID:             info.ID,
			Name:           info.Name,
			Description:    info.Description,
			Matcher:        info,
			OptionsToLabel: labelFor(info),
		})
	}
	return items, nil
}

// labelFor shows plain string options verbatim and falls back to the
// matcher's display text for structured options
func labelFor(info matchers.FieldMatcherInfo) func(options interface{}) string {
	switch info.ID {
	case matchers.ByNameID, matchers.ByRegexpID, matchers.ByFrameRefID:
		return func(options interface{}) string {
			s, err := matchers.StringOption(options)
			if err != nil {
				return info.OptionsDisplayText(options)
			}
			return s
		}
	case matchers.ByNamesID:
		return func(options interface{}) string {
			opts, err := matchers.DecodeByNamesOptions(options)
			if err != nil {
				return info.OptionsDisplayText(options)
			}
			return strings.Join(opts.Names, ", ")
		}
	}
	return info.OptionsDisplayText
}
