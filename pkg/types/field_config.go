package types

// FieldConfig is the display configuration of a field
type FieldConfig struct {
	// DisplayName replaces the computed display name when set
	DisplayName string `json:"displayName,omitempty" yaml:"displayName,omitempty" toml:"displayName,omitempty"`

	// DisplayNameFromDS is a display name suggested by the data source
	DisplayNameFromDS string `json:"displayNameFromDS,omitempty" yaml:"displayNameFromDS,omitempty" toml:"displayNameFromDS,omitempty"`

	// Custom holds panel specific settings such as hideFrom
	Custom map[string]interface{} `json:"custom,omitempty" yaml:"custom,omitempty" toml:"custom,omitempty"`
}

// MatcherConfig selects a registered matcher and its options
type MatcherConfig struct {
	ID      string      `json:"id" yaml:"id" toml:"id"`
	Options interface{} `json:"options,omitempty" yaml:"options,omitempty" toml:"options,omitempty"`
}

// DynamicConfigValue is a single property applied by an override rule
type DynamicConfigValue struct {
	ID    string      `json:"id" yaml:"id" toml:"id"`
	Value interface{} `json:"value,omitempty" yaml:"value,omitempty" toml:"value,omitempty"`
}

// ConfigOverrideRule pairs a matcher with the properties applied to matching fields.
// A rule with a non-empty SystemRef is managed by the application rather
// than authored by a user.
type ConfigOverrideRule struct {
	SystemRef  string               `json:"__systemRef,omitempty" yaml:"__systemRef,omitempty" toml:"__systemRef,omitempty"`
	Matcher    MatcherConfig        `json:"matcher" yaml:"matcher" toml:"matcher"`
	Properties []DynamicConfigValue `json:"properties" yaml:"properties" toml:"properties"`
}

// IsSystem reports whether the rule is machine-managed
func (r ConfigOverrideRule) IsSystem() bool {
	return r.SystemRef != ""
}

// Property returns the property with the given id
func (r ConfigOverrideRule) Property(id string) (DynamicConfigValue, bool) {
	for _, p := range r.Properties {
		if p.ID == id {
			return p, true
		}
	}
	return DynamicConfigValue{}, false
}

// FieldConfigSource is the persisted field configuration of a panel
type FieldConfigSource struct {
	Defaults  FieldConfig          `json:"defaults" yaml:"defaults" toml:"defaults"`
	Overrides []ConfigOverrideRule `json:"overrides" yaml:"overrides" toml:"overrides"`
}

// IsSystemOverride returns a predicate matching rules tagged with ref
func IsSystemOverride(ref string) func(rule ConfigOverrideRule) bool {
	return func(rule ConfigOverrideRule) bool {
		return rule.SystemRef == ref
	}
}

// HideSeriesConfig controls on which surfaces a series is hidden
type HideSeriesConfig struct {
	Graph   bool `json:"graph" yaml:"graph" toml:"graph" mapstructure:"graph"`
	Legend  bool `json:"legend" yaml:"legend" toml:"legend" mapstructure:"legend"`
	Tooltip bool `json:"tooltip" yaml:"tooltip" toml:"tooltip" mapstructure:"tooltip"`
}
