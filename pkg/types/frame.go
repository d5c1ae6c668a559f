package types

// FieldType describes the kind of values a field carries
type FieldType string

const (
	FieldTypeTime    FieldType = "time"
	FieldTypeNumber  FieldType = "number"
	FieldTypeString  FieldType = "string"
	FieldTypeBoolean FieldType = "boolean"
	FieldTypeOther   FieldType = "other"
)

// Labels are the series labels attached to a field
type Labels map[string]string

// Field is a single column of a data frame
type Field struct {
	// Name is the name declared by the data source
	Name string `json:"name" yaml:"name" toml:"name"`

	// Type is the kind of values held by the field
	Type FieldType `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty"`

	// Config holds per-field display configuration, including name overrides
	Config FieldConfig `json:"config" yaml:"config,omitempty" toml:"config,omitempty"`

	// Labels identify the series this field belongs to
	Labels Labels `json:"labels,omitempty" yaml:"labels,omitempty" toml:"labels,omitempty"`

	// Values is opaque to matching
	Values []interface{} `json:"values,omitempty" yaml:"values,omitempty" toml:"values,omitempty"`
}

// DataFrame is an ordered, named collection of fields
type DataFrame struct {
	// Name is the optional frame name
	Name string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`

	// RefID correlates the frame with the query that produced it
	RefID string `json:"refId,omitempty" yaml:"refId,omitempty" toml:"refId,omitempty"`

	// Fields are the frame's columns in order
	Fields []*Field `json:"fields" yaml:"fields" toml:"fields"`
}

// FieldAt returns the field at the given index, or nil when out of range
func (f *DataFrame) FieldAt(index int) *Field {
	if f == nil || index < 0 || index >= len(f.Fields) {
		return nil
	}
	return f.Fields[index]
}

// FrameAt returns the frame at the given index, or nil when out of range
func FrameAt(frames []*DataFrame, index int) *DataFrame {
	if index < 0 || index >= len(frames) {
		return nil
	}
	return frames[index]
}
