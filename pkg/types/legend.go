package types

// LegendEventMode says how a legend click changes the selection
type LegendEventMode string

const (
	// ToggleSelection isolates the clicked series, or restores all of them
	ToggleSelection LegendEventMode = "select"

	// AppendToSelection adds or removes the clicked series
	AppendToSelection LegendEventMode = "append"
)

// FieldIndex locates a field inside a frame list
type FieldIndex struct {
	FrameIndex int `json:"frameIndex" yaml:"frameIndex" toml:"frameIndex"`
	FieldIndex int `json:"fieldIndex" yaml:"fieldIndex" toml:"fieldIndex"`
}

// LegendEvent is emitted when a user clicks a legend item
type LegendEvent struct {
	FieldIndex FieldIndex      `json:"fieldIndex" yaml:"fieldIndex" toml:"fieldIndex"`
	Mode       LegendEventMode `json:"mode" yaml:"mode" toml:"mode"`
}

// ParseLegendEventMode accepts the persisted mode names and their short CLI aliases
func ParseLegendEventMode(s string) (LegendEventMode, bool) {
	switch s {
	case string(ToggleSelection), "toggle", "toggleSelection":
		return ToggleSelection, true
	case string(AppendToSelection), "appendToSelection":
		return AppendToSelection, true
	}
	return "", false
}
