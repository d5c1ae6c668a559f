package matchers

import (
	"github.com/arthur-debert/fieldmatch/pkg/types"
)

// FieldMatcher decides whether a field belongs to a rule
type FieldMatcher interface {
	Match(field *types.Field, frame *types.DataFrame, allFrames []*types.DataFrame) bool
}

// FrameMatcher decides whether a whole frame belongs to a rule
type FrameMatcher interface {
	Match(frame *types.DataFrame) bool
}

// FieldMatcherFunc adapts a plain function to FieldMatcher
type FieldMatcherFunc func(field *types.Field, frame *types.DataFrame, allFrames []*types.DataFrame) bool

// Match calls f
func (f FieldMatcherFunc) Match(field *types.Field, frame *types.DataFrame, allFrames []*types.DataFrame) bool {
	return f(field, frame, allFrames)
}

// FieldMatcherFactory builds a matcher from persisted options
type FieldMatcherFactory func(options interface{}) (FieldMatcher, error)

// FrameMatcherFactory builds a frame matcher from persisted options
type FrameMatcherFactory func(options interface{}) (FrameMatcher, error)

// FieldMatcherInfo is a field matcher catalog entry
type FieldMatcherInfo struct {
	// ID is the unique id persisted in matcher configs
	ID string

	// Name is the human readable name shown in pickers
	Name string

	// Description explains what the matcher does
	Description string

	// DefaultOptions are used when a new rule is created in an editor
	DefaultOptions interface{}

	// ExcludeFromPicker hides the entry from editor pickers
	ExcludeFromPicker bool

	// Get builds the matcher. It must be free of side effects.
	Get FieldMatcherFactory

	// OptionsDisplayText renders options for editors and never fails
	OptionsDisplayText func(options interface{}) string
}

// FrameMatcherInfo is a frame matcher catalog entry
type FrameMatcherInfo struct {
	ID                 string
	Name               string
	Description        string
	DefaultOptions     interface{}
	Get                FrameMatcherFactory
	OptionsDisplayText func(options interface{}) string
}
