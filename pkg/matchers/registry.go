package matchers

import (
	"github.com/arthur-debert/fieldmatch/pkg/errors"
	"github.com/arthur-debert/fieldmatch/pkg/logging"
	"github.com/arthur-debert/fieldmatch/pkg/registry"
	"github.com/arthur-debert/fieldmatch/pkg/types"
)

// Registry holds the sealed field and frame matcher catalogs
type Registry struct {
	fields registry.Registry[FieldMatcherInfo]
	frames registry.Registry[FrameMatcherInfo]
}

// NewRegistry builds and seals both catalogs
func NewRegistry() *Registry {
	r := &Registry{
		fields: registry.New[FieldMatcherInfo](),
		frames: registry.New[FrameMatcherInfo](),
	}

	for _, info := range GetFieldNameMatchers() {
		registry.MustRegister(r.fields, info.ID, info)
	}
	registry.MustRegister(r.fields, ReadOnlyID, r.readOnlyInfo())

	for _, info := range GetFrameNameMatchers() {
		registry.MustRegister(r.frames, info.ID, info)
	}

	r.fields.Seal()
	r.frames.Seal()
	return r
}

// FieldMatchers returns every field matcher entry in registration order,
// including entries excluded from pickers
func (r *Registry) FieldMatchers() []FieldMatcherInfo {
	return r.fields.Values()
}

// FrameMatchers returns every frame matcher entry in registration order
func (r *Registry) FrameMatchers() []FrameMatcherInfo {
	return r.frames.Values()
}

// FieldMatcherInfo looks up a field matcher entry by id
func (r *Registry) FieldMatcherInfo(id string) (FieldMatcherInfo, error) {
	info, err := r.fields.Get(id)
	if err != nil {
		return FieldMatcherInfo{}, errors.Wrapf(err, errors.ErrMatcherNotFound, "unknown field matcher '%s'", id)
	}
	return info, nil
}

// FrameMatcherInfo looks up a frame matcher entry by id
func (r *Registry) FrameMatcherInfo(id string) (FrameMatcherInfo, error) {
	info, err := r.frames.Get(id)
	if err != nil {
		return FrameMatcherInfo{}, errors.Wrapf(err, errors.ErrMatcherNotFound, "unknown frame matcher '%s'", id)
	}
	return info, nil
}

// GetFieldMatcher resolves a matcher config into an executable matcher
func (r *Registry) GetFieldMatcher(config types.MatcherConfig) (FieldMatcher, error) {
	info, err := r.FieldMatcherInfo(config.ID)
	if err != nil {
		return nil, err
	}

	matcher, err := info.Get(config.Options)
	if err != nil {
		return nil, errors.Wrapf(err, errors.GetErrorCode(err), "failed to build field matcher '%s'", config.ID)
	}

	logger := logging.GetLogger("matchers")
	logger.Trace().
		Str("matcher", config.ID).
		Interface("options", config.Options).
		Msg("resolved field matcher")

	return matcher, nil
}

// GetFrameMatcher resolves a matcher config into an executable frame matcher
func (r *Registry) GetFrameMatcher(config types.MatcherConfig) (FrameMatcher, error) {
	info, err := r.FrameMatcherInfo(config.ID)
	if err != nil {
		return nil, err
	}

	matcher, err := info.Get(config.Options)
	if err != nil {
		return nil, errors.Wrapf(err, errors.GetErrorCode(err), "failed to build frame matcher '%s'", config.ID)
	}
	return matcher, nil
}

// FieldOptionsDisplayText renders a field matcher config for editors
func (r *Registry) FieldOptionsDisplayText(config types.MatcherConfig) string {
	info, err := r.FieldMatcherInfo(config.ID)
	if err != nil {
		return ""
	}
	return info.OptionsDisplayText(config.Options)
}
