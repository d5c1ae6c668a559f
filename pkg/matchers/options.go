package matchers

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"

	"github.com/arthur-debert/fieldmatch/pkg/errors"
)

// ByNamesMatcherMode selects include or exclude semantics
type ByNamesMatcherMode string

const (
	ByNamesModeAllIn     ByNamesMatcherMode = "allIn"
	ByNamesModeAllExcept ByNamesMatcherMode = "allExcept"
)

// ByNamesMatcherOptions are the options of the byNames matcher
type ByNamesMatcherOptions struct {
	Mode  ByNamesMatcherMode `json:"mode,omitempty" yaml:"mode,omitempty" toml:"mode,omitempty" mapstructure:"mode"`
	Names []string           `json:"names" yaml:"names" toml:"names" mapstructure:"names"`
}

// RegexpOrNamesMatcherOptions are the options of the byRegexpOrNames matcher
type RegexpOrNamesMatcherOptions struct {
	Pattern string   `json:"pattern,omitempty" yaml:"pattern,omitempty" toml:"pattern,omitempty" mapstructure:"pattern"`
	Names   []string `json:"names,omitempty" yaml:"names,omitempty" toml:"names,omitempty" mapstructure:"names"`
}

// ReadOnlyFieldMatcherOptions wrap an inner matcher invocation with
// presentation hints that do not affect matching
type ReadOnlyFieldMatcherOptions struct {
	InnerID        string      `json:"innerId" yaml:"innerId" toml:"innerId" mapstructure:"innerId"`
	InnerOptions   interface{} `json:"innerOptions,omitempty" yaml:"innerOptions,omitempty" toml:"innerOptions,omitempty" mapstructure:"innerOptions"`
	Prefix         string      `json:"prefix,omitempty" yaml:"prefix,omitempty" toml:"prefix,omitempty" mapstructure:"prefix"`
	FormattedValue string      `json:"formattedValue,omitempty" yaml:"formattedValue,omitempty" toml:"formattedValue,omitempty" mapstructure:"formattedValue"`
}

// StringOption converts persisted options to the plain string form used by
// byName, byRegexp, byFrameRefID and the frame byName matcher
func StringOption(options interface{}) (string, error) {
	switch v := options.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case *string:
		if v == nil {
			return "", nil
		}
		return *v, nil
	case fmt.Stringer:
		return v.String(), nil
	}
	return "", errors.Newf(errors.ErrMatcherOptions, "expected string options, got %T", options)
}

// DecodeByNamesOptions converts persisted options into ByNamesMatcherOptions
func DecodeByNamesOptions(options interface{}) (ByNamesMatcherOptions, error) {
	switch v := options.(type) {
	case ByNamesMatcherOptions:
		return v, nil
	case *ByNamesMatcherOptions:
		if v != nil {
			return *v, nil
		}
		return ByNamesMatcherOptions{}, nil
	}

	var out ByNamesMatcherOptions
	err := decodeInto(options, &out)
	return out, err
}

// DecodeRegexpOrNamesOptions converts persisted options into RegexpOrNamesMatcherOptions
func DecodeRegexpOrNamesOptions(options interface{}) (RegexpOrNamesMatcherOptions, error) {
	switch v := options.(type) {
	case RegexpOrNamesMatcherOptions:
		return v, nil
	case *RegexpOrNamesMatcherOptions:
		if v != nil {
			return *v, nil
		}
		return RegexpOrNamesMatcherOptions{}, nil
	}

	var out RegexpOrNamesMatcherOptions
	err := decodeInto(options, &out)
	return out, err
}

// DecodeReadOnlyOptions converts persisted options into ReadOnlyFieldMatcherOptions
func DecodeReadOnlyOptions(options interface{}) (ReadOnlyFieldMatcherOptions, error) {
	switch v := options.(type) {
	case ReadOnlyFieldMatcherOptions:
		return v, nil
	case *ReadOnlyFieldMatcherOptions:
		if v != nil {
			return *v, nil
		}
		return ReadOnlyFieldMatcherOptions{}, nil
	}

	var out ReadOnlyFieldMatcherOptions
	err := decodeInto(options, &out)
	return out, err
}

// decodeInto decodes map shaped options (as produced by JSON, YAML, TOML or
// msgpack documents) into a typed options struct
func decodeInto(options interface{}, out interface{}) error {
	if options == nil {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to create options decoder")
	}

	if err := decoder.Decode(options); err != nil {
		return errors.Wrapf(err, errors.ErrMatcherOptions, "invalid matcher options %T", options)
	}
	return nil
}
