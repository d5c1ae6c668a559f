// Package types defines the core data structures shared by the matcher
// registries and the override synthesizer: Field and DataFrame, the
// persisted FieldConfigSource with its override rules, matcher configs and
// legend interaction events.
package types
