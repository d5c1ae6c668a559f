// Package overrides maintains the system-managed override rule that hides
// series toggled from a legend, and evaluates override rules against frames.
//
// The hidden series are persisted as a single readOnly matcher wrapping a
// byRegexp matcher whose pattern is a negated alternation:
//
//	^(?!humidity$|temperature$).*$
//
// The pattern matches every field except the listed ones. The rule's
// custom.hideFrom property is applied to the fields that match, which
// hides everything but the listed series from the graph. The string form is
// shared with dashboards persisted elsewhere, so encoding and decoding keep
// this exact shape (see EncodeVisibleNames and DecodeVisibleNames).
package overrides
