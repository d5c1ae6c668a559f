// Package matchers provides the field and frame matcher catalogs.
//
// A matcher decides whether a field (or a whole frame) satisfies a named
// rule. Each catalog entry is a factory: Get turns persisted options into an
// executable matcher, OptionsDisplayText renders the options for editors.
//
// # Field matchers
//
//   - byName - display name equals the option
//   - byRegexp - display name matches the pattern option
//   - byNames - display name is (or, with allExcept, is not) one of the names
//   - byRegexpOrNames - byNames in allIn mode OR byRegexp
//   - byFrameRefID - the owning frame was produced by the given query refId
//   - readOnly - delegates to an inner matcher; editors show it locked
//
// # Frame matchers
//
//   - byName - frame name matches the pattern option
//
// # Error policy
//
// Field pattern failures never surface: byRegexp and byRegexpOrNames log the
// compile error and degrade to a matcher that matches nothing, so persisted
// rules that are mid-edit or migrated keep rendering. The frame byName
// matcher is strict and returns ErrPatternInvalid from Get.
//
// Catalogs are built once by NewRegistry and sealed; they are safe for
// concurrent lookups.
package matchers
