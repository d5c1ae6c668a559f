// Package pattern turns user supplied pattern strings into regular
// expressions.
//
// Patterns follow the JavaScript conventions used by persisted dashboards:
//
//   - `/cpu.*/i` - slash delimited pattern with flags
//   - `cpu.*` - bare pattern, anchored to the whole string
//   - `^(?!a$|b$).*$` - lookaheads and other ECMAScript constructs
//
// Go's regexp package implements RE2, which has no lookaround, so patterns
// are compiled with regexp2 in ECMAScript mode.
//
// StringToRegex is strict and returns an error for malformed input. Compile
// is defensive: it logs the failure and returns nil, and a nil *Regex never
// matches.
package pattern
