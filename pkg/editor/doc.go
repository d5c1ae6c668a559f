// Package editor describes how matcher configs are presented in an override
// editor: which matchers can be picked, how their options are labelled and
// how read-only system rules are shown.
package editor
