package fieldmatch

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort     = "Evaluate field matchers and override rules"
	MsgMatchersShort = "List the available matchers"
	MsgMatchShort    = "Print the fields selected by a matcher"
	MsgHideShort     = "Apply a legend click to a field config"
	MsgApplyShort    = "Print the override properties each field receives"
	MsgRulesShort    = "Describe the override rules of a field config"
	MsgVersionShort  = "Print version information"
	MsgGenConfShort  = "Print or write a commented configuration file"

	// Output
	MsgNoMatches      = "No field matches."
	MsgMatchLine      = "%d:%d\t%s\n"
	MsgVersionFormat  = "fieldmatch version %s\n  commit: %s\n  built:  %s\n"
	MsgYes            = "yes"
	MsgNo             = "no"
	MsgSystemRule     = "system"
	MsgUserRule       = "user"
	MsgNoRules        = "No override rules."
	MsgDocumentSaved  = "[success]Saved[/success] [path]%s[/path]\n"
	MsgConfigWritten  = "[success]Wrote configuration to[/success] [path]%s[/path]\n"
	MsgUnknownMode    = "unknown legend mode '%s', expected toggle or append"
	MsgMissingFlag    = "--%s is required"
	MsgFrameFlagRange = "--%s must not be negative"

	// Flag descriptions
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagAppConfig    = "Application config file (default $XDG_CONFIG_HOME/fieldmatch/config.toml)"
	MsgFlagFormat       = "Document output format: json, yaml, toml or msgpack"
	MsgFlagColor        = "Color output: auto, always or never"
	MsgFlagFrameMatcher = "List frame matchers instead of field matchers"
	MsgFlagFrames       = "Frames document"
	MsgFlagConfig       = "Field config document"
	MsgFlagID           = "Matcher id"
	MsgFlagOptions      = "Matcher options, as JSON or a plain string"
	MsgFlagFramePattern = "Only consider frames whose name matches this pattern"
	MsgFlagFrame        = "Index of the clicked frame"
	MsgFlagField        = "Index of the clicked field within the frame"
	MsgFlagMode         = "Legend mode: toggle or append (default from hide_series.default_mode)"
	MsgFlagOut          = "Write the resulting field config to this file instead of stdout"
	MsgFlagDocument     = "Print the result as a document instead of a table"
	MsgFlagWrite        = "Write the file to the user config path instead of stdout"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/match-example.txt
	msgMatchExampleRaw string
	MsgMatchExample    = strings.TrimSpace(msgMatchExampleRaw)

	//go:embed msgs/hide-long.txt
	msgHideLongRaw string
	MsgHideLong    = strings.TrimSpace(msgHideLongRaw)

	//go:embed msgs/hide-example.txt
	msgHideExampleRaw string
	MsgHideExample    = strings.TrimSpace(msgHideExampleRaw)
)
