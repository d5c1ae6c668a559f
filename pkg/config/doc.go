// Package config loads fieldmatch settings.
//
// Layers are merged in this order, later layers winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user file, $XDG_CONFIG_HOME/fieldmatch/config.toml unless a path is given
//  3. FIELDMATCH_* environment variables, with a double underscore between
//     section and key (FIELDMATCH_PATTERN__MATCH_TIMEOUT=1s)
//  4. explicit overrides, usually set from command line flags
package config
