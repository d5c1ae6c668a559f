package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/fieldmatch/pkg/errors"
)

// GenerateConfigContent returns the defaults with every assignment commented
// out, so a fresh user file changes nothing until edited
func GenerateConfigContent() string {
	lines := strings.Split(DefaultConfigContent(), "\n")
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "", strings.HasPrefix(trimmed, "#"):
			out = append(out, line)
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			out = append(out, line)
		default:
			out = append(out, "# "+line)
		}
	}
	return strings.Join(out, "\n")
}

// WriteUserConfig writes the generated file to path, refusing to replace an
// existing one
func WriteUserConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return errors.Newf(errors.ErrAlreadyExists, "config file '%s' already exists", path).
			WithDetail("path", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, errors.ErrConfigLoad, "failed to create config directory").
			WithDetail("path", path)
	}
	if err := os.WriteFile(path, []byte(GenerateConfigContent()), 0644); err != nil {
		return errors.Wrap(err, errors.ErrConfigLoad, "failed to write config file").
			WithDetail("path", path)
	}
	return nil
}
