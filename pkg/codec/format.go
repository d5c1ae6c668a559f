package codec

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/fieldmatch/pkg/errors"
)

// Format is a document encoding
type Format string

const (
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatTOML    Format = "toml"
	FormatMsgpack Format = "msgpack"
	FormatArrow   Format = "arrow"
)

// CompressedSuffix marks zstd compressed documents
const CompressedSuffix = ".zst"

// ParseFormat accepts a format name as used in configuration
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "msgpack", "mpk":
		return FormatMsgpack, nil
	case "arrow":
		return FormatArrow, nil
	}
	return "", errors.Newf(errors.ErrDocumentFormat, "unknown document format '%s'", name)
}

// DetectFormat derives the format from a file name and reports whether the
// document is zstd compressed
func DetectFormat(path string) (Format, bool, error) {
	name := strings.ToLower(filepath.Base(path))
	compressed := strings.HasSuffix(name, CompressedSuffix)
	name = strings.TrimSuffix(name, CompressedSuffix)

	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		return "", compressed, errors.Newf(errors.ErrDocumentFormat, "cannot tell the format of '%s'", path).
			WithDetail("path", path)
	}

	format, err := ParseFormat(ext)
	if err != nil {
		return "", compressed, errors.Wrapf(err, errors.ErrDocumentFormat, "cannot tell the format of '%s'", path).
			WithDetail("path", path)
	}
	return format, compressed, nil
}
