package codec

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/fieldmatch/pkg/errors"
	"github.com/arthur-debert/fieldmatch/pkg/logging"
	"github.com/arthur-debert/fieldmatch/pkg/types"
)

// FramesDocument is the on-disk shape of a frame list
type FramesDocument struct {
	Frames []*types.DataFrame `json:"frames" yaml:"frames" toml:"frames"`
}

// EncodeFieldConfig encodes a field config document
func EncodeFieldConfig(format Format, source types.FieldConfigSource) ([]byte, error) {
	if format == FormatArrow {
		return nil, errors.New(errors.ErrDocumentFormat, "arrow documents can only hold frames")
	}
	if source.Overrides == nil {
		source.Overrides = []types.ConfigOverrideRule{}
	}
	return Marshal(format, source)
}

// DecodeFieldConfig decodes a field config document
func DecodeFieldConfig(format Format, data []byte) (types.FieldConfigSource, error) {
	var source types.FieldConfigSource
	if format == FormatArrow {
		return source, errors.New(errors.ErrDocumentFormat, "arrow documents can only hold frames")
	}
	if err := Unmarshal(format, data, &source); err != nil {
		return types.FieldConfigSource{}, err
	}
	return source, nil
}

// EncodeFrames encodes a frame list
func EncodeFrames(format Format, frames []*types.DataFrame) ([]byte, error) {
	if format == FormatArrow {
		return writeArrowFrames(frames)
	}
	return Marshal(format, FramesDocument{Frames: frames})
}

// DecodeFrames decodes a frame list
func DecodeFrames(format Format, data []byte) ([]*types.DataFrame, error) {
	if format == FormatArrow {
		return readArrowFrames(data)
	}

	var doc FramesDocument
	if err := Unmarshal(format, data, &doc); err != nil {
		return nil, err
	}
	return doc.Frames, nil
}

// ReadFieldConfig loads a field config document, choosing the format from
// the file name
func ReadFieldConfig(path string) (types.FieldConfigSource, error) {
	format, data, err := readDocument(path)
	if err != nil {
		return types.FieldConfigSource{}, err
	}
	return DecodeFieldConfig(format, data)
}

// WriteFieldConfig saves a field config document
func WriteFieldConfig(path string, source types.FieldConfigSource) error {
	format, compressed, err := DetectFormat(path)
	if err != nil {
		return err
	}
	data, err := EncodeFieldConfig(format, source)
	if err != nil {
		return err
	}
	return writeDocument(path, data, compressed)
}

// ReadFrames loads a frames document
func ReadFrames(path string) ([]*types.DataFrame, error) {
	format, data, err := readDocument(path)
	if err != nil {
		return nil, err
	}
	return DecodeFrames(format, data)
}

// WriteFrames saves a frames document
func WriteFrames(path string, frames []*types.DataFrame) error {
	format, compressed, err := DetectFormat(path)
	if err != nil {
		return err
	}
	data, err := EncodeFrames(format, frames)
	if err != nil {
		return err
	}
	return writeDocument(path, data, compressed)
}

func readDocument(path string) (Format, []byte, error) {
	logger := logging.GetLogger("codec")

	format, compressed, err := DetectFormat(path)
	if err != nil {
		return "", nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, errors.Wrapf(err, errors.ErrDocumentRead, "failed to read %s", path).
			WithDetail("path", path)
	}

	if compressed {
		if data, err = Decompress(data); err != nil {
			return "", nil, err
		}
	}

	logger.Debug().
		Str("path", path).
		Str("format", string(format)).
		Bool("compressed", compressed).
		Int("bytes", len(data)).
		Msg("document read")
	return format, data, nil
}

func writeDocument(path string, data []byte, compressed bool) error {
	logger := logging.GetLogger("codec")

	if compressed {
		var err error
		if data, err = Compress(data); err != nil {
			return err
		}
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDocumentWrite, "failed to create %s", dir)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrDocumentWrite, "failed to write %s", path).
			WithDetail("path", path)
	}

	logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("document written")
	return nil
}
