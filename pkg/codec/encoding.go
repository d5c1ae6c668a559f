package codec

import (
	"bytes"

	"github.com/goccy/go-json"
	"github.com/pelletier/go-toml/v2"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/fieldmatch/pkg/errors"
)

// Marshal encodes v. Arrow is not a general purpose format; use EncodeFrames.
func Marshal(format Format, v interface{}) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	switch format {
	case FormatJSON:
		data, err = json.MarshalIndent(v, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case FormatYAML:
		data, err = yaml.Marshal(v)
	case FormatTOML:
		data, err = toml.Marshal(v)
	case FormatMsgpack:
		var buf bytes.Buffer
		enc := msgpack.NewEncoder(&buf)
		enc.SetCustomStructTag("json")
		err = enc.Encode(v)
		data = buf.Bytes()
	default:
		return nil, errors.Newf(errors.ErrDocumentFormat, "format %s cannot hold this document", format)
	}

	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDocumentWrite, "failed to encode %s document", format)
	}
	return data, nil
}

// Unmarshal decodes data into v
func Unmarshal(format Format, data []byte, v interface{}) error {
	var err error

	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, v)
	case FormatYAML:
		err = yaml.Unmarshal(data, v)
	case FormatTOML:
		err = toml.Unmarshal(data, v)
	case FormatMsgpack:
		dec := msgpack.NewDecoder(bytes.NewReader(data))
		dec.SetCustomStructTag("json")
		err = dec.Decode(v)
	default:
		return errors.Newf(errors.ErrDocumentFormat, "format %s cannot hold this document", format)
	}

	if err != nil {
		return errors.Wrapf(err, errors.ErrDocumentRead, "failed to decode %s document", format)
	}
	return nil
}
