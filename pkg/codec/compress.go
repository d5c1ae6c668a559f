package codec

import (
	"github.com/klauspost/compress/zstd"

	"github.com/arthur-debert/fieldmatch/pkg/errors"
)

// Compress zstd-compresses data
func Compress(data []byte) ([]byte, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to create zstd encoder")
	}
	defer encoder.Close()

	return encoder.EncodeAll(data, make([]byte, 0, len(data)/2)), nil
}

// Decompress reverses Compress
func Decompress(data []byte) ([]byte, error) {
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to create zstd decoder")
	}
	defer decoder.Close()

	out, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDocumentRead, "failed to decompress document")
	}
	return out, nil
}
