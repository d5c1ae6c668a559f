package codec

import (
	"bufio"
	"bytes"
	"io"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/goccy/go-json"

	"github.com/arthur-debert/fieldmatch/pkg/errors"
	"github.com/arthur-debert/fieldmatch/pkg/types"
)

const (
	metaFrameName   = "name"
	metaFrameRefID  = "refId"
	metaDisplayName = "displayName"
	metaLabels      = "labels"
)

var timestampType = &arrow.TimestampType{Unit: arrow.Millisecond, TimeZone: "UTC"}

// readArrowFrames decodes consecutive IPC streams, one frame each
func readArrowFrames(data []byte) ([]*types.DataFrame, error) {
	alloc := memory.NewGoAllocator()
	br := bufio.NewReader(bytes.NewReader(data))

	var frames []*types.DataFrame
	for {
		if _, err := br.Peek(1); err == io.EOF {
			break
		}

		reader, err := ipc.NewReader(br, ipc.WithAllocator(alloc))
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrDocumentRead, "failed to open arrow stream %d", len(frames))
		}

		frame, err := arrowFrame(reader)
		reader.Release()
		if err != nil {
			return nil, err
		}
		frames = append(frames, frame)
	}
	return frames, nil
}

func arrowFrame(reader *ipc.Reader) (*types.DataFrame, error) {
	schema := reader.Schema()
	frame := &types.DataFrame{}
	if v, ok := schema.Metadata().GetValue(metaFrameName); ok {
		frame.Name = v
	}
	if v, ok := schema.Metadata().GetValue(metaFrameRefID); ok {
		frame.RefID = v
	}

	for _, f := range schema.Fields() {
		field := &types.Field{
			Name:   f.Name,
			Type:   fieldType(f.Type),
			Values: []interface{}{},
		}
		if v, ok := f.Metadata.GetValue(metaDisplayName); ok {
			field.Config.DisplayName = v
		}
		if v, ok := f.Metadata.GetValue(metaLabels); ok && v != "" {
			if err := json.Unmarshal([]byte(v), &field.Labels); err != nil {
				return nil, errors.Wrapf(err, errors.ErrDocumentRead, "invalid labels on arrow field '%s'", f.Name)
			}
		}
		frame.Fields = append(frame.Fields, field)
	}

	for reader.Next() {
		record := reader.RecordBatch()
		for col := 0; col < int(record.NumCols()); col++ {
			arr := record.Column(col)
			for row := 0; row < arr.Len(); row++ {
				frame.Fields[col].Values = append(frame.Fields[col].Values, arrowValue(arr, row))
			}
		}
	}
	if err := reader.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrDocumentRead, "failed to read arrow records")
	}
	return frame, nil
}

func fieldType(dt arrow.DataType) types.FieldType {
	switch dt.ID() {
	case arrow.TIMESTAMP, arrow.DATE32, arrow.DATE64:
		return types.FieldTypeTime
	case arrow.INT8, arrow.INT16, arrow.INT32, arrow.INT64,
		arrow.UINT8, arrow.UINT16, arrow.UINT32, arrow.UINT64,
		arrow.FLOAT32, arrow.FLOAT64:
		return types.FieldTypeNumber
	case arrow.STRING, arrow.LARGE_STRING:
		return types.FieldTypeString
	case arrow.BOOL:
		return types.FieldTypeBoolean
	}
	return types.FieldTypeOther
}

func arrowValue(arr arrow.Array, idx int) interface{} {
	if arr.IsNull(idx) {
		return nil
	}

	switch a := arr.(type) {
	case *array.Int8:
		return int64(a.Value(idx))
	case *array.Int16:
		return int64(a.Value(idx))
	case *array.Int32:
		return int64(a.Value(idx))
	case *array.Int64:
		return a.Value(idx)
	case *array.Uint8:
		return int64(a.Value(idx))
	case *array.Uint16:
		return int64(a.Value(idx))
	case *array.Uint32:
		return int64(a.Value(idx))
	case *array.Uint64:
		return int64(a.Value(idx))
	case *array.Float32:
		return float64(a.Value(idx))
	case *array.Float64:
		return a.Value(idx)
	case *array.String:
		return a.Value(idx)
	case *array.Boolean:
		return a.Value(idx)
	case *array.Timestamp:
		unit := a.DataType().(*arrow.TimestampType).Unit
		return a.Value(idx).ToTime(unit).UTC()
	}
	return arr.ValueStr(idx)
}

// writeArrowFrames encodes each frame as its own IPC stream
func writeArrowFrames(frames []*types.DataFrame) ([]byte, error) {
	alloc := memory.NewGoAllocator()
	var buf bytes.Buffer

	for i, frame := range frames {
		if frame == nil {
			continue
		}
		if err := writeArrowFrame(&buf, frame, alloc); err != nil {
			return nil, errors.Wrapf(err, errors.ErrDocumentWrite, "failed to encode frame %d as arrow", i)
		}
	}
	return buf.Bytes(), nil
}

func writeArrowFrame(w io.Writer, frame *types.DataFrame, alloc memory.Allocator) error {
	fields := make([]arrow.Field, 0, len(frame.Fields))
	rows := 0
	for _, f := range frame.Fields {
		keys := []string{}
		values := []string{}
		if f.Config.DisplayName != "" {
			keys = append(keys, metaDisplayName)
			values = append(values, f.Config.DisplayName)
		}
		if len(f.Labels) > 0 {
			labels, err := json.Marshal(f.Labels)
			if err != nil {
				return err
			}
			keys = append(keys, metaLabels)
			values = append(values, string(labels))
		}

		fields = append(fields, arrow.Field{
			Name:     f.Name,
			Type:     arrowType(f.Type),
			Nullable: true,
			Metadata: arrow.NewMetadata(keys, values),
		})
		if len(f.Values) > rows {
			rows = len(f.Values)
		}
	}

	meta := arrow.NewMetadata(
		[]string{metaFrameName, metaFrameRefID},
		[]string{frame.Name, frame.RefID},
	)
	schema := arrow.NewSchema(fields, &meta)

	builder := array.NewRecordBuilder(alloc, schema)
	defer builder.Release()

	for col, f := range frame.Fields {
		b := builder.Field(col)
		for row := 0; row < rows; row++ {
			if row >= len(f.Values) || f.Values[row] == nil {
				b.AppendNull()
				continue
			}
			if err := appendValue(b, f.Values[row]); err != nil {
				return errors.Wrapf(err, errors.ErrDocumentWrite, "field '%s' row %d", f.Name, row)
			}
		}
	}

	record := builder.NewRecordBatch()
	defer record.Release()

	writer := ipc.NewWriter(w, ipc.WithSchema(schema), ipc.WithAllocator(alloc))
	if err := writer.Write(record); err != nil {
		writer.Close()
		return err
	}
	return writer.Close()
}

func arrowType(t types.FieldType) arrow.DataType {
	switch t {
	case types.FieldTypeTime:
		return timestampType
	case types.FieldTypeNumber:
		return arrow.PrimitiveTypes.Float64
	case types.FieldTypeBoolean:
		return arrow.FixedWidthTypes.Boolean
	}
	return arrow.BinaryTypes.String
}

func appendValue(b array.Builder, value interface{}) error {
	switch b := b.(type) {
	case *array.Float64Builder:
		f, ok := toFloat(value)
		if !ok {
			return errors.Newf(errors.ErrInvalidInput, "%v is not a number", value)
		}
		b.Append(f)
	case *array.BooleanBuilder:
		v, ok := value.(bool)
		if !ok {
			return errors.Newf(errors.ErrInvalidInput, "%v is not a boolean", value)
		}
		b.Append(v)
	case *array.TimestampBuilder:
		t, ok := toTime(value)
		if !ok {
			return errors.Newf(errors.ErrInvalidInput, "%v is not a time", value)
		}
		ts, err := arrow.TimestampFromTime(t, timestampType.Unit)
		if err != nil {
			return err
		}
		b.Append(ts)
	case *array.StringBuilder:
		b.Append(stringValue(value))
	default:
		return errors.Newf(errors.ErrInternal, "unsupported arrow builder %T", b)
	}
	return nil
}

func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	}
	return 0, false
}

// toTime accepts time values, RFC 3339 strings and epoch milliseconds
func toTime(value interface{}) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case string:
		t, err := time.Parse(time.RFC3339Nano, v)
		return t, err == nil
	}
	if ms, ok := toFloat(value); ok {
		return time.UnixMilli(int64(ms)).UTC(), true
	}
	return time.Time{}, false
}

func stringValue(value interface{}) string {
	if s, ok := value.(string); ok {
		return s
	}
	data, err := json.Marshal(value)
	if err != nil {
		return ""
	}
	return string(data)
}
