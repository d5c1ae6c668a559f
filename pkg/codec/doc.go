// Package codec reads and writes field config and frame documents.
//
// The format follows the file extension: .json, .yaml/.yml, .toml,
// .msgpack and, for frames only, .arrow (Arrow IPC stream, one stream per
// frame). Any of them may carry an extra .zst suffix for zstd compression.
//
// Frame documents in the text formats and msgpack are a table with a single
// "frames" key. Arrow frames store the frame name and refId in the schema
// metadata keys "name" and "refId", and the field display name and labels in
// the field metadata keys "displayName" and "labels".
package codec
