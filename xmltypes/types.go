package xmltypes

// RawDocument holds a pre-encoded xml payload for structs and handlers that
// relay documents without re-binding them. The engine writes this data
// verbatim when encoding and captures the unparsed body when decoding into a
// *RawDocument receiver.
type RawDocument []byte
