// Package frame provides a self-describing container around the raw
// StreamVByte format.
//
// The raw format stores no metadata at all: the element count and, for
// delta encoding, the initial seed must travel out of band under the
// caller's care. A frame carries that metadata inline, in a distinct wire
// format that never changes the raw stream itself:
//
//	Frame   := Header Payload
//	Header  := Magic(u16) Encoding(u8) Compression(u8)
//	           Count(u32) Initial(u32) PayloadLen(u32) Checksum(u64)
//	Payload := optionally compressed raw StreamVByte stream
//
// All header fields are little-endian; Checksum is the xxHash64 of the
// stored payload bytes. Decode validates the magic, header fields, payload
// bounds, and checksum before decoding any value, so a frame is the
// defensive counterpart of the raw format's trusted-caller contract.
//
// Example:
//
//	data, err := frame.Encode(timestamps,
//	    frame.WithDelta(0),
//	    frame.WithCompression(format.CompressionZstd),
//	)
//	if err != nil {
//	    return err
//	}
//
//	values, err := frame.Decode(data)
package frame
