// Package encoding provides streaming and random-access APIs over the
// StreamVByte format.
//
// The one-shot functions in the root svbyte package are the simplest way to
// encode or decode a whole slice. This package serves two other access
// patterns:
//
//   - Uint32Encoder accumulates values incrementally when the sequence is
//     not available as a single slice, producing output byte-for-byte
//     identical to the one-shot encoder.
//   - Uint32Decoder iterates lazily over an encoded stream (All) or fetches
//     a single value by index (At) without decoding its predecessors.
//
// The generic SequenceEncoder and SequenceDecoder interfaces describe these
// capabilities for custom implementations.
//
// Example:
//
//	encoder := encoding.NewUint32Encoder()
//	defer encoder.Finish()
//
//	for _, v := range values {
//	    encoder.Write(v)
//	}
//	data := encoder.Bytes()
//
//	decoder := encoding.NewUint32Decoder()
//	for v := range decoder.All(data, encoder.Len()) {
//	    fmt.Println(v)
//	}
package encoding
