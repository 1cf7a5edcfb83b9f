package encoding

import "iter"

type SequenceEncoder[T comparable] interface {
	// Bytes returns the encoded byte slice for everything written so far.
	// The returned slice is valid until the next call to Write, WriteSlice,
	// Reset, or Finish. The caller should not modify the returned slice.
	Bytes() []byte

	// Len returns the number of encoded values.
	Len() int

	// Size returns the size in bytes of the encoded output, i.e. the length
	// of the slice Bytes would return.
	Size() int

	// Reset clears the encoder state for a new sequence while retaining the
	// internal buffers for reuse.
	Reset()

	// Finish finalizes the encoding session and returns buffer resources to
	// the pool.
	//
	// After calling Finish(), the encoder is no longer usable. Any
	// subsequent calls to Write(), WriteSlice(), Bytes(), or Size() will
	// panic due to nil buffers. To encode more data, create a new encoder.
	// Use defer to ensure it is called even in error paths:
	//
	//	encoder := NewUint32Encoder()
	//	defer encoder.Finish()
	Finish()

	// Write encodes a single value.
	//
	// For bulk writes, use WriteSlice for better performance.
	Write(value T)

	// WriteSlice encodes a slice of values.
	WriteSlice(values []T)
}

type SequenceDecoder[T comparable] interface {
	// All returns an iterator that yields all decoded values from the
	// provided encoded data.
	//
	// The data should be the byte slice produced by a corresponding encoder
	// and count the number of values it encodes; the count is out-of-band
	// metadata the format itself does not carry. If the data is truncated
	// the iterator yields fewer than count values.
	All(data []byte, count int) iter.Seq[T]

	// At retrieves the value at the specified zero-based index from the
	// encoded data without decoding the preceding values.
	//
	// The second return value is false if the index is out of bounds or the
	// data is too short.
	At(data []byte, index int, count int) (T, bool)
}
