// Package errs defines the sentinel errors shared across the svbyte packages.
//
// Callers should match errors with errors.Is rather than comparing strings:
//
//	n, err := svbyte.EncodeInto(values, buf)
//	if errors.Is(err, errs.ErrInsufficientBuffer) {
//	    buf = make([]byte, svbyte.MaxCompressedLen(len(values)))
//	    n, err = svbyte.EncodeInto(values, buf)
//	}
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientBuffer indicates the caller-supplied output buffer is
	// smaller than MaxCompressedLen for the input length. Nothing has been
	// written to the buffer when this error is returned.
	ErrInsufficientBuffer = errors.New("insufficient output buffer")

	// ErrInvalidMagic indicates frame data does not start with the frame magic number.
	ErrInvalidMagic = errors.New("invalid frame magic")

	// ErrInvalidHeaderSize indicates frame data is shorter than the fixed frame header.
	ErrInvalidHeaderSize = errors.New("invalid frame header size")

	// ErrPayloadTruncated indicates the frame payload is shorter than the
	// length recorded in the frame header.
	ErrPayloadTruncated = errors.New("frame payload truncated")

	// ErrPayloadCorrupted indicates the frame payload's control stream does
	// not account for exactly the payload bytes present, so the recorded
	// value count and the payload disagree.
	ErrPayloadCorrupted = errors.New("frame payload corrupted")

	// ErrChecksumMismatch indicates the frame payload checksum does not match
	// the checksum recorded in the frame header.
	ErrChecksumMismatch = errors.New("frame checksum mismatch")

	// ErrInvalidEncodingType indicates an unknown encoding type in a frame header.
	ErrInvalidEncodingType = errors.New("invalid encoding type")

	// ErrInvalidCompressionType indicates an unknown compression type in a frame header.
	ErrInvalidCompressionType = errors.New("invalid compression type")
)

// InsufficientBufferError reports the supplied and required byte counts when
// an output buffer is too small for a bounded encode operation.
//
// It unwraps to ErrInsufficientBuffer so callers can match it with errors.Is
// without inspecting the counts.
type InsufficientBufferError struct {
	// Have is the length of the buffer the caller supplied.
	Have int
	// Need is the minimum buffer length the operation requires,
	// i.e. MaxCompressedLen of the input length.
	Need int
}

// NewInsufficientBuffer creates an InsufficientBufferError with the supplied
// and required lengths.
func NewInsufficientBuffer(have, need int) *InsufficientBufferError {
	return &InsufficientBufferError{Have: have, Need: need}
}

func (e *InsufficientBufferError) Error() string {
	return fmt.Sprintf("%s: have %d bytes, need %d bytes", ErrInsufficientBuffer.Error(), e.Have, e.Need)
}

func (e *InsufficientBufferError) Unwrap() error {
	return ErrInsufficientBuffer
}
