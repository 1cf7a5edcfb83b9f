package encoding

import (
	"github.com/arloliu/svbyte/errs"
)

// MaxCompressedLen returns the maximum number of bytes an encode of count
// values can produce: one control byte per quad plus up to four data bytes
// per value.
func MaxCompressedLen(count int) int {
	return ControlLen(count) + count*MaxBytesPerValue
}

// EncodeInto encodes input into output and returns the number of bytes
// written. It fails with errs.InsufficientBufferError, before writing any
// byte, if output is shorter than MaxCompressedLen(len(input)).
func EncodeInto(input []uint32, output []byte) (int, error) {
	need := MaxCompressedLen(len(input))
	if len(output) < need {
		return 0, errs.NewInsufficientBuffer(len(output), need)
	}

	return encode(input, output), nil
}

// encode writes the control and data streams for input into output, which
// must hold at least MaxCompressedLen(len(input)) bytes. Returns the number
// of bytes written.
//
// The control byte for each quad is accumulated two bits at a time and
// flushed when full; the final, possibly partial, control byte is flushed
// after the loop with its unused slots zero.
func encode(input []uint32, output []byte) int {
	if len(input) == 0 {
		return 0
	}

	dataPos := ControlLen(len(input))
	keyPos := 0

	var key byte
	var shift uint

	for _, v := range input {
		if shift == 8 {
			output[keyPos] = key
			keyPos++
			key = 0
			shift = 0
		}

		length := EncodedLength(v)
		key |= byte(length-1) << shift
		shift += 2

		PutValue(output[dataPos:], v, length)
		dataPos += length
	}
	output[keyPos] = key

	return dataPos
}

// Decode decodes len(output) values from input and returns the number of
// input bytes consumed.
//
// The caller must size output to the original element count; the stream
// carries no count of its own, so a mismatch makes the control stream
// boundary wrong and the result unspecified.
func Decode(input []byte, output []uint32) int {
	count := len(output)
	if count == 0 {
		return 0
	}

	quads := count / GroupSize
	pos := ControlLen(count)
	oi := 0

	for q := 0; q < quads; q++ {
		ctrl := input[q]
		for i := 0; i < GroupSize; i++ {
			length := CodeAt(ctrl, i)
			output[oi] = ReadValue(input[pos:], length)
			pos += length
			oi++
		}
	}

	if rem := count % GroupSize; rem != 0 {
		ctrl := input[quads]
		for i := 0; i < rem; i++ {
			length := CodeAt(ctrl, i)
			output[oi] = ReadValue(input[pos:], length)
			pos += length
			oi++
		}
	}

	return pos
}

// PutValue writes the length least-significant bytes of v to dst in
// little-endian order. High-order zero bytes are omitted, not padded.
func PutValue(dst []byte, v uint32, length int) {
	switch length {
	case 1:
		dst[0] = byte(v)
	case 2:
		dst[0] = byte(v)
		dst[1] = byte(v >> 8)
	case 3:
		dst[0] = byte(v)
		dst[1] = byte(v >> 8)
		dst[2] = byte(v >> 16)
	case 4:
		dst[0] = byte(v)
		dst[1] = byte(v >> 8)
		dst[2] = byte(v >> 16)
		dst[3] = byte(v >> 24)
	}
}

// ReadValue reads a little-endian value of the given byte length from src,
// zero-extended to 32 bits.
func ReadValue(src []byte, length int) uint32 {
	switch length {
	case 1:
		return uint32(src[0])
	case 2:
		return uint32(src[0]) | uint32(src[1])<<8
	case 3:
		return uint32(src[0]) | uint32(src[1])<<8 | uint32(src[2])<<16
	case 4:
		return uint32(src[0]) | uint32(src[1])<<8 | uint32(src[2])<<16 | uint32(src[3])<<24
	}

	return 0
}
