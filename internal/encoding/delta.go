package encoding

import (
	"github.com/arloliu/svbyte/errs"
	"github.com/arloliu/svbyte/internal/pool"
)

// EncodeDeltaInto encodes input as successive differences seeded by initial,
// then runs the plain encoder over the transformed sequence. It returns the
// number of bytes written, or errs.InsufficientBufferError (before writing
// any byte) if output is shorter than MaxCompressedLen(len(input)).
//
// All arithmetic is unsigned modulo 2^32. If initial exceeds input[0], or
// input is not non-decreasing, the differences wrap around and compress
// poorly, but DecodeDelta still reverses them exactly.
func EncodeDeltaInto(input []uint32, output []byte, initial uint32) (int, error) {
	need := MaxCompressedLen(len(input))
	if len(output) < need {
		return 0, errs.NewInsufficientBuffer(len(output), need)
	}

	if len(input) == 0 {
		return 0, nil
	}

	deltas, cleanup := pool.GetUint32Slice(len(input))
	defer cleanup()

	prev := initial
	for i, v := range input {
		deltas[i] = v - prev
		prev = v
	}

	return encode(deltas, output), nil
}

// DecodeDelta decodes len(output) differences from input and reverses the
// delta transform in place with a prefix sum seeded by initial. It returns
// the number of input bytes consumed.
//
// The same output-length precondition as Decode applies.
func DecodeDelta(input []byte, output []uint32, initial uint32) int {
	n := Decode(input, output)

	prev := initial
	for i, d := range output {
		prev += d
		output[i] = prev
	}

	return n
}
