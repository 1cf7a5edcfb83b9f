// Package svbyte packs sequences of uint32 values into a compact
// StreamVByte byte stream and restores them exactly, in O(n) time.
//
// The format splits the output into a control stream and a data stream.
// Every group of four values shares one control byte holding four 2-bit
// length codes; each value then stores only its minimal little-endian
// bytes, so small values cost a single byte plus two control bits. The
// control/data split keeps full-quad decoding branch-predictable, which is
// what makes the format attractive for decode-heavy workloads such as
// inverted-index posting lists and timestamp columns.
//
// The encoded buffer carries no element count. Callers must persist the
// original length (and, for the delta variant, the initial seed) out of
// band and supply them identically at decode time. The frame subpackage
// provides a separate, self-describing container for callers who want that
// metadata carried inline.
//
// # Basic Usage
//
// Encode a slice into a new buffer:
//
//	encoded := svbyte.Encode([]uint32{1, 2, 44, 5123, 43, 534})
//
// ...or into an existing buffer sized with MaxCompressedLen:
//
//	buf := make([]byte, svbyte.MaxCompressedLen(len(values)))
//	n, err := svbyte.EncodeInto(values, buf)
//
// Decoding writes into a caller-supplied slice whose length must equal the
// original element count:
//
//	recovered := make([]uint32, 6)
//	consumed := svbyte.Decode(encoded, recovered)
//
// Non-decreasing sequences compress better through the delta variant,
// which encodes successive differences relative to an initial seed:
//
//	encoded := svbyte.EncodeDelta(timestamps, 0)
//	recovered := make([]uint32, len(timestamps))
//	svbyte.DecodeDelta(encoded, recovered, 0)
//
// # Concurrency
//
// All functions are stateless between calls. Concurrent calls on disjoint
// buffers are safe without locking; input and output buffers of a single
// call must not alias.
package svbyte

import (
	"github.com/arloliu/svbyte/internal/encoding"
	"github.com/arloliu/svbyte/internal/pool"
)

// MaxCompressedLen returns the maximum number of bytes Encode can produce
// for count values: ceil(count/4) control bytes plus up to four data bytes
// per value. Size an EncodeInto destination with this before encoding.
func MaxCompressedLen(count int) int {
	return encoding.MaxCompressedLen(count)
}

// Encode encodes input into a newly allocated buffer of exactly the
// compressed size. It never fails; an empty input yields an empty buffer.
func Encode(input []uint32) []byte {
	scratch := pool.GetScratchBuffer()
	defer pool.PutScratchBuffer(scratch)

	scratch.Resize(encoding.MaxCompressedLen(len(input)))

	// Size is sufficient by construction, the error path is unreachable.
	n, _ := encoding.EncodeInto(input, scratch.B)

	out := make([]byte, n)
	copy(out, scratch.B[:n])

	return out
}

// EncodeInto encodes input into output and returns the number of bytes
// written, which may be less than len(output).
//
// It fails with an error matching errs.ErrInsufficientBuffer, before any
// byte is written, if len(output) < MaxCompressedLen(len(input)). The
// typed *errs.InsufficientBufferError carries the supplied and required
// lengths so the caller can resize and retry.
func EncodeInto(input []uint32, output []byte) (int, error) {
	return encoding.EncodeInto(input, output)
}

// Decode decodes len(output) values from input into output and returns the
// number of input bytes consumed.
//
// len(output) must equal the element count of the original encode; the
// stream stores no count, so a mismatch cannot be detected and makes the
// result unspecified (input may be under- or over-read). With the correct
// length, Decode never reads past the encoded buffer and the consumed byte
// count equals its length.
func Decode(input []byte, output []uint32) int {
	return encoding.Decode(input, output)
}

// EncodeDelta encodes a non-decreasing input as successive differences
// seeded by initial, into a newly allocated buffer of exactly the
// compressed size.
//
// initial must not exceed input[0] when input is non-empty. If that, or
// the non-decreasing requirement, is violated the differences wrap around
// modulo 2^32 and compression quality is undefined, but DecodeDelta with
// the same initial still reproduces input exactly.
func EncodeDelta(input []uint32, initial uint32) []byte {
	scratch := pool.GetScratchBuffer()
	defer pool.PutScratchBuffer(scratch)

	scratch.Resize(encoding.MaxCompressedLen(len(input)))

	n, _ := encoding.EncodeDeltaInto(input, scratch.B, initial)

	out := make([]byte, n)
	copy(out, scratch.B[:n])

	return out
}

// EncodeDeltaInto is the buffer-bounded variant of EncodeDelta. It has the
// same sizing and failure behavior as EncodeInto and the same initial-seed
// requirements as EncodeDelta.
func EncodeDeltaInto(input []uint32, output []byte, initial uint32) (int, error) {
	return encoding.EncodeDeltaInto(input, output, initial)
}

// DecodeDelta decodes len(output) differences from input, reverses the
// delta transform in place with a prefix sum seeded by initial, and
// returns the number of input bytes consumed.
//
// initial must equal the seed passed to EncodeDelta, and the same
// output-length precondition as Decode applies.
func DecodeDelta(input []byte, output []uint32, initial uint32) int {
	return encoding.DecodeDelta(input, output, initial)
}
