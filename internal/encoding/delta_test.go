package encoding

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/svbyte/errs"
)

func TestEncodeDeltaInto_GoldenBytes(t *testing.T) {
	// Differences are [1,1,42,10,379,101]; only 379 needs two bytes.
	input := []uint32{1, 2, 44, 54, 433, 534}
	output := make([]byte, MaxCompressedLen(len(input)))

	n, err := EncodeDeltaInto(input, output, 0)
	require.NoError(t, err)
	require.Equal(t, 9, n)

	want := []byte{
		0x00,       // codes 0,0,0,0 for [1,1,42,10]
		0x01,       // codes 1,0 for [379,101], upper slots zero
		0x01,       // 1
		0x01,       // 1
		0x2A,       // 42
		0x0A,       // 10
		0x7B, 0x01, // 379 little-endian
		0x65, // 101
	}
	require.Equal(t, want, output[:n])

	recovered := make([]uint32, len(input))
	consumed := DecodeDelta(output[:n], recovered, 0)
	require.Equal(t, n, consumed)
	require.Equal(t, input, recovered)
}

func TestEncodeDeltaInto_NonZeroInitial(t *testing.T) {
	input := []uint32{100, 101, 150, 150, 4096}
	const initial = 100

	output := make([]byte, MaxCompressedLen(len(input)))
	n, err := EncodeDeltaInto(input, output, initial)
	require.NoError(t, err)

	recovered := make([]uint32, len(input))
	consumed := DecodeDelta(output[:n], recovered, initial)
	require.Equal(t, n, consumed)
	require.Equal(t, input, recovered)
}

func TestEncodeDeltaInto_Empty(t *testing.T) {
	n, err := EncodeDeltaInto(nil, nil, 0)
	require.NoError(t, err)
	require.Equal(t, 0, n)

	require.Equal(t, 0, DecodeDelta(nil, nil, 99))
}

func TestEncodeDeltaInto_InsufficientBuffer(t *testing.T) {
	input := []uint32{1, 2, 3, 4, 5}
	need := MaxCompressedLen(len(input))
	output := make([]byte, need-1)

	n, err := EncodeDeltaInto(input, output, 0)
	require.Equal(t, 0, n)
	require.ErrorIs(t, err, errs.ErrInsufficientBuffer)

	var bufErr *errs.InsufficientBufferError
	require.ErrorAs(t, err, &bufErr)
	require.Equal(t, need-1, bufErr.Have)
	require.Equal(t, need, bufErr.Need)
}

func TestEncodeDeltaInto_DoesNotMutateInput(t *testing.T) {
	input := []uint32{5, 10, 20, 40, 80}
	orig := append([]uint32(nil), input...)

	output := make([]byte, MaxCompressedLen(len(input)))
	_, err := EncodeDeltaInto(input, output, 0)
	require.NoError(t, err)
	require.Equal(t, orig, input)
}

func TestDeltaRoundTrip_WraparoundStillExact(t *testing.T) {
	// Violating the non-decreasing precondition wraps the differences
	// modulo 2^32; the round trip must still be exact.
	input := []uint32{10, 5, 3, 1<<32 - 1, 0}
	const initial = 100 // larger than input[0]

	output := make([]byte, MaxCompressedLen(len(input)))
	n, err := EncodeDeltaInto(input, output, initial)
	require.NoError(t, err)

	recovered := make([]uint32, len(input))
	consumed := DecodeDelta(output[:n], recovered, initial)
	require.Equal(t, n, consumed)
	require.Equal(t, input, recovered)
}

func TestDeltaRoundTrip_RandomGaps(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const count = 10000

	for bits := 1; bits <= 16; bits++ {
		input := randomNonDecreasing(rng, bits, count)

		output := make([]byte, MaxCompressedLen(count))
		n, err := EncodeDeltaInto(input, output, 0)
		require.NoError(t, err)

		recovered := make([]uint32, count)
		consumed := DecodeDelta(output[:n], recovered, 0)
		require.Equal(t, n, consumed, "bits=%d", bits)
		require.Equal(t, input, recovered, "bits=%d", bits)
	}
}

func TestDeltaCompressesBetterThanPlain(t *testing.T) {
	// Large but closely spaced values: plain needs 4 bytes each,
	// deltas fit in 1-2 bytes.
	input := make([]uint32, 1024)
	base := uint32(1 << 30)
	for i := range input {
		base += uint32(i % 7)
		input[i] = base
	}

	plain := make([]byte, MaxCompressedLen(len(input)))
	plainLen, err := EncodeInto(input, plain)
	require.NoError(t, err)

	delta := make([]byte, MaxCompressedLen(len(input)))
	deltaLen, err := EncodeDeltaInto(input, delta, input[0])
	require.NoError(t, err)

	require.Less(t, deltaLen, plainLen)
}

// randomNonDecreasing generates count values with gaps uniform in [0, 2^bits).
func randomNonDecreasing(rng *rand.Rand, bits int, count int) []uint32 {
	maxGap := uint64(1) << uint(bits)
	input := make([]uint32, count)
	var prev uint32
	for i := range input {
		prev += uint32(rng.Uint64() % maxGap)
		input[i] = prev
	}

	return input
}
