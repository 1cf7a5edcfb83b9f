package svbyte_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/svbyte"
	"github.com/arloliu/svbyte/errs"
)

func TestEncode_ReferenceSequence(t *testing.T) {
	encoded := svbyte.Encode([]uint32{1, 2, 44, 5123, 43, 534})
	require.Len(t, encoded, 10)
}

func TestEncodeInto_ReferenceSequence(t *testing.T) {
	input := []uint32{1, 2, 44, 5123, 43, 534}
	buf := make([]byte, svbyte.MaxCompressedLen(len(input)))

	n, err := svbyte.EncodeInto(input, buf)
	require.NoError(t, err)
	require.Equal(t, 10, n)

	// The bounded and allocating variants produce identical bytes.
	require.Equal(t, svbyte.Encode(input), buf[:n])
}

func TestEncodeDelta_ReferenceSequence(t *testing.T) {
	encoded := svbyte.EncodeDelta([]uint32{1, 2, 44, 54, 433, 534}, 0)
	require.Len(t, encoded, 9)
}

func TestMaxCompressedLen(t *testing.T) {
	require.Equal(t, 0, svbyte.MaxCompressedLen(0))
	require.Equal(t, 26, svbyte.MaxCompressedLen(6))
	require.Equal(t, 17, svbyte.MaxCompressedLen(4))
}

func TestRoundTrip(t *testing.T) {
	input := []uint32{1, 2, 44, 5123, 43, 534}
	encoded := svbyte.Encode(input)

	recovered := make([]uint32, len(input))
	consumed := svbyte.Decode(encoded, recovered)

	require.Equal(t, len(encoded), consumed)
	require.Equal(t, input, recovered)
}

func TestRoundTrip_Empty(t *testing.T) {
	encoded := svbyte.Encode(nil)
	require.Empty(t, encoded)

	require.Equal(t, 0, svbyte.Decode(encoded, nil))
}

func TestRoundTrip_AllZeros(t *testing.T) {
	input := []uint32{0, 0, 0, 0}
	encoded := svbyte.Encode(input)
	require.Len(t, encoded, 5)

	recovered := make([]uint32, 4)
	require.Equal(t, 5, svbyte.Decode(encoded, recovered))
	require.Equal(t, input, recovered)
}

func TestRoundTrip_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(15))
	const count = 10000

	for bits := 1; bits <= 32; bits++ {
		maxVal := uint64(1) << uint(bits)
		input := make([]uint32, count)
		for i := range input {
			input[i] = uint32(rng.Uint64() % maxVal)
		}

		encoded := svbyte.Encode(input)
		require.LessOrEqual(t, len(encoded), svbyte.MaxCompressedLen(count))

		recovered := make([]uint32, count)
		consumed := svbyte.Decode(encoded, recovered)
		require.Equal(t, len(encoded), consumed, "bits=%d", bits)
		require.Equal(t, input, recovered, "bits=%d", bits)
	}
}

func TestDeltaRoundTrip_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(16))
	const count = 10000

	for bits := 1; bits <= 16; bits++ {
		maxGap := uint64(1) << uint(bits)
		input := make([]uint32, count)
		var prev uint32
		for i := range input {
			prev += uint32(rng.Uint64() % maxGap)
			input[i] = prev
		}

		encoded := svbyte.EncodeDelta(input, 0)

		recovered := make([]uint32, count)
		consumed := svbyte.DecodeDelta(encoded, recovered, 0)
		require.Equal(t, len(encoded), consumed, "bits=%d", bits)
		require.Equal(t, input, recovered, "bits=%d", bits)
	}
}

func TestDeltaRoundTrip_NonZeroInitial(t *testing.T) {
	input := []uint32{1000, 1001, 1500, 2000, 2000, 70000}
	const initial = 1000

	encoded := svbyte.EncodeDelta(input, initial)

	recovered := make([]uint32, len(input))
	consumed := svbyte.DecodeDelta(encoded, recovered, initial)
	require.Equal(t, len(encoded), consumed)
	require.Equal(t, input, recovered)
}

func TestEncodeInto_BufferTooSmall(t *testing.T) {
	for count := 1; count <= 9; count++ {
		input := make([]uint32, count)
		need := svbyte.MaxCompressedLen(count)
		buf := make([]byte, need-1)

		n, err := svbyte.EncodeInto(input, buf)
		require.Zero(t, n, "count=%d", count)
		require.ErrorIs(t, err, errs.ErrInsufficientBuffer, "count=%d", count)

		var bufErr *errs.InsufficientBufferError
		require.ErrorAs(t, err, &bufErr)
		require.Equal(t, need-1, bufErr.Have)
		require.Equal(t, need, bufErr.Need)
	}
}

func TestEncodeDeltaInto_BufferTooSmall(t *testing.T) {
	input := []uint32{1, 2, 3, 4, 5, 6}
	need := svbyte.MaxCompressedLen(len(input))
	buf := make([]byte, need-1)

	n, err := svbyte.EncodeDeltaInto(input, buf, 0)
	require.Zero(t, n)
	require.ErrorIs(t, err, errs.ErrInsufficientBuffer)
}

func TestEncodeInto_OversizedBuffer(t *testing.T) {
	input := []uint32{7, 8, 9}
	buf := make([]byte, svbyte.MaxCompressedLen(len(input))+100)

	n, err := svbyte.EncodeInto(input, buf)
	require.NoError(t, err)
	require.Equal(t, 4, n) // 1 control byte + 3 one-byte values

	recovered := make([]uint32, 3)
	require.Equal(t, n, svbyte.Decode(buf[:n], recovered))
	require.Equal(t, input, recovered)
}

func TestEncode_ConcurrentCalls(t *testing.T) {
	input := make([]uint32, 4096)
	for i := range input {
		input[i] = uint32(i * 17)
	}
	want := svbyte.Encode(input)

	results := make(chan []byte, 8)
	for g := 0; g < 8; g++ {
		go func() {
			var last []byte
			for i := 0; i < 50; i++ {
				last = svbyte.Encode(input)
			}
			results <- last
		}()
	}
	for g := 0; g < 8; g++ {
		require.Equal(t, want, <-results)
	}
}
