package compress

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/svbyte"
	"github.com/arloliu/svbyte/format"
)

func testPayload(t *testing.T) []byte {
	t.Helper()

	rng := rand.New(rand.NewSource(10))
	values := make([]uint32, 4096)
	var prev uint32
	for i := range values {
		prev += uint32(rng.Intn(64))
		values[i] = prev
	}

	return svbyte.EncodeDelta(values, 0)
}

func TestCreateCodec(t *testing.T) {
	tests := []struct {
		compression format.CompressionType
	}{
		{compression: format.CompressionNone},
		{compression: format.CompressionZstd},
		{compression: format.CompressionS2},
		{compression: format.CompressionLZ4},
	}

	for _, tt := range tests {
		codec, err := CreateCodec(tt.compression, "payload")
		require.NoError(t, err, "compression=%s", tt.compression)
		require.NotNil(t, codec)
	}

	_, err := CreateCodec(format.CompressionType(0xEE), "payload")
	require.Error(t, err)
}

func TestGetCodec_Invalid(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0xEE))
	require.Error(t, err)
}

func TestCodecs_RoundTrip(t *testing.T) {
	payload := testPayload(t)

	for _, compression := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(compression)
		require.NoError(t, err)

		compressed, err := codec.Compress(payload)
		require.NoError(t, err, "compression=%s", compression)

		decompressed, err := codec.Decompress(compressed)
		require.NoError(t, err, "compression=%s", compression)
		require.Equal(t, payload, decompressed, "compression=%s", compression)
	}
}

func TestCodecs_EmptyInput(t *testing.T) {
	for _, compression := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(compression)
		require.NoError(t, err)

		compressed, err := codec.Compress(nil)
		require.NoError(t, err)
		require.Empty(t, compressed)

		decompressed, err := codec.Decompress(nil)
		require.NoError(t, err)
		require.Empty(t, decompressed)
	}
}

func TestNoOp_ReturnsCopy(t *testing.T) {
	codec := NewNoOpCompressor()
	data := []byte{1, 2, 3}

	out, err := codec.Compress(data)
	require.NoError(t, err)
	require.Equal(t, data, out)

	out[0] = 0xFF
	require.Equal(t, byte(1), data[0])
}

func TestCompressionStats(t *testing.T) {
	stats := CompressionStats{
		Algorithm:      format.CompressionZstd,
		OriginalSize:   1000,
		CompressedSize: 250,
	}

	require.InDelta(t, 0.25, stats.CompressionRatio(), 1e-9)
	require.InDelta(t, 75.0, stats.SpaceSavings(), 1e-9)

	empty := CompressionStats{}
	require.Zero(t, empty.CompressionRatio())
}
