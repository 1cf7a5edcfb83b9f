package frame

import (
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/svbyte/compress"
	"github.com/arloliu/svbyte/errs"
	"github.com/arloliu/svbyte/format"
	ienc "github.com/arloliu/svbyte/internal/encoding"
	"github.com/arloliu/svbyte/internal/pool"
)

// Option configures frame encoding.
type Option func(*config)

type config struct {
	encoding    format.EncodingType
	compression format.CompressionType
	initial     uint32
}

// WithDelta selects delta encoding for the payload, seeded by initial.
// The values must be non-decreasing and initial must not exceed the first
// value; see svbyte.EncodeDelta for the consequences of violating that.
func WithDelta(initial uint32) Option {
	return func(c *config) {
		c.encoding = format.TypeDelta
		c.initial = initial
	}
}

// WithCompression selects the payload compression codec.
// The default is format.CompressionNone.
func WithCompression(compression format.CompressionType) Option {
	return func(c *config) {
		c.compression = compression
	}
}

// Encode encodes values into a self-describing frame: a fixed header
// carrying the value count, encoding and compression types, delta seed,
// payload length, and an xxHash64 payload checksum, followed by the
// optionally compressed StreamVByte payload.
func Encode(values []uint32, opts ...Option) ([]byte, error) {
	data, _, err := EncodeWithStats(values, opts...)
	return data, err
}

// EncodeWithStats is Encode plus compression statistics for the payload.
func EncodeWithStats(values []uint32, opts ...Option) ([]byte, compress.CompressionStats, error) {
	cfg := config{
		encoding:    format.TypePlain,
		compression: format.CompressionNone,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	var stats compress.CompressionStats

	if uint64(len(values)) > math.MaxUint32 {
		return nil, stats, fmt.Errorf("frame encode: %d values exceed the uint32 count limit", len(values))
	}

	codec, err := compress.CreateCodec(cfg.compression, "frame payload")
	if err != nil {
		return nil, stats, err
	}

	scratch := pool.GetScratchBuffer()
	defer pool.PutScratchBuffer(scratch)

	scratch.Resize(ienc.MaxCompressedLen(len(values)))

	// Scratch is sized to the encoder's maximum, the error paths are unreachable.
	var n int
	if cfg.encoding == format.TypeDelta {
		n, _ = ienc.EncodeDeltaInto(values, scratch.B, cfg.initial)
	} else {
		n, _ = ienc.EncodeInto(values, scratch.B)
	}
	payload := scratch.B[:n]

	stored, err := codec.Compress(payload)
	if err != nil {
		return nil, stats, fmt.Errorf("frame payload compression: %w", err)
	}
	if uint64(len(stored)) > math.MaxUint32 {
		return nil, stats, fmt.Errorf("frame encode: compressed payload of %d bytes exceeds the uint32 length limit", len(stored))
	}

	stats = compress.CompressionStats{
		Algorithm:      cfg.compression,
		OriginalSize:   int64(len(payload)),
		CompressedSize: int64(len(stored)),
	}

	hdr := Header{
		Magic:       Magic,
		Encoding:    cfg.encoding,
		Compression: cfg.compression,
		Count:       uint32(len(values)),
		Initial:     cfg.initial,
		PayloadLen:  uint32(len(stored)),
		Checksum:    xxhash.Sum64(stored),
	}

	out := make([]byte, 0, HeaderSize+len(stored))
	out = append(out, hdr.Bytes()...)
	out = append(out, stored...)

	return out, stats, nil
}

// Decode parses a frame and returns the recovered values in a newly
// allocated slice.
//
// Unlike the raw format, frames are defensive: the magic, header fields,
// payload bounds, and checksum are all validated before any value is
// decoded, and the payload's control stream must account for exactly the
// payload bytes present.
func Decode(data []byte) ([]uint32, error) {
	return DecodeInto(data, nil)
}

// DecodeInto is Decode writing into dst when its capacity suffices,
// allocating otherwise. Returns the decoded values.
func DecodeInto(data []byte, dst []uint32) ([]uint32, error) {
	var hdr Header
	if err := hdr.Parse(data); err != nil {
		return nil, err
	}

	payload := data[HeaderSize:]
	if len(payload) < int(hdr.PayloadLen) {
		return nil, fmt.Errorf("%w: header records %d payload bytes, %d present",
			errs.ErrPayloadTruncated, hdr.PayloadLen, len(payload))
	}
	payload = payload[:hdr.PayloadLen]

	if sum := xxhash.Sum64(payload); sum != hdr.Checksum {
		return nil, fmt.Errorf("%w: header 0x%016x, payload 0x%016x",
			errs.ErrChecksumMismatch, hdr.Checksum, sum)
	}

	codec, err := compress.CreateCodec(hdr.Compression, "frame payload")
	if err != nil {
		return nil, err
	}

	raw, err := codec.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("frame payload decompression: %w", err)
	}

	count := int(hdr.Count)
	size, ok := encodedSize(raw, count)
	if !ok {
		return nil, fmt.Errorf("%w: %d values need a %d byte control stream, payload has %d bytes",
			errs.ErrPayloadCorrupted, count, ienc.ControlLen(count), len(raw))
	}
	if size != len(raw) {
		return nil, fmt.Errorf("%w: %d values need %d payload bytes, have %d",
			errs.ErrPayloadCorrupted, count, size, len(raw))
	}

	if cap(dst) < count {
		dst = make([]uint32, count)
	} else {
		dst = dst[:count]
	}

	if hdr.Encoding == format.TypeDelta {
		ienc.DecodeDelta(raw, dst, hdr.Initial)
	} else {
		ienc.Decode(raw, dst)
	}

	return dst, nil
}

// encodedSize walks the control stream and returns the exact encoded size
// of a stream holding count values, without touching the data bytes.
// Returns false if the data cannot hold the control stream itself.
func encodedSize(data []byte, count int) (int, bool) {
	ctrlLen := ienc.ControlLen(count)
	if len(data) < ctrlLen {
		return 0, false
	}

	total := ctrlLen
	quads := count / ienc.GroupSize
	for i := 0; i < quads; i++ {
		total += ienc.ControlBlockSize(data[i])
	}
	if rem := count % ienc.GroupSize; rem != 0 {
		ctrl := data[quads]
		for i := 0; i < rem; i++ {
			total += ienc.CodeAt(ctrl, i)
		}
	}

	return total, true
}
