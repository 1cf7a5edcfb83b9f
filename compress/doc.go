// Package compress provides pluggable compression codecs for frame
// payloads.
//
// Compression here is an outer, opt-in layer: the raw StreamVByte wire
// format never includes entropy coding, and only the frame container
// (which records the compression type in its header) applies these codecs.
//
// Available codecs:
//   - NoOpCompressor: pass-through, the default
//   - ZstdCompressor: best ratio; cgo builds use valyala/gozstd, non-cgo
//     builds fall back to klauspost/compress/zstd
//   - S2Compressor: fastest, snappy-compatible family
//   - LZ4Compressor: fast with moderate ratio
//
// Use CreateCodec or GetCodec with a format.CompressionType to obtain a
// codec:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(payload)
package compress
