package compress

// ZstdCompressor provides Zstandard compression, the best-ratio codec in
// this package. Suitable when frames are written once and read rarely, or
// transmitted over constrained links.
//
// The implementation is selected at build time: cgo builds use the native
// libzstd bindings (valyala/gozstd), non-cgo builds use the pure Go
// implementation from klauspost/compress. The two produce interchangeable
// Zstandard streams.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
