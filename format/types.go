package format

type (
	EncodingType    uint8
	CompressionType uint8
)

const (
	TypePlain EncodingType = 0x1 // TypePlain represents plain StreamVByte encoding.
	TypeDelta EncodingType = 0x2 // TypeDelta represents delta StreamVByte encoding for non-decreasing sequences.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (e EncodingType) String() string {
	switch e {
	case TypePlain:
		return "Plain"
	case TypeDelta:
		return "Delta"
	default:
		return "Unknown"
	}
}

// Valid reports whether e is a known encoding type.
func (e EncodingType) Valid() bool {
	return e == TypePlain || e == TypeDelta
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Valid reports whether c is a known compression type.
func (c CompressionType) Valid() bool {
	switch c {
	case CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4:
		return true
	default:
		return false
	}
}
