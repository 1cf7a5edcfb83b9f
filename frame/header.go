package frame

import (
	"fmt"

	"github.com/arloliu/svbyte/endian"
	"github.com/arloliu/svbyte/errs"
	"github.com/arloliu/svbyte/format"
)

const (
	// Magic identifies a svbyte frame. Stored little-endian in the first
	// two header bytes.
	Magic uint16 = 0x5642

	// HeaderSize is the fixed size of the frame header in bytes.
	HeaderSize = 24
)

// Header is the fixed-size header at the start of a frame.
//
// The raw StreamVByte format deliberately carries no metadata; the frame
// header is where the out-of-band element count, delta seed, and payload
// integrity live for callers who want them stored inline.
type Header struct {
	// Magic is the frame magic number. byte offset 0-1
	Magic uint16
	// Encoding is the payload encoding type. byte offset 2
	Encoding format.EncodingType
	// Compression is the payload compression type. byte offset 3
	Compression format.CompressionType
	// Count is the number of encoded values. byte offset 4-7
	Count uint32
	// Initial is the delta seed; zero for plain encoding. byte offset 8-11
	Initial uint32
	// PayloadLen is the stored (post-compression) payload length. byte offset 12-15
	PayloadLen uint32
	// Checksum is the xxHash64 of the stored payload bytes. byte offset 16-23
	Checksum uint64
}

// All header fields are serialized little-endian regardless of host order.
var engine = endian.GetLittleEndianEngine()

// Parse parses and validates the header from a byte slice of at least
// HeaderSize bytes.
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: have %d bytes, need %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	h.Magic = engine.Uint16(data[0:2])
	if h.Magic != Magic {
		return fmt.Errorf("%w: 0x%04x", errs.ErrInvalidMagic, h.Magic)
	}

	h.Encoding = format.EncodingType(data[2])
	h.Compression = format.CompressionType(data[3])
	h.Count = engine.Uint32(data[4:8])
	h.Initial = engine.Uint32(data[8:12])
	h.PayloadLen = engine.Uint32(data[12:16])
	h.Checksum = engine.Uint64(data[16:24])

	return h.validate()
}

// Bytes serializes the header into a new HeaderSize byte slice.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	engine.PutUint16(b[0:2], h.Magic)
	b[2] = byte(h.Encoding)
	b[3] = byte(h.Compression)
	engine.PutUint32(b[4:8], h.Count)
	engine.PutUint32(b[8:12], h.Initial)
	engine.PutUint32(b[12:16], h.PayloadLen)
	engine.PutUint64(b[16:24], h.Checksum)

	return b
}

func (h *Header) validate() error {
	if !h.Encoding.Valid() {
		return fmt.Errorf("%w: 0x%02x", errs.ErrInvalidEncodingType, uint8(h.Encoding))
	}
	if !h.Compression.Valid() {
		return fmt.Errorf("%w: 0x%02x", errs.ErrInvalidCompressionType, uint8(h.Compression))
	}

	return nil
}
