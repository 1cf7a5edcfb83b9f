package encoding

// GroupSize is the number of values covered by one control byte.
const GroupSize = 4

// MaxBytesPerValue is the largest data length a single value can occupy.
const MaxBytesPerValue = 4

// controlBlockSizeLUT maps a control byte to the total number of data bytes
// consumed by the four values it describes: sum of (code+1) over all four
// 2-bit codes. Only valid for control bytes covering a full quad.
var controlBlockSizeLUT [256]uint8

func init() {
	for ctrl := range 256 {
		size := (ctrl & 0x03) + ((ctrl >> 2) & 0x03) + ((ctrl >> 4) & 0x03) + (ctrl >> 6) + 4
		controlBlockSizeLUT[ctrl] = uint8(size)
	}
}

// ControlBlockSize returns the total data bytes described by a full-quad
// control byte. It lets a decoder skip a whole quad without unpacking the
// individual codes.
func ControlBlockSize(ctrl byte) int {
	return int(controlBlockSizeLUT[ctrl])
}

// ControlLen returns the number of control bytes for count values: one byte
// per quad, with a trailing partial quad sharing a final byte.
func ControlLen(count int) int {
	return (count + GroupSize - 1) / GroupSize
}

// EncodedLength returns the minimal number of bytes needed to represent v.
// Zero still needs one byte.
func EncodedLength(v uint32) int {
	switch {
	case v < 1<<8:
		return 1
	case v < 1<<16:
		return 2
	case v < 1<<24:
		return 3
	default:
		return 4
	}
}

// CodeAt extracts the 2-bit length code for value i (0-3) of a quad and
// returns the data byte length it encodes.
func CodeAt(ctrl byte, i int) int {
	return int(ctrl>>(uint(i)*2))&0x03 + 1
}
