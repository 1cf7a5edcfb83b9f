package encoding

import (
	"iter"

	ienc "github.com/arloliu/svbyte/internal/encoding"
	"github.com/arloliu/svbyte/internal/pool"
)

// Uint32Encoder is an incremental StreamVByte encoder.
//
// It accumulates values one at a time or in slices, flushing a control byte
// and its data bytes whenever a quad of four values completes. A trailing
// partial quad is folded into a final control byte when the stream is
// assembled, so Bytes may be called at any point and further writes remain
// valid.
//
// The output of Bytes is byte-for-byte identical to a one-shot
// svbyte.Encode of the same values.
//
// Internal state:
//   - control: control bytes for completed quads
//   - data: data bytes for completed quads
//   - pending: 0-3 values not yet forming a quad
//   - assembled: lazily rebuilt full stream returned by Bytes
type Uint32Encoder struct {
	control   *pool.ByteBuffer
	data      *pool.ByteBuffer
	assembled *pool.ByteBuffer
	pending   [ienc.GroupSize]uint32
	npend     int
	count     int
	dirty     bool
}

var _ SequenceEncoder[uint32] = (*Uint32Encoder)(nil)

// NewUint32Encoder creates a new incremental encoder backed by pooled
// buffers. Call Finish when the encoding session is complete to return the
// buffers to the pool.
func NewUint32Encoder() *Uint32Encoder {
	return &Uint32Encoder{
		control:   pool.GetScratchBuffer(),
		data:      pool.GetScratchBuffer(),
		assembled: pool.GetScratchBuffer(),
	}
}

// Write encodes a single value.
//
// Panics if Finish() has been called (nil buffers).
func (e *Uint32Encoder) Write(value uint32) {
	if e.control == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.pending[e.npend] = value
	e.npend++
	e.count++
	e.dirty = true

	if e.npend == ienc.GroupSize {
		e.flushQuad()
	}
}

// WriteSlice encodes a slice of values.
//
// Reserves buffer space for the worst case up front so the write loop does
// at most one growth per buffer.
//
// Panics if Finish() has been called (nil buffers).
func (e *Uint32Encoder) WriteSlice(values []uint32) {
	if e.control == nil {
		panic("encoder already finished - cannot write after Finish()")
	}
	if len(values) == 0 {
		return
	}

	e.control.Grow(ienc.ControlLen(len(values) + e.npend))
	e.data.Grow(len(values) * ienc.MaxBytesPerValue)

	for _, v := range values {
		e.pending[e.npend] = v
		e.npend++
		if e.npend == ienc.GroupSize {
			e.flushQuad()
		}
	}
	e.count += len(values)
	e.dirty = true
}

// flushQuad emits the control byte and data bytes for four pending values.
func (e *Uint32Encoder) flushQuad() {
	var key byte
	for i := 0; i < ienc.GroupSize; i++ {
		v := e.pending[i]
		length := ienc.EncodedLength(v)
		key |= byte(length-1) << (uint(i) * 2)
		e.appendValue(v, length)
	}
	e.control.B = append(e.control.B, key)
	e.npend = 0
}

func (e *Uint32Encoder) appendValue(v uint32, length int) {
	idx := e.data.Len()
	e.data.ExtendOrGrow(length)
	ienc.PutValue(e.data.B[idx:], v, length)
}

// Bytes returns the full encoded stream for all values written so far.
//
// The control stream comes first, then the data stream; a partial trailing
// quad contributes one final control byte with its unused code slots zero.
// The returned slice is valid until the next call to Write, WriteSlice,
// Reset, or Finish, and must not be modified by the caller.
//
// Panics if Finish() has been called (nil buffers).
func (e *Uint32Encoder) Bytes() []byte {
	if e.control == nil {
		panic("encoder already finished - cannot access bytes after Finish()")
	}

	if e.dirty {
		e.assemble()
	}

	return e.assembled.Bytes()
}

// assemble rebuilds the contiguous control+data stream, folding any pending
// partial quad into a trailing control byte and tail data bytes. Encoder
// state is untouched so writes can continue afterwards.
func (e *Uint32Encoder) assemble() {
	e.assembled.Reset()
	e.assembled.Grow(e.control.Len() + 1 + e.data.Len() + e.npend*ienc.MaxBytesPerValue)

	b := append(e.assembled.B, e.control.B...)

	var key byte
	if e.npend > 0 {
		for i := 0; i < e.npend; i++ {
			key |= byte(ienc.EncodedLength(e.pending[i])-1) << (uint(i) * 2)
		}
		b = append(b, key)
	}

	b = append(b, e.data.B...)

	for i := 0; i < e.npend; i++ {
		v := e.pending[i]
		length := ienc.EncodedLength(v)
		idx := len(b)
		b = append(b, make([]byte, length)...)
		ienc.PutValue(b[idx:], v, length)
	}

	e.assembled.B = b
	e.dirty = false
}

// Len returns the number of values written since the last Reset.
func (e *Uint32Encoder) Len() int {
	return e.count
}

// Size returns the size in bytes of the encoded stream, including the
// contribution of any pending partial quad.
//
// Panics if Finish() has been called (nil buffers).
func (e *Uint32Encoder) Size() int {
	if e.control == nil {
		panic("encoder already finished - cannot access size after Finish()")
	}

	size := e.control.Len() + e.data.Len()
	if e.npend > 0 {
		size++
		for i := 0; i < e.npend; i++ {
			size += ienc.EncodedLength(e.pending[i])
		}
	}

	return size
}

// Reset clears the encoder for a new sequence, retaining the internal
// buffers for reuse.
func (e *Uint32Encoder) Reset() {
	if e.control == nil {
		return
	}

	e.control.Reset()
	e.data.Reset()
	e.assembled.Reset()
	e.npend = 0
	e.count = 0
	e.dirty = false
}

// Finish finalizes the encoding session and returns buffer resources to the
// pool. The encoder is unusable afterwards; subsequent Write, WriteSlice,
// Bytes, or Size calls panic.
func (e *Uint32Encoder) Finish() {
	if e.control != nil {
		pool.PutScratchBuffer(e.control)
		pool.PutScratchBuffer(e.data)
		pool.PutScratchBuffer(e.assembled)
		e.control = nil
		e.data = nil
		e.assembled = nil
	}
	e.npend = 0
	e.count = 0
	e.dirty = false
}

// Uint32Decoder decodes StreamVByte streams produced by Uint32Encoder or
// the one-shot svbyte encode functions.
//
// The decoder is stateless and safe for concurrent use; each call operates
// independently on the provided data.
type Uint32Decoder struct{}

var _ SequenceDecoder[uint32] = Uint32Decoder{}

// NewUint32Decoder creates a new stateless decoder.
func NewUint32Decoder() Uint32Decoder {
	return Uint32Decoder{}
}

// All returns an iterator yielding count values decoded sequentially from
// data. Iteration stops early if data is truncated.
func (d Uint32Decoder) All(data []byte, count int) iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		if count <= 0 {
			return
		}

		ctrlLen := ienc.ControlLen(count)
		if len(data) < ctrlLen {
			return
		}

		pos := ctrlLen
		for i := 0; i < count; i++ {
			length := ienc.CodeAt(data[i/ienc.GroupSize], i%ienc.GroupSize)
			if pos+length > len(data) {
				return
			}
			if !yield(ienc.ReadValue(data[pos:], length)) {
				return
			}
			pos += length
		}
	}
}

// At retrieves the value at the specified index without decoding the values
// before it. Whole quads are skipped via the control-byte size table, so
// the cost is one table lookup per preceding quad rather than one decode
// per preceding value.
func (d Uint32Decoder) At(data []byte, index int, count int) (uint32, bool) {
	if index < 0 || index >= count {
		return 0, false
	}

	ctrlLen := ienc.ControlLen(count)
	if len(data) < ctrlLen {
		return 0, false
	}

	control := data[:ctrlLen]
	payload := data[ctrlLen:]

	block := index / ienc.GroupSize
	posInBlock := index % ienc.GroupSize

	// Quads before the target are always full because index < count.
	offset := 0
	for i := 0; i < block; i++ {
		offset += ienc.ControlBlockSize(control[i])
	}

	ctrl := control[block]
	for i := 0; i < posInBlock; i++ {
		offset += ienc.CodeAt(ctrl, i)
	}

	length := ienc.CodeAt(ctrl, posInBlock)
	if offset+length > len(payload) {
		return 0, false
	}

	return ienc.ReadValue(payload[offset:], length), true
}
