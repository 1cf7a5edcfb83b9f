// Package encoding implements the StreamVByte control/data codec core.
//
// This package contains the scalar encode and decode loops shared by the
// public API in the root svbyte package, the streaming encoder in
// github.com/arloliu/svbyte/encoding, and the frame container. It is
// internal and should not be imported by external code.
//
// # Wire Layout
//
// An encoded buffer is a control stream followed by a data stream:
//
//	EncodedBuffer := ControlStream DataStream
//	ControlStream := byte[ceil(n/4)]
//	DataStream    := per value, its minimal little-endian bytes
//
// Each control byte holds four 2-bit length codes, one per value of a quad
// of four consecutive values. The first value of a quad occupies the two
// least-significant bits. Code c means the value occupies c+1 data bytes,
// so values below 256 cost exactly one data byte and zero is stored as a
// single zero byte. A trailing partial quad of 1-3 values shares a final
// control byte whose unused code slots are zero.
//
// The buffer carries no element count; the decoder must be told the
// original count out-of-band.
package encoding
