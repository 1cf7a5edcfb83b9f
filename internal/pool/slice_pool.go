package pool

import "sync"

// uint32SlicePool provides reusable scratch slices for delta transforms,
// where the caller's input must not be mutated in place.
var uint32SlicePool = sync.Pool{
	New: func() any { return &[]uint32{} },
}

// GetUint32Slice retrieves and resizes a uint32 slice from the pool.
//
// The returned slice has length equal to size; its contents are unspecified
// and must be fully overwritten before use. The caller must call the returned
// cleanup function (typically with defer) to return the slice to the pool.
//
// Example:
//
//	deltas, cleanup := pool.GetUint32Slice(len(input))
//	defer cleanup()
func GetUint32Slice(size int) ([]uint32, func()) {
	ptr, _ := uint32SlicePool.Get().(*[]uint32)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]uint32, size)
		*ptr = slice
	} else {
		slice = slice[:size]
		*ptr = slice
	}

	return slice, func() { uint32SlicePool.Put(ptr) }
}
