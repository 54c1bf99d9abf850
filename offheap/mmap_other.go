//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package offheap

import "unsafe"

// allocate falls back to the Go heap where anonymous mmap is unavailable.
func allocate(size int) (raw []byte, heap bool, err error) {
	// uint64 backing keeps the slice 8-byte aligned for any Number.
	words := make([]uint64, (size+7)/8)
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(words))), size), true, nil
}

func release([]byte) error { return nil }
