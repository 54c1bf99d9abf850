//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package offheap

import "golang.org/x/sys/unix"

// allocate maps size bytes of anonymous, private, zero-filled memory.
func allocate(size int) (raw []byte, heap bool, err error) {
	raw, err = unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, false, err
	}
	return raw, false, nil
}

func release(raw []byte) error {
	return unix.Munmap(raw)
}
