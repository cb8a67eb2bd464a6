//go:build unix

package mem

import "golang.org/x/sys/unix"

// alloc reserves size bytes through an anonymous private mapping
// (Unix implementation). Mapped memory is page-aligned and zeroed.
func alloc(size int) ([]byte, bool, error) {
	data, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON,
	)
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// free unmaps a region (Unix implementation).
func free(data []byte) error {
	return unix.Munmap(data)
}
