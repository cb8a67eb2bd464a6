// Package mem provides page-aligned off-heap memory regions, used to
// host buffer storage that behaves like externally owned native
// memory. Regions are allocated with anonymous mappings where the
// platform supports them and must be released explicitly with Free.
package mem

import (
	"fmt"
	"unsafe"

	"github.com/sirupsen/logrus"
)

// Region is a contiguous, externally owned memory allocation. Buffers
// wrapping a region stay valid only until Free is called.
type Region struct {
	data   []byte
	mapped bool
	freed  bool
}

// Alloc reserves size bytes of zeroed off-heap memory.
//
// Important: always call Free when done (use defer). The garbage
// collector does not reclaim mapped regions.
func Alloc(size int64) (*Region, error) {
	if size < 0 {
		return nil, fmt.Errorf("invalid region size %d", size)
	}
	if size == 0 {
		return &Region{}, nil
	}
	data, mapped, err := alloc(int(size))
	if err != nil {
		return nil, fmt.Errorf("region allocation failed: %w", err)
	}
	logrus.Debugf("mem: allocated %d byte region (mapped=%v)", size, mapped)
	return &Region{data: data, mapped: mapped}, nil
}

// Size returns the region length in bytes.
func (r *Region) Size() int64 {
	return int64(len(r.data))
}

// Bytes returns the region as a byte slice. The slice is valid only
// until Free.
func (r *Region) Bytes() []byte {
	return r.data
}

// Ptr returns the region's base address, nil for empty or freed
// regions.
func (r *Region) Ptr() unsafe.Pointer {
	if len(r.data) == 0 {
		return nil
	}
	return unsafe.Pointer(unsafe.SliceData(r.data))
}

// Free releases the region. Calling Free more than once is safe; any
// access through previously obtained pointers or slices after Free is
// undefined.
func (r *Region) Free() error {
	if r.freed {
		return nil
	}
	r.freed = true

	var err error
	if r.mapped && r.data != nil {
		err = free(r.data)
		logrus.Debugf("mem: released %d byte region", len(r.data))
	}
	r.data = nil
	return err
}
