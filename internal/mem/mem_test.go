package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocAndFree(t *testing.T) {
	r, err := Alloc(4096)
	require.NoError(t, err)
	require.Equal(t, int64(4096), r.Size())
	require.NotNil(t, r.Ptr())

	// Freshly mapped memory is zeroed.
	for i, b := range r.Bytes() {
		require.Zero(t, b, "byte %d", i)
	}

	r.Bytes()[0] = 0xAB
	r.Bytes()[4095] = 0xCD
	assert.Equal(t, byte(0xAB), r.Bytes()[0])
	assert.Equal(t, byte(0xCD), r.Bytes()[4095])

	require.NoError(t, r.Free())
	assert.Nil(t, r.Ptr())
	assert.Zero(t, r.Size())
}

func TestFreeIsIdempotent(t *testing.T) {
	r, err := Alloc(64)
	require.NoError(t, err)
	require.NoError(t, r.Free())
	require.NoError(t, r.Free())
}

func TestAllocEmpty(t *testing.T) {
	r, err := Alloc(0)
	require.NoError(t, err)
	assert.Zero(t, r.Size())
	assert.Nil(t, r.Ptr())
	require.NoError(t, r.Free())
}

func TestAllocNegative(t *testing.T) {
	_, err := Alloc(-1)
	require.Error(t, err)
}

func TestUnalignedSize(t *testing.T) {
	// Sizes that are not page multiples still get exactly Size bytes.
	r, err := Alloc(100)
	require.NoError(t, err)
	defer func() { _ = r.Free() }()
	assert.Equal(t, int64(100), r.Size())
	assert.Len(t, r.Bytes(), 100)
}
