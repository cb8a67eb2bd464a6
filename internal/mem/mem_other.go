//go:build !unix

package mem

// alloc falls back to a heap allocation on platforms without anonymous
// mappings. The region is then reclaimed by the garbage collector and
// free is a no-op.
func alloc(size int) ([]byte, bool, error) {
	return make([]byte, size), false, nil
}

func free([]byte) error {
	return nil
}
