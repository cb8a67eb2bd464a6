//go:build purego

package buffer

// rawSupported reports whether the raw backend may be used on this
// build. The purego tag disables it for targets where unsafe memory
// access is unwanted.
const rawSupported = false
