package pool

import "sync"

// float64SlicePool holds scratch slices for residuals, window sums and
// per-segment value gathering.
var float64SlicePool = sync.Pool{
	New: func() any { return &[]float64{} },
}

// GetFloat64Slice retrieves a float64 slice of exactly size elements from the pool.
//
// The contents of the returned slice are unspecified; callers overwrite every
// element before reading. The returned cleanup function must be called
// (typically with defer) once the slice is no longer referenced.
//
// Parameters:
//   - size: The desired length of the slice
//
// Returns:
//   - []float64: A slice with length equal to size
//   - func(): Cleanup function returning the slice to the pool
//
// Example:
//
//	residuals, cleanup := pool.GetFloat64Slice(len(points))
//	defer cleanup()
func GetFloat64Slice(size int) ([]float64, func()) {
	ptr, _ := float64SlicePool.Get().(*[]float64)
	slice := *ptr

	if cap(slice) < size {
		slice = make([]float64, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { float64SlicePool.Put(ptr) }
}
