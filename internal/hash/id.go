package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Sum computes the xxHash64 of the given bytes.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Fingerprint computes the xxHash64 of a series given as parallel x ordinal
// and y value slices. The length is mixed in first so that a series and its
// prefix never share a digest by construction of the input stream.
//
// Parameters:
//   - xs: x ordinals (e.g. Unix milliseconds)
//   - ys: y values, same length as xs
//
// Returns:
//   - uint64: digest identifying the series contents
func Fingerprint(xs, ys []float64) uint64 {
	d := xxhash.New()

	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(len(xs)))
	_, _ = d.Write(buf[:8])

	for i := range xs {
		var y float64
		if i < len(ys) {
			y = ys[i]
		}
		binary.LittleEndian.PutUint64(buf[:8], math.Float64bits(xs[i]))
		binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(y))
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}
