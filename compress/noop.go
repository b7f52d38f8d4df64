package compress

// NoOpCompressor stores payloads uncompressed.
//
// It is the codec of format.CompressionNone and is handy when an archive
// should stay readable with plain tools.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns the input slice as is, without copying.
//
// The returned slice shares memory with data; do not modify data while the
// result is in use.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice as is, without copying.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}

// DecompressSize returns the input slice as is when it is size bytes long.
func (c NoOpCompressor) DecompressSize(data []byte, size int) ([]byte, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	if len(data) != size {
		return nil, sizeMismatch(len(data), size)
	}

	return data, nil
}
