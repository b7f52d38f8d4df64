package compress

import "github.com/klauspost/compress/zstd"

// ZstdCompressor provides Zstandard compression for summary archives.
//
// Zstd gives the best ratio of the built-in codecs and is the suggested
// choice for archives kept on disk.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Returns:
//   - ZstdCompressor: New Zstd compressor instance
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// DecompressSize decompresses Zstd data that must restore to size bytes.
//
// A frame whose recorded content size differs from size is rejected before
// decoding.
func (c ZstdCompressor) DecompressSize(data []byte, size int) ([]byte, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	if len(data) == 0 && size == 0 {
		return nil, nil
	}

	var h zstd.Header
	if err := h.Decode(data); err != nil {
		return nil, err
	}
	if h.HasFCS && h.FrameContentSize != uint64(size) {
		return nil, sizeMismatch(int(min(h.FrameContentSize, MaxDecompressedSize+1)), size)
	}

	out, err := c.decompressSize(data, size)
	if err != nil {
		return nil, err
	}
	if len(out) != size {
		return nil, sizeMismatch(len(out), size)
	}

	return out, nil
}
