package compress

import (
	"fmt"

	"github.com/arloliu/lsts/errs"
	"github.com/arloliu/lsts/format"
)

// Compressor compresses archive payloads.
//
// Memory management:
//   - The returned slice is owned by the caller
//   - The input slice is not modified
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores payloads produced by the matching Compressor.
//
// Decompress returns an error if the input is corrupted or was produced by a
// different algorithm. Implementations are safe for concurrent use.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// MaxDecompressedSize bounds the output of every decompression.
const MaxDecompressedSize = 128 * 1024 * 1024

// SizedDecompressor restores payloads whose decompressed size is known
// up front, such as archive payloads.
//
// DecompressSize fails with ErrDecompressedSize if size exceeds
// MaxDecompressedSize or data does not decompress to exactly size bytes.
// Output beyond size is never allocated.
type SizedDecompressor interface {
	DecompressSize(data []byte, size int) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
	SizedDecompressor
}

func checkSize(size int) error {
	if size < 0 || size > MaxDecompressedSize {
		return fmt.Errorf("%w: %d bytes exceeds the %d byte limit", errs.ErrDecompressedSize, size, MaxDecompressedSize)
	}

	return nil
}

func sizeMismatch(got, want int) error {
	return fmt.Errorf("%w: got %d bytes, want %d", errs.ErrDecompressedSize, got, want)
}

// CompressionStats describes the effect of compressing one payload.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType

	// OriginalSize is the size of input data before compression
	OriginalSize int64

	// CompressedSize is the size of data after compression
	CompressedSize int64
}

// CompressionRatio returns the compression ratio (compressed size / original size).
//
// Values less than 1.0 indicate successful compression.
//
// Returns:
//   - float64: Compression ratio (0.0 if original size is zero)
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage.
//
// Returns:
//   - float64: Space savings percentage, negative when compression expanded the data
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// String returns a one-line description of the stats.
func (s CompressionStats) String() string {
	return fmt.Sprintf("%s: %d -> %d bytes (%.1f%% saved)", s.Algorithm, s.OriginalSize, s.CompressedSize, s.SpaceSavings())
}

// CreateCodec is a factory function that creates a Codec based on the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: ErrInvalidCompression for an unknown type
func CreateCodec(compressionType format.CompressionType) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the shared built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compressionType)
}
