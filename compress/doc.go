// Package compress provides the codecs used to compress summary archives.
//
// Archives hold JSON-encoded summary groups. Sentences repeat the same
// metric names, dates and phrasing, so general-purpose compressors shrink
// them well. The codec is chosen per archive and recorded in its header.
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): payload stored as is
//   - Zstd (format.CompressionZstd): best ratio, suited to long-term storage
//   - S2 (format.CompressionS2): fast with a good ratio
//   - LZ4 (format.CompressionLZ4): fastest decompression
//
// All codecs implement Codec:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(payload)
//	restored, err := codec.Decompress(packed)
//
// # Zstd Implementations
//
// Zstd uses the pure Go klauspost/compress encoder by default, with pooled
// encoders and decoders. Building with the gozstd tag (and cgo) switches to
// the cgo binding of the reference C library.
//
// # Thread Safety
//
// All codecs are safe for concurrent use and can be shared across goroutines.
package compress
