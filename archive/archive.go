// Package archive persists summary groups in a compact binary envelope.
//
// An archive is a 24-byte header followed by the payload, the JSON encoding
// of []summary.Group compressed with one of the compress codecs:
//
//	offset  size  field
//	0       4     magic "LSTS"
//	4       1     format version
//	5       1     compression type (format.CompressionType)
//	6       2     flags (always little-endian)
//	8       4     compressed payload size
//	12      4     uncompressed payload size
//	16      8     xxHash64 of the compressed payload
//
// Integer fields are little-endian unless FlagBigEndian is set.
package archive

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/arloliu/lsts/compress"
	"github.com/arloliu/lsts/errs"
	"github.com/arloliu/lsts/format"
	"github.com/arloliu/lsts/internal/hash"
	"github.com/arloliu/lsts/internal/options"
	"github.com/arloliu/lsts/internal/pool"
	"github.com/arloliu/lsts/summary"
)

type encodeConfig struct {
	compression format.CompressionType
	flags       uint16
}

// Option configures Encode.
type Option = options.Option[*encodeConfig]

// WithCompression selects the payload codec. The default is format.CompressionZstd.
func WithCompression(c format.CompressionType) Option {
	return options.New(func(cfg *encodeConfig) error {
		if _, err := compress.GetCodec(c); err != nil {
			return err
		}
		cfg.compression = c

		return nil
	})
}

// WithBigEndian writes the integer header fields big-endian.
func WithBigEndian() Option {
	return options.NoError(func(cfg *encodeConfig) {
		cfg.flags |= FlagBigEndian
	})
}

// Encode serializes groups into an archive.
//
// Parameters:
//   - groups: Summary groups to store
//   - opts: Encoding options, e.g. WithCompression
//
// Returns:
//   - []byte: The archive
//   - error: ErrInvalidCompression for an unknown codec, ErrInvalidArchive
//     when the JSON encoding exceeds MaxRawSize, or a JSON or compression error
func Encode(groups []summary.Group, opts ...Option) ([]byte, error) {
	buf := pool.GetArchiveBuffer()
	defer pool.PutArchiveBuffer(buf)

	if err := encodeTo(buf, groups, opts); err != nil {
		return nil, err
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

// Write encodes groups like Encode and writes the archive to w.
func Write(w io.Writer, groups []summary.Group, opts ...Option) (int64, error) {
	buf := pool.GetArchiveBuffer()
	defer pool.PutArchiveBuffer(buf)

	if err := encodeTo(buf, groups, opts); err != nil {
		return 0, err
	}

	return buf.WriteTo(w)
}

// MaxRawSize bounds the uncompressed payload of an archive.
const MaxRawSize = compress.MaxDecompressedSize

func checkRawSize(n int) error {
	if n > MaxRawSize {
		return fmt.Errorf("%w: payload of %d bytes exceeds %d", errs.ErrInvalidArchive, n, MaxRawSize)
	}

	return nil
}

func encodeTo(buf *pool.ByteBuffer, groups []summary.Group, opts []Option) error {
	cfg := &encodeConfig{compression: format.CompressionZstd}
	if err := options.Apply(cfg, opts...); err != nil {
		return err
	}
	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return err
	}

	if groups == nil {
		groups = []summary.Group{}
	}
	raw, err := json.Marshal(groups)
	if err != nil {
		return fmt.Errorf("encode summaries: %w", err)
	}
	if err := checkRawSize(len(raw)); err != nil {
		return err
	}
	payload, err := codec.Compress(raw)
	if err != nil {
		return fmt.Errorf("compress summaries: %w", err)
	}
	if len(payload) > math.MaxUint32 {
		return fmt.Errorf("%w: payload of %d bytes is too large", errs.ErrInvalidArchive, len(raw))
	}

	h := Header{
		Version:     Version,
		Compression: cfg.compression,
		Flags:       cfg.flags,
		PayloadSize: uint32(len(payload)), //nolint:gosec // bounded above
		RawSize:     uint32(len(raw)),     //nolint:gosec // bounded above
		Checksum:    hash.Sum(payload),
	}
	buf.B = h.AppendTo(buf.B)
	_, _ = buf.Write(payload)

	return nil
}

// Decode parses an archive produced by Encode.
//
// Returns:
//   - []summary.Group: The stored groups
//   - error: ErrInvalidArchive for malformed or truncated data,
//     or a payload that does not restore to the recorded raw size,
//     ErrUnsupportedVersion, or ErrChecksumMismatch for a corrupted payload
//
// The raw size recorded in the header bounds decompression; headers claiming
// more than MaxRawSize are rejected before decompressing.
func Decode(data []byte) ([]summary.Group, error) {
	h, payload, err := split(data)
	if err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(h.Compression)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidArchive, err)
	}
	if err := checkRawSize(int(h.RawSize)); err != nil {
		return nil, err
	}
	raw, err := codec.DecompressSize(payload, int(h.RawSize))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidArchive, err)
	}

	var groups []summary.Group
	if err := json.Unmarshal(raw, &groups); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidArchive, err)
	}

	return groups, nil
}

// Read reads a whole archive from r and decodes it.
func Read(r io.Reader) ([]summary.Group, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return Decode(data)
}

// Stats reports the compression achieved by an archive without decoding it.
func Stats(data []byte) (compress.CompressionStats, error) {
	h, _, err := split(data)
	if err != nil {
		return compress.CompressionStats{}, err
	}

	return compress.CompressionStats{
		Algorithm:      h.Compression,
		OriginalSize:   int64(h.RawSize),
		CompressedSize: int64(h.PayloadSize),
	}, nil
}

// split validates the header and checksum and returns the payload.
func split(data []byte) (Header, []byte, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return Header{}, nil, err
	}

	payload := data[HeaderSize:]
	if len(payload) != int(h.PayloadSize) {
		return Header{}, nil, fmt.Errorf("%w: payload is %d bytes, header says %d", errs.ErrInvalidArchive, len(payload), h.PayloadSize)
	}
	if sum := hash.Sum(payload); sum != h.Checksum {
		return Header{}, nil, fmt.Errorf("%w: got %016x, want %016x", errs.ErrChecksumMismatch, sum, h.Checksum)
	}

	return h, payload, nil
}
