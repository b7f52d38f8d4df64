package archive

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/lsts/errs"
	"github.com/arloliu/lsts/format"
)

const (
	// Magic identifies lsts archives.
	Magic = "LSTS"
	// Version is the archive format version written by Encode.
	Version uint8 = 1
	// HeaderSize is the fixed size of the archive header in bytes.
	HeaderSize = 24

	// FlagBigEndian marks archives whose integer fields are big-endian.
	// The flags field itself is always little-endian.
	FlagBigEndian uint16 = 0x0001
)

// byteOrder combines the read, write and append operations of a byte order.
type byteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Header is the fixed-size header at the start of an archive.
type Header struct {
	Version     uint8                  // byte offset 4
	Compression format.CompressionType // byte offset 5
	Flags       uint16                 // byte offset 6-7
	PayloadSize uint32                 // byte offset 8-11, compressed payload size
	RawSize     uint32                 // byte offset 12-15, payload size before compression
	Checksum    uint64                 // byte offset 16-23, xxHash64 of the compressed payload
}

func (h *Header) engine() byteOrder {
	if h.Flags&FlagBigEndian != 0 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be exactly HeaderSize bytes)
//
// Returns:
//   - error: ErrInvalidArchive for a wrong size or magic, ErrUnsupportedVersion
//     for an unknown version
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("%w: header is %d bytes, want %d", errs.ErrInvalidArchive, len(data), HeaderSize)
	}
	if string(data[0:4]) != Magic {
		return fmt.Errorf("%w: bad magic %q", errs.ErrInvalidArchive, data[0:4])
	}

	h.Version = data[4]
	h.Compression = format.CompressionType(data[5])
	h.Flags = binary.LittleEndian.Uint16(data[6:8])
	if h.Version != Version {
		return fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, h.Version)
	}

	engine := h.engine()
	h.PayloadSize = engine.Uint32(data[8:12])
	h.RawSize = engine.Uint32(data[12:16])
	h.Checksum = engine.Uint64(data[16:24])

	return nil
}

// AppendTo appends the serialized header to dst.
func (h *Header) AppendTo(dst []byte) []byte {
	dst = append(dst, Magic...)
	dst = append(dst, h.Version, byte(h.Compression))
	dst = binary.LittleEndian.AppendUint16(dst, h.Flags)

	engine := h.engine()
	dst = engine.AppendUint32(dst, h.PayloadSize)
	dst = engine.AppendUint32(dst, h.RawSize)

	return engine.AppendUint64(dst, h.Checksum)
}

// Bytes serializes the header into a new HeaderSize byte slice.
func (h *Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// ParseHeader parses a Header from the start of an archive.
//
// Parameters:
//   - data: Archive bytes (at least HeaderSize bytes)
//
// Returns:
//   - Header: Parsed header struct
//   - error: ErrInvalidArchive or ErrUnsupportedVersion
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes is shorter than the header", errs.ErrInvalidArchive, len(data))
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
