package format

import "strings"

type (
	SmoothingType   uint8
	CompressionType uint8
)

const (
	SmoothingNone     SmoothingType = 0x1 // SmoothingNone segments the raw series.
	SmoothingEMA      SmoothingType = 0x2 // SmoothingEMA applies an exponential moving average.
	SmoothingCentered SmoothingType = 0x3 // SmoothingCentered applies a centered moving average.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (s SmoothingType) String() string {
	switch s {
	case SmoothingNone:
		return "None"
	case SmoothingEMA:
		return "EMA"
	case SmoothingCentered:
		return "Centered"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseSmoothing maps a case-insensitive name ("none", "ema", "centered") to a SmoothingType.
// The second return value is false for unknown names.
func ParseSmoothing(name string) (SmoothingType, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none", "raw":
		return SmoothingNone, true
	case "", "ema", "exponential":
		return SmoothingEMA, true
	case "centered", "cma":
		return SmoothingCentered, true
	default:
		return 0, false
	}
}

// ParseCompression maps a case-insensitive name ("none", "zstd", "s2", "lz4") to a CompressionType.
// The second return value is false for unknown names.
func ParseCompression(name string) (CompressionType, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return CompressionNone, true
	case "zstd":
		return CompressionZstd, true
	case "s2":
		return CompressionS2, true
	case "lz4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}
