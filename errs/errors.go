// Package errs defines the sentinel errors returned by lsts packages.
//
// Callers match them with errors.Is; packages wrap them with context using
// fmt.Errorf("%w: ...").
package errs

import "errors"

// Configuration errors.
var (
	// ErrInvalidConfig is the parent of all configuration validation errors.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrInvalidAlpha indicates an EMA smoothing factor outside (0, 1].
	ErrInvalidAlpha = errors.New("smoothing factor must be in (0, 1]")
	// ErrInvalidWindow indicates a negative centered moving average half window.
	ErrInvalidWindow = errors.New("half window must not be negative")
	// ErrInvalidEpsilon indicates a negative or non-finite segmentation tolerance.
	ErrInvalidEpsilon = errors.New("epsilon must be a finite non-negative number")
	// ErrInvalidThreshold indicates a membership threshold outside [0, 1].
	ErrInvalidThreshold = errors.New("threshold must be in [0, 1]")
	// ErrInvalidSmoothing indicates an unknown smoothing type.
	ErrInvalidSmoothing = errors.New("unknown smoothing type")
	// ErrInvalidCompression indicates an unknown compression type.
	ErrInvalidCompression = errors.New("unknown compression type")
)

// Input errors.
var (
	// ErrLengthMismatch indicates parallel slices of different lengths.
	ErrLengthMismatch = errors.New("length mismatch")
	// ErrInsufficientPoints indicates too few points for the requested operation.
	ErrInsufficientPoints = errors.New("insufficient points")
	// ErrDegenerateFit indicates that all x values are identical.
	ErrDegenerateFit = errors.New("degenerate linear fit: x values have zero variance")
	// ErrNilFormatter indicates a missing Formatter.
	ErrNilFormatter = errors.New("formatter is nil")
	// ErrMissingColumn indicates a CSV header without a requested column.
	ErrMissingColumn = errors.New("column not found")
	// ErrNoData indicates an input without a single valid observation.
	ErrNoData = errors.New("no valid data found")
)

// Archive errors.
var (
	// ErrInvalidArchive indicates data that is not an lsts archive.
	ErrInvalidArchive = errors.New("invalid archive")
	// ErrUnsupportedVersion indicates an archive written by a newer format version.
	ErrUnsupportedVersion = errors.New("unsupported archive version")
	// ErrChecksumMismatch indicates payload corruption.
	ErrChecksumMismatch = errors.New("archive checksum mismatch")
	// ErrDecompressedSize indicates a payload that does not decompress to the expected size.
	ErrDecompressedSize = errors.New("unexpected decompressed size")
)
