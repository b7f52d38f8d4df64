package trend

import (
	"github.com/arloliu/lsts/internal/options"
	"github.com/arloliu/lsts/point"
)

// ExtractConfig controls how Extract normalizes a series before segmenting it.
type ExtractConfig struct {
	NormalizeY bool
	XLimit     point.AxisLimit
	YLimit     point.AxisLimit
}

// ExtractOption configures Extract.
type ExtractOption = options.Option[*ExtractConfig]

// WithoutNormalizeY segments on raw y values. Only normalized x values are
// rescaled; eps is then expressed in the units of the series.
func WithoutNormalizeY() ExtractOption {
	return options.NoError(func(c *ExtractConfig) {
		c.NormalizeY = false
	})
}

// WithXLimit overrides the data-derived x bounds used for normalization.
func WithXLimit(lim point.AxisLimit) ExtractOption {
	return options.NoError(func(c *ExtractConfig) {
		c.XLimit = lim
	})
}

// WithYLimit overrides the default y bounds (0 and the largest value).
func WithYLimit(lim point.AxisLimit) ExtractOption {
	return options.NoError(func(c *ExtractConfig) {
		c.YLimit = lim
	})
}

// Extract normalizes points and segments them into partial trends.
//
// Parameters:
//   - points: Series in x order
//   - ordinal: Maps an x value to a number, e.g. point.TimeOrdinal
//   - eps: Segmentation tolerance in normalized units (0.01 suits most charts)
//   - opts: Normalization options
//
// Returns:
//   - []PartialTrend[X]: Contiguous trends covering the series
//   - error: ErrInvalidEpsilon for a negative eps, or an option error
//
// Example:
//
//	trends, err := trend.Extract(series, point.TimeOrdinal, 0.01)
func Extract[X any](points []point.XY[X], ordinal func(X) float64, eps float64, opts ...ExtractOption) ([]PartialTrend[X], error) {
	cfg := &ExtractConfig{NormalizeY: true}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	normalized := point.NormalizeX(point.Ordinals(points, ordinal), cfg.XLimit)
	if cfg.NormalizeY {
		normalized = point.NormalizeY(normalized, cfg.YLimit)
	}

	return Segment(points, normalized, eps)
}
