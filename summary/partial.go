package summary

import (
	"fmt"
	"math"
	"strings"

	"github.com/arloliu/lsts/errs"
	"github.com/arloliu/lsts/format"
	"github.com/arloliu/lsts/linear"
	"github.com/arloliu/lsts/point"
	"github.com/arloliu/lsts/smooth"
	"github.com/arloliu/lsts/trend"
)

const (
	// DefaultMetric names the measured quantity in generated sentences.
	DefaultMetric = "active users"
	// PartialTrendTitle is the default title of the partial trend group.
	PartialTrendTitle = "Trend Partial Elaboration"
	// DefaultEps is the default segmentation tolerance, in normalized units
	// where x spans [0, point.XRange].
	//
	// Neighbors closer than eps in x always share a cone, so beyond about
	// point.XRange/DefaultEps (160) points short reversals blur into longer
	// segments. Scale eps with the series length, e.g. to half the point
	// spacing, to keep them apart.
	DefaultEps = 0.01
	// DefaultParagraphThreshold is the validity a clause must exceed to enter the paragraph.
	DefaultParagraphThreshold = 0.7
)

// PartialTrendConfig controls partial trend summarization.
//
// Fields:
//   - Metric: Name of the measured quantity, e.g. "active users"
//   - Title: Title of the produced group
//   - Eps: Segmentation tolerance in normalized units
//   - Alpha: EMA smoothing factor, used with format.SmoothingEMA
//   - MergeThreshold: Membership degree at which adjacent trends merge
//   - ParagraphThreshold: Validity a clause must exceed to enter the paragraph
//   - Smoothing: Smoother applied before segmentation
//   - Window: Half window of the centered moving average
//   - NormalizeY: Whether y values are normalized before segmentation
//   - Emphasis: Wraps highlighted fragments (e.g. in markup); nil keeps them plain
type PartialTrendConfig struct {
	Metric             string
	Title              string
	Eps                float64
	Alpha              float64
	MergeThreshold     float64
	ParagraphThreshold float64
	Smoothing          format.SmoothingType
	Window             int
	NormalizeY         bool
	Emphasis           func(string) string
}

// DefaultPartialTrendConfig returns the configuration used by the reference
// dashboard: EMA smoothing with alpha 0.3, eps 0.01 and a 0.7 threshold.
func DefaultPartialTrendConfig() PartialTrendConfig {
	return PartialTrendConfig{
		Metric:             DefaultMetric,
		Title:              PartialTrendTitle,
		Eps:                DefaultEps,
		Alpha:              smooth.DefaultAlpha,
		MergeThreshold:     trend.DefaultMergeThreshold,
		ParagraphThreshold: DefaultParagraphThreshold,
		Smoothing:          format.SmoothingEMA,
		Window:             1,
		NormalizeY:         true,
	}
}

// Validate checks every numeric setting of the configuration.
func (c PartialTrendConfig) Validate() error {
	if err := trend.ValidateEps(c.Eps); err != nil {
		return err
	}
	if err := trend.ValidateThreshold(c.MergeThreshold); err != nil {
		return err
	}
	if err := trend.ValidateThreshold(c.ParagraphThreshold); err != nil {
		return err
	}

	switch c.Smoothing {
	case format.SmoothingNone:
	case format.SmoothingEMA:
		return smooth.ValidateAlpha(c.Alpha)
	case format.SmoothingCentered:
		if c.Window < 0 {
			return fmt.Errorf("%w: got %d", errs.ErrInvalidWindow, c.Window)
		}
	default:
		return fmt.Errorf("%w: %d", errs.ErrInvalidSmoothing, c.Smoothing)
	}

	return nil
}

// Smooth applies the configured smoother to points.
func Smooth[X any](points []point.XY[X], cfg PartialTrendConfig) ([]point.XY[X], error) {
	switch cfg.Smoothing {
	case format.SmoothingNone:
		out := make([]point.XY[X], len(points))
		copy(out, points)

		return out, nil
	case format.SmoothingCentered:
		return smooth.CenteredMovingAverage(points, cfg.Window)
	case format.SmoothingEMA:
		return smooth.ExponentialMovingAverage(points, cfg.Alpha)
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidSmoothing, cfg.Smoothing)
	}
}

// Trends smooths, segments and merges points as PartialTrends does.
//
// Returns:
//   - []point.XY[X]: The smoothed series
//   - []trend.PartialTrend[X]: Merged trends in series order
//   - error: A configuration error
func Trends[X any](points []point.XY[X], ordinal func(X) float64, cfg PartialTrendConfig) ([]point.XY[X], []trend.PartialTrend[X], error) {
	smoothed, err := Smooth(points, cfg)
	if err != nil {
		return nil, nil, err
	}

	var opts []trend.ExtractOption
	if !cfg.NormalizeY {
		opts = append(opts, trend.WithoutNormalizeY())
	}
	trends, err := trend.Extract(smoothed, ordinal, cfg.Eps, opts...)
	if err != nil {
		return nil, nil, err
	}

	merged, err := trend.Merge(trends, trend.DynamicMemberships[X](), cfg.MergeThreshold)
	if err != nil {
		return nil, nil, err
	}

	return smoothed, merged, nil
}

// PartialTrends describes a series through its merged partial trends.
//
// The series is smoothed, segmented and merged. Every merged trend then gets
// one sentence per dynamic, in trend.Dynamics order, whose validity is the
// trend's membership in that dynamic:
//
//	The active users from Mar 4, 2024 to Mar 6, 2024 increased by 20.
//	The active users from Mar 4, 2024 to Mar 6, 2024 is similar around 10.
//
// Increased and Decreased sentences state the absolute change of the
// smoothed series between the trend's ends; Similar sentences state the mean
// of the observed values over the trend. Clauses with a validity above
// cfg.ParagraphThreshold are joined into the group's paragraph, whose
// validity is the smallest clause validity. Without such clauses the group
// has no paragraph.
//
// Parameters:
//   - points: Series in x order
//   - ordinal: Maps an x value to a number, e.g. point.TimeOrdinal
//   - formatter: Renders times and values in sentences
//   - cfg: Summarization settings, see DefaultPartialTrendConfig
//
// Returns:
//   - []Group: A single group; empty summaries for fewer than two points
//   - error: ErrNilFormatter or a configuration error
func PartialTrends[X any](points []point.XY[X], ordinal func(X) float64, formatter Formatter[X], cfg PartialTrendConfig) ([]Group, error) {
	if formatter == nil {
		return nil, errs.ErrNilFormatter
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	smoothed, merged, err := Trends(points, ordinal, cfg)
	if err != nil {
		return nil, err
	}

	w := &partialWriter[X]{
		cfg:       cfg,
		formatter: formatter,
		points:    points,
		smoothed:  smoothed,
	}
	summaries := make([]Summary, 0, len(merged)*len(trend.Dynamics()))
	for _, t := range merged {
		for _, d := range trend.Dynamics() {
			summaries = append(summaries, w.describe(t, d))
		}
	}

	return []Group{{
		Title:     titleOr(cfg.Title, PartialTrendTitle),
		Summaries: summaries,
		Paragraph: w.paragraph(),
	}}, nil
}

type partialWriter[X any] struct {
	cfg       PartialTrendConfig
	formatter Formatter[X]
	points    []point.XY[X]
	smoothed  []point.XY[X]

	clauses  []string
	validity float64
}

func (w *partialWriter[X]) describe(t trend.PartialTrend[X], d trend.Dynamic) Summary {
	metric := titleOr(w.cfg.Metric, DefaultMetric)
	start := w.emph(w.formatter.FormatX(t.TimeStart))
	end := w.emph(w.formatter.FormatX(t.TimeEnd))
	validity := trend.DynamicMembership[X](d)(t)

	var text, clause string
	if d == trend.Similar {
		mean := linear.Mean(point.Values(w.points[t.IndexStart : t.IndexEnd+1]))
		claim := w.emph(fmt.Sprintf("%s around %s", d, w.formatter.FormatY(mean)))
		text = fmt.Sprintf("The %s from %s to %s is %s.", metric, start, end, claim)
		clause = fmt.Sprintf("%s from %s to %s", claim, start, end)
		if len(w.clauses) == 0 {
			clause = "is " + clause
		}
	} else {
		delta := math.Abs(w.smoothed[t.IndexEnd].Y - w.smoothed[t.IndexStart].Y)
		claim := w.emph(fmt.Sprintf("%s by %s", d, w.formatter.FormatY(delta)))
		text = fmt.Sprintf("The %s from %s to %s %s.", metric, start, end, claim)
		clause = fmt.Sprintf("%s from %s to %s", claim, start, end)
	}

	if validity > w.cfg.ParagraphThreshold {
		if len(w.clauses) == 0 {
			w.validity = 1
		}
		w.clauses = append(w.clauses, clause)
		w.validity = math.Min(w.validity, validity)
	}

	return Summary{Text: text, Validity: validity}
}

func (w *partialWriter[X]) paragraph() *Summary {
	if len(w.clauses) == 0 {
		return nil
	}
	metric := titleOr(w.cfg.Metric, DefaultMetric)

	return &Summary{
		Text:     fmt.Sprintf("The %s %s.", metric, strings.Join(w.clauses, ", ")),
		Validity: w.validity,
	}
}

func (w *partialWriter[X]) emph(s string) string {
	if w.cfg.Emphasis == nil {
		return s
	}

	return w.cfg.Emphasis(s)
}

func titleOr(s, fallback string) string {
	if s == "" {
		return fallback
	}

	return s
}
