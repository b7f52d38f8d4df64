// Package pipeline wires smoothing, segmentation, merging and summary
// generation into a single compute-once object per dataset.
package pipeline

import (
	"fmt"
	"slices"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/arloliu/lsts/errs"
	"github.com/arloliu/lsts/internal/hash"
	"github.com/arloliu/lsts/internal/options"
	"github.com/arloliu/lsts/linear"
	"github.com/arloliu/lsts/point"
	"github.com/arloliu/lsts/summary"
	"github.com/arloliu/lsts/trend"
)

// Pipeline summarizes one time series. Summaries are computed on first use
// and cached for the lifetime of the Pipeline; summarize new data with a new
// Pipeline.
//
// A Pipeline is safe for concurrent use.
type Pipeline struct {
	points      []point.TimePoint
	formatter   summary.Formatter[time.Time]
	cfg         Config
	logger      *log.Entry
	fingerprint uint64
	cache       *summary.Cache
}

// New creates a pipeline over a copy of points.
//
// Parameters:
//   - points: Time-ordered series; empty and single-point series are valid
//   - formatter: Renders times and values in sentences
//   - opts: Configuration options applied over DefaultConfig
//
// Returns:
//   - *Pipeline: Pipeline whose summaries are not computed yet
//   - error: ErrNilFormatter, or ErrInvalidConfig wrapping the failing setting
func New(points []point.TimePoint, formatter summary.Formatter[time.Time], opts ...Option) (*Pipeline, error) {
	p, err := prepare(points, formatter, opts)
	if err != nil {
		return nil, err
	}
	p.cache = summary.NewCache(p.compute)

	return p, nil
}

func prepare(points []point.TimePoint, formatter summary.Formatter[time.Time], opts []Option) (*Pipeline, error) {
	if formatter == nil {
		return nil, errs.ErrNilFormatter
	}

	cfg := DefaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	points = slices.Clone(points)
	ordinals := point.Ordinals(points, point.TimeOrdinal)
	xs := make([]float64, len(ordinals))
	ys := make([]float64, len(ordinals))
	for i, o := range ordinals {
		xs[i], ys[i] = o.X, o.Y
	}
	fp := hash.Fingerprint(xs, ys)

	return &Pipeline{
		points:      points,
		formatter:   formatter,
		cfg:         cfg,
		logger:      cfg.logger().WithField("dataset", fmt.Sprintf("%016x", fp)),
		fingerprint: fp,
	}, nil
}

// Summaries returns the summary groups of the series: the partial trend
// group, followed by the weekly comparison group when enabled.
func (p *Pipeline) Summaries() ([]summary.Group, error) {
	return p.cache.Get()
}

// Factory returns Summaries as a summary.Factory.
func (p *Pipeline) Factory() summary.Factory {
	return p.Summaries
}

// Computed reports whether the summaries have been computed.
func (p *Pipeline) Computed() bool {
	return p.cache.Computed()
}

// Fingerprint returns the xxHash64 fingerprint of the series.
func (p *Pipeline) Fingerprint() uint64 {
	return p.fingerprint
}

// Config returns the effective configuration.
func (p *Pipeline) Config() Config {
	return p.cfg
}

// Len returns the number of points in the series.
func (p *Pipeline) Len() int {
	return len(p.points)
}

// Trends returns the merged partial trends that the summaries describe.
// They are recomputed on every call.
func (p *Pipeline) Trends() ([]trend.PartialTrend[time.Time], error) {
	_, trends, err := summary.Trends(p.points, point.TimeOrdinal, p.cfg.Trend)

	return trends, err
}

// Model fits a least-squares line through the whole series, with x in days
// since the first point.
func (p *Pipeline) Model() (*linear.Model, error) {
	if len(p.points) == 0 {
		return nil, fmt.Errorf("%w: empty series", errs.ErrInsufficientPoints)
	}

	start := p.points[0].X
	days := point.Ordinals(p.points, func(t time.Time) float64 {
		return t.Sub(start).Hours() / 24
	})

	return linear.OLS{}.Fit(days)
}

func (p *Pipeline) compute() ([]summary.Group, error) {
	began := time.Now()
	p.logger.Debugf("summarizing %d points", len(p.points))

	factories := []summary.Factory{func() ([]summary.Group, error) {
		return summary.PartialTrends(p.points, point.TimeOrdinal, p.formatter, p.cfg.Trend)
	}}
	if p.cfg.Weekly {
		factories = append(factories, func() ([]summary.Group, error) {
			return summary.WeeklyComparisonAverage(p.points, p.formatter, p.cfg.Trend.Metric)
		})
	}

	groups, err := summary.Combine(factories...)()
	if err != nil {
		p.logger.Errorf("summarization failed: %s", err)
		return nil, err
	}

	count := 0
	for _, g := range groups {
		count += len(g.Summaries)
	}
	p.logger.WithFields(log.Fields{
		"groups":    len(groups),
		"summaries": count,
	}).Debugf("summaries computed in %s", time.Since(began))

	return groups, nil
}
