// Package lsts produces linguistic summaries of time series: short
// natural-language statements about the trends of a series, each tagged with
// a validity in [0, 1], plus one highlight paragraph.
//
// The series is smoothed, cut into piecewise-linear partial trends by cone
// intersection, and the trends are classified as increased, similar or
// decreased with fuzzy membership functions over their slope angle. Adjacent
// trends of the same category are merged before the sentences are written.
//
// # Basic Usage
//
//	points := point.Daily(start, 3, 5, 9, 8, 8, 4)
//	groups, err := lsts.Summarize(points)
//	if err != nil {
//	    return err
//	}
//	for _, g := range groups {
//	    fmt.Println(g.Title)
//	    for _, s := range g.Summaries {
//	        fmt.Printf("%.2f %s\n", s.Validity, s.Text)
//	    }
//	}
//
// # Package Structure
//
// This package wraps the most common use cases. For control over caching,
// logging or the individual stages, use the pipeline, summary and trend
// packages directly. Summaries can be persisted with the archive package.
package lsts

import (
	"github.com/arloliu/lsts/archive"
	"github.com/arloliu/lsts/pipeline"
	"github.com/arloliu/lsts/point"
	"github.com/arloliu/lsts/summary"
)

// Summarize computes the summary groups of a time series with dates formatted
// as summary.DateLayout.
//
// Parameters:
//   - points: Observations in series order
//   - opts: Pipeline options, e.g. pipeline.WithMetric("page views")
//
// Returns:
//   - []summary.Group: The partial trend group, then the weekly comparison
//     group when pipeline.WithWeeklyComparison is given
//   - error: ErrInvalidConfig wrapping the failing option
func Summarize(points []point.TimePoint, opts ...pipeline.Option) ([]summary.Group, error) {
	p, err := pipeline.New(points, summary.DefaultTimeFormatter(), opts...)
	if err != nil {
		return nil, err
	}

	return p.Summaries()
}

// SummarizeNumeric computes the partial trend group of a numerically indexed
// series. Numbers are formatted with summary.FormatNumber.
func SummarizeNumeric(points []point.NumPoint, cfg summary.PartialTrendConfig) ([]summary.Group, error) {
	return summary.PartialTrends(points, point.NumOrdinal, summary.FormatterFuncs[float64]{}, cfg)
}

// Archive encodes summary groups into the archive format.
//
// Example:
//
//	data, err := lsts.Archive(groups, archive.WithCompression(format.CompressionS2))
func Archive(groups []summary.Group, opts ...archive.Option) ([]byte, error) {
	return archive.Encode(groups, opts...)
}

// Restore decodes summary groups from data produced by Archive.
func Restore(data []byte) ([]summary.Group, error) {
	return archive.Decode(data)
}
