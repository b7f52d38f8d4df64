// Package summary turns a time series into linguistic summaries.
//
// A summary is a sentence tagged with a validity in [0, 1], the degree to
// which it holds for the data. Summaries come in titled groups; a group may
// carry a paragraph that joins its most valid claims into one sentence.
//
// # Generators
//
// PartialTrends describes the piecewise-linear trends of a series, one
// sentence per trend and dynamic. WeeklyComparisonAverage compares the
// averages of consecutive ISO weeks. Both render values through a Formatter
// supplied by the caller.
//
// # Caching
//
// Generators are pure but not cheap. A Cache runs a Factory once and keeps
// its result; a Registry shares caches between callers that summarize the
// same dataset:
//
//	reg := summary.NewRegistry()
//	c := reg.Cache(fingerprint, func() ([]summary.Group, error) {
//		return summary.PartialTrends(points, point.TimeOrdinal, summary.DefaultTimeFormatter(), cfg)
//	})
//	groups, err := c.Get()
package summary
