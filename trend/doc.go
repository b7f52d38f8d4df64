// Package trend extracts piecewise-linear trends from a series and
// classifies their direction.
//
// # Segmentation
//
// Points are normalized into the chart domain (x in [0, 8/5], y in [0, 1])
// and split into partial trends. For an anchor point i, every later point k
// defines a cone: the slopes of lines through i that pass within eps of k.
// The run i..j extends while the running intersection of these cones is not
// empty, so a single line fits the whole run within eps:
//
//	trends, err := trend.Extract(series, point.TimeOrdinal, 0.01)
//
// # Classification
//
// Each trend is described by the mid angle of its cone. Fuzzy membership
// functions map that angle to degrees of the Increased, Similar and
// Decreased dynamics; the degrees are not mutually exclusive.
//
// # Merging
//
// Merge joins adjacent trends that belong to the same dynamic with a degree
// of at least a threshold, producing fewer and longer trends for summaries:
//
//	merged, err := trend.Merge(trends, trend.DynamicMemberships[time.Time](), trend.DefaultMergeThreshold)
package trend
