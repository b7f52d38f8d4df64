package summary

import (
	"fmt"
	"math"
	"time"

	"github.com/arloliu/lsts/errs"
	"github.com/arloliu/lsts/linear"
	"github.com/arloliu/lsts/point"
)

const (
	// WeeklyComparisonTitle is the title of the weekly comparison group.
	WeeklyComparisonTitle = "Trend Weekly Comparison - Average"
	// SimilarPercentage is the largest relative change, in percent, still
	// reported as "similar".
	SimilarPercentage = 5.0
)

var weekWords = []string{"first", "second", "third", "fourth", "fifth"}

// WeekName returns the ordinal word for the i-th week (0-based): "first"
// through "fifth", then "6th", "7th" and so on.
func WeekName(i int) string {
	if i >= 0 && i < len(weekWords) {
		return weekWords[i]
	}

	return Ordinal(i + 1)
}

type isoWeek struct {
	year, week int
}

// Weeks splits a time-ordered series into runs of points that share an ISO
// week. Runs appear in series order.
func Weeks(points []point.TimePoint) [][]point.TimePoint {
	var (
		weeks [][]point.TimePoint
		last  isoWeek
	)
	for i, p := range points {
		y, w := p.X.ISOWeek()
		curr := isoWeek{year: y, week: w}
		if i == 0 || curr != last {
			weeks = append(weeks, nil)
			last = curr
		}
		weeks[len(weeks)-1] = append(weeks[len(weeks)-1], p)
	}

	return weeks
}

// WeeklyComparisonAverage compares the average of every week with the week
// before it:
//
//	The average active users in the second week was 10.4% more than the first week.
//	The average active users in the third week was similar to the second week.
//
// A change of at most SimilarPercentage percent is reported as similar. When
// the earlier week averages zero no percentage exists, and only the direction
// is stated. Every statement has validity 1.
//
// Parameters:
//   - points: Time-ordered series
//   - formatter: Renders the percentage values
//   - metric: Name of the measured quantity; DefaultMetric when empty
//
// Returns:
//   - []Group: A single group; no summaries for series within one week
//   - error: ErrNilFormatter
func WeeklyComparisonAverage(points []point.TimePoint, formatter Formatter[time.Time], metric string) ([]Group, error) {
	if formatter == nil {
		return nil, errs.ErrNilFormatter
	}
	metric = titleOr(metric, DefaultMetric)

	weeks := Weeks(points)
	averages := make([]float64, len(weeks))
	for i, w := range weeks {
		averages[i] = linear.Mean(point.Values(w))
	}

	summaries := make([]Summary, 0, max(len(weeks)-1, 0))
	for i := 0; i+1 < len(weeks); i++ {
		change := compareAverages(averages[i], averages[i+1], formatter)
		summaries = append(summaries, Summary{
			Text:     fmt.Sprintf("The average %s in the %s week was %s the %s week.", metric, WeekName(i+1), change, WeekName(i)),
			Validity: 1.0,
		})
	}

	return []Group{{
		Title:     WeeklyComparisonTitle,
		Summaries: summaries,
	}}, nil
}

func compareAverages(prev, curr float64, formatter Formatter[time.Time]) string {
	descriptor := "more"
	if curr < prev {
		descriptor = "less"
	}

	if prev == 0 {
		if curr == 0 {
			return "similar to"
		}

		return descriptor + " than"
	}

	pct := math.Abs((curr - prev) / prev * 100)
	if pct <= SimilarPercentage {
		return "similar to"
	}

	return fmt.Sprintf("%s%% %s than", formatter.FormatY(pct), descriptor)
}
