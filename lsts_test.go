package lsts

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/lsts/archive"
	"github.com/arloliu/lsts/errs"
	"github.com/arloliu/lsts/format"
	"github.com/arloliu/lsts/pipeline"
	"github.com/arloliu/lsts/point"
	"github.com/arloliu/lsts/summary"
)

var monday = time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

func TestSummarize(t *testing.T) {
	groups, err := Summarize(point.Daily(monday, 0, 10, 0), pipeline.WithSmoothing(format.SmoothingNone))
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Equal(t, summary.PartialTrendTitle, groups[0].Title)
	require.Len(t, groups[0].Summaries, 6)
	require.NotNil(t, groups[0].Paragraph)

	groups, err = Summarize(point.Daily(monday, 1, 2, 3, 4, 5, 6, 7, 8), pipeline.WithWeeklyComparison())
	require.NoError(t, err)
	require.Len(t, groups, 2)
	require.Equal(t, summary.WeeklyComparisonTitle, groups[1].Title)
}

func TestSummarize_InvalidOption(t *testing.T) {
	_, err := Summarize(point.Daily(monday, 1, 2), pipeline.WithEps(-1))
	require.ErrorIs(t, err, errs.ErrInvalidConfig)
	require.ErrorIs(t, err, errs.ErrInvalidEpsilon)
}

func TestSummarizeNumeric(t *testing.T) {
	cfg := summary.DefaultPartialTrendConfig()
	cfg.Smoothing = format.SmoothingNone
	cfg.Metric = "load"

	groups, err := SummarizeNumeric([]point.NumPoint{{X: 0, Y: 0}, {X: 1, Y: 10}, {X: 2, Y: 20}}, cfg)
	require.NoError(t, err)
	require.Equal(t, "The load from 0 to 2 increased by 20.", groups[0].Summaries[0].Text)
}

func TestArchiveRestore(t *testing.T) {
	groups, err := Summarize(point.Daily(monday, 4, 8, 15, 16, 23, 42), pipeline.WithWeeklyComparison())
	require.NoError(t, err)

	for _, ct := range []format.CompressionType{format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		data, err := Archive(groups, archive.WithCompression(ct))
		require.NoError(t, err)

		restored, err := Restore(data)
		require.NoError(t, err)
		require.Equal(t, groups, restored)
	}
}

func ExampleSummarize() {
	points := point.Daily(monday, 0, 10, 0)

	groups, err := Summarize(points, pipeline.WithSmoothing(format.SmoothingNone))
	if err != nil {
		fmt.Println(err)
		return
	}

	g := groups[0]
	fmt.Println(g.Title)
	fmt.Printf("%.2f %s\n", g.Paragraph.Validity, g.Paragraph.Text)
	// Output:
	// Trend Partial Elaboration
	// 1.00 The active users increased by 10 from Mar 4, 2024 to Mar 5, 2024, decreased by 10 from Mar 5, 2024 to Mar 6, 2024.
}
