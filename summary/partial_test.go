package summary

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/lsts/errs"
	"github.com/arloliu/lsts/format"
	"github.com/arloliu/lsts/point"
)

var monday = time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

func rawConfig() PartialTrendConfig {
	cfg := DefaultPartialTrendConfig()
	cfg.Smoothing = format.SmoothingNone

	return cfg
}

func TestPartialTrendsPeak(t *testing.T) {
	series := point.Daily(monday, 0, 10, 0)

	groups, err := PartialTrends(series, point.TimeOrdinal, DefaultTimeFormatter(), rawConfig())
	require.NoError(t, err)
	require.Len(t, groups, 1)

	g := groups[0]
	require.Equal(t, PartialTrendTitle, g.Title)
	require.Len(t, g.Summaries, 6)

	require.Equal(t, "The active users from Mar 4, 2024 to Mar 5, 2024 increased by 10.", g.Summaries[0].Text)
	require.InDelta(t, 1.0, g.Summaries[0].Validity, 1e-9)
	require.Equal(t, "The active users from Mar 4, 2024 to Mar 5, 2024 is similar around 5.", g.Summaries[1].Text)
	require.InDelta(t, 0.0, g.Summaries[1].Validity, 1e-9)
	require.InDelta(t, 0.0, g.Summaries[2].Validity, 1e-9)

	require.InDelta(t, 0.0, g.Summaries[3].Validity, 1e-9)
	require.Equal(t, "The active users from Mar 5, 2024 to Mar 6, 2024 decreased by 10.", g.Summaries[5].Text)
	require.InDelta(t, 1.0, g.Summaries[5].Validity, 1e-9)

	require.NotNil(t, g.Paragraph)
	require.Equal(t, "The active users increased by 10 from Mar 4, 2024 to Mar 5, 2024, decreased by 10 from Mar 5, 2024 to Mar 6, 2024.", g.Paragraph.Text)
	require.InDelta(t, 1.0, g.Paragraph.Validity, 1e-9)
}

func TestPartialTrendsFlat(t *testing.T) {
	series := point.Daily(monday, 5, 5, 5, 5)

	for _, smoothing := range []format.SmoothingType{format.SmoothingNone, format.SmoothingEMA, format.SmoothingCentered} {
		t.Run(smoothing.String(), func(t *testing.T) {
			cfg := DefaultPartialTrendConfig()
			cfg.Smoothing = smoothing

			groups, err := PartialTrends(series, point.TimeOrdinal, DefaultTimeFormatter(), cfg)
			require.NoError(t, err)
			require.Len(t, groups[0].Summaries, 3)

			inc, sim, dec := groups[0].Summaries[0], groups[0].Summaries[1], groups[0].Summaries[2]
			require.InDelta(t, 0.0, inc.Validity, 1e-9)
			require.InDelta(t, 1.0, sim.Validity, 1e-9)
			require.InDelta(t, 0.0, dec.Validity, 1e-9)
			require.Equal(t, "The active users from Mar 4, 2024 to Mar 7, 2024 is similar around 5.", sim.Text)
			require.Equal(t, "The active users from Mar 4, 2024 to Mar 7, 2024 increased by 0.", inc.Text)

			require.NotNil(t, groups[0].Paragraph)
			require.Equal(t, "The active users is similar around 5 from Mar 4, 2024 to Mar 7, 2024.", groups[0].Paragraph.Text)
			require.InDelta(t, 1.0, groups[0].Paragraph.Validity, 1e-9)
		})
	}
}

func TestPartialTrendsNumeric(t *testing.T) {
	series := []point.NumPoint{{X: 0, Y: 0}, {X: 1, Y: 10}, {X: 2, Y: 20}}

	groups, err := PartialTrends(series, point.NumOrdinal, FormatterFuncs[float64]{}, rawConfig())
	require.NoError(t, err)
	require.Len(t, groups[0].Summaries, 3)
	require.Equal(t, "The active users from 0 to 2 increased by 20.", groups[0].Summaries[0].Text)
	require.InDelta(t, 1.0, groups[0].Summaries[0].Validity, 1e-9)
}

func TestPartialTrendsEmpty(t *testing.T) {
	for _, series := range [][]point.TimePoint{{}, nil, point.Daily(monday, 3)} {
		groups, err := PartialTrends(series, point.TimeOrdinal, DefaultTimeFormatter(), DefaultPartialTrendConfig())
		require.NoError(t, err)
		require.Len(t, groups, 1)
		require.Empty(t, groups[0].Summaries)
		require.Nil(t, groups[0].Paragraph)
	}
}

func TestPartialTrendsOptions(t *testing.T) {
	series := point.Daily(monday, 0, 10, 0)

	cfg := rawConfig()
	cfg.Metric = "page views"
	cfg.Title = "Highlights"
	cfg.Emphasis = func(s string) string { return fmt.Sprintf("<b>%s</b>", s) }

	groups, err := PartialTrends(series, point.TimeOrdinal, DefaultTimeFormatter(), cfg)
	require.NoError(t, err)
	require.Equal(t, "Highlights", groups[0].Title)
	require.Equal(t, "The page views from <b>Mar 4, 2024</b> to <b>Mar 5, 2024</b> <b>increased by 10</b>.", groups[0].Summaries[0].Text)

	cfg.ParagraphThreshold = 1
	groups, err = PartialTrends(series, point.TimeOrdinal, DefaultTimeFormatter(), cfg)
	require.NoError(t, err)
	require.Nil(t, groups[0].Paragraph)
}

func TestPartialTrendsSmoothedDelta(t *testing.T) {
	series := point.Daily(monday, 0, 10, 20)
	cfg := DefaultPartialTrendConfig()
	cfg.Alpha = 1

	groups, err := PartialTrends(series, point.TimeOrdinal, DefaultTimeFormatter(), cfg)
	require.NoError(t, err)
	require.Equal(t, "The active users from Mar 4, 2024 to Mar 6, 2024 increased by 20.", groups[0].Summaries[0].Text)
}

func TestPartialTrendsErrors(t *testing.T) {
	series := point.Daily(monday, 1, 2, 3)

	tests := []struct {
		name   string
		mutate func(*PartialTrendConfig)
		want   error
	}{
		{"negative eps", func(c *PartialTrendConfig) { c.Eps = -1 }, errs.ErrInvalidEpsilon},
		{"zero alpha", func(c *PartialTrendConfig) { c.Alpha = 0 }, errs.ErrInvalidAlpha},
		{"alpha above one", func(c *PartialTrendConfig) { c.Alpha = 1.5 }, errs.ErrInvalidAlpha},
		{"merge threshold", func(c *PartialTrendConfig) { c.MergeThreshold = 2 }, errs.ErrInvalidThreshold},
		{"paragraph threshold", func(c *PartialTrendConfig) { c.ParagraphThreshold = -0.5 }, errs.ErrInvalidThreshold},
		{"unknown smoothing", func(c *PartialTrendConfig) { c.Smoothing = 0 }, errs.ErrInvalidSmoothing},
		{"negative window", func(c *PartialTrendConfig) {
			c.Smoothing = format.SmoothingCentered
			c.Window = -1
		}, errs.ErrInvalidWindow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultPartialTrendConfig()
			tt.mutate(&cfg)
			_, err := PartialTrends(series, point.TimeOrdinal, DefaultTimeFormatter(), cfg)
			require.ErrorIs(t, err, tt.want)
		})
	}

	_, err := PartialTrends(series, point.TimeOrdinal, nil, DefaultPartialTrendConfig())
	require.ErrorIs(t, err, errs.ErrNilFormatter)
}

func BenchmarkPartialTrends(b *testing.B) {
	values := make([]float64, 90)
	for i := range values {
		values[i] = float64(100 + (i%14)*7)
	}
	series := point.Daily(monday, values...)
	formatter := DefaultTimeFormatter()
	cfg := DefaultPartialTrendConfig()

	b.ReportAllocs()
	for b.Loop() {
		_, _ = PartialTrends(series, point.TimeOrdinal, formatter, cfg)
	}
}
