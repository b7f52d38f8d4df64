package pipeline

import (
	"bytes"
	"sync"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/lsts/errs"
	"github.com/arloliu/lsts/format"
	"github.com/arloliu/lsts/point"
	"github.com/arloliu/lsts/summary"
)

var monday = time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, 0.01, cfg.Trend.Eps)
	require.Equal(t, 0.3, cfg.Trend.Alpha)
	require.Equal(t, 0.7, cfg.Trend.MergeThreshold)
	require.Equal(t, format.SmoothingEMA, cfg.Trend.Smoothing)
	require.True(t, cfg.Trend.NormalizeY)
	require.False(t, cfg.Weekly)
	require.NoError(t, cfg.Validate())
}

func TestOptions(t *testing.T) {
	emph := func(s string) string { return "*" + s + "*" }
	p, err := New(nil, summary.DefaultTimeFormatter(),
		WithEps(0.02),
		WithAlpha(0.5),
		WithMergeThreshold(0.8),
		WithParagraphThreshold(0.9),
		WithSmoothing(format.SmoothingCentered),
		WithWindow(3),
		WithMetric(" page views "),
		WithTitle("Trends"),
		WithEmphasis(emph),
		WithoutNormalizeY(),
		WithWeeklyComparison(),
	)
	require.NoError(t, err)

	cfg := p.Config()
	require.Equal(t, 0.02, cfg.Trend.Eps)
	require.Equal(t, 0.5, cfg.Trend.Alpha)
	require.Equal(t, 0.8, cfg.Trend.MergeThreshold)
	require.Equal(t, 0.9, cfg.Trend.ParagraphThreshold)
	require.Equal(t, format.SmoothingCentered, cfg.Trend.Smoothing)
	require.Equal(t, 3, cfg.Trend.Window)
	require.Equal(t, "page views", cfg.Trend.Metric)
	require.Equal(t, "Trends", cfg.Trend.Title)
	require.Equal(t, "*x*", cfg.Trend.Emphasis("x"))
	require.False(t, cfg.Trend.NormalizeY)
	require.True(t, cfg.Weekly)

	// blank names keep the defaults
	p, err = New(nil, summary.DefaultTimeFormatter(), WithMetric(""), WithTitle("  "))
	require.NoError(t, err)
	require.Equal(t, summary.DefaultMetric, p.Config().Trend.Metric)
	require.Equal(t, summary.PartialTrendTitle, p.Config().Trend.Title)
}

func TestInvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
		want error
	}{
		{"eps", WithEps(-0.1), errs.ErrInvalidEpsilon},
		{"alpha", WithAlpha(0), errs.ErrInvalidAlpha},
		{"merge threshold", WithMergeThreshold(1.5), errs.ErrInvalidThreshold},
		{"paragraph threshold", WithParagraphThreshold(-1), errs.ErrInvalidThreshold},
		{"smoothing", WithSmoothing(format.SmoothingType(9)), errs.ErrInvalidSmoothing},
		{"window", WithWindow(-2), errs.ErrInvalidWindow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(nil, summary.DefaultTimeFormatter(), tt.opt)
			require.ErrorIs(t, err, errs.ErrInvalidConfig)
			require.ErrorIs(t, err, tt.want)
		})
	}

	_, err := New(nil, nil)
	require.ErrorIs(t, err, errs.ErrNilFormatter)
}

func TestSummaries(t *testing.T) {
	series := point.Daily(monday, 0, 10, 0)

	p, err := New(series, summary.DefaultTimeFormatter(), WithSmoothing(format.SmoothingNone))
	require.NoError(t, err)
	require.False(t, p.Computed())
	require.Equal(t, 3, p.Len())

	groups, err := p.Summaries()
	require.NoError(t, err)
	require.True(t, p.Computed())
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Summaries, 6)
	require.NotNil(t, groups[0].Paragraph)

	trends, err := p.Trends()
	require.NoError(t, err)
	require.Len(t, trends, 2)
}

func TestSummariesFlat(t *testing.T) {
	p, err := New(point.Daily(monday, 5, 5, 5, 5), summary.DefaultTimeFormatter())
	require.NoError(t, err)

	groups, err := p.Summaries()
	require.NoError(t, err)
	require.Len(t, groups[0].Summaries, 3)
	require.InDelta(t, 1.0, groups[0].Summaries[1].Validity, 1e-9)
}

func TestSummariesEmpty(t *testing.T) {
	p, err := New(nil, summary.DefaultTimeFormatter(), WithWeeklyComparison())
	require.NoError(t, err)

	groups, err := p.Summaries()
	require.NoError(t, err)
	require.Len(t, groups, 2)
	require.Empty(t, groups[0].Summaries)
	require.Nil(t, groups[0].Paragraph)
	require.Empty(t, groups[1].Summaries)

	_, err = p.Model()
	require.ErrorIs(t, err, errs.ErrInsufficientPoints)
}

func TestSummariesWeekly(t *testing.T) {
	values := make([]float64, 14)
	for i := range values {
		values[i] = 10
		if i >= 7 {
			values[i] = 20
		}
	}
	p, err := New(point.Daily(monday, values...), summary.DefaultTimeFormatter(), WithWeeklyComparison(), WithMetric("sessions"))
	require.NoError(t, err)

	groups, err := p.Summaries()
	require.NoError(t, err)
	require.Len(t, groups, 2)
	require.Equal(t, summary.WeeklyComparisonTitle, groups[1].Title)
	require.Equal(t, "The average sessions in the second week was 100% more than the first week.", groups[1].Summaries[0].Text)
}

func TestPointsAreCopied(t *testing.T) {
	series := point.Daily(monday, 1, 2, 3)
	p, err := New(series, summary.DefaultTimeFormatter())
	require.NoError(t, err)
	fp := p.Fingerprint()

	series[0].Y = 100
	again, err := New(point.Daily(monday, 1, 2, 3), summary.DefaultTimeFormatter())
	require.NoError(t, err)
	require.Equal(t, fp, again.Fingerprint())
}

func TestModel(t *testing.T) {
	p, err := New(point.Daily(monday, 3, 5, 7, 9), summary.DefaultTimeFormatter())
	require.NoError(t, err)

	m, err := p.Model()
	require.NoError(t, err)
	require.InDelta(t, 2.0, m.Gradient, 1e-9)
	require.InDelta(t, 3.0, m.YIntercept, 1e-9)
	require.InDelta(t, 1.0, m.R2, 1e-9)
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New()
	logger.SetOutput(&buf)
	logger.SetLevel(log.DebugLevel)

	p, err := New(point.Daily(monday, 1, 2, 3), summary.DefaultTimeFormatter(), WithLogger(log.NewEntry(logger)))
	require.NoError(t, err)
	_, err = p.Summaries()
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "summarizing 3 points")
	require.Contains(t, out, "summaries computed")
	require.Contains(t, out, "dataset=")
}

func TestConcurrentSummaries(t *testing.T) {
	p, err := New(point.Daily(monday, 1, 4, 2, 8, 5, 7), summary.DefaultTimeFormatter())
	require.NoError(t, err)

	results := make([][]summary.Group, 16)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			groups, err := p.Summaries()
			assert.NoError(t, err)
			results[i] = groups
		}()
	}
	wg.Wait()

	for _, r := range results[1:] {
		require.Same(t, &results[0][0], &r[0])
	}
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	series := point.Daily(monday, 1, 4, 2, 8)

	a, err := reg.Pipeline(series, summary.DefaultTimeFormatter())
	require.NoError(t, err)
	groups, err := a.Summaries()
	require.NoError(t, err)

	b, err := reg.Pipeline(point.Daily(monday, 1, 4, 2, 8), summary.DefaultTimeFormatter())
	require.NoError(t, err)
	require.True(t, b.Computed())
	again, err := b.Summaries()
	require.NoError(t, err)
	require.Same(t, &groups[0], &again[0])
	require.Equal(t, 1, reg.Len())

	c, err := reg.Pipeline(series, summary.DefaultTimeFormatter(), WithEps(0.05))
	require.NoError(t, err)
	require.False(t, c.Computed())
	require.Equal(t, 2, reg.Len())

	d, err := reg.Pipeline(point.Daily(monday, 1, 4, 2, 9), summary.DefaultTimeFormatter())
	require.NoError(t, err)
	require.False(t, d.Computed())
	require.NotEqual(t, a.Fingerprint(), d.Fingerprint())
	require.Equal(t, 3, reg.Len())

	_, err = reg.Pipeline(series, summary.DefaultTimeFormatter(), WithAlpha(2))
	require.ErrorIs(t, err, errs.ErrInvalidConfig)
}

func TestRegistryEmphasis(t *testing.T) {
	wrap := func(open, closing string) func(string) string {
		return func(s string) string { return open + s + closing }
	}
	series := point.Daily(monday, 0, 10, 0)
	reg := NewRegistry()

	firstText := func(p *Pipeline) string {
		t.Helper()
		groups, err := p.Summaries()
		require.NoError(t, err)

		return groups[0].Summaries[0].Text
	}

	bold, err := reg.Pipeline(series, summary.DefaultTimeFormatter(), WithSmoothing(format.SmoothingNone), WithEmphasis(wrap("<b>", "</b>")))
	require.NoError(t, err)
	require.Equal(t, "The active users from <b>Mar 4, 2024</b> to <b>Mar 5, 2024</b> <b>increased by 10</b>.", firstText(bold))

	// same function literal, different markup
	stars, err := reg.Pipeline(series, summary.DefaultTimeFormatter(), WithSmoothing(format.SmoothingNone), WithEmphasis(wrap("*", "*")))
	require.NoError(t, err)
	require.False(t, stars.Computed())
	require.Equal(t, "The active users from *Mar 4, 2024* to *Mar 5, 2024* *increased by 10*.", firstText(stars))

	plain, err := reg.Pipeline(series, summary.DefaultTimeFormatter(), WithSmoothing(format.SmoothingNone))
	require.NoError(t, err)
	require.False(t, plain.Computed())
	require.Equal(t, "The active users from Mar 4, 2024 to Mar 5, 2024 increased by 10.", firstText(plain))
	require.Equal(t, 3, reg.Len())

	again, err := reg.Pipeline(series, summary.DefaultTimeFormatter(), WithSmoothing(format.SmoothingNone), WithEmphasis(wrap("<b>", "</b>")))
	require.NoError(t, err)
	require.True(t, again.Computed())
	require.Equal(t, firstText(bold), firstText(again))
	require.Equal(t, 3, reg.Len())
}

func TestEmphasisKey(t *testing.T) {
	bracket := func(s string) string { return "[" + s + "]" }

	require.Equal(t, "none", emphasisKey(nil))
	require.Equal(t, emphasisKey(bracket), emphasisKey(bracket))
	require.NotEqual(t, emphasisKey(bracket), emphasisKey(func(s string) string { return "_" + s + "_" }))
}
