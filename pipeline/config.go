package pipeline

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/arloliu/lsts/errs"
	"github.com/arloliu/lsts/format"
	"github.com/arloliu/lsts/internal/options"
	"github.com/arloliu/lsts/smooth"
	"github.com/arloliu/lsts/summary"
	"github.com/arloliu/lsts/trend"
)

// Config holds the settings of a Pipeline.
//
// Fields:
//   - Trend: Partial trend summarization settings
//   - Weekly: Whether the weekly comparison group is produced as well
//   - Logger: Destination of debug logs; discarded when nil
type Config struct {
	Trend  summary.PartialTrendConfig
	Weekly bool
	Logger *log.Entry
}

// Option configures a Pipeline.
type Option = options.Option[*Config]

// DefaultConfig returns the default pipeline configuration: partial trend
// summaries only, with summary.DefaultPartialTrendConfig settings.
func DefaultConfig() Config {
	return Config{Trend: summary.DefaultPartialTrendConfig()}
}

// Validate implements options.Validator.
func (c *Config) Validate() error {
	if err := c.Trend.Validate(); err != nil {
		return invalid(err)
	}

	return nil
}

// signature identifies the settings that change the produced groups.
func (c *Config) signature() string {
	t := c.Trend

	return fmt.Sprintf("eps=%v alpha=%v merge=%v para=%v smooth=%d window=%d normy=%t metric=%q title=%q emph=%s weekly=%t",
		t.Eps, t.Alpha, t.MergeThreshold, t.ParagraphThreshold, t.Smoothing, t.Window,
		t.NormalizeY, t.Metric, t.Title, emphasisKey(t.Emphasis), c.Weekly)
}

// emphasisMarker is the fragment emphasisKey renders to tell markups apart.
const emphasisMarker = "\x00"

// emphasisKey identifies an emphasis function by its code pointer and by the
// markup it wraps around a marker fragment. Closures of one function literal
// share a code pointer, so the rendered marker separates them.
func emphasisKey(fn func(string) string) string {
	if fn == nil {
		return "none"
	}

	return fmt.Sprintf("%x:%q", reflect.ValueOf(fn).Pointer(), fn(emphasisMarker))
}

func (c *Config) logger() *log.Entry {
	if c.Logger != nil {
		return c.Logger
	}
	l := log.New()
	l.SetOutput(io.Discard)

	return log.NewEntry(l)
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", errs.ErrInvalidConfig, err)
}

// WithEps sets the segmentation tolerance, in normalized chart units.
// See summary.DefaultEps for choosing it on long series.
func WithEps(eps float64) Option {
	return options.New(func(c *Config) error {
		if err := trend.ValidateEps(eps); err != nil {
			return invalid(err)
		}
		c.Trend.Eps = eps

		return nil
	})
}

// WithAlpha sets the EMA smoothing factor, in (0, 1].
func WithAlpha(alpha float64) Option {
	return options.New(func(c *Config) error {
		if err := smooth.ValidateAlpha(alpha); err != nil {
			return invalid(err)
		}
		c.Trend.Alpha = alpha

		return nil
	})
}

// WithMergeThreshold sets the membership degree at which adjacent trends merge.
func WithMergeThreshold(threshold float64) Option {
	return options.New(func(c *Config) error {
		if err := trend.ValidateThreshold(threshold); err != nil {
			return invalid(err)
		}
		c.Trend.MergeThreshold = threshold

		return nil
	})
}

// WithParagraphThreshold sets the validity a clause must exceed to enter the paragraph.
func WithParagraphThreshold(threshold float64) Option {
	return options.New(func(c *Config) error {
		if err := trend.ValidateThreshold(threshold); err != nil {
			return invalid(err)
		}
		c.Trend.ParagraphThreshold = threshold

		return nil
	})
}

// WithSmoothing selects the smoother applied before segmentation.
func WithSmoothing(s format.SmoothingType) Option {
	return options.New(func(c *Config) error {
		switch s {
		case format.SmoothingNone, format.SmoothingEMA, format.SmoothingCentered:
			c.Trend.Smoothing = s
			return nil
		default:
			return invalid(fmt.Errorf("%w: %d", errs.ErrInvalidSmoothing, s))
		}
	})
}

// WithWindow sets the half window of the centered moving average.
func WithWindow(k int) Option {
	return options.New(func(c *Config) error {
		if k < 0 {
			return invalid(fmt.Errorf("%w: got %d", errs.ErrInvalidWindow, k))
		}
		c.Trend.Window = k

		return nil
	})
}

// WithMetric names the measured quantity in sentences.
func WithMetric(metric string) Option {
	return options.NoError(func(c *Config) {
		if m := strings.TrimSpace(metric); m != "" {
			c.Trend.Metric = m
		}
	})
}

// WithTitle sets the title of the partial trend group.
func WithTitle(title string) Option {
	return options.NoError(func(c *Config) {
		if t := strings.TrimSpace(title); t != "" {
			c.Trend.Title = t
		}
	})
}

// WithEmphasis wraps highlighted fragments of sentences, e.g. in HTML markup.
//
// fn must be deterministic. A Registry tells emphasis functions apart by
// identity and by the markup fn returns for a marker fragment; fn is called
// once with that marker when a pipeline is registered.
func WithEmphasis(fn func(string) string) Option {
	return options.NoError(func(c *Config) {
		c.Trend.Emphasis = fn
	})
}

// WithoutNormalizeY segments on raw y values instead of normalized ones.
func WithoutNormalizeY() Option {
	return options.NoError(func(c *Config) {
		c.Trend.NormalizeY = false
	})
}

// WithWeeklyComparison adds the weekly average comparison group.
func WithWeeklyComparison() Option {
	return options.NoError(func(c *Config) {
		c.Weekly = true
	})
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *log.Entry) Option {
	return options.NoError(func(c *Config) {
		c.Logger = logger
	})
}
