package pipeline

import (
	"fmt"
	"time"

	"github.com/arloliu/lsts/internal/hash"
	"github.com/arloliu/lsts/point"
	"github.com/arloliu/lsts/summary"
)

// Registry creates pipelines that share summaries with every earlier
// pipeline over the same series and settings.
//
// Emphasis functions are part of the key (see WithEmphasis). Formatters are
// not: the first pipeline registered for a key computes the summaries, so
// pipelines of one Registry should render values the same way.
type Registry struct {
	caches *summary.Registry
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{caches: summary.NewRegistry()}
}

// Pipeline creates a pipeline like New, reusing the cached summaries of an
// equivalent pipeline created earlier from this Registry.
func (r *Registry) Pipeline(points []point.TimePoint, formatter summary.Formatter[time.Time], opts ...Option) (*Pipeline, error) {
	p, err := prepare(points, formatter, opts)
	if err != nil {
		return nil, err
	}

	key := hash.ID(fmt.Sprintf("%016x|%s", p.fingerprint, p.cfg.signature()))
	p.cache = r.caches.Cache(key, p.compute)
	if p.cache.Computed() {
		p.logger.Debug("reusing cached summaries")
	}

	return p, nil
}

// Len returns the number of distinct pipelines registered.
func (r *Registry) Len() int {
	return r.caches.Len()
}
