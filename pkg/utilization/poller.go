package utilization

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/prometheus/client_golang/api"
	v1 "github.com/prometheus/client_golang/api/prometheus/v1"
	"github.com/prometheus/common/model"
	log "github.com/sirupsen/logrus"
	"k8s.io/apimachinery/pkg/util/wait"

	"github.com/hwameistor/storage-console/pkg/result"
)

// Query is a range query and the legend of its series
type Query struct {
	Query       string `json:"query"`
	Description string `json:"description"`
}

// PollerOptions configure a Poller
type PollerOptions struct {
	// Duration is the window ending now
	Duration time.Duration
	// Step is the resolution of the range query
	Step time.Duration
	// Interval between two polls
	Interval time.Duration
}

// DefaultPollerOptions poll a one hour window every 30 seconds
var DefaultPollerOptions = PollerOptions{Duration: time.Hour, Step: time.Minute, Interval: 30 * time.Second}

// Poller keeps the latest utilization stats of its queries
type Poller struct {
	api     v1.API
	queries []Query
	options PollerOptions
	now     func() time.Time

	lock    sync.RWMutex
	latest  Stats
	version uint64
}

// NewPoller creates a poller querying the prometheus server at address
func NewPoller(address string, queries []Query, options PollerOptions) (*Poller, error) {
	client, err := api.NewClient(api.Config{Address: address})
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus client: %v", err)
	}
	if options.Step <= 0 {
		options.Step = DefaultPollerOptions.Step
	}
	if options.Duration <= 0 {
		options.Duration = DefaultPollerOptions.Duration
	}
	if options.Interval <= 0 {
		options.Interval = DefaultPollerOptions.Interval
	}

	pending := make([]result.Result[model.Matrix], len(queries))
	for i := range pending {
		pending[i] = result.Pending[model.Matrix]()
	}
	return &Poller{
		api:     v1.NewAPI(client),
		queries: queries,
		options: options,
		now:     time.Now,
		latest:  MultilineStats(pending, nil),
	}, nil
}

// Run polls until ctx is done
func (p *Poller) Run(ctx context.Context) {
	log.WithField("queries", len(p.queries)).Info("Start utilization poller")
	wait.UntilWithContext(ctx, func(ctx context.Context) { p.Poll(ctx) }, p.options.Interval)
}

// Poll queries once and reports whether the stats changed
func (p *Poller) Poll(ctx context.Context) bool {
	end := p.now()
	r := v1.Range{Start: end.Add(-p.options.Duration), End: end, Step: p.options.Step}

	results := make([]result.Result[model.Matrix], 0, len(p.queries))
	descriptions := make([]string, 0, len(p.queries))
	for _, query := range p.queries {
		results = append(results, p.queryRange(ctx, query.Query, r))
		descriptions = append(descriptions, query.Description)
	}
	stats := MultilineStats(results, descriptions)

	p.lock.Lock()
	defer p.lock.Unlock()
	if reflect.DeepEqual(stats, p.latest) {
		return false
	}
	p.latest = stats
	p.version++
	return true
}

func (p *Poller) queryRange(ctx context.Context, query string, r v1.Range) result.Result[model.Matrix] {
	value, warnings, err := p.api.QueryRange(ctx, query, r)
	if err != nil {
		log.WithError(err).WithField("query", query).Error("Failed to query range")
		return result.Failed[model.Matrix](err)
	}
	if len(warnings) > 0 {
		log.WithField("warnings", warnings).Warning("Range query returned warnings")
	}
	matrix, ok := value.(model.Matrix)
	if !ok {
		return result.Failed[model.Matrix](fmt.Errorf("unexpected result type %T", value))
	}
	return result.Ready(matrix)
}

// Latest returns the last stats and how many times they changed
func (p *Poller) Latest() (Stats, uint64) {
	p.lock.RLock()
	defer p.lock.RUnlock()
	return p.latest, p.version
}
