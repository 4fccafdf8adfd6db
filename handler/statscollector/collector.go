package statscollector

import (
	"sort"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/philipp01105/dbglog/core"
	"github.com/philipp01105/dbglog/handler"
)

const subsystem = "dbglog"

// Collector is a prometheus.Collector over a set of named handlers.
type Collector struct {
	linesDesc    *prometheus.Desc
	failuresDesc *prometheus.Desc

	mu        sync.RWMutex
	providers map[string]handler.StatsProvider
}

var _ prometheus.Collector = (*Collector)(nil)

// New creates an empty collector. namespace may be empty.
func New(namespace string) *Collector {
	return &Collector{
		linesDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "lines_total"),
			"Lines written by a handler, by level code",
			[]string{"handler", "level"}, nil,
		),
		failuresDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "write_failures_total"),
			"Lines a handler failed to write",
			[]string{"handler"}, nil,
		),
		providers: make(map[string]handler.StatsProvider),
	}
}

// Add registers p under name, replacing any earlier provider with the
// same name.
func (c *Collector) Add(name string, p handler.StatsProvider) {
	c.mu.Lock()
	c.providers[name] = p
	c.mu.Unlock()
}

// Remove unregisters the provider with the given name.
func (c *Collector) Remove(name string) {
	c.mu.Lock()
	delete(c.providers, name)
	c.mu.Unlock()
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.linesDesc
	ch <- c.failuresDesc
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.mu.RLock()
	names := make([]string, 0, len(c.providers))
	for name := range c.providers {
		names = append(names, name)
	}
	providers := make([]handler.StatsProvider, len(names))
	sort.Strings(names)
	for i, name := range names {
		providers[i] = c.providers[name]
	}
	c.mu.RUnlock()

	for i, p := range providers {
		snap := p.Stats()
		for _, l := range core.Levels() {
			n, ok := snap.Processed[l]
			if !ok {
				continue
			}
			ch <- prometheus.MustNewConstMetric(c.linesDesc, prometheus.CounterValue, float64(n), names[i], l.Code())
		}
		ch <- prometheus.MustNewConstMetric(c.failuresDesc, prometheus.CounterValue, float64(snap.FailedTotal), names[i])
	}
}
