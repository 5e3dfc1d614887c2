package planner

import "time"

// SearchMetric summarizes one Search call.
type SearchMetric struct {
	StartTime    time.Time
	Duration     time.Duration
	Rollouts     int // simulations run
	FullRollouts int // simulations that reached a terminal state
	TreeSize     int // nodes created, root included
}

// Collector accumulates search statistics. The planner is single-threaded,
// so plain counters suffice.
type Collector interface {
	Start()
	AddRollout()
	AddFullRollout()
	AddNode()
	Complete() SearchMetric
}

type collector struct {
	startTime    time.Time
	rollouts     int
	fullRollouts int
	nodes        int
}

// NewCollector returns a collector suitable for WithMetrics. Start resets
// it, so one collector can serve consecutive searches.
func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start() {
	c.startTime = time.Now()
	c.rollouts = 0
	c.fullRollouts = 0
	c.nodes = 0
}

func (c *collector) AddRollout() {
	c.rollouts++
}

func (c *collector) AddFullRollout() {
	c.fullRollouts++
}

func (c *collector) AddNode() {
	c.nodes++
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		StartTime:    c.startTime,
		Duration:     time.Since(c.startTime),
		Rollouts:     c.rollouts,
		FullRollouts: c.fullRollouts,
		TreeSize:     c.nodes,
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a no-op collector, the default when no metrics
// were requested.
func NewDummyCollector() Collector {
	return dummyCollector{}
}

func (dummyCollector) Start()                 {}
func (dummyCollector) AddRollout()            {}
func (dummyCollector) AddFullRollout()        {}
func (dummyCollector) AddNode()               {}
func (dummyCollector) Complete() SearchMetric { return SearchMetric{} }
