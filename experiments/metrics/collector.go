package metrics

import (
	"sync/atomic"
	"time"

	"riverwar/game"
)

type SearchMetric struct {
	Depth        int // configured maximum
	DepthReached int
	Budget       time.Duration
	Duration     time.Duration
	Nodes        int
	Cutoffs      int
	TimedOut     bool
	Book         bool
}

type MoveMetric struct {
	Step   int
	Player game.Player
	Action string
	Score  float64
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Player
	Winner         game.Player
	Condition      game.WinCondition
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(depth int, budget time.Duration)
	AddNode()
	AddCutoff()
	SetDepthReached(depth int)
	SetTimedOut()
	SetBook()
	Complete() SearchMetric
}

type collector struct {
	depth        int
	budget       time.Duration
	startTime    time.Time
	nodes        atomic.Int64
	cutoffs      atomic.Int64
	depthReached atomic.Int32
	timedOut     atomic.Bool
	book         atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start(depth int, budget time.Duration) {
	m.startTime = time.Now()
	m.depth = depth
	m.budget = budget
	m.nodes.Store(0)
	m.cutoffs.Store(0)
	m.depthReached.Store(0)
	m.timedOut.Store(false)
	m.book.Store(false)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) SetDepthReached(depth int) {
	m.depthReached.Store(int32(depth))
}

func (m *collector) SetTimedOut() {
	m.timedOut.Store(true)
}

func (m *collector) SetBook() {
	m.book.Store(true)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:        m.depth,
		DepthReached: int(m.depthReached.Load()),
		Budget:       m.budget,
		Duration:     time.Since(m.startTime),
		Nodes:        int(m.nodes.Load()),
		Cutoffs:      int(m.cutoffs.Load()),
		TimedOut:     m.timedOut.Load(),
		Book:         m.book.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int, budget time.Duration) {}
func (m *dummyCollector) AddNode()                              {}
func (m *dummyCollector) AddCutoff()                            {}
func (m *dummyCollector) SetDepthReached(depth int)             {}
func (m *dummyCollector) SetTimedOut()                          {}
func (m *dummyCollector) SetBook()                              {}
func (m *dummyCollector) Complete() SearchMetric                { return SearchMetric{} }
