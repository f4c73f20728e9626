package metrics

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

type SearchMetric struct {
	Agent        string
	Goroutines   int
	Duration     time.Duration
	Episodes     int
	FullPlayouts int
	IsTreeReset  bool
}

type MoveMetric struct {
	Step int
	Seat string
	Card string
	SearchMetric
}

type DealMetric struct {
	DealID       uuid.UUID
	StartingSeat string
	Trump        string
	CardsInHand  int
	// Indexed by seat N, E, S, W. The size is spelled out so metrics stays free of game.
	Bids         [4]int
	TricksWon    [4]int
	Scores       [4]int
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	TotalMoves   int
}

// Reporter is implemented by agents that measure their searches.
type Reporter interface {
	LastMetric() SearchMetric
}

type Collector interface {
	Start(agent string, goroutines int)
	SetTreeReset(value bool)
	AddFullPlayout()
	AddEpisode()
	Complete() SearchMetric
}

type collector struct {
	agent        string
	goroutines   int
	startTime    time.Time
	episodes     atomic.Int32
	fullPlayouts atomic.Int32
	isTreeReset  atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) SetTreeReset(value bool) {
	m.isTreeReset.Store(value)
}

// Start resets the counters for a new search.
func (m *collector) Start(agent string, goroutines int) {
	m.startTime = time.Now()
	m.agent = agent
	m.goroutines = goroutines
	m.episodes.Store(0)
	m.fullPlayouts.Store(0)
	m.isTreeReset.Store(false)
}

func (m *collector) AddFullPlayout() {
	m.fullPlayouts.Add(1)
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Agent:        m.agent,
		Goroutines:   m.goroutines,
		Duration:     time.Since(m.startTime),
		Episodes:     int(m.episodes.Load()),
		FullPlayouts: int(m.fullPlayouts.Load()),
		IsTreeReset:  m.isTreeReset.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(agent string, goroutines int) {}
func (m *dummyCollector) SetTreeReset(value bool)            {}
func (m *dummyCollector) AddFullPlayout()                    {}
func (m *dummyCollector) AddEpisode()                        {}
func (m *dummyCollector) Complete() SearchMetric             { return SearchMetric{} }
