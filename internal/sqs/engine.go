package sqs

import (
	"time"

	"github.com/rs/zerolog"
)

// Searcher runs a permutation search over the species assignment of a fixed
// lattice and returns the admitted configurations together with per-worker
// telemetry. Results follow buffer insertion order, so the last entry carries
// the best objective found.
type Searcher interface {
	Search(settings IterationSettings) ([]SQSResult, []WorkerStats, error)
}

// WorkerStats reports how much work one worker actually performed.
type WorkerStats struct {
	Worker     int
	Iterations uint64
	Duration   time.Duration
}

func NewPairSearcher(logger zerolog.Logger) Searcher {
	return &pairSearcher{logger: logger}
}
