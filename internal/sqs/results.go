package sqs

import (
	"math"
	"math/big"
	"sync"
	"sync/atomic"
)

// SQSResult is one admitted improvement candidate. During the search the
// configuration is still packed, the parameters are in the compact layout and
// the rank is nil; the collector fills in the 1-based rank, unpacks the
// species tags and expands the parameters to the full M*S*S layout.
type SQSResult struct {
	Objective     float64
	Rank          *big.Int
	Configuration Configuration
	Parameters    []float64
}

// resultBuffer is a bounded FIFO of improvement candidates shared by all
// workers. Once full, a push evicts the oldest entry: the search only admits
// candidates at or below the best objective seen, so older entries never beat
// the ones displacing them.
type resultBuffer struct {
	mutex    sync.Mutex
	capacity int
	entries  []SQSResult
}

func newResultBuffer(capacity int) *resultBuffer {
	return &resultBuffer{
		capacity: capacity,
		entries:  make([]SQSResult, 0, capacity),
	}
}

func (buffer *resultBuffer) push(result SQSResult) {
	buffer.mutex.Lock()
	if len(buffer.entries) == buffer.capacity {
		copy(buffer.entries, buffer.entries[1:])
		buffer.entries[len(buffer.entries)-1] = result
	} else {
		buffer.entries = append(buffer.entries, result)
	}
	buffer.mutex.Unlock()
}

func (buffer *resultBuffer) items() []SQSResult {
	buffer.mutex.Lock()
	defer buffer.mutex.Unlock()
	return append([]SQSResult(nil), buffer.entries...)
}

// bestObjective is the shared monotone best seen so far, stored as float64
// bits in a uint64. The load is only a fast-path hint; admission re-reads it
// before pushing, so a stale value merely costs a redundant push that the
// buffer eviction cleans up.
type bestObjective struct {
	bits atomic.Uint64
}

func newBestObjective() *bestObjective {
	best := &bestObjective{}
	best.Store(math.MaxFloat64)
	return best
}

func (best *bestObjective) Load() float64 {
	return math.Float64frombits(best.bits.Load())
}

func (best *bestObjective) Store(value float64) {
	best.bits.Store(math.Float64bits(value))
}

// collectResults post-processes the buffer contents in insertion order: every
// candidate gets its 1-based permutation rank, random-mode duplicates are
// dropped (first occurrence wins; systematic mode cannot produce duplicates),
// species are unpacked back to the original tags and the SRO parameters are
// expanded to the full symmetric layout.
func collectResults(entries []SQSResult, mode IterationMode, packIndices []Species, layout *ParameterLayout) []SQSResult {
	one := big.NewInt(1)
	seen := make(map[string]bool, len(entries))
	results := make([]SQSResult, 0, len(entries))
	for _, result := range entries {
		result.Rank = Rank(result.Configuration, len(packIndices))
		result.Rank.Add(result.Rank, one)
		if mode == Random {
			key := result.Rank.String()
			if seen[key] {
				continue
			}
			seen[key] = true
		}
		result.Configuration = Unpack(packIndices, result.Configuration)
		result.Parameters = layout.Expand(result.Parameters)
		results = append(results, result)
	}
	return results
}
