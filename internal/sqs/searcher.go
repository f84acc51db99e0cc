package sqs

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/big"
	"math/rand/v2"
	"runtime"
	"slices"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type pairSearcher struct {
	logger zerolog.Logger
}

// searchState bundles the immutable inputs shared read-only by all workers
// together with the two pieces of shared mutable state: the best objective and
// the bounded result buffer.
type searchState struct {
	pairs     []AtomPair
	reindexer []int
	nspecies  int
	histogram []int
	layout    *ParameterLayout
	buffer    *resultBuffer
	best      *bestObjective
}

func (searcher *pairSearcher) Search(settings IterationSettings) ([]SQSResult, []WorkerStats, error) {
	if err := settings.Validate(); err != nil {
		return nil, nil, err
	}

	packIndices, packed := Pack(settings.Configuration)
	nspecies := len(packIndices)
	histogram := Histogram(packed, nspecies)

	indexer := NewPairIndexer(nspecies)
	layout := NewParameterLayout(indexer, settings.TargetObjective, settings.Prefactors, settings.ParameterWeights, settings.ShellWeights)

	nworkers := settings.NumThreads
	if nworkers <= 0 {
		nworkers = runtime.NumCPU()
	}

	var total *big.Int
	switch settings.Mode {
	case Systematic:
		total = TotalPermutations(histogram)
	case Random:
		total = big.NewInt(int64(settings.NumIterations))
	}
	workSlices := splitWork(total, nworkers, settings.Mode == Systematic)

	state := &searchState{
		pairs:     settings.PairList,
		reindexer: indexer.Table(),
		nspecies:  nspecies,
		histogram: histogram,
		layout:    layout,
		buffer:    newResultBuffer(settings.NumOutputConfigurations),
		best:      newBestObjective(),
	}

	searcher.logger.Info().
		Stringer("mode", settings.Mode).
		Int("sites", len(settings.Configuration)).
		Int("species", nspecies).
		Int("shells", layout.NumShells()).
		Int("workers", nworkers).
		Str("total", total.String()).
		Msg("starting pair search")

	baseSeed := seedFromSettings(settings)
	stats := make([]WorkerStats, nworkers)
	var group errgroup.Group
	for worker := range nworkers {
		group.Go(func() error {
			slice := workSlices[worker]
			started := time.Now()

			var iterations uint64
			var err error
			switch settings.Mode {
			case Systematic:
				iterations, err = searcher.runSystematic(state, slice)
			case Random:
				iterations = searcher.runRandom(state, packed, slice, workerSeed(baseSeed, worker))
			}

			stats[worker] = WorkerStats{
				Worker:     worker,
				Iterations: iterations,
				Duration:   time.Since(started),
			}
			searcher.logger.Debug().
				Int("worker", worker).
				Uint64("iterations", iterations).
				Dur("elapsed", stats[worker].Duration).
				Msg("worker finished")
			return err
		})
	}
	if err := group.Wait(); err != nil {
		return nil, nil, err
	}

	candidates := state.buffer.items()
	results := collectResults(candidates, settings.Mode, packIndices, layout)
	searcher.logger.Info().
		Int("candidates", len(candidates)).
		Int("results", len(results)).
		Float64("best_objective", state.best.Load()).
		Msg("pair search finished")
	return results, stats, nil
}

// runSystematic enumerates the 1-based rank interval of the slice: the seed
// configuration is the unranked slice start, every following candidate is its
// in-place lexicographic successor. The loop body touches no bignums.
func (searcher *pairSearcher) runSystematic(state *searchState, slice workSlice) (uint64, error) {
	iterations := slice.size()
	if iterations == 0 {
		return 0, nil
	}
	seed := new(big.Int).Sub(slice.start, big.NewInt(1))
	configuration, err := Unrank(state.histogram, seed)
	if err != nil {
		return 0, err
	}

	bonds := make([]float64, state.layout.Size())
	localBest := state.best.Load()
	for i := uint64(0); i < iterations; i++ {
		if i > 0 && !NextPermutation(configuration) {
			return i, nil
		}
		countPairs(configuration, state.pairs, bonds, state.reindexer, state.nspecies, true)
		objective := pairObjective(bonds, state.layout.Prefactors, state.layout.Weights, state.layout.Targets)
		localBest = admit(state, configuration, bonds, objective, localBest)
	}
	return iterations, nil
}

// runRandom draws an independent Fisher-Yates shuffle of the packed
// configuration per iteration from a worker-exclusive generator.
func (searcher *pairSearcher) runRandom(state *searchState, packed Configuration, slice workSlice, seed uint64) uint64 {
	rng := rand.New(rand.NewPCG(splitmix64(&seed), splitmix64(&seed)))
	configuration := slices.Clone(packed)
	swap := func(i, j int) {
		configuration[i], configuration[j] = configuration[j], configuration[i]
	}

	iterations := slice.size()
	bonds := make([]float64, state.layout.Size())
	localBest := state.best.Load()
	for i := uint64(0); i < iterations; i++ {
		rng.Shuffle(len(configuration), swap)
		countPairs(configuration, state.pairs, bonds, state.reindexer, state.nspecies, true)
		objective := pairObjective(bonds, state.layout.Prefactors, state.layout.Weights, state.layout.Targets)
		localBest = admit(state, configuration, bonds, objective, localBest)
	}
	return iterations
}

// admit applies the optimistic two-step acceptance: most candidates lose
// against the worker-local best and touch no shared state; the rest re-read
// the shared best once before pushing. A concurrent improvement between the
// re-read and the push only costs a redundant buffer entry.
func admit(state *searchState, configuration Configuration, bonds []float64, objective, localBest float64) float64 {
	if objective > localBest {
		return localBest
	}
	if shared := state.best.Load(); objective > shared {
		return shared
	}
	state.buffer.push(SQSResult{
		Objective:     objective,
		Configuration: slices.Clone(configuration),
		Parameters:    slices.Clone(bonds),
	})
	state.best.Store(objective)
	return objective
}

func seedFromSettings(settings IterationSettings) uint64 {
	if settings.Seed != nil {
		return *settings.Seed
	}
	var buffer [8]byte
	if _, err := crand.Read(buffer[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(buffer[:])
}

func workerSeed(base uint64, worker int) uint64 {
	state := base + uint64(worker)
	return splitmix64(&state)
}

// splitmix64 advances the given state and returns the next value of the
// SplitMix64 sequence.
func splitmix64(state *uint64) uint64 {
	*state += 0x9e3779b97f4a7c15
	z := *state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
