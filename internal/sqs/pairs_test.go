package sqs

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ringPairs connects each site with its right neighbor on a periodic chain.
func ringPairs(natoms, shell int) []AtomPair {
	pairs := make([]AtomPair, natoms)
	for i := range pairs {
		j := (i + 1) % natoms
		a, b := i, j
		if b < a {
			a, b = b, a
		}
		pairs[i] = AtomPair{I: a, J: b, Shell: shell}
	}
	return pairs
}

func TestCountPairsConservation(t *testing.T) {
	for range 10 {
		// Arrange
		natoms := rand.Intn(20) + 3
		nspecies := rand.Intn(3) + 2
		configuration := make(Configuration, natoms)
		for i := range configuration {
			configuration[i] = Species(rand.Intn(nspecies))
		}
		indexer := NewPairIndexer(nspecies)
		pairs := ringPairs(natoms, 0)
		bonds := make([]float64, indexer.NumPairs())

		// Act
		countPairs(configuration, pairs, bonds, indexer.Table(), nspecies, true)

		// Assert
		total := 0.0
		for _, count := range bonds {
			total += count
		}
		assert.Equal(t, float64(len(pairs)), total)
	}
}

func TestCountPairsCanonicalizesSpeciesOrder(t *testing.T) {
	// Arrange
	configuration := Configuration{0, 1, 1, 0}
	indexer := NewPairIndexer(2)
	pairs := ringPairs(4, 0)
	bonds := make([]float64, indexer.NumPairs())

	// Act
	countPairs(configuration, pairs, bonds, indexer.Table(), 2, true)

	// Assert: sites (0,1), (1,2), (2,3), (3,0) hold species pairs
	// (0,1), (1,1), (1,0), (0,0); mixed pairs share one slot
	assert.Equal(t, 1.0, bonds[indexer.Index(0, 0)])
	assert.Equal(t, 2.0, bonds[indexer.Index(0, 1)])
	assert.Equal(t, 1.0, bonds[indexer.Index(1, 1)])
}

func TestCountPairsClearSemantics(t *testing.T) {
	// Arrange
	configuration := Configuration{0, 1}
	indexer := NewPairIndexer(2)
	pairs := []AtomPair{{I: 0, J: 1, Shell: 0}}
	bonds := make([]float64, indexer.NumPairs())

	// Act
	countPairs(configuration, pairs, bonds, indexer.Table(), 2, true)
	countPairs(configuration, pairs, bonds, indexer.Table(), 2, false)

	// Assert: the second call accumulated on top of the first
	assert.Equal(t, 2.0, bonds[indexer.Index(0, 1)])
}

func BenchmarkCountPairs(b *testing.B) {
	natoms, nspecies := 64, 3
	configuration := make(Configuration, natoms)
	for i := range configuration {
		configuration[i] = Species(i % nspecies)
	}
	indexer := NewPairIndexer(nspecies)
	pairs := ringPairs(natoms, 0)
	bonds := make([]float64, indexer.NumPairs())
	table := indexer.Table()

	b.ResetTimer()
	for b.Loop() {
		countPairs(configuration, pairs, bonds, table, nspecies, true)
	}
}
