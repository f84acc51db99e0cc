package sqs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexAndPairRoundTrip(t *testing.T) {
	for _, nspecies := range []int{1, 2, 3, 5, 8} {
		// Arrange
		indexer := NewPairIndexer(nspecies)

		// Assert
		assert.Equal(t, nspecies, indexer.NumSpecies())
		assert.Equal(t, nspecies*(nspecies-1)/2+nspecies, indexer.NumPairs())

		// Act & Assert: every canonical pair maps onto a distinct slot and back
		seen := make(map[int]bool)
		for i := 0; i < nspecies; i++ {
			for j := i; j < nspecies; j++ {
				index := indexer.Index(Species(i), Species(j))
				assert.False(t, seen[index])
				seen[index] = true

				a, b := indexer.Pair(index)
				assert.Equal(t, Species(i), a)
				assert.Equal(t, Species(j), b)

				// both argument orders land on the same slot
				assert.Equal(t, index, indexer.Index(Species(j), Species(i)))
			}
		}
		assert.Len(t, seen, indexer.NumPairs())
	}
}

func TestTableMarksLowerTriangleInvalid(t *testing.T) {
	// Arrange
	nspecies := 4
	indexer := NewPairIndexer(nspecies)

	// Act
	table := indexer.Table()

	// Assert
	assert.Len(t, table, nspecies*nspecies)
	for i := 0; i < nspecies; i++ {
		for j := 0; j < nspecies; j++ {
			if i <= j {
				assert.GreaterOrEqual(t, table[i*nspecies+j], 0)
			} else {
				assert.Equal(t, -1, table[i*nspecies+j])
			}
		}
	}
}
