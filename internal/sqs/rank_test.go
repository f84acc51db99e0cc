package sqs

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPermutations(t *testing.T) {
	scenarios := []struct {
		histogram []int
		total     int64
	}{
		{[]int{1, 1}, 2},
		{[]int{4, 4}, 70},
		{[]int{2, 2, 2}, 90},
		{[]int{8}, 1},
		{[]int{1, 1, 1, 1}, 24},
	}

	for _, scenario := range scenarios {
		assert.Equal(t, scenario.total, TotalPermutations(scenario.histogram).Int64())
	}
}

func TestRankUnrankBijection(t *testing.T) {
	histograms := [][]int{
		{1, 1},
		{4, 4},
		{2, 2, 2},
		{3, 1, 2},
		{1, 2, 3, 1},
	}

	for _, histogram := range histograms {
		// Arrange
		total := TotalPermutations(histogram)

		// Act & Assert
		for rank := big.NewInt(0); rank.Cmp(total) < 0; rank.Add(rank, big.NewInt(1)) {
			configuration, err := Unrank(histogram, rank)
			require.NoError(t, err)
			assert.Zero(t, rank.Cmp(Rank(configuration, len(histogram))))
		}
	}
}

func TestUnrankEnumeratesLexicographically(t *testing.T) {
	// Arrange
	histogram := []int{2, 2, 2}
	total := TotalPermutations(histogram)

	// Act & Assert
	previous, err := Unrank(histogram, big.NewInt(0))
	require.NoError(t, err)
	for rank := big.NewInt(1); rank.Cmp(total) < 0; rank.Add(rank, big.NewInt(1)) {
		configuration, err := Unrank(histogram, rank)
		require.NoError(t, err)

		successor := append(Configuration(nil), previous...)
		require.True(t, NextPermutation(successor))
		assert.Equal(t, configuration, successor)
		previous = configuration
	}
}

func TestNextPermutationClosure(t *testing.T) {
	// Arrange
	histogram := []int{2, 2, 1}
	total := TotalPermutations(histogram).Int64()
	configuration, err := Unrank(histogram, big.NewInt(0))
	require.NoError(t, err)

	// Act
	steps := int64(0)
	for NextPermutation(configuration) {
		steps++
	}

	// Assert: T-1 successors from the smallest permutation, which leaves the
	// largest one in place.
	assert.Equal(t, total-1, steps)
	largest, err := Unrank(histogram, big.NewInt(total-1))
	require.NoError(t, err)
	assert.Equal(t, largest, configuration)
	assert.False(t, NextPermutation(configuration))
}

func TestUnrankRejectsOutOfRangeRanks(t *testing.T) {
	histogram := []int{1, 1}

	_, err := Unrank(histogram, big.NewInt(2))
	assert.ErrorIs(t, err, ErrRankOutOfRange)

	_, err = Unrank(histogram, big.NewInt(-1))
	assert.ErrorIs(t, err, ErrRankOutOfRange)
}
