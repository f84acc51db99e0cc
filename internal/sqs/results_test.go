package sqs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultBufferEvictsOldestWhenFull(t *testing.T) {
	// Arrange
	buffer := newResultBuffer(2)

	// Act
	buffer.push(SQSResult{Objective: 3})
	buffer.push(SQSResult{Objective: 2})
	buffer.push(SQSResult{Objective: 1})

	// Assert
	items := buffer.items()
	require.Len(t, items, 2)
	assert.Equal(t, 2.0, items[0].Objective)
	assert.Equal(t, 1.0, items[1].Objective)
}

func TestCollectResultsDeduplicatesByRankInRandomMode(t *testing.T) {
	// Arrange
	indexer := NewPairIndexer(2)
	layout := NewParameterLayout(
		indexer,
		symmetricStack(1, 2),
		symmetricStack(1, 2),
		symmetricStack(1, 2)[0],
		[]float64{1},
	)
	packIndices := []Species{13, 22}
	entries := []SQSResult{
		{Objective: 1, Configuration: Configuration{0, 1}, Parameters: make([]float64, layout.Size())},
		{Objective: 1, Configuration: Configuration{0, 1}, Parameters: make([]float64, layout.Size())},
		{Objective: 0.5, Configuration: Configuration{1, 0}, Parameters: make([]float64, layout.Size())},
	}

	// Act
	random := collectResults(entries, Random, packIndices, layout)
	systematic := collectResults(entries, Systematic, packIndices, layout)

	// Assert: the duplicate survives in systematic mode only
	require.Len(t, random, 2)
	assert.Len(t, systematic, 3)

	// ranks are reported 1-based; configurations carry the original tags
	assert.Equal(t, "1", random[0].Rank.String())
	assert.Equal(t, "2", random[1].Rank.String())
	assert.Equal(t, Configuration{13, 22}, random[0].Configuration)
	assert.Equal(t, Configuration{22, 13}, random[1].Configuration)
	assert.Len(t, random[0].Parameters, 4)
}
