package config

import (
	"testing"

	"github.com/onsi/gomega"
	"github.com/rs/zerolog"

	"github.com/limaJavier/sqsgen/internal/sqs"
)

// End-to-end: settings file -> derived iteration settings -> full systematic
// search -> collected results.
func TestSearchFromSettingsFile(t *testing.T) {
	g := gomega.NewWithT(t)

	// Arrange
	file := writeSettings(t, `
structure:
  lattice: [[4.05, 0, 0], [0, 4.05, 0], [0, 0, 4.05]]
  coords:
    - [0.0, 0.0, 0.0]
    - [0.25, 0.25, 0.25]
    - [0.5, 0.5, 0.5]
    - [0.75, 0.75, 0.75]
  species: [Al, Al, Ti, Ti]
mode: systematic
max_output_configurations: 6
shell_weights:
  1: 1.0
target_objective: 0.0
pair_list:
  - [0, 1, 1]
  - [1, 2, 1]
  - [2, 3, 1]
  - [0, 3, 1]
`)
	settings, err := SettingsFromYaml(file)
	g.Expect(err).NotTo(gomega.HaveOccurred())
	iterationSettings, _, err := settings.IterationSettings()
	g.Expect(err).NotTo(gomega.HaveOccurred())
	iterationSettings.NumThreads = 2

	// Act
	searcher := sqs.NewPairSearcher(zerolog.Nop())
	results, stats, err := searcher.Search(iterationSettings)

	// Assert: 4!/2!2! = 6 permutations in total across the workers; the
	// returned configurations carry the original element ordinals
	g.Expect(err).NotTo(gomega.HaveOccurred())
	visited := uint64(0)
	for _, workerStats := range stats {
		visited += workerStats.Iterations
	}
	g.Expect(visited).To(gomega.Equal(uint64(6)))
	g.Expect(results).NotTo(gomega.BeEmpty())

	for _, result := range results {
		g.Expect(result.Rank).NotTo(gomega.BeNil())
		g.Expect(result.Configuration).To(gomega.HaveLen(4))
		g.Expect(result.Configuration).To(gomega.ContainElements(sqs.Species(13), sqs.Species(22)))
		g.Expect(result.Parameters).To(gomega.HaveLen(4))
	}
}
