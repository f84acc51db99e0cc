package main

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/limaJavier/sqsgen/internal/config"
	"github.com/limaJavier/sqsgen/internal/crystal"
	"github.com/limaJavier/sqsgen/internal/sqs"
)

type structureDocument struct {
	Lattice [][]float64 `yaml:"lattice"`
	Coords  [][]float64 `yaml:"coords"`
	Species []string    `yaml:"species"`
}

type configurationDocument struct {
	Configuration []string      `yaml:"configuration"`
	Objective     float64       `yaml:"objective"`
	Parameters    [][][]float64 `yaml:"parameters"`
}

type resultDocument struct {
	Structure      structureDocument                `yaml:"structure"`
	Configurations map[string]configurationDocument `yaml:"configurations"`
	Timings        map[int]int64                    `yaml:"timings"`
}

func newRunCommand() *cobra.Command {
	var outputPath string

	command := &cobra.Command{
		Use:   "run <settings-file>",
		Short: "Run the permutation search described by a settings file",
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			settings, err := config.SettingsFromYaml(args[0])
			if err != nil {
				return err
			}
			iterationSettings, structure, err := settings.IterationSettings()
			if err != nil {
				return err
			}

			searcher := sqs.NewPairSearcher(newLogger())
			results, stats, err := searcher.Search(iterationSettings)
			if err != nil {
				return err
			}

			document, err := makeResultDocument(structure, iterationSettings, results, stats)
			if err != nil {
				return err
			}
			bytes, err := yaml.Marshal(document)
			if err != nil {
				return err
			}

			if outputPath == "" {
				fmt.Print(string(bytes))
				return nil
			}
			return os.WriteFile(outputPath, bytes, 0o644)
		},
	}
	command.Flags().StringVarP(&outputPath, "output", "o", "", "write the result document to this file instead of stdout")
	return command
}

func makeResultDocument(structure crystal.Structure, settings sqs.IterationSettings, results []sqs.SQSResult, stats []sqs.WorkerStats) (resultDocument, error) {
	species, err := symbols(structure.Species)
	if err != nil {
		return resultDocument{}, err
	}

	document := resultDocument{
		Structure: structureDocument{
			Lattice: lo.Map(structure.Lattice[:], func(vector [3]float64, _ int) []float64 { return vector[:] }),
			Coords:  lo.Map(structure.FracCoords, func(triple [3]float64, _ int) []float64 { return triple[:] }),
			Species: species,
		},
		Configurations: make(map[string]configurationDocument, len(results)),
		Timings:        make(map[int]int64, len(stats)),
	}

	nspecies := len(lo.Uniq(settings.Configuration))
	nshells := len(settings.ShellWeights)
	for _, result := range results {
		configuration, err := symbols(lo.Map(result.Configuration, func(species sqs.Species, _ int) uint8 { return uint8(species) }))
		if err != nil {
			return resultDocument{}, err
		}
		document.Configurations[result.Rank.String()] = configurationDocument{
			Configuration: configuration,
			Objective:     result.Objective,
			Parameters:    reshapeParameters(result.Parameters, nshells, nspecies),
		}
	}
	for _, workerStats := range stats {
		document.Timings[workerStats.Worker] = workerStats.Duration.Microseconds()
	}
	return document, nil
}

func symbols(ordinals []uint8) ([]string, error) {
	result := make([]string, len(ordinals))
	for i, z := range ordinals {
		symbol, err := crystal.SymbolFromZ(z)
		if err != nil {
			return nil, err
		}
		result[i] = symbol
	}
	return result, nil
}

func reshapeParameters(flat []float64, nshells, nspecies int) [][][]float64 {
	stack := make([][][]float64, nshells)
	for shell := range stack {
		matrix := make([][]float64, nspecies)
		for i := range matrix {
			offset := shell*nspecies*nspecies + i*nspecies
			matrix[i] = flat[offset : offset+nspecies]
		}
		stack[shell] = matrix
	}
	return stack
}
