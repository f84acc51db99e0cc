// Package config reads search settings files. Files are YAML (JSON parses as
// a YAML subset); the raw document is decoded into a map first and then into
// the typed settings, so unknown shapes surface as decode errors rather than
// silent zero values.
package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/limaJavier/sqsgen/internal/crystal"
	"github.com/limaJavier/sqsgen/internal/sqs"
)

const (
	DefaultIterations              = 100000
	DefaultMaxOutputConfigurations = 10
)

type StructureSettings struct {
	Lattice [][]float64
	Coords  [][]float64
	// Species entries are element symbols or atomic numbers.
	Species []any
	PBC     []bool
}

// Settings mirrors the settings file. Shell weight keys are shell ids as they
// appear in the file; everything referring to dense shell indices is derived
// in IterationSettings.
type Settings struct {
	Structure               StructureSettings
	Mode                    string
	Iterations              int
	MaxOutputConfigurations int                `mapstructure:"max_output_configurations"`
	ShellWeights            map[string]float64 `mapstructure:"shell_weights"`
	PairWeights             [][]float64        `mapstructure:"pair_weights"`
	TargetObjective         any                `mapstructure:"target_objective"`
	Prefactors              [][][]float64
	PairList                [][]int `mapstructure:"pair_list"`
	Seed                    *uint64
	Threads                 int
	Atol                    float64
	Rtol                    float64
}

func SettingsFromYaml(file string) (Settings, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Settings{}, err
	}

	var document map[string]any
	if err := yaml.Unmarshal(bytes, &document); err != nil {
		return Settings{}, fmt.Errorf("cannot parse settings file: %w", err)
	}

	var settings Settings
	if err := mapstructure.WeakDecode(document, &settings); err != nil {
		return Settings{}, fmt.Errorf("cannot decode settings: %w", err)
	}
	return settings, nil
}

// GetShellWeights returns the shell weights keyed by numeric shell id,
// dropping shells whose weight is zero.
func (settings Settings) GetShellWeights() (map[int]float64, error) {
	result := make(map[int]float64, len(settings.ShellWeights))
	for key, weight := range settings.ShellWeights {
		shell, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("shell id %q is not an integer: %w", key, err)
		}
		if weight == 0 {
			continue
		}
		result[shell] = weight
	}
	return result, nil
}

// IterationSettings derives the validated core settings and the structure
// carrier from the file surface: species symbols become atomic numbers, shell
// ids collapse onto dense ascending shell indices, pairs of dropped shells
// vanish, scalar targets broadcast and missing prefactors and pair weights
// default to one.
func (settings Settings) IterationSettings() (sqs.IterationSettings, crystal.Structure, error) {
	structure, configuration, err := settings.structure()
	if err != nil {
		return sqs.IterationSettings{}, crystal.Structure{}, err
	}

	mode, err := parseMode(settings.Mode)
	if err != nil {
		return sqs.IterationSettings{}, crystal.Structure{}, err
	}

	shellWeights, err := settings.GetShellWeights()
	if err != nil {
		return sqs.IterationSettings{}, crystal.Structure{}, err
	}
	if len(shellWeights) == 0 {
		return sqs.IterationSettings{}, crystal.Structure{}, fmt.Errorf("no shell carries a nonzero weight")
	}
	shells := lo.Keys(shellWeights)
	slices.Sort(shells)
	weights := lo.Map(shells, func(shell int, _ int) float64 { return shellWeights[shell] })
	shellIndex := make(map[int]int, len(shells))
	for index, shell := range shells {
		shellIndex[shell] = index
	}

	pairList, err := convertPairList(settings.PairList, shellIndex)
	if err != nil {
		return sqs.IterationSettings{}, crystal.Structure{}, err
	}

	nspecies := len(lo.Uniq(configuration))
	nshells := len(shells)

	targets, err := broadcastTarget(settings.TargetObjective, nshells, nspecies)
	if err != nil {
		return sqs.IterationSettings{}, crystal.Structure{}, err
	}
	prefactors := settings.Prefactors
	if prefactors == nil {
		prefactors = onesStack(nshells, nspecies)
	}
	pairWeights := settings.PairWeights
	if pairWeights == nil {
		pairWeights = onesMatrix(nspecies)
	}

	iterations := settings.Iterations
	if iterations == 0 && mode == sqs.Random {
		iterations = DefaultIterations
	}
	maxOutput := settings.MaxOutputConfigurations
	if maxOutput == 0 {
		maxOutput = DefaultMaxOutputConfigurations
	}

	result := sqs.IterationSettings{
		Mode:                    mode,
		Configuration:           configuration,
		NumIterations:           iterations,
		NumOutputConfigurations: maxOutput,
		ShellWeights:            weights,
		TargetObjective:         targets,
		Prefactors:              prefactors,
		ParameterWeights:        pairWeights,
		PairList:                pairList,
		NumThreads:              settings.Threads,
		Seed:                    settings.Seed,
	}
	return result, structure, nil
}

func (settings Settings) structure() (crystal.Structure, sqs.Configuration, error) {
	raw := settings.Structure
	if len(raw.Species) == 0 {
		return crystal.Structure{}, nil, fmt.Errorf("structure defines no species")
	}
	if len(raw.Lattice) != 3 {
		return crystal.Structure{}, nil, fmt.Errorf("lattice must hold 3 vectors, got %d", len(raw.Lattice))
	}

	var structure crystal.Structure
	for i, vector := range raw.Lattice {
		if len(vector) != 3 {
			return crystal.Structure{}, nil, fmt.Errorf("lattice vector %d has %d components", i, len(vector))
		}
		copy(structure.Lattice[i][:], vector)
	}

	if len(raw.Coords) != len(raw.Species) {
		return crystal.Structure{}, nil, fmt.Errorf("%d coordinate triples for %d species", len(raw.Coords), len(raw.Species))
	}
	structure.FracCoords = make([][3]float64, len(raw.Coords))
	for i, triple := range raw.Coords {
		if len(triple) != 3 {
			return crystal.Structure{}, nil, fmt.Errorf("coordinate %d has %d components", i, len(triple))
		}
		copy(structure.FracCoords[i][:], triple)
	}

	structure.PBC = [3]bool{true, true, true}
	if len(raw.PBC) == 3 {
		copy(structure.PBC[:], raw.PBC)
	}

	configuration := make(sqs.Configuration, len(raw.Species))
	for i, entry := range raw.Species {
		z, err := speciesOrdinal(entry)
		if err != nil {
			return crystal.Structure{}, nil, err
		}
		configuration[i] = sqs.Species(z)
	}
	structure.Species = make([]uint8, len(configuration))
	for i, species := range configuration {
		structure.Species[i] = uint8(species)
	}
	return structure, configuration, nil
}

func speciesOrdinal(entry any) (uint8, error) {
	switch value := entry.(type) {
	case string:
		return crystal.ZFromSymbol(value)
	case int:
		if value < 0 || value > 255 {
			return 0, fmt.Errorf("atomic number %d out of range", value)
		}
		return uint8(value), nil
	case float64:
		return speciesOrdinal(int(value))
	default:
		return 0, fmt.Errorf("cannot interpret species entry %v (%T)", entry, entry)
	}
}

func parseMode(mode string) (sqs.IterationMode, error) {
	switch mode {
	case "", "random":
		return sqs.Random, nil
	case "systematic":
		return sqs.Systematic, nil
	default:
		return 0, fmt.Errorf("unknown iteration mode %q", mode)
	}
}

func convertPairList(entries [][]int, shellIndex map[int]int) ([]sqs.AtomPair, error) {
	pairs := make([]sqs.AtomPair, 0, len(entries))
	for n, entry := range entries {
		if len(entry) != 3 {
			return nil, fmt.Errorf("pair entry %d has %d fields, expected (i, j, shell)", n, len(entry))
		}
		i, j, shell := entry[0], entry[1], entry[2]
		index, used := shellIndex[shell]
		if !used {
			continue
		}
		if j < i {
			i, j = j, i
		}
		pairs = append(pairs, sqs.AtomPair{I: i, J: j, Shell: index})
	}
	return pairs, nil
}

func broadcastTarget(target any, nshells, nspecies int) ([][][]float64, error) {
	switch value := target.(type) {
	case nil:
		return zerosStack(nshells, nspecies), nil
	case int:
		return filledStack(nshells, nspecies, float64(value)), nil
	case float64:
		return filledStack(nshells, nspecies, value), nil
	default:
		var full [][][]float64
		if err := mapstructure.WeakDecode(target, &full); err != nil {
			return nil, fmt.Errorf("cannot decode target objective: %w", err)
		}
		return full, nil
	}
}

func filledStack(nshells, nspecies int, value float64) [][][]float64 {
	stack := make([][][]float64, nshells)
	for shell := range stack {
		matrix := make([][]float64, nspecies)
		for i := range matrix {
			matrix[i] = make([]float64, nspecies)
			for j := range matrix[i] {
				matrix[i][j] = value
			}
		}
		stack[shell] = matrix
	}
	return stack
}

func zerosStack(nshells, nspecies int) [][][]float64 {
	return filledStack(nshells, nspecies, 0)
}

func onesStack(nshells, nspecies int) [][][]float64 {
	return filledStack(nshells, nspecies, 1)
}

func onesMatrix(nspecies int) [][]float64 {
	return filledStack(1, nspecies, 1)[0]
}
