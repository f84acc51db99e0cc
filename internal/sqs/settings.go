package sqs

import "fmt"

// IterationMode selects how candidate configurations are produced.
type IterationMode int

const (
	// Random draws independent shuffles of the configuration for a fixed
	// iteration budget.
	Random IterationMode = iota
	// Systematic enumerates the full lexicographic permutation sequence.
	Systematic
)

func (mode IterationMode) String() string {
	switch mode {
	case Random:
		return "random"
	case Systematic:
		return "systematic"
	default:
		return fmt.Sprintf("IterationMode(%d)", int(mode))
	}
}

// IterationSettings is the complete, validated input of a search. All arrays
// are indexed with S = number of distinct species in Configuration and
// M = len(ShellWeights); shell indices in PairList address ShellWeights.
// The settings are treated read-only once a search has started.
type IterationSettings struct {
	Mode IterationMode

	// Configuration assigns an unpacked species tag to every lattice site.
	Configuration Configuration

	// NumIterations is the random-mode candidate budget; ignored in
	// systematic mode, where the full permutation sequence bounds the work.
	NumIterations int

	// NumOutputConfigurations caps the number of kept improvement candidates.
	NumOutputConfigurations int

	// ShellWeights holds one weight per used shell, ascending shell order.
	ShellWeights []float64

	// TargetObjective, Prefactors are full symmetric [M][S][S] arrays;
	// ParameterWeights is a full symmetric [S][S] array.
	TargetObjective  [][][]float64
	Prefactors       [][][]float64
	ParameterWeights [][]float64

	PairList []AtomPair

	// NumThreads is the worker count; 0 means one worker per CPU.
	NumThreads int

	// Seed, when non-nil, makes random mode reproducible.
	Seed *uint64
}

// Validate checks the settings once, before any worker is spawned. The search
// loop itself carries no recoverable error paths.
func (settings *IterationSettings) Validate() error {
	natoms := len(settings.Configuration)
	if natoms == 0 {
		return fmt.Errorf("%w: configuration is empty", ErrInvalidHistogram)
	}

	packIndices, _ := Pack(settings.Configuration)
	nspecies := len(packIndices)
	nshells := len(settings.ShellWeights)
	if nshells == 0 {
		return fmt.Errorf("%w: no shells carry weight", ErrInvalidPairList)
	}

	switch settings.Mode {
	case Systematic:
	case Random:
		if settings.NumIterations <= 0 {
			return fmt.Errorf("%w: random mode requires a positive iteration budget", ErrInvalidMode)
		}
	default:
		return fmt.Errorf("%w: %v", ErrInvalidMode, settings.Mode)
	}
	if settings.NumOutputConfigurations < 1 {
		return fmt.Errorf("%w: at least one output configuration must be kept", ErrInvalidMode)
	}

	if err := validateMatrixStack("target_objective", settings.TargetObjective, nshells, nspecies); err != nil {
		return err
	}
	if err := validateMatrixStack("prefactors", settings.Prefactors, nshells, nspecies); err != nil {
		return err
	}
	if err := validateMatrix("parameter_weights", settings.ParameterWeights, nspecies); err != nil {
		return err
	}

	for i, pair := range settings.PairList {
		if pair.I < 0 || pair.I >= natoms || pair.J < 0 || pair.J >= natoms || pair.I == pair.J {
			return fmt.Errorf("%w: entry %d references sites (%d, %d) of %d", ErrInvalidPairList, i, pair.I, pair.J, natoms)
		}
		if pair.Shell < 0 || pair.Shell >= nshells {
			return fmt.Errorf("%w: entry %d references shell %d of %d", ErrInvalidPairList, i, pair.Shell, nshells)
		}
	}
	return nil
}

func validateMatrixStack(name string, stack [][][]float64, nshells, nspecies int) error {
	if len(stack) != nshells {
		return fmt.Errorf("%w: %s holds %d shells, expected %d", ErrInvalidHistogram, name, len(stack), nshells)
	}
	for _, matrix := range stack {
		if err := validateMatrix(name, matrix, nspecies); err != nil {
			return err
		}
	}
	return nil
}

func validateMatrix(name string, matrix [][]float64, nspecies int) error {
	if len(matrix) != nspecies {
		return fmt.Errorf("%w: %s is %dx%d, expected %d species", ErrInvalidHistogram, name, len(matrix), len(matrix), nspecies)
	}
	for _, row := range matrix {
		if len(row) != nspecies {
			return fmt.Errorf("%w: %s has a row of length %d, expected %d", ErrInvalidHistogram, name, len(row), nspecies)
		}
	}
	return nil
}
