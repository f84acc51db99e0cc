package sqs

// ParameterLayout holds the per-(shell, pair) search parameters in the
// compressed symmetric layout: three vectors of length M*P addressed by
// shell*P + indexer.Index(a, b). The layout is built once per search and
// shared read-only across workers.
type ParameterLayout struct {
	indexer PairIndexer
	nshells int

	Targets    []float64
	Prefactors []float64
	Weights    []float64
}

// NewParameterLayout compresses the full symmetric [M][S][S] parameter arrays.
// Only the upper triangle of each matrix is consulted; callers are expected to
// pass arrays that are symmetric in the species indices. The stored weight of
// a slot is the shell weight times the per-pair weight.
func NewParameterLayout(indexer PairIndexer, targets, prefactors [][][]float64, pairWeights [][]float64, shellWeights []float64) *ParameterLayout {
	nshells := len(shellWeights)
	layout := &ParameterLayout{
		indexer:    indexer,
		nshells:    nshells,
		Targets:    Reduce(indexer, targets),
		Prefactors: Reduce(indexer, prefactors),
		Weights:    Reduce(indexer, pairWeightMatrices(pairWeights, shellWeights)),
	}
	return layout
}

// Reduce packs a stack of full symmetric S*S matrices into the compressed
// layout, keeping the upper triangle of each.
func Reduce(indexer PairIndexer, full [][][]float64) []float64 {
	nspecies, npairs := indexer.NumSpecies(), indexer.NumPairs()
	compact := make([]float64, len(full)*npairs)
	for shell, matrix := range full {
		for i := 0; i < nspecies; i++ {
			for j := i; j < nspecies; j++ {
				compact[shell*npairs+indexer.Index(Species(i), Species(j))] = matrix[i][j]
			}
		}
	}
	return compact
}

// Expand restores a compact vector of length M*P to the full symmetric layout
// of length M*S*S, mirroring each canonical slot onto both (i,j) and (j,i).
// It is the inverse of Reduce for symmetric inputs.
func (layout *ParameterLayout) Expand(compact []float64) []float64 {
	nspecies, npairs := layout.indexer.NumSpecies(), layout.indexer.NumPairs()
	full := make([]float64, layout.nshells*nspecies*nspecies)
	for shell := 0; shell < layout.nshells; shell++ {
		offset := shell * nspecies * nspecies
		for i := 0; i < nspecies; i++ {
			for j := i; j < nspecies; j++ {
				value := compact[shell*npairs+layout.indexer.Index(Species(i), Species(j))]
				full[offset+i*nspecies+j] = value
				full[offset+j*nspecies+i] = value
			}
		}
	}
	return full
}

// NumShells returns the number of shells M carried by the layout.
func (layout *ParameterLayout) NumShells() int {
	return layout.nshells
}

// Size returns the length M*P of the compact vectors.
func (layout *ParameterLayout) Size() int {
	return layout.nshells * layout.indexer.NumPairs()
}

func pairWeightMatrices(pairWeights [][]float64, shellWeights []float64) [][][]float64 {
	nspecies := len(pairWeights)
	matrices := make([][][]float64, len(shellWeights))
	for shell, shellWeight := range shellWeights {
		matrix := make([][]float64, nspecies)
		for i := range matrix {
			matrix[i] = make([]float64, nspecies)
			for j := range matrix[i] {
				matrix[i][j] = shellWeight * pairWeights[i][j]
			}
		}
		matrices[shell] = matrix
	}
	return matrices
}
