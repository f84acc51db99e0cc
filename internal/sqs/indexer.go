package sqs

// PairIndexer gives a unique slot in the compressed symmetric layout to an
// unordered pair of packed species and vice versa
type PairIndexer interface {
	// Returns the slot in [0, NumPairs()) of the unordered pair (a, b)
	Index(a, b Species) int
	// Returns the canonical pair (a <= b) stored at the given slot
	Pair(index int) (a, b Species)
	// Returns the number of species S
	NumSpecies() int
	// Returns the number of canonical pairs P = S*(S-1)/2 + S
	NumPairs() int
	// Returns the flat lookup table of length S*S, holding -1 below the
	// diagonal; table[min*S + max] is the slot of the pair (min, max)
	Table() []int
}

func NewPairIndexer(nspecies int) PairIndexer {
	return newTriangularIndexer(nspecies)
}
