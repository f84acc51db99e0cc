package sqs

type triangularIndexer struct {
	nspecies int
	table    []int
	pairs    [][2]Species
}

func newTriangularIndexer(nspecies int) *triangularIndexer {
	table := make([]int, nspecies*nspecies)
	for i := range table {
		table[i] = -1
	}

	pairs := make([][2]Species, 0, nspecies*(nspecies-1)/2+nspecies)
	for i := 0; i < nspecies; i++ {
		for j := i; j < nspecies; j++ {
			table[i*nspecies+j] = len(pairs)
			pairs = append(pairs, [2]Species{Species(i), Species(j)})
		}
	}

	return &triangularIndexer{
		nspecies: nspecies,
		table:    table,
		pairs:    pairs,
	}
}

func (indexer *triangularIndexer) Index(a, b Species) int {
	if b < a {
		a, b = b, a
	}
	return indexer.table[int(a)*indexer.nspecies+int(b)]
}

func (indexer *triangularIndexer) Pair(index int) (Species, Species) {
	pair := indexer.pairs[index]
	return pair[0], pair[1]
}

func (indexer *triangularIndexer) NumSpecies() int {
	return indexer.nspecies
}

func (indexer *triangularIndexer) NumPairs() int {
	return len(indexer.pairs)
}

func (indexer *triangularIndexer) Table() []int {
	return indexer.table
}
