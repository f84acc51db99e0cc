package sqs

import (
	"fmt"
	"math/big"
	"slices"
)

// The permutation sequence of a multiset is enumerated in lexicographic order
// over packed species tags. Ranks are 0-based here; the 1-based numbering used
// towards the outside is applied by the work splitter and the result
// collector. Total counts exceed 64 bits already for moderate cell sizes
// (21! > 2^64), hence math/big throughout.

func factorial(n int) *big.Int {
	return new(big.Int).MulRange(1, int64(n))
}

// TotalPermutations returns the number of distinct permutations of a multiset
// with the given histogram: N! / prod(h_i!).
func TotalPermutations(histogram []int) *big.Int {
	natoms := 0
	for _, count := range histogram {
		natoms += count
	}
	total := factorial(natoms)
	for _, count := range histogram {
		if count > 1 {
			total.Div(total, factorial(count))
		}
	}
	return total
}

// Unrank returns the permutation at the given 0-based rank of the
// lexicographic sequence induced by the histogram. At each site the species
// are tried in ascending order; the number of completions with species s
// placed next is total * remaining[s] / remainingSites, which is subtracted
// from the rank until it fits.
func Unrank(histogram []int, rank *big.Int) (Configuration, error) {
	remaining := slices.Clone(histogram)
	natoms := 0
	for _, count := range remaining {
		natoms += count
	}
	total := TotalPermutations(remaining)
	if rank.Sign() < 0 || rank.Cmp(total) >= 0 {
		return nil, fmt.Errorf("%w: rank %v of %v permutations", ErrRankOutOfRange, rank, total)
	}

	residual := new(big.Int).Set(rank)
	count := new(big.Int)
	configuration := make(Configuration, natoms)
	for site := range natoms {
		for species, left := range remaining {
			if left == 0 {
				continue
			}
			count.Mul(total, big.NewInt(int64(left)))
			count.Div(count, big.NewInt(int64(natoms-site)))
			if residual.Cmp(count) < 0 {
				configuration[site] = Species(species)
				remaining[species]--
				total.Set(count)
				break
			}
			residual.Sub(residual, count)
		}
	}
	return configuration, nil
}

// Rank is the inverse of Unrank: it returns the 0-based position of the
// configuration within the lexicographic sequence of its own multiset.
func Rank(configuration Configuration, nspecies int) *big.Int {
	remaining := make([]int, nspecies)
	for _, species := range configuration {
		remaining[species]++
	}
	natoms := len(configuration)

	total := TotalPermutations(remaining)
	rank := new(big.Int)
	count := new(big.Int)
	for site, placed := range configuration {
		for species := Species(0); species < placed; species++ {
			if remaining[species] == 0 {
				continue
			}
			count.Mul(total, big.NewInt(int64(remaining[species])))
			count.Div(count, big.NewInt(int64(natoms-site)))
			rank.Add(rank, count)
		}
		count.Mul(total, big.NewInt(int64(remaining[placed])))
		count.Div(count, big.NewInt(int64(natoms-site)))
		total.Set(count)
		remaining[placed]--
	}
	return rank
}

// NextPermutation advances the configuration in place to its lexicographic
// successor, skipping duplicates. It returns false if the input already was
// the last permutation, leaving it untouched.
func NextPermutation(configuration Configuration) bool {
	pivot := len(configuration) - 2
	for pivot >= 0 && configuration[pivot] >= configuration[pivot+1] {
		pivot--
	}
	if pivot < 0 {
		return false
	}
	successor := len(configuration) - 1
	for configuration[successor] <= configuration[pivot] {
		successor--
	}
	configuration[pivot], configuration[successor] = configuration[successor], configuration[pivot]
	slices.Reverse(configuration[pivot+1:])
	return true
}
