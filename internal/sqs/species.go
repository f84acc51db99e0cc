package sqs

import (
	"slices"

	"github.com/samber/lo"
)

// Species is an opaque chemical species tag. Unpacked tags are typically
// atomic numbers; packed tags are dense indices in [0, S).
type Species uint8

// Configuration is an ordered assignment of species to lattice sites; the
// slice position is the site index.
type Configuration []Species

// Pack maps a configuration with arbitrary species tags onto the dense range
// [0, S). The returned pack-indices hold the distinct tags in ascending order,
// so the packed tag of a site is the position of its original tag within them.
// Sorting the distinct tags makes the histogram-ordered configuration the
// lexicographically smallest permutation of the multiset.
func Pack(configuration Configuration) ([]Species, Configuration) {
	packIndices := lo.Uniq(configuration)
	slices.Sort(packIndices)

	packed := make(Configuration, len(configuration))
	for site, species := range configuration {
		packed[site] = Species(slices.Index(packIndices, species))
	}
	return packIndices, packed
}

// Unpack restores the original species tags of a packed configuration. It is
// the inverse of Pack: Unpack(packIndices, packed) round-trips.
func Unpack(packIndices []Species, packed Configuration) Configuration {
	configuration := make(Configuration, len(packed))
	for site, species := range packed {
		configuration[site] = packIndices[species]
	}
	return configuration
}

// Histogram counts the occurrences of each packed species. The counts always
// sum to the number of sites; the histogram is invariant under permutation.
func Histogram(packed Configuration, nspecies int) []int {
	histogram := make([]int, nspecies)
	for _, species := range packed {
		histogram[species]++
	}
	return histogram
}
