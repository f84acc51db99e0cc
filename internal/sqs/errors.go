package sqs

import "errors"

var (
	// ErrInvalidHistogram indicates a configuration/parameter-array mismatch:
	// an empty configuration, or target/prefactor/weight arrays whose species
	// dimensions disagree with the species actually present.
	ErrInvalidHistogram = errors.New("invalid histogram")
	// ErrInvalidPairList indicates a pair entry referencing a site or shell
	// outside the configured ranges.
	ErrInvalidPairList = errors.New("invalid pair list")
	// ErrInvalidMode indicates an inconsistent mode combination, such as
	// random mode without an iteration budget.
	ErrInvalidMode = errors.New("invalid iteration mode")
	// ErrRankOutOfRange indicates a rank at or beyond the total number of
	// permutations of the histogram.
	ErrRankOutOfRange = errors.New("rank out of range")
)
