// Package crystal carries the structural inputs of a search. Geometry proper
// (distance matrices, minimum-image vectors, shell detection) is owned by the
// tooling that produces the settings file; this package only transports the
// lattice and translates between element symbols and atomic numbers.
package crystal

// Structure describes the fixed lattice the species are permuted on.
type Structure struct {
	// Lattice holds the three lattice vectors as rows.
	Lattice [3][3]float64
	// FracCoords holds one fractional coordinate triple per site.
	FracCoords [][3]float64
	// Species holds one atomic number per site.
	Species []uint8
	// PBC flags periodicity along each lattice vector.
	PBC [3]bool
}

func (structure Structure) NumAtoms() int {
	return len(structure.FracCoords)
}
