package crystal

import "fmt"

// symbols is indexed by atomic number; index 0 is the vacancy placeholder.
var symbols = []string{
	"0",
	"H", "He", "Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar", "K", "Ca",
	"Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr", "Rb", "Sr", "Y", "Zr",
	"Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd", "In", "Sn",
	"Sb", "Te", "I", "Xe", "Cs", "Ba", "La", "Ce", "Pr", "Nd",
	"Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb",
	"Lu", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg",
	"Tl", "Pb", "Bi", "Po", "At", "Rn", "Fr", "Ra", "Ac", "Th",
	"Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es", "Fm",
	"Md", "No", "Lr",
}

var ordinals = func() map[string]uint8 {
	table := make(map[string]uint8, len(symbols))
	for z, symbol := range symbols {
		table[symbol] = uint8(z)
	}
	return table
}()

// SymbolFromZ returns the element symbol of an atomic number.
func SymbolFromZ(z uint8) (string, error) {
	if int(z) >= len(symbols) {
		return "", fmt.Errorf("no element with atomic number %d", z)
	}
	return symbols[z], nil
}

// ZFromSymbol returns the atomic number of an element symbol.
func ZFromSymbol(symbol string) (uint8, error) {
	z, ok := ordinals[symbol]
	if !ok {
		return 0, fmt.Errorf("unknown element symbol %q", symbol)
	}
	return z, nil
}
