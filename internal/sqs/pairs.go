package sqs

// AtomPair is one site pair attributed to a coordination shell. Site indices
// are canonicalized to I < J by the settings layer; the shell index addresses
// the shells actually carrying weight, in ascending shell order.
type AtomPair struct {
	I, J  int
	Shell int
}

// countPairs accumulates per-(shell, species-pair) bond counts of the
// configuration into bonds, which must have length M*P. When clear is set the
// counts are zeroed first.
//
// This is the innermost routine of the search and is called once per candidate
// configuration: it allocates nothing, takes no locks and reads only its
// inputs. A pair whose species combination is missing from the reindexer
// panics with an index error; that can only happen when the reindexer was
// built for a different species count than the configuration.
func countPairs(configuration Configuration, pairs []AtomPair, bonds []float64, reindexer []int, nspecies int, clear bool) {
	npairs := nspecies*(nspecies-1)/2 + nspecies
	if clear {
		for i := range bonds {
			bonds[i] = 0
		}
	}
	for _, pair := range pairs {
		si := configuration[pair.I]
		sj := configuration[pair.J]
		if sj > si {
			si, sj = sj, si
		}
		bonds[pair.Shell*npairs+reindexer[int(sj)*nspecies+int(si)]]++
	}
}
