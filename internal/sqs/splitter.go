package sqs

import "math/big"

// workSlice is a half-open interval of work assigned to one worker. In
// systematic mode the bounds are 1-based permutation ranks; in random mode
// they are plain iteration counters.
type workSlice struct {
	start, end *big.Int
}

func (slice workSlice) size() uint64 {
	return new(big.Int).Sub(slice.end, slice.start).Uint64()
}

// splitWork partitions [0, total) into nworkers contiguous slices of size
// floor(total/nworkers), the last worker absorbing the remainder. With
// oneBased set both bounds are shifted up by one, realizing the convention
// that the permutation sequence starts at rank 1.
func splitWork(total *big.Int, nworkers int, oneBased bool) []workSlice {
	one := big.NewInt(1)
	chunk := new(big.Int).Div(total, big.NewInt(int64(nworkers)))

	slices := make([]workSlice, nworkers)
	for worker := range nworkers {
		start := new(big.Int).Mul(chunk, big.NewInt(int64(worker)))
		end := new(big.Int).Add(start, chunk)
		if worker == nworkers-1 {
			end.Set(total)
		}
		if oneBased {
			start.Add(start, one)
			end.Add(end, one)
		}
		slices[worker] = workSlice{start: start, end: end}
	}
	return slices
}
