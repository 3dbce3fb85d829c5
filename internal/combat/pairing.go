package combat

import "arena/internal/util"

// Shuffle returns a Fisher–Yates permutation of fighters, drawing from src
// once per position from the end down to index 1. The input is not modified.
func Shuffle(fighters []*Fighter, src util.Source) []*Fighter {
	out := append([]*Fighter(nil), fighters...)
	for i := len(out) - 1; i > 0; i-- {
		j := util.Intn(src, i+1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

type Pair [2]*Fighter

// PairUp pairs consecutive entries. With an odd count the last fighter is
// returned as the bye.
func PairUp(fighters []*Fighter) (pairs []Pair, bye *Fighter) {
	n := len(fighters)
	if n%2 == 1 {
		bye = fighters[n-1]
		n--
	}
	pairs = make([]Pair, 0, n/2)
	for i := 0; i < n; i += 2 {
		pairs = append(pairs, Pair{fighters[i], fighters[i+1]})
	}
	return pairs, bye
}

func survivors(fighters []*Fighter) []*Fighter {
	out := fighters[:0:0]
	for _, f := range fighters {
		if f.IsAlive() {
			out = append(out, f)
		}
	}
	return out
}
