package bpe

// Pair is an ordered adjacent symbol bigram. It is a comparable struct so it
// can be used directly as a map key.
type Pair struct {
	A, B Symbol
}

// Less orders pairs lexicographically ascending on (A, B). Only used to pick
// among candidates that already share the maximal frequency; it never
// changes which frequency wins.
func (p Pair) Less(o Pair) bool {
	if p.A != o.A {
		return p.A < o.A
	}
	return p.B < o.B
}

// pairEntry tracks a pair's global frequency, its per-token breakdown, and
// whether it currently sits in the statistics search set.
//
// Invariant: freq == sum(perToken values), and perToken holds exactly the
// tokens with a non-zero count.
type pairEntry struct {
	pair        Pair
	freq        int
	perToken    map[string]int
	inSearchSet bool
}

func newPairEntry(pair Pair) *pairEntry {
	return &pairEntry{
		pair:     pair,
		perToken: make(map[string]int),
	}
}

// addTokenFreq applies a delta to one token's contribution and to the total,
// dropping the token's entry once it returns to zero.
func (e *pairEntry) addTokenFreq(token string, delta int) {
	e.perToken[token] += delta
	if e.perToken[token] == 0 {
		delete(e.perToken, token)
	}
	e.freq += delta
}

// bigramUpdates is the nested delta map returned by Vocabulary.replacePair
// and consumed by Statistics.applyBigramUpdates: Pair -> token -> delta.
type bigramUpdates map[Pair]map[string]int

func (u bigramUpdates) add(pair Pair, token string, delta int) {
	if delta == 0 {
		return
	}
	tokens, ok := u[pair]
	if !ok {
		tokens = make(map[string]int)
		u[pair] = tokens
	}
	tokens[token] += delta
}
