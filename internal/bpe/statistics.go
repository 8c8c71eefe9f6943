package bpe

import "math"

// searchSetTarget is the tuned constant the adaptive threshold controller
// aims the search set size at.
const searchSetTarget = 100

// Statistics tracks every currently-occurring pair's frequency and reverse
// token index, plus the adaptive "search set" used to find the maximum-
// frequency pair without scanning the whole map.
type Statistics struct {
	pairs     map[Pair]*pairEntry
	searchSet map[Pair]*pairEntry

	threshold      int
	thresholdIsSet bool

	maxFreq int

	adaptationParameter int
}

// NewStatistics returns an empty Statistics.
func NewStatistics() *Statistics {
	return &Statistics{
		pairs:     make(map[Pair]*pairEntry),
		searchSet: make(map[Pair]*pairEntry),
	}
}

// BuildFromVocabulary scans every Word's current segmentation, accumulates
// weighted pair frequencies, and seeds the threshold/search set from the
// resulting max_freq.
func BuildFromVocabulary(vocab *Vocabulary) *Statistics {
	s := NewStatistics()
	for token, word := range vocab.words {
		freq := word.Weight
		symbols := word.Symbols
		for i := 0; i < len(symbols)-1; i++ {
			pair := Pair{symbols[i], symbols[i+1]}
			entry, ok := s.pairs[pair]
			if !ok {
				entry = newPairEntry(pair)
				s.pairs[pair] = entry
			}
			entry.addTokenFreq(token, freq)
			if entry.freq > s.maxFreq {
				s.maxFreq = entry.freq
			}
		}
	}
	s.setThresholdSeeded(s.maxFreq)
	s.buildSearchSet()
	return s
}

// missing reports whether pair currently has no entry.
func (s *Statistics) missing(pair Pair) bool {
	_, ok := s.pairs[pair]
	return !ok
}

func (s *Statistics) addToSearchSet(e *pairEntry) {
	s.searchSet[e.pair] = e
	e.inSearchSet = true
}

func (s *Statistics) removeFromSearchSet(e *pairEntry) {
	delete(s.searchSet, e.pair)
	e.inSearchSet = false
}

// removePair deletes entry from the pair map and the search set — the
// explicit removal step the trainer uses for the pair that was just merged,
// kept separate from folding in the neighboring-pair deltas.
func (s *Statistics) removePair(entry *pairEntry) {
	delete(s.pairs, entry.pair)
	if entry.inSearchSet {
		s.removeFromSearchSet(entry)
	}
}

// applyBigramUpdates folds the delta map produced by Vocabulary.replacePair
// into the pair dictionary: creating entries as needed, keeping search-set
// membership in sync with the threshold, and dropping entries whose
// frequency falls to zero.
func (s *Statistics) applyBigramUpdates(updates bigramUpdates) {
	for pair, tokenUpdates := range updates {
		entry, ok := s.pairs[pair]
		if !ok {
			entry = newPairEntry(pair)
			s.pairs[pair] = entry
		}
		for token, delta := range tokenUpdates {
			entry.addTokenFreq(token, delta)
		}

		switch {
		case entry.freq >= s.threshold && !entry.inSearchSet:
			s.addToSearchSet(entry)
		case entry.freq < s.threshold && entry.inSearchSet:
			s.removeFromSearchSet(entry)
		}

		if entry.freq == 0 {
			delete(s.pairs, pair)
			if entry.inSearchSet {
				s.removeFromSearchSet(entry)
			}
		} else if entry.freq < 0 {
			invariantViolation("pair %v has negative frequency %d", pair, entry.freq)
		}
	}

	if Debug {
		s.checkInvariants()
	}
}

// setThresholdSeeded seeds the decay from an explicit previous value (used
// once, right after BuildFromVocabulary, with max_freq as the seed).
func (s *Statistics) setThresholdSeeded(prev int) {
	s.threshold = s.decay(prev)
	s.thresholdIsSet = true
}

// setThreshold decays the threshold from its own previous value:
// reduction = 1 + 2^adaptationParameter; new threshold =
// min(ceil(prev/reduction), prev-1), which guarantees strict decrease.
func (s *Statistics) setThreshold() {
	s.threshold = s.decay(s.threshold)
	s.thresholdIsSet = true
}

func (s *Statistics) decay(prev int) int {
	reduction := 1 + math.Pow(2, float64(s.adaptationParameter))
	byReduction := int(math.Ceil(float64(prev) / reduction))
	byDecrement := prev - 1
	if byReduction < byDecrement {
		return byReduction
	}
	return byDecrement
}

// buildSearchSet rescans the whole pair map, inserting every entry at or
// above the current threshold, then adapts adaptationParameter towards the
// target search-set size with an asymmetric step.
func (s *Statistics) buildSearchSet() {
	for _, entry := range s.pairs {
		if entry.freq >= s.threshold && !entry.inSearchSet {
			s.addToSearchSet(entry)
		}
	}
	switch {
	case len(s.searchSet) < searchSetTarget:
		s.adaptationParameter++
	case len(s.searchSet) > searchSetTarget:
		s.adaptationParameter -= 2
	}
}

// maxPair returns the pairEntry with the greatest frequency, or nil once
// the pair map is empty. Ties are broken lexicographically ascending on the
// pair, which requires scanning the whole search set: the search set is
// iterated in Go's randomized map order, so stopping at the first entry
// that reaches the previous round's max_freq would return whichever tied
// pair the map happened to yield first instead of the lexicographically
// least one.
func (s *Statistics) maxPair() *pairEntry {
	if len(s.pairs) == 0 {
		return nil
	}

	if len(s.searchSet) == 0 {
		s.setThreshold()
		s.buildSearchSet()
		return s.maxPair()
	}

	var best *pairEntry
	for _, entry := range s.searchSet {
		if best == nil || entry.freq > best.freq || (entry.freq == best.freq && entry.pair.Less(best.pair)) {
			best = entry
		}
	}

	s.maxFreq = best.freq
	return best
}

func (s *Statistics) checkInvariants() {
	for pair, entry := range s.pairs {
		if entry.pair != pair {
			invariantViolation("pair entry stored under %v has pair field %v", pair, entry.pair)
		}
		sum := 0
		for token, n := range entry.perToken {
			if n <= 0 {
				invariantViolation("pair %v token %q has non-positive count %d", pair, token, n)
			}
			sum += n
		}
		if sum != entry.freq {
			invariantViolation("pair %v freq %d != sum of per-token counts %d", pair, entry.freq, sum)
		}
		if _, inSet := s.searchSet[pair]; inSet != entry.inSearchSet {
			invariantViolation("pair %v inSearchSet=%v but search set membership=%v", pair, entry.inSearchSet, inSet)
		}
		if entry.freq >= s.threshold && !entry.inSearchSet {
			invariantViolation("pair %v has freq %d >= threshold %d but is not in the search set", pair, entry.freq, s.threshold)
		}
	}
	for pair, entry := range s.searchSet {
		if entry.freq < s.threshold {
			invariantViolation("pair %v in search set with freq %d below threshold %d", pair, entry.freq, s.threshold)
		}
	}
}
