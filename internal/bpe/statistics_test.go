package bpe

import "testing"

func TestSetThresholdStrictlyDecreasing(t *testing.T) {
	s := NewStatistics()
	s.threshold = 100
	s.thresholdIsSet = true

	seen := make(map[int]bool)
	prev := s.threshold
	for i := 0; i < 20 && prev >= 2; i++ {
		s.setThreshold()
		if s.threshold >= prev {
			t.Fatalf("threshold did not strictly decrease: prev=%d new=%d", prev, s.threshold)
		}
		if seen[s.threshold] {
			t.Fatalf("threshold %d repeated", s.threshold)
		}
		seen[s.threshold] = true
		prev = s.threshold
	}
}

func TestBuildSearchSetAdaptsParameter(t *testing.T) {
	s := NewStatistics()
	s.threshold = 1
	s.thresholdIsSet = true
	for i := 0; i < 5; i++ {
		pair := Pair{Symbol(rune('a' + i)), Symbol(rune('a' + i))}
		e := newPairEntry(pair)
		e.addTokenFreq("tok", 2)
		s.pairs[pair] = e
	}
	s.buildSearchSet()

	if len(s.searchSet) != 5 {
		t.Fatalf("expected all 5 pairs in the search set, got %d", len(s.searchSet))
	}
	if s.adaptationParameter != 1 {
		t.Fatalf("undersized search set should increment adaptationParameter, got %d", s.adaptationParameter)
	}
}

func TestMaxPairLexicographicTieBreak(t *testing.T) {
	s := NewStatistics()
	for _, p := range []Pair{{"Z", "Z"}, {"A", "A"}, {"M", "M"}} {
		e := newPairEntry(p)
		e.addTokenFreq("tok", 4)
		s.pairs[p] = e
		s.addToSearchSet(e)
	}
	s.threshold = 1

	top := s.maxPair()
	if top == nil || top.pair != (Pair{"A", "A"}) {
		t.Fatalf("expected lexicographically-least max pair (A,A), got %+v", top)
	}
}

func TestMaxPairEmptyReturnsNil(t *testing.T) {
	s := NewStatistics()
	if got := s.maxPair(); got != nil {
		t.Fatalf("expected nil for empty pair map, got %+v", got)
	}
}

func TestBuildFromVocabularyCountsWeightedPairs(t *testing.T) {
	v := NewVocabulary()
	w := v.AddWord("LOW")
	w.Weight = 5

	stats := BuildFromVocabulary(v)
	lo := stats.pairs[Pair{"L", "O"}]
	ow := stats.pairs[Pair{"O", "W"}]
	wTerm := stats.pairs[Pair{"W", "_"}]

	if lo == nil || lo.freq != 5 {
		t.Fatalf("(L,O): got %+v", lo)
	}
	if ow == nil || ow.freq != 5 {
		t.Fatalf("(O,W): got %+v", ow)
	}
	if wTerm == nil || wTerm.freq != 5 {
		t.Fatalf("(W,_): got %+v", wTerm)
	}
}

func TestApplyBigramUpdatesDropsZeroFreqEntries(t *testing.T) {
	s := NewStatistics()
	s.threshold = 1
	pair := Pair{"X", "Y"}
	e := newPairEntry(pair)
	e.addTokenFreq("tok", 3)
	s.pairs[pair] = e
	s.addToSearchSet(e)

	updates := bigramUpdates{pair: {"tok": -3}}
	s.applyBigramUpdates(updates)

	if _, ok := s.pairs[pair]; ok {
		t.Fatalf("pair entry should be removed once freq hits zero")
	}
	if _, ok := s.searchSet[pair]; ok {
		t.Fatalf("pair entry should leave the search set once removed")
	}
}
