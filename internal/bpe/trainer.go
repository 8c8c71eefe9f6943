package bpe

// TrainResult reports the outcome of a training run: the model itself, plus
// whether the pair map emptied before reaching the requested budget.
type TrainResult struct {
	Model        *Model
	Operations   int
	StoppedEarly bool
}

// Train runs the merge-and-update loop against vocab until either
// maxSubwords is reached or no pairs remain.
//
// Step order per iteration: pick the max pair, append it to the model,
// replace it everywhere (collecting neighbor deltas only), explicitly remove
// the merged pair's own entry, then fold in the neighbor deltas. Between the
// replace and the fold, Statistics is momentarily inconsistent with
// Vocabulary — callers must not inspect either structure from another
// goroutine during this window, which is why Train never spawns one.
func Train(vocab *Vocabulary, maxSubwords int) *TrainResult {
	vocab.ResetSymbols()
	stats := BuildFromVocabulary(vocab)

	model := NewModel()
	maxOperations := maxSubwords - vocab.NumCharacters()

	operations := 0
	stoppedEarly := false
	for operations < maxOperations {
		top := stats.maxPair()
		if top == nil {
			stoppedEarly = true
			break
		}

		model.addOperation(top.pair)
		deltas := vocab.replacePair(top)
		stats.removePair(top)
		stats.applyBigramUpdates(deltas)

		operations++
	}

	return &TrainResult{
		Model:        model,
		Operations:   operations,
		StoppedEarly: stoppedEarly,
	}
}
