// Package bpe implements a from-scratch Byte-Pair Encoding subword learner
// and applier (Sennrich et al. 2016): a weighted word vocabulary goes in,
// an ordered list of merge operations comes out, and that model can then
// segment arbitrary text into subword units.
package bpe

import "strings"

// TerminalMarker is the reserved symbol appended to every Word to mark the
// word-final position. It is never a separator: it behaves like any other
// symbol and can itself be merged into a larger one (e.g. "O_").
const TerminalMarker Symbol = "_"

// Symbol is a subword unit: one source character, the terminal marker, or a
// concatenation of those produced by a merge operation.
type Symbol string

// Word is a single whole token with its corpus weight and its current,
// mutable subword segmentation.
//
// Invariant: the concatenation of symbols always equals token+"_".
type Word struct {
	Token   string
	Weight  int
	Symbols []Symbol
}

// newWord creates a Word with zero weight and the per-character initial
// segmentation (token split into runes, terminal marker appended).
func newWord(token string) *Word {
	return &Word{
		Token:   token,
		Weight:  0,
		Symbols: initialSymbols(token),
	}
}

func initialSymbols(token string) []Symbol {
	runes := []rune(token)
	symbols := make([]Symbol, 0, len(runes)+1)
	for _, r := range runes {
		symbols = append(symbols, Symbol(r))
	}
	symbols = append(symbols, TerminalMarker)
	return symbols
}

// resetSymbols restores the per-character + terminal-marker segmentation,
// discarding any merges applied so far.
func (w *Word) resetSymbols() {
	w.Symbols = initialSymbols(w.Token)
}

// subwordString renders the current segmentation as a space-joined string,
// e.g. "H E LL O_".
func (w *Word) subwordString() string {
	parts := make([]string, len(w.Symbols))
	for i, s := range w.Symbols {
		parts[i] = string(s)
	}
	return strings.Join(parts, " ")
}

// concatenated rebuilds the token+terminator string the symbols should spell
// out; used only by debug-mode invariant checks.
func (w *Word) concatenated() string {
	var b strings.Builder
	for _, s := range w.Symbols {
		b.WriteString(string(s))
	}
	return b.String()
}
