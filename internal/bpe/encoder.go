package bpe

import (
	"bufio"
	"io"
	"strings"
)

// Encoder applies a trained Model to arbitrary text, memoizing the
// segmentation of each distinct token across the whole input.
type Encoder struct {
	model *Model
	vocab *Vocabulary
}

// NewEncoder returns an Encoder bound to model, with an empty memoization
// vocabulary.
func NewEncoder(model *Model) *Encoder {
	return &Encoder{
		model: model,
		vocab: NewVocabulary(),
	}
}

// EncodeToken returns the space-joined subword segmentation for token,
// applying the model once per distinct token and reusing the cached result
// on every subsequent call.
func (e *Encoder) EncodeToken(token string) string {
	if e.vocab.Missing(token) {
		word := e.vocab.AddWord(token)
		word.Symbols = e.model.Apply(word.Symbols)
	}
	s, _ := e.vocab.MapToSubwords(token)
	return s
}

// EncodeText normalizes r the same way as Vocabulary.IngestText, encodes
// every token, and writes one output line per input line with tokens
// space-joined.
func (e *Encoder) EncodeText(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	bw := bufio.NewWriter(w)

	for scanner.Scan() {
		tokens := tokenizeLine(scanner.Text())
		mappings := make([]string, len(tokens))
		for i, token := range tokens {
			mappings[i] = e.EncodeToken(token)
		}
		if _, err := bw.WriteString(strings.Join(mappings, " ") + "\n"); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return bw.Flush()
}

// DecodeSubwords reverses the space-joining the Encoder performs: delete
// inter-symbol spaces, replace the terminal marker with a single space,
// trim trailing whitespace. It lives here because it is a pure one-line
// textual transform with no state of its own.
func DecodeSubwords(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	bw := bufio.NewWriter(w)

	for scanner.Scan() {
		line := scanner.Text()
		line = strings.ReplaceAll(line, " ", "")
		line = strings.ReplaceAll(line, string(TerminalMarker), " ")
		line = strings.TrimRight(line, " ")
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return bw.Flush()
}
