package bpe

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Model is the ordered list of merge operations produced by training.
// Order is significant: both training and application replay it exactly.
type Model struct {
	operations []Pair
}

// NewModel returns an empty Model.
func NewModel() *Model {
	return &Model{}
}

func (m *Model) addOperation(pair Pair) {
	m.operations = append(m.operations, pair)
}

// Len returns the number of merge operations.
func (m *Model) Len() int {
	return len(m.operations)
}

// Operations returns the ordered merge operations. The slice is owned by m
// and must be treated as read-only.
func (m *Model) Operations() []Pair {
	return m.operations
}

// LoadModel reads "<SYMBOL_A> <SYMBOL_B>" lines, uppercasing each. A
// duplicate pair is a fatal input error.
func LoadModel(r io.Reader, name string) (*Model, error) {
	m := NewModel()
	seen := make(map[Pair]struct{})

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.ToUpper(strings.TrimSpace(scanner.Text()))
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, &InputFormatError{File: name, Line: lineNo, Reason: fmt.Sprintf("expected 2 fields, got %d", len(fields))}
		}
		pair := Pair{Symbol(fields[0]), Symbol(fields[1])}
		if _, dup := seen[pair]; dup {
			return nil, &DuplicateKeyError{File: name, Line: lineNo, Key: fields[0] + " " + fields[1]}
		}
		seen[pair] = struct{}{}
		m.addOperation(pair)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

// Emit writes one "<SYMBOL_A> <SYMBOL_B>" line per operation, in order.
func (m *Model) Emit(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, op := range m.operations {
		if _, err := fmt.Fprintf(bw, "%s %s\n", op.A, op.B); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Apply replays every operation, in order, against symbols: each operation
// performs a left-to-right, non-overlapping merge of (a, b) into a+b, the
// same cursor rule as Vocabulary.replacePair. The input slice is not
// mutated in place; the result is returned.
func (m *Model) Apply(symbols []Symbol) []Symbol {
	out := append([]Symbol(nil), symbols...)
	for _, op := range m.operations {
		i := 0
		for i < len(out)-1 {
			if out[i] == op.A && out[i+1] == op.B {
				out[i] = op.A + op.B
				out = append(out[:i+1], out[i+2:]...)
			}
			i++
		}
	}
	return out
}
