package bpe

import (
	"errors"
	"strings"
	"testing"
)

func TestModelRoundTrip(t *testing.T) {
	m := NewModel()
	m.addOperation(Pair{"T", "H"})
	m.addOperation(Pair{"TH", "E_"})

	var sb strings.Builder
	if err := m.Emit(&sb); err != nil {
		t.Fatalf("Emit: %v", err)
	}

	loaded, err := LoadModel(strings.NewReader(sb.String()), "model.txt")
	if err != nil {
		t.Fatalf("LoadModel: %v", err)
	}
	if loaded.Len() != m.Len() {
		t.Fatalf("got %d operations, want %d", loaded.Len(), m.Len())
	}
	for i, op := range m.Operations() {
		if loaded.Operations()[i] != op {
			t.Fatalf("operation %d: got %+v, want %+v", i, loaded.Operations()[i], op)
		}
	}
}

func TestLoadModelUppercasesAndRejectsMalformed(t *testing.T) {
	m, err := LoadModel(strings.NewReader("t h\n"), "model.txt")
	if err != nil {
		t.Fatalf("LoadModel: %v", err)
	}
	if m.Operations()[0] != (Pair{"T", "H"}) {
		t.Fatalf("expected uppercased pair, got %+v", m.Operations()[0])
	}

	if _, err := LoadModel(strings.NewReader("t h x\n"), "model.txt"); err == nil {
		t.Fatalf("expected error for malformed line")
	}
}

func TestLoadModelDuplicatePairIsFatal(t *testing.T) {
	_, err := LoadModel(strings.NewReader("T H\nT H\n"), "model.txt")
	if err == nil {
		t.Fatalf("expected duplicate pair error")
	}
	var dke *DuplicateKeyError
	if !errors.As(err, &dke) {
		t.Fatalf("expected DuplicateKeyError, got %T: %v", err, err)
	}
}

func TestApplyNonOverlappingMerges(t *testing.T) {
	m := NewModel()
	m.addOperation(Pair{"A", "A"})

	got := m.Apply([]Symbol{"A", "A", "A", "A"})
	want := []Symbol{"AA", "AA"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestApplyTwiceIsIdempotent(t *testing.T) {
	m := NewModel()
	m.addOperation(Pair{"H", "E"})
	m.addOperation(Pair{"HE", "L"})

	symbols := []Symbol{"H", "E", "L", "L", "O", "_"}
	once := m.Apply(symbols)
	twice := m.Apply(once)

	if len(once) != len(twice) {
		t.Fatalf("applying twice changed length: %v vs %v", once, twice)
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Fatalf("applying twice changed content: %v vs %v", once, twice)
		}
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	m := NewModel()
	m.addOperation(Pair{"A", "B"})

	input := []Symbol{"A", "B", "C"}
	original := append([]Symbol(nil), input...)
	_ = m.Apply(input)

	for i := range input {
		if input[i] != original[i] {
			t.Fatalf("Apply mutated its input slice: %v, want %v", input, original)
		}
	}
}
