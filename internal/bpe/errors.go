package bpe

import "fmt"

// InputFormatError reports a malformed line in a vocabulary or model file:
// wrong field count, a weight that doesn't parse as an integer, and the
// like. It is fatal — the caller should stop ingesting the file.
type InputFormatError struct {
	File   string
	Line   int
	Reason string
}

func (e *InputFormatError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Reason)
}

// DuplicateKeyError reports a token repeated in a vocabulary file, or a pair
// repeated in a model file — both are fatal.
type DuplicateKeyError struct {
	File string
	Line int
	Key  string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s:%d: duplicate key %q", e.File, e.Line, e.Key)
}

// invariantViolation panics with a message naming the violated invariant;
// these are programmer errors, never returned as error values.
func invariantViolation(format string, args ...any) {
	panic(fmt.Sprintf("bpe: invariant violation: "+format, args...))
}
