package nbfix

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// parseCheck verifies that doc is syntactically valid JSON. On failure it
// returns ErrInvalidJSON wrapped with the decoder's position as line and
// column.
func parseCheck(doc []byte) error {
	var raw json.RawMessage
	err := json.Unmarshal(doc, &raw)
	if err == nil {
		return nil
	}
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		line, col := lineCol(doc, syn.Offset)
		return fmt.Errorf("%w: %v (line %d, column %d)", ErrInvalidJSON, syn, line, col)
	}
	return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
}

// lineCol converts a byte offset into 1-based line and column numbers.
func lineCol(doc []byte, offset int64) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if offset > int64(len(doc)) {
		offset = int64(len(doc))
	}
	head := doc[:offset]
	line := bytes.Count(head, []byte("\n")) + 1
	col := len(head) - bytes.LastIndexByte(head, '\n')
	return line, col
}

// formatNotebook re-indents notebook JSON with two spaces and a single
// trailing newline. Only whitespace between tokens changes: key order and
// string bytes, including literal non-ASCII characters, pass through
// untouched.
func formatNotebook(doc []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, doc, "", "  "); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
