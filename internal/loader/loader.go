package loader

import (
	"encoding/json"
	"fmt"
	"os"
)

// InvalidJSONError means the file is not parseable JSON at all. The run
// produces no report.
type InvalidJSONError struct {
	Offset  int64  // byte offset from the decoder, or -1 if unknown
	Snippet string // text surrounding the failure point
	Err     error
}

func (e *InvalidJSONError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("file is not valid JSON at byte %d (near %q): %v", e.Offset, e.Snippet, e.Err)
	}
	return fmt.Sprintf("file is not valid JSON: %v", e.Err)
}

func (e *InvalidJSONError) Unwrap() error { return e.Err }

// UnexpectedShapeError means the file is valid JSON but its top level is not
// an array. Reported distinctly from InvalidJSONError so the operator knows to
// check file selection rather than suspect corruption.
type UnexpectedShapeError struct {
	Kind string // JSON kind actually found: "object", "string", ...
}

func (e *UnexpectedShapeError) Error() string {
	return fmt.Sprintf("expected a top-level JSON array, got %s", e.Kind)
}

// snippetRadius bounds the context shown around a JSON syntax error.
const snippetRadius = 20

// Decode parses data as a single JSON array of arbitrary values. Element types
// are unconstrained here; shaping individual entries is the extractor's job.
func Decode(data []byte) ([]any, error) {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		offset := int64(-1)
		if syn, ok := err.(*json.SyntaxError); ok {
			offset = syn.Offset
		}
		return nil, &InvalidJSONError{
			Offset:  offset,
			Snippet: snippetAt(data, offset),
			Err:     err,
		}
	}

	arr, ok := value.([]any)
	if !ok {
		return nil, &UnexpectedShapeError{Kind: jsonKind(value)}
	}
	return arr, nil
}

// Load reads a file and decodes it as a JSON array.
func Load(path string) ([]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read log file: %w", err)
	}
	return Decode(data)
}

// snippetAt returns the text around a byte offset for error messages.
func snippetAt(data []byte, offset int64) string {
	if offset < 0 || len(data) == 0 {
		return ""
	}
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	lo := offset - snippetRadius
	if lo < 0 {
		lo = 0
	}
	hi := offset + snippetRadius
	if hi > int64(len(data)) {
		hi = int64(len(data))
	}
	return string(data[lo:hi])
}

// jsonKind names the JSON type of a decoded value.
func jsonKind(v any) string {
	switch v.(type) {
	case map[string]any:
		return "object"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case nil:
		return "null"
	default:
		return "unknown"
	}
}
