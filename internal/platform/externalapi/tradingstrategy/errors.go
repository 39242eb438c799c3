package tradingstrategy

import "fmt"

// TransportError reports a failure to complete an HTTP exchange with the
// Trading Strategy API: the request could not be built or sent, or the
// server answered with a non-2xx status.
type TransportError struct {
	Op         string // failing operation, e.g. "candles-jsonl"
	StatusCode int    // zero when no response was received
	Err        error  // underlying cause, nil for pure status failures
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("tradingstrategy %s: http %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("tradingstrategy %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ParseError reports a response body that could not be decoded as JSON.
// Line is the 1-based line number for line-delimited bodies, zero otherwise.
type ParseError struct {
	Op   string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("tradingstrategy %s: parse line %d: %v", e.Op, e.Line, e.Err)
	}
	return fmt.Sprintf("tradingstrategy %s: parse: %v", e.Op, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SchemaError reports a structurally valid JSON object that is missing a
// required field.
type SchemaError struct {
	Op    string
	Line  int // 1-based line number for line-delimited bodies, zero otherwise
	Field string
}

func (e *SchemaError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("tradingstrategy %s: line %d: missing field %q", e.Op, e.Line, e.Field)
	}
	return fmt.Sprintf("tradingstrategy %s: missing field %q", e.Op, e.Field)
}
