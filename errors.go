package jsontool

import (
	"strconv"
	"strings"
)

// FormatError reports malformed JSON input, or a typed consume against a
// value of a different kind. It carries the full source and the cursor
// offset where the problem was found. A reader that returned a FormatError
// may be mid-token and must not be reused.
type FormatError struct {
	// Msg describes what was expected or what was malformed.
	Msg string
	// Source is the complete source text being read.
	Source string
	// Offset is the position in Source the error was raised at. It is
	// always measured against the full source, even when the underlying
	// failure came from parsing an extracted number lexeme.
	Offset int

	cause error
}

func (e *FormatError) Error() string {
	var s strings.Builder
	s.WriteString(e.Msg)
	if e.Source != "" {
		s.WriteString(" at offset ")
		s.WriteString(strconv.Itoa(e.Offset))
		if ctx := e.context(); ctx != "" {
			s.WriteString(" near ")
			s.WriteString(strconv.Quote(ctx))
		}
	}
	return s.String()
}

func (e *FormatError) Unwrap() error {
	return e.cause
}

// context returns a short excerpt of the source around Offset.
func (e *FormatError) context() string {
	const window = 16
	if e.Offset < 0 || e.Offset > len(e.Source) {
		return ""
	}
	end := e.Offset + window
	if end > len(e.Source) {
		end = len(e.Source)
	}
	return e.Source[e.Offset:end]
}

// StateError reports misuse of the reader or sink protocol, such as adding
// a key outside an object or consuming a value where none is allowed. Only
// the validating decorators raise it; they panic with a *StateError at the
// first offending call. Unvalidated readers and sinks trust the caller.
type StateError struct {
	// Op is the method that was called out of order.
	Op string
	// Msg describes the protocol violation.
	Msg string
}

func (e *StateError) Error() string {
	return "jsontool: invalid call to " + e.Op + ": " + e.Msg
}
