package jsontool

import (
	"golang.org/x/exp/constraints"
)

// Seq is a type constraint covering the two lexed source representations.
type Seq interface {
	~string | ~[]byte
}

// Number is a type constraint that supports all numeric scalar types.
type Number interface {
	constraints.Integer | constraints.Float
}

// Reader is a pull cursor over a JSON value. The type parameter S is the
// reader's source-slice type: StringSlice for text sources, BytesSlice for
// byte sources, and any for the object-tree reader (which hands back the
// raw value itself).
//
// For each value kind there is a triple of operations:
//
//   - Expect* consumes a value asserted to be of that kind and returns a
//     *FormatError if it is not.
//   - Try* consumes and returns the value only if it is of that kind;
//     otherwise the cursor is left untouched and ok is false.
//   - Check* classifies the next value without consuming it and never
//     fails on well-formed input.
//
// Apart from the validating decorator, readers assume well-formed input:
// behavior on malformed input that was never asserted against is
// undefined. A Reader is a mutable cursor and is not safe for concurrent
// use.
type Reader[S any] interface {
	// Check classifies the next value without consuming it. It returns
	// KindUnknown at end of input or on an unrecognized character.
	Check() Kind

	CheckNull() bool
	CheckBool() bool
	// CheckInt reports whether the next value is a number with no
	// fraction or exponent part.
	CheckInt() bool
	// CheckDouble reports whether the next value is a number with a
	// fraction or exponent part.
	CheckDouble() bool
	// CheckNum reports whether the next value is any number.
	CheckNum() bool
	CheckString() bool
	CheckArray() bool
	CheckObject() bool

	ExpectNull() error
	ExpectBool() (bool, error)
	// ExpectInt consumes an integer lexeme digit-by-digit into an int64.
	// It fails if the lexeme contains '.' or an exponent. It performs no
	// overflow checks; callers needing arbitrary precision should use
	// ExpectAnyValueSource and parse the lexeme themselves.
	ExpectInt() (int64, error)
	ExpectDouble() (float64, error)
	// ExpectNum consumes any number, returning it as a float64.
	ExpectNum() (float64, error)
	ExpectString() (string, error)
	// ExpectArray consumes the opening '[' of an array. Iterate with
	// HasNext and leave early with EndArray.
	ExpectArray() error
	// ExpectObject consumes the opening '{' of an object. Iterate with
	// NextKey or TryKey and leave early with EndObject.
	ExpectObject() error

	TryNull() bool
	TryBool() (v bool, ok bool)
	TryInt() (v int64, ok bool)
	TryDouble() (v float64, ok bool)
	TryNum() (v float64, ok bool)
	TryString() (v string, ok bool)
	TryArray() bool
	TryObject() bool

	// HasNext reports whether another element follows inside an array,
	// consuming the separating comma. A false return consumes the closing
	// ']' and exits the array.
	HasNext() bool
	// NextKey returns the next key inside an object and positions the
	// cursor at its value. ok is false when the object ends; the closing
	// '}' is consumed.
	NextKey() (key string, ok bool)
	// HasNextKey is the peek variant of NextKey: it does not consume the
	// key, but a false return still exits the object.
	HasNextKey() bool
	// NextKeySource is NextKey returning the source slice of the key
	// including its surrounding quotes.
	NextKeySource() (key S, ok bool)

	// TryKey matches the next key against a sorted list of ASCII
	// candidates. On a match the key and its colon are consumed and the
	// returned string is the candidate element itself (no allocation).
	// Otherwise the cursor is left at the key. Keys containing escapes
	// never match.
	TryKey(sortedCandidates []string) (key string, ok bool)
	// TryKeyIndex is TryKey returning the index of the matched candidate.
	TryKeyIndex(sortedCandidates []string) (idx int, ok bool)

	// TryCandidate matches the next string value against a sorted,
	// non-empty list of ASCII candidates, consuming it on a match. The
	// returned string is the candidate element itself.
	TryCandidate(sortedCandidates []string) (v string, ok bool)
	TryCandidateIndex(sortedCandidates []string) (idx int, ok bool)
	// ExpectCandidate is TryCandidate that fails with a *FormatError when
	// the next value is not one of the candidates.
	ExpectCandidate(sortedCandidates []string) (v string, err error)
	ExpectCandidateIndex(sortedCandidates []string) (idx int, err error)

	// SkipObjectEntry skips one key-value pair. A false return means no
	// entry remained and the object has been exited.
	SkipObjectEntry() bool
	// EndArray fast-forwards over the remaining content of the current
	// array, consuming its closing ']'.
	EndArray()
	// EndObject fast-forwards over the remaining content of the current
	// object, consuming its closing '}'.
	EndObject()

	// SkipAnyValue discards the next value, recursing through composites.
	SkipAnyValue()
	// ExpectAnyValueSource skips the next value and returns the source
	// slice covering exactly its content, including quotes for strings
	// and brackets for composites.
	ExpectAnyValueSource() (S, error)
	// ExpectAnyValue walks the next value and emits a faithful sequence
	// of events to s.
	ExpectAnyValue(s Sink) error

	// Copy snapshots the cursor. The original and the copy may then
	// advance independently over the shared source.
	Copy() Reader[S]
	// Fail constructs a *FormatError at the current position.
	Fail(msg string) error
}
