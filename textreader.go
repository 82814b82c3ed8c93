package jsontool

import (
	"strconv"

	"github.com/bearlytools/jsontool/internal/jsonchar"
)

// TextReader is a Reader over a string source. Source slices it returns
// are StringSlice views into the original string.
//
// The cursor is a single integer index; Copy duplicates only that index.
// Whitespace is skipped before every classification or consumption, so the
// index may move past whitespace even for Check calls.
type TextReader struct {
	src string
	pos int
}

// NewTextReader returns a reader positioned at the start of src. The
// reader borrows src and never copies it. A leading '+' on numbers is
// accepted as an extension over strict JSON.
func NewTextReader(src string) *TextReader {
	return &TextReader{src: src}
}

// Offset returns the current cursor position. Readers never verify that
// the source is exhausted after the top-level value; callers that care can
// compare Offset against the source length.
func (r *TextReader) Offset() int {
	return r.pos
}

// peek skips whitespace and returns the next significant character, or -1
// at end of input. The cursor moves past the whitespace but not the
// character.
func (r *TextReader) peek() int {
	r.pos = skipSpace(r.src, r.pos)
	if r.pos >= len(r.src) {
		return -1
	}
	return int(r.src[r.pos])
}

func (r *TextReader) fail(msg string) *FormatError {
	return &FormatError{Msg: msg, Source: r.src, Offset: r.pos}
}

// Fail implements Reader.
func (r *TextReader) Fail(msg string) error {
	return r.fail(msg)
}

// Check implements Reader.
func (r *TextReader) Check() Kind {
	switch c := r.peek(); {
	case c == -1:
		return KindUnknown
	case c == 'n':
		return KindNull
	case c == 't' || c == 'f':
		return KindBool
	case c == '"':
		return KindString
	case c == '[':
		return KindArray
	case c == '{':
		return KindObject
	case jsonchar.IsNumberStart(byte(c)):
		if _, isInt := scanNumberEnd(r.src, r.pos); isInt {
			return KindInt
		}
		return KindDouble
	}
	return KindUnknown
}

func (r *TextReader) CheckNull() bool   { return r.peek() == 'n' }
func (r *TextReader) CheckString() bool { return r.peek() == '"' }
func (r *TextReader) CheckArray() bool  { return r.peek() == '[' }
func (r *TextReader) CheckObject() bool { return r.peek() == '{' }

func (r *TextReader) CheckBool() bool {
	c := r.peek()
	return c == 't' || c == 'f'
}

func (r *TextReader) CheckNum() bool {
	c := r.peek()
	return c != -1 && jsonchar.IsNumberStart(byte(c))
}

func (r *TextReader) CheckInt() bool {
	if !r.CheckNum() {
		return false
	}
	_, isInt := scanNumberEnd(r.src, r.pos)
	return isInt
}

func (r *TextReader) CheckDouble() bool {
	if !r.CheckNum() {
		return false
	}
	_, isInt := scanNumberEnd(r.src, r.pos)
	return !isInt
}

// expectWord consumes the literal word at the cursor and verifies it.
func (r *TextReader) expectWord(word string) error {
	start := r.pos
	end := scanLiteralEnd(r.src, r.pos)
	if r.src[start:end] != word {
		return r.fail("expected '" + word + "'")
	}
	r.pos = end
	return nil
}

// ExpectNull implements Reader.
func (r *TextReader) ExpectNull() error {
	if r.peek() != 'n' {
		return r.fail("expected 'null'")
	}
	return r.expectWord("null")
}

// ExpectBool implements Reader.
func (r *TextReader) ExpectBool() (bool, error) {
	switch r.peek() {
	case 't':
		return true, r.expectWord("true")
	case 'f':
		return false, r.expectWord("false")
	}
	return false, r.fail("expected 'true' or 'false'")
}

// ExpectInt implements Reader. The digits are accumulated into an int64
// without overflow checks.
func (r *TextReader) ExpectInt() (int64, error) {
	c := r.peek()
	if c == -1 {
		return 0, r.fail("expected an integer")
	}
	pos := r.pos
	sign := int64(1)
	if c == '-' || c == '+' {
		if c == '-' {
			sign = -1
		}
		pos++
	}
	if pos >= len(r.src) || !jsonchar.IsDigit(r.src[pos]) {
		return 0, r.fail("expected an integer")
	}
	var n int64
	for pos < len(r.src) && jsonchar.IsDigit(r.src[pos]) {
		n = n*10 + int64(r.src[pos]-'0')
		pos++
	}
	if pos < len(r.src) {
		switch r.src[pos] {
		case '.', 'e', 'E':
			return 0, r.fail("expected an integer, found a double")
		}
	}
	r.pos = pos
	return sign * n, nil
}

// expectFloat scans a number lexeme and hands it to the platform double
// parser. Parse failures are rebased onto the full source.
func (r *TextReader) expectFloat(what string) (float64, error) {
	c := r.peek()
	if c == -1 || !jsonchar.IsNumberStart(byte(c)) {
		return 0, r.fail("expected " + what)
	}
	start := r.pos
	end, _ := scanNumberEnd(r.src, r.pos)
	v, err := strconv.ParseFloat(r.src[start:end], 64)
	if err != nil {
		return 0, &FormatError{Msg: "malformed number", Source: r.src, Offset: start, cause: err}
	}
	r.pos = end
	return v, nil
}

// ExpectDouble implements Reader.
func (r *TextReader) ExpectDouble() (float64, error) {
	return r.expectFloat("a double")
}

// ExpectNum implements Reader.
func (r *TextReader) ExpectNum() (float64, error) {
	return r.expectFloat("a number")
}

// ExpectString implements Reader. When the string contains no escapes the
// result is a substring of the source, not a copy.
func (r *TextReader) ExpectString() (string, error) {
	if r.peek() != '"' {
		return "", r.fail("expected a string")
	}
	r.pos++
	start := r.pos
	var buf []byte
	for r.pos < len(r.src) {
		switch r.src[r.pos] {
		case '"':
			if buf == nil {
				s := r.src[start:r.pos]
				r.pos++
				return s, nil
			}
			buf = append(buf, r.src[start:r.pos]...)
			r.pos++
			return string(buf), nil
		case '\\':
			buf = append(buf, r.src[start:r.pos]...)
			r.pos++
			var msg string
			buf, r.pos, msg = decodeEscape(buf, r.src, r.pos)
			if msg != "" {
				return "", r.fail(msg)
			}
			start = r.pos
		default:
			r.pos++
		}
	}
	return "", r.fail("unterminated string")
}

// ExpectArray implements Reader.
func (r *TextReader) ExpectArray() error {
	if r.peek() != '[' {
		return r.fail("expected an array")
	}
	r.pos++
	return nil
}

// ExpectObject implements Reader.
func (r *TextReader) ExpectObject() error {
	if r.peek() != '{' {
		return r.fail("expected an object")
	}
	r.pos++
	return nil
}

func (r *TextReader) TryNull() bool {
	save := r.pos
	if r.ExpectNull() != nil {
		r.pos = save
		return false
	}
	return true
}

func (r *TextReader) TryBool() (bool, bool) {
	save := r.pos
	v, err := r.ExpectBool()
	if err != nil {
		r.pos = save
		return false, false
	}
	return v, true
}

func (r *TextReader) TryInt() (int64, bool) {
	save := r.pos
	v, err := r.ExpectInt()
	if err != nil {
		r.pos = save
		return 0, false
	}
	return v, true
}

func (r *TextReader) TryDouble() (float64, bool) {
	save := r.pos
	v, err := r.ExpectDouble()
	if err != nil {
		r.pos = save
		return 0, false
	}
	return v, true
}

func (r *TextReader) TryNum() (float64, bool) {
	save := r.pos
	v, err := r.ExpectNum()
	if err != nil {
		r.pos = save
		return 0, false
	}
	return v, true
}

func (r *TextReader) TryString() (string, bool) {
	save := r.pos
	v, err := r.ExpectString()
	if err != nil {
		r.pos = save
		return "", false
	}
	return v, true
}

func (r *TextReader) TryArray() bool {
	if r.peek() != '[' {
		return false
	}
	r.pos++
	return true
}

func (r *TextReader) TryObject() bool {
	if r.peek() != '{' {
		return false
	}
	r.pos++
	return true
}

// HasNext implements Reader. The source position itself encodes the
// iteration state: a ',' means another element follows, a ']' ends the
// array, anything else is the first element of a freshly entered array.
func (r *TextReader) HasNext() bool {
	switch r.peek() {
	case -1:
		return false
	case ',':
		r.pos++
		return true
	case ']':
		r.pos++
		return false
	}
	return true
}

// nextKeyStart positions the cursor at the next key's opening quote. The
// return is false when the object has ended (the '}' is consumed).
func (r *TextReader) nextKeyStart() bool {
	switch r.peek() {
	case -1:
		return false
	case ',':
		r.pos++
		r.peek()
	case '}':
		r.pos++
		return false
	}
	return true
}

// NextKey implements Reader.
func (r *TextReader) NextKey() (string, bool) {
	if !r.nextKeyStart() {
		return "", false
	}
	key, err := r.ExpectString()
	if err != nil {
		return "", false
	}
	if r.peek() == ':' {
		r.pos++
	}
	return key, true
}

// HasNextKey implements Reader.
func (r *TextReader) HasNextKey() bool {
	return r.nextKeyStart()
}

// NextKeySource implements Reader. The slice includes the key's quotes.
func (r *TextReader) NextKeySource() (StringSlice, bool) {
	if !r.nextKeyStart() {
		return StringSlice{}, false
	}
	start := r.pos
	r.pos = skipStringFrom(r.src, r.pos)
	key := NewStringSlice(r.src, start, r.pos)
	if r.peek() == ':' {
		r.pos++
	}
	return key, true
}

// TryKey implements Reader. The returned string is the matched element of
// sortedCandidates itself.
func (r *TextReader) TryKey(sortedCandidates []string) (string, bool) {
	i, ok := r.TryKeyIndex(sortedCandidates)
	if !ok {
		return "", false
	}
	return sortedCandidates[i], true
}

// TryKeyIndex implements Reader.
func (r *TextReader) TryKeyIndex(sortedCandidates []string) (int, bool) {
	if len(sortedCandidates) == 0 {
		return -1, false
	}
	if r.peek() == ',' {
		r.pos++
	}
	if r.peek() != '"' {
		return -1, false
	}
	idx, end := matchCandidate(r.src, r.pos+1, sortedCandidates)
	if idx < 0 {
		return -1, false
	}
	r.pos = end
	if r.peek() == ':' {
		r.pos++
	}
	return idx, true
}

// TryCandidate implements Reader.
func (r *TextReader) TryCandidate(sortedCandidates []string) (string, bool) {
	i, ok := r.TryCandidateIndex(sortedCandidates)
	if !ok {
		return "", false
	}
	return sortedCandidates[i], true
}

// TryCandidateIndex implements Reader.
func (r *TextReader) TryCandidateIndex(sortedCandidates []string) (int, bool) {
	checkCandidates("TryCandidateIndex", sortedCandidates)
	if r.peek() != '"' {
		return -1, false
	}
	idx, end := matchCandidate(r.src, r.pos+1, sortedCandidates)
	if idx < 0 {
		return -1, false
	}
	r.pos = end
	return idx, true
}

// ExpectCandidate implements Reader.
func (r *TextReader) ExpectCandidate(sortedCandidates []string) (string, error) {
	i, err := r.ExpectCandidateIndex(sortedCandidates)
	if err != nil {
		return "", err
	}
	return sortedCandidates[i], nil
}

// ExpectCandidateIndex implements Reader.
func (r *TextReader) ExpectCandidateIndex(sortedCandidates []string) (int, error) {
	checkCandidates("ExpectCandidateIndex", sortedCandidates)
	idx, ok := r.TryCandidateIndex(sortedCandidates)
	if !ok {
		return -1, r.fail("expected one of the candidate strings")
	}
	return idx, nil
}

// SkipObjectEntry implements Reader.
func (r *TextReader) SkipObjectEntry() bool {
	if !r.nextKeyStart() {
		return false
	}
	r.pos = skipStringFrom(r.src, r.pos)
	if r.peek() == ':' {
		r.pos++
	}
	r.SkipAnyValue()
	return true
}

// EndArray implements Reader.
func (r *TextReader) EndArray() {
	r.pos = skipUntil(r.src, r.pos, ']')
}

// EndObject implements Reader.
func (r *TextReader) EndObject() {
	r.pos = skipUntil(r.src, r.pos, '}')
}

// SkipAnyValue implements Reader.
func (r *TextReader) SkipAnyValue() {
	if r.peek() == -1 {
		return
	}
	r.pos = skipValueFrom(r.src, r.pos)
}

// ExpectAnyValueSource implements Reader. The slice covers exactly the
// value's characters, including quotes and brackets.
func (r *TextReader) ExpectAnyValueSource() (StringSlice, error) {
	if r.peek() == -1 {
		return StringSlice{}, r.fail("expected a value")
	}
	start := r.pos
	r.pos = skipValueFrom(r.src, r.pos)
	if r.pos == start {
		return StringSlice{}, r.fail("expected a value")
	}
	return NewStringSlice(r.src, start, r.pos), nil
}

// ExpectAnyValue implements Reader.
func (r *TextReader) ExpectAnyValue(s Sink) error {
	return readerToSink[StringSlice](r, s)
}

// Copy implements Reader.
func (r *TextReader) Copy() Reader[StringSlice] {
	c := *r
	return &c
}
