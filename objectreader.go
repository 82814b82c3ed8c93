package jsontool

import (
	"math"
	"slices"
)

// ObjectReader is a Reader over an already-parsed JSON-like tree:
// primitives plus []any lists plus map[string]any objects. Its
// source-slice type is any — source operations hand back the raw subtree
// itself.
//
// The cursor is a next-value cell plus a stack of iteration frames, one
// per entered composite. Frames borrow the underlying collections; Copy
// duplicates only the indices. Map keys are iterated in sorted order,
// which is also the order the platform encoder uses, so object-reader
// round trips are canonical.
type ObjectReader struct {
	// next is the value the cursor is positioned at. ok distinguishes a
	// JSON null from the none sentinel that follows consuming a value.
	next any
	ok   bool

	stack []objFrame
}

// objFrame is an iteration frame for one entered composite: a list with
// an element index, or a map plus its key order plus a key index. Exactly
// one of elems and m is non-nil.
type objFrame struct {
	elems []any
	m     map[string]any
	keys  []string
	idx   int
}

// NewObjectReader returns a reader positioned at v. The reader borrows
// the tree without copying it.
func NewObjectReader(v any) *ObjectReader {
	return &ObjectReader{next: v, ok: true}
}

func (r *ObjectReader) fail(msg string) *FormatError {
	return &FormatError{Msg: msg}
}

// Fail implements Reader.
func (r *ObjectReader) Fail(msg string) error {
	return r.fail(msg)
}

// sortedKeys returns m's keys in sorted order.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// classify returns the Kind of a raw tree value. Numbers held in float64
// cells classify as KindInt when they are integral and within the int64
// range, matching what the lexing readers report for the same document.
func classify(v any, ok bool) Kind {
	if !ok {
		return KindUnknown
	}
	switch n := v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case string:
		return KindString
	case []any:
		return KindArray
	case map[string]any:
		return KindObject
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KindInt
	case float64:
		if math.Trunc(n) == n && !math.IsInf(n, 0) && math.Abs(n) <= math.MaxInt64 {
			return KindInt
		}
		return KindDouble
	case float32:
		return classify(float64(n), true)
	}
	return KindUnknown
}

// toFloat converts any numeric tree value to float64.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// Check implements Reader.
func (r *ObjectReader) Check() Kind {
	return classify(r.next, r.ok)
}

func (r *ObjectReader) CheckNull() bool   { return r.Check() == KindNull }
func (r *ObjectReader) CheckBool() bool   { return r.Check() == KindBool }
func (r *ObjectReader) CheckInt() bool    { return r.Check() == KindInt }
func (r *ObjectReader) CheckDouble() bool { return r.Check() == KindDouble }
func (r *ObjectReader) CheckNum() bool    { return r.Check().IsNum() }
func (r *ObjectReader) CheckString() bool { return r.Check() == KindString }
func (r *ObjectReader) CheckArray() bool  { return r.Check() == KindArray }
func (r *ObjectReader) CheckObject() bool { return r.Check() == KindObject }

// consume clears the next-value cell.
func (r *ObjectReader) consume() {
	r.next = nil
	r.ok = false
}

// ExpectNull implements Reader.
func (r *ObjectReader) ExpectNull() error {
	if !r.CheckNull() {
		return r.fail("expected 'null'")
	}
	r.consume()
	return nil
}

// ExpectBool implements Reader.
func (r *ObjectReader) ExpectBool() (bool, error) {
	v, ok := r.next.(bool)
	if !r.ok || !ok {
		return false, r.fail("expected 'true' or 'false'")
	}
	r.consume()
	return v, nil
}

// ExpectInt implements Reader.
func (r *ObjectReader) ExpectInt() (int64, error) {
	if r.Check() != KindInt {
		return 0, r.fail("expected an integer")
	}
	f, _ := toFloat(r.next)
	r.consume()
	return int64(f), nil
}

// ExpectDouble implements Reader.
func (r *ObjectReader) ExpectDouble() (float64, error) {
	f, ok := toFloat(r.next)
	if !r.ok || !ok {
		return 0, r.fail("expected a double")
	}
	r.consume()
	return f, nil
}

// ExpectNum implements Reader.
func (r *ObjectReader) ExpectNum() (float64, error) {
	f, ok := toFloat(r.next)
	if !r.ok || !ok {
		return 0, r.fail("expected a number")
	}
	r.consume()
	return f, nil
}

// ExpectString implements Reader.
func (r *ObjectReader) ExpectString() (string, error) {
	v, ok := r.next.(string)
	if !r.ok || !ok {
		return "", r.fail("expected a string")
	}
	r.consume()
	return v, nil
}

// ExpectArray implements Reader. Entering pushes a list frame.
func (r *ObjectReader) ExpectArray() error {
	v, ok := r.next.([]any)
	if !r.ok || !ok {
		return r.fail("expected an array")
	}
	if v == nil {
		v = []any{}
	}
	r.stack = append(r.stack, objFrame{elems: v})
	r.consume()
	return nil
}

// ExpectObject implements Reader. Entering pushes a map frame with the
// map's sorted key order.
func (r *ObjectReader) ExpectObject() error {
	v, ok := r.next.(map[string]any)
	if !r.ok || !ok {
		return r.fail("expected an object")
	}
	r.stack = append(r.stack, objFrame{m: v, keys: sortedKeys(v)})
	r.consume()
	return nil
}

func (r *ObjectReader) TryNull() bool {
	return r.ExpectNull() == nil
}

func (r *ObjectReader) TryBool() (bool, bool) {
	v, err := r.ExpectBool()
	return v, err == nil
}

func (r *ObjectReader) TryInt() (int64, bool) {
	v, err := r.ExpectInt()
	return v, err == nil
}

func (r *ObjectReader) TryDouble() (float64, bool) {
	v, err := r.ExpectDouble()
	return v, err == nil
}

func (r *ObjectReader) TryNum() (float64, bool) {
	v, err := r.ExpectNum()
	return v, err == nil
}

func (r *ObjectReader) TryString() (string, bool) {
	v, err := r.ExpectString()
	return v, err == nil
}

func (r *ObjectReader) TryArray() bool {
	return r.ExpectArray() == nil
}

func (r *ObjectReader) TryObject() bool {
	return r.ExpectObject() == nil
}

// top returns the current iteration frame.
func (r *ObjectReader) top() *objFrame {
	if len(r.stack) == 0 {
		return nil
	}
	return &r.stack[len(r.stack)-1]
}

func (r *ObjectReader) pop() {
	r.stack = r.stack[:len(r.stack)-1]
}

// HasNext implements Reader. It advances the top list frame, pre-loading
// the element into the next-value cell.
func (r *ObjectReader) HasNext() bool {
	f := r.top()
	if f == nil || f.elems == nil {
		return false
	}
	if f.idx >= len(f.elems) {
		r.pop()
		r.consume()
		return false
	}
	r.next = f.elems[f.idx]
	r.ok = true
	f.idx++
	return true
}

// NextKey implements Reader. It advances the top map frame, pre-loading
// the associated value into the next-value cell.
func (r *ObjectReader) NextKey() (string, bool) {
	f := r.top()
	if f == nil || f.m == nil {
		return "", false
	}
	if f.idx >= len(f.keys) {
		r.pop()
		r.consume()
		return "", false
	}
	k := f.keys[f.idx]
	f.idx++
	r.next = f.m[k]
	r.ok = true
	return k, true
}

// HasNextKey implements Reader.
func (r *ObjectReader) HasNextKey() bool {
	f := r.top()
	if f == nil || f.m == nil {
		return false
	}
	if f.idx >= len(f.keys) {
		r.pop()
		r.consume()
		return false
	}
	return true
}

// NextKeySource implements Reader. For the object backend the "source" of
// a key is its JSON form, so the key is returned re-quoted.
func (r *ObjectReader) NextKeySource() (any, bool) {
	k, ok := r.NextKey()
	if !ok {
		return nil, false
	}
	return string(appendQuoted(nil, k, maxEncodable)), true
}

// TryKey implements Reader.
func (r *ObjectReader) TryKey(sortedCandidates []string) (string, bool) {
	i, ok := r.TryKeyIndex(sortedCandidates)
	if !ok {
		return "", false
	}
	return sortedCandidates[i], true
}

// TryKeyIndex implements Reader.
func (r *ObjectReader) TryKeyIndex(sortedCandidates []string) (int, bool) {
	f := r.top()
	if f == nil || f.m == nil || f.idx >= len(f.keys) {
		return -1, false
	}
	k := f.keys[f.idx]
	i, found := slices.BinarySearch(sortedCandidates, k)
	if !found {
		return -1, false
	}
	f.idx++
	r.next = f.m[k]
	r.ok = true
	return i, true
}

// TryCandidate implements Reader.
func (r *ObjectReader) TryCandidate(sortedCandidates []string) (string, bool) {
	i, ok := r.TryCandidateIndex(sortedCandidates)
	if !ok {
		return "", false
	}
	return sortedCandidates[i], true
}

// TryCandidateIndex implements Reader.
func (r *ObjectReader) TryCandidateIndex(sortedCandidates []string) (int, bool) {
	checkCandidates("TryCandidateIndex", sortedCandidates)
	s, ok := r.next.(string)
	if !r.ok || !ok {
		return -1, false
	}
	i, found := slices.BinarySearch(sortedCandidates, s)
	if !found {
		return -1, false
	}
	r.consume()
	return i, true
}

// ExpectCandidate implements Reader.
func (r *ObjectReader) ExpectCandidate(sortedCandidates []string) (string, error) {
	i, err := r.ExpectCandidateIndex(sortedCandidates)
	if err != nil {
		return "", err
	}
	return sortedCandidates[i], nil
}

// ExpectCandidateIndex implements Reader.
func (r *ObjectReader) ExpectCandidateIndex(sortedCandidates []string) (int, error) {
	checkCandidates("ExpectCandidateIndex", sortedCandidates)
	idx, ok := r.TryCandidateIndex(sortedCandidates)
	if !ok {
		return -1, r.fail("expected one of the candidate strings")
	}
	return idx, nil
}

// SkipObjectEntry implements Reader.
func (r *ObjectReader) SkipObjectEntry() bool {
	_, ok := r.NextKey()
	if !ok {
		return false
	}
	r.consume()
	return true
}

// EndArray implements Reader.
func (r *ObjectReader) EndArray() {
	f := r.top()
	if f == nil || f.elems == nil {
		return
	}
	r.pop()
	r.consume()
}

// EndObject implements Reader.
func (r *ObjectReader) EndObject() {
	f := r.top()
	if f == nil || f.m == nil {
		return
	}
	r.pop()
	r.consume()
}

// SkipAnyValue implements Reader. The whole subtree sits in the
// next-value cell, so discarding it is dropping the cell.
func (r *ObjectReader) SkipAnyValue() {
	r.consume()
}

// ExpectAnyValueSource implements Reader. For the object backend the
// source of a value is the raw subtree itself.
func (r *ObjectReader) ExpectAnyValueSource() (any, error) {
	if !r.ok {
		return nil, r.fail("expected a value")
	}
	v := r.next
	r.consume()
	return v, nil
}

// ExpectAnyValue implements Reader.
func (r *ObjectReader) ExpectAnyValue(s Sink) error {
	return readerToSink[any](r, s)
}

// Copy implements Reader. The copy duplicates the frame stack spine; the
// frames reference the same underlying collections.
func (r *ObjectReader) Copy() Reader[any] {
	c := &ObjectReader{next: r.next, ok: r.ok}
	c.stack = append([]objFrame(nil), r.stack...)
	return c
}
