package jsontool

// ValidateReader wraps r in a decorator that enforces correct query
// ordering: values may only be consumed where the structure allows one,
// key operations only at key boundaries, and iteration calls only inside
// the matching composite. Misuse panics with a *StateError. The decorator
// is intended for tests; the raw readers omit these checks on their hot
// paths. The decorator accepts a single top-level value; reading past it
// is reported as misuse.
func ValidateReader[S any](r Reader[S]) Reader[S] {
	return &validReader[S]{r: r, fsm: newStructValidator(false)}
}

type validReader[S any] struct {
	r   Reader[S]
	fsm *structValidator
}

func (v *validReader[S]) check(err *StateError) {
	if err != nil {
		panic(err)
	}
}

// requireValue panics unless the current position accepts a value.
func (v *validReader[S]) requireValue(op string) {
	if !v.fsm.allowsValue() {
		panic(&StateError{Op: op, Msg: "no value is allowed here"})
	}
}

func (v *validReader[S]) Check() Kind       { return v.r.Check() }
func (v *validReader[S]) CheckNull() bool   { return v.r.CheckNull() }
func (v *validReader[S]) CheckBool() bool   { return v.r.CheckBool() }
func (v *validReader[S]) CheckInt() bool    { return v.r.CheckInt() }
func (v *validReader[S]) CheckDouble() bool { return v.r.CheckDouble() }
func (v *validReader[S]) CheckNum() bool    { return v.r.CheckNum() }
func (v *validReader[S]) CheckString() bool { return v.r.CheckString() }
func (v *validReader[S]) CheckArray() bool  { return v.r.CheckArray() }
func (v *validReader[S]) CheckObject() bool { return v.r.CheckObject() }

func (v *validReader[S]) ExpectNull() error {
	v.requireValue("ExpectNull")
	if err := v.r.ExpectNull(); err != nil {
		return err
	}
	v.check(v.fsm.value("ExpectNull"))
	return nil
}

func (v *validReader[S]) ExpectBool() (bool, error) {
	v.requireValue("ExpectBool")
	b, err := v.r.ExpectBool()
	if err != nil {
		return false, err
	}
	v.check(v.fsm.value("ExpectBool"))
	return b, nil
}

func (v *validReader[S]) ExpectInt() (int64, error) {
	v.requireValue("ExpectInt")
	n, err := v.r.ExpectInt()
	if err != nil {
		return 0, err
	}
	v.check(v.fsm.value("ExpectInt"))
	return n, nil
}

func (v *validReader[S]) ExpectDouble() (float64, error) {
	v.requireValue("ExpectDouble")
	n, err := v.r.ExpectDouble()
	if err != nil {
		return 0, err
	}
	v.check(v.fsm.value("ExpectDouble"))
	return n, nil
}

func (v *validReader[S]) ExpectNum() (float64, error) {
	v.requireValue("ExpectNum")
	n, err := v.r.ExpectNum()
	if err != nil {
		return 0, err
	}
	v.check(v.fsm.value("ExpectNum"))
	return n, nil
}

func (v *validReader[S]) ExpectString() (string, error) {
	v.requireValue("ExpectString")
	s, err := v.r.ExpectString()
	if err != nil {
		return "", err
	}
	v.check(v.fsm.value("ExpectString"))
	return s, nil
}

func (v *validReader[S]) ExpectArray() error {
	v.requireValue("ExpectArray")
	if err := v.r.ExpectArray(); err != nil {
		return err
	}
	v.check(v.fsm.startArray("ExpectArray"))
	return nil
}

func (v *validReader[S]) ExpectObject() error {
	v.requireValue("ExpectObject")
	if err := v.r.ExpectObject(); err != nil {
		return err
	}
	v.check(v.fsm.startObject("ExpectObject"))
	return nil
}

func (v *validReader[S]) TryNull() bool {
	v.requireValue("TryNull")
	if !v.r.TryNull() {
		return false
	}
	v.check(v.fsm.value("TryNull"))
	return true
}

func (v *validReader[S]) TryBool() (bool, bool) {
	v.requireValue("TryBool")
	b, ok := v.r.TryBool()
	if !ok {
		return false, false
	}
	v.check(v.fsm.value("TryBool"))
	return b, true
}

func (v *validReader[S]) TryInt() (int64, bool) {
	v.requireValue("TryInt")
	n, ok := v.r.TryInt()
	if !ok {
		return 0, false
	}
	v.check(v.fsm.value("TryInt"))
	return n, true
}

func (v *validReader[S]) TryDouble() (float64, bool) {
	v.requireValue("TryDouble")
	n, ok := v.r.TryDouble()
	if !ok {
		return 0, false
	}
	v.check(v.fsm.value("TryDouble"))
	return n, true
}

func (v *validReader[S]) TryNum() (float64, bool) {
	v.requireValue("TryNum")
	n, ok := v.r.TryNum()
	if !ok {
		return 0, false
	}
	v.check(v.fsm.value("TryNum"))
	return n, true
}

func (v *validReader[S]) TryString() (string, bool) {
	v.requireValue("TryString")
	s, ok := v.r.TryString()
	if !ok {
		return "", false
	}
	v.check(v.fsm.value("TryString"))
	return s, true
}

func (v *validReader[S]) TryArray() bool {
	v.requireValue("TryArray")
	if !v.r.TryArray() {
		return false
	}
	v.check(v.fsm.startArray("TryArray"))
	return true
}

func (v *validReader[S]) TryObject() bool {
	v.requireValue("TryObject")
	if !v.r.TryObject() {
		return false
	}
	v.check(v.fsm.startObject("TryObject"))
	return true
}

func (v *validReader[S]) HasNext() bool {
	if !v.fsm.isArray() {
		panic(&StateError{Op: "HasNext", Msg: "not inside an array"})
	}
	if v.r.HasNext() {
		return true
	}
	v.check(v.fsm.endArray("HasNext"))
	return false
}

// requireKeyBoundary panics unless the cursor is at an object key
// position.
func (v *validReader[S]) requireKeyBoundary(op string) {
	if !v.fsm.isObject() || v.fsm.allowsValue() {
		panic(&StateError{Op: op, Msg: "not at an object key boundary"})
	}
}

func (v *validReader[S]) NextKey() (string, bool) {
	v.requireKeyBoundary("NextKey")
	key, ok := v.r.NextKey()
	if !ok {
		v.check(v.fsm.endObject("NextKey"))
		return "", false
	}
	v.check(v.fsm.key("NextKey"))
	return key, true
}

func (v *validReader[S]) HasNextKey() bool {
	v.requireKeyBoundary("HasNextKey")
	if v.r.HasNextKey() {
		return true
	}
	v.check(v.fsm.endObject("HasNextKey"))
	return false
}

func (v *validReader[S]) NextKeySource() (S, bool) {
	v.requireKeyBoundary("NextKeySource")
	key, ok := v.r.NextKeySource()
	if !ok {
		v.check(v.fsm.endObject("NextKeySource"))
		var zero S
		return zero, false
	}
	v.check(v.fsm.key("NextKeySource"))
	return key, true
}

func (v *validReader[S]) TryKey(sortedCandidates []string) (string, bool) {
	v.requireKeyBoundary("TryKey")
	key, ok := v.r.TryKey(sortedCandidates)
	if !ok {
		return "", false
	}
	v.check(v.fsm.key("TryKey"))
	return key, true
}

func (v *validReader[S]) TryKeyIndex(sortedCandidates []string) (int, bool) {
	v.requireKeyBoundary("TryKeyIndex")
	idx, ok := v.r.TryKeyIndex(sortedCandidates)
	if !ok {
		return -1, false
	}
	v.check(v.fsm.key("TryKeyIndex"))
	return idx, true
}

func (v *validReader[S]) TryCandidate(sortedCandidates []string) (string, bool) {
	v.requireValue("TryCandidate")
	s, ok := v.r.TryCandidate(sortedCandidates)
	if !ok {
		return "", false
	}
	v.check(v.fsm.value("TryCandidate"))
	return s, true
}

func (v *validReader[S]) TryCandidateIndex(sortedCandidates []string) (int, bool) {
	v.requireValue("TryCandidateIndex")
	idx, ok := v.r.TryCandidateIndex(sortedCandidates)
	if !ok {
		return -1, false
	}
	v.check(v.fsm.value("TryCandidateIndex"))
	return idx, true
}

func (v *validReader[S]) ExpectCandidate(sortedCandidates []string) (string, error) {
	v.requireValue("ExpectCandidate")
	s, err := v.r.ExpectCandidate(sortedCandidates)
	if err != nil {
		return "", err
	}
	v.check(v.fsm.value("ExpectCandidate"))
	return s, nil
}

func (v *validReader[S]) ExpectCandidateIndex(sortedCandidates []string) (int, error) {
	v.requireValue("ExpectCandidateIndex")
	idx, err := v.r.ExpectCandidateIndex(sortedCandidates)
	if err != nil {
		return -1, err
	}
	v.check(v.fsm.value("ExpectCandidateIndex"))
	return idx, nil
}

func (v *validReader[S]) SkipObjectEntry() bool {
	v.requireKeyBoundary("SkipObjectEntry")
	if !v.r.SkipObjectEntry() {
		v.check(v.fsm.endObject("SkipObjectEntry"))
		return false
	}
	v.check(v.fsm.key("SkipObjectEntry"))
	v.check(v.fsm.value("SkipObjectEntry"))
	return true
}

func (v *validReader[S]) EndArray() {
	v.check(v.fsm.endArray("EndArray"))
	v.r.EndArray()
}

func (v *validReader[S]) EndObject() {
	v.check(v.fsm.endObject("EndObject"))
	v.r.EndObject()
}

func (v *validReader[S]) SkipAnyValue() {
	v.requireValue("SkipAnyValue")
	v.r.SkipAnyValue()
	v.check(v.fsm.value("SkipAnyValue"))
}

func (v *validReader[S]) ExpectAnyValueSource() (S, error) {
	v.requireValue("ExpectAnyValueSource")
	s, err := v.r.ExpectAnyValueSource()
	if err != nil {
		return s, err
	}
	v.check(v.fsm.value("ExpectAnyValueSource"))
	return s, nil
}

func (v *validReader[S]) ExpectAnyValue(s Sink) error {
	v.requireValue("ExpectAnyValue")
	if err := v.r.ExpectAnyValue(s); err != nil {
		return err
	}
	v.check(v.fsm.value("ExpectAnyValue"))
	return nil
}

// Copy snapshots both the wrapped cursor and the validator state.
func (v *validReader[S]) Copy() Reader[S] {
	fsm := &structValidator{state: v.fsm.state}
	fsm.stack = append([]uint8(nil), v.fsm.stack...)
	return &validReader[S]{r: v.r.Copy(), fsm: fsm}
}

func (v *validReader[S]) Fail(msg string) error {
	return v.r.Fail(msg)
}
