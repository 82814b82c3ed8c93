package jsontool

// ValidateOption configures ValidateSink.
type ValidateOption func(*validSink)

// AllowReuse lets the validated sink accept another top-level value after
// one completes, instead of treating further events as misuse.
func AllowReuse() ValidateOption {
	return func(v *validSink) {
		v.reusable = true
	}
}

// ValidateSink wraps s in a decorator that enforces correct event
// ordering. Every legal event is forwarded to s; the first offending
// event panics with a *StateError and nothing is forwarded for it.
func ValidateSink(s Sink, opts ...ValidateOption) Sink {
	v := &validSink{s: s}
	for _, o := range opts {
		o(v)
	}
	v.fsm = newStructValidator(v.reusable)
	return v
}

type validSink struct {
	s        Sink
	fsm      *structValidator
	reusable bool
}

func (v *validSink) check(err *StateError) {
	if err != nil {
		panic(err)
	}
}

func (v *validSink) AddNull() {
	v.check(v.fsm.value("AddNull"))
	v.s.AddNull()
}

func (v *validSink) AddBool(b bool) {
	v.check(v.fsm.value("AddBool"))
	v.s.AddBool(b)
}

func (v *validSink) AddNumber(n float64) {
	v.check(v.fsm.value("AddNumber"))
	v.s.AddNumber(n)
}

func (v *validSink) AddString(s string) {
	v.check(v.fsm.value("AddString"))
	v.s.AddString(s)
}

func (v *validSink) AddKey(k string) {
	v.check(v.fsm.key("AddKey"))
	v.s.AddKey(k)
}

func (v *validSink) StartArray() {
	v.check(v.fsm.startArray("StartArray"))
	v.s.StartArray()
}

func (v *validSink) EndArray() {
	v.check(v.fsm.endArray("EndArray"))
	v.s.EndArray()
}

func (v *validSink) StartObject() {
	v.check(v.fsm.startObject("StartObject"))
	v.s.StartObject()
}

func (v *validSink) EndObject() {
	v.check(v.fsm.endObject("EndObject"))
	v.s.EndObject()
}
