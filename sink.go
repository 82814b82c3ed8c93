package jsontool

// Sink accepts a sequence of events describing a JSON structure. Events
// must arrive in an order that describes a valid structure; sinks trust
// the caller and produce undefined output on misuse. Wrap a sink with
// ValidateSink to catch protocol violations instead.
//
// A Sink is single-owner: concurrent use is undefined.
type Sink interface {
	AddNull()
	AddBool(b bool)
	AddNumber(n float64)
	AddString(s string)
	StartArray()
	EndArray()
	StartObject()
	// AddKey supplies the key for the next value inside an object.
	AddKey(k string)
	EndObject()
}

// AddNum adds any numeric value to s.
func AddNum[N Number](s Sink, n N) {
	s.AddNumber(float64(n))
}

// readerToSink walks the next value of r, emitting a faithful sequence of
// events to s. All three reader backends route ExpectAnyValue here.
func readerToSink[S any](r Reader[S], s Sink) error {
	switch k := r.Check(); k {
	case KindNull:
		if err := r.ExpectNull(); err != nil {
			return err
		}
		s.AddNull()
	case KindBool:
		v, err := r.ExpectBool()
		if err != nil {
			return err
		}
		s.AddBool(v)
	case KindInt, KindDouble:
		v, err := r.ExpectNum()
		if err != nil {
			return err
		}
		s.AddNumber(v)
	case KindString:
		v, err := r.ExpectString()
		if err != nil {
			return err
		}
		s.AddString(v)
	case KindArray:
		if err := r.ExpectArray(); err != nil {
			return err
		}
		s.StartArray()
		for r.HasNext() {
			if err := readerToSink(r, s); err != nil {
				return err
			}
		}
		s.EndArray()
	case KindObject:
		if err := r.ExpectObject(); err != nil {
			return err
		}
		s.StartObject()
		for {
			key, ok := r.NextKey()
			if !ok {
				break
			}
			s.AddKey(key)
			if err := readerToSink(r, s); err != nil {
				return err
			}
		}
		s.EndObject()
	default:
		return r.Fail("expected a value")
	}
	return nil
}
