package jsontool

import (
	"github.com/pkg/errors"
)

// Hooks receives one callback per value kind during a ProcessValue walk.
// Each hook gets the reader positioned at its value and must fully
// consume (or skip) it, except the composite Start hooks, which consume
// only the opening bracket and report whether the dispatcher should
// descend into the children.
//
// Embed BaseHooks or SinkHooks and override individual methods to
// transform or filter values.
type Hooks[S any] interface {
	// StartArray consumes the '[' and reports whether to descend. When
	// it returns false it must have consumed the whole array itself.
	StartArray(r Reader[S]) (descend bool, err error)
	EndArray(r Reader[S]) error
	// StartObject consumes the '{' and reports whether to descend. When
	// it returns false it must have consumed the whole object itself.
	StartObject(r Reader[S]) (descend bool, err error)
	EndObject(r Reader[S]) error
	// Key is called before each child value inside an object.
	Key(r Reader[S], key string) error
	String(r Reader[S]) error
	Num(r Reader[S]) error
	Bool(r Reader[S]) error
	Null(r Reader[S]) error
	// Unknown is called when classification failed: the reader is at end
	// of input or at an unrecognized character.
	Unknown(r Reader[S]) error
}

// ProcessValue classifies the next value of r and dispatches it to h,
// recursing through composites. Classification happens in a fixed order:
// array, object, string, num, bool, null, unknown.
func ProcessValue[S any](r Reader[S], h Hooks[S]) error {
	switch k := r.Check(); {
	case k == KindArray:
		descend, err := h.StartArray(r)
		if err != nil || !descend {
			return err
		}
		for r.HasNext() {
			if err := ProcessValue(r, h); err != nil {
				return err
			}
		}
		return h.EndArray(r)
	case k == KindObject:
		descend, err := h.StartObject(r)
		if err != nil || !descend {
			return err
		}
		for {
			key, ok := r.NextKey()
			if !ok {
				break
			}
			if err := h.Key(r, key); err != nil {
				return errors.Wrapf(err, "key %q", key)
			}
			if err := ProcessValue(r, h); err != nil {
				return errors.Wrapf(err, "key %q", key)
			}
		}
		return h.EndObject(r)
	case k == KindString:
		return h.String(r)
	case k.IsNum():
		return h.Num(r)
	case k == KindBool:
		return h.Bool(r)
	case k == KindNull:
		return h.Null(r)
	}
	return h.Unknown(r)
}

// BaseHooks consumes and discards every value. Embed it to override only
// the kinds a processor cares about.
type BaseHooks[S any] struct{}

func (BaseHooks[S]) StartArray(r Reader[S]) (bool, error) {
	return true, r.ExpectArray()
}

func (BaseHooks[S]) EndArray(r Reader[S]) error {
	return nil
}

func (BaseHooks[S]) StartObject(r Reader[S]) (bool, error) {
	return true, r.ExpectObject()
}

func (BaseHooks[S]) EndObject(r Reader[S]) error {
	return nil
}

func (BaseHooks[S]) Key(r Reader[S], key string) error {
	return nil
}

func (BaseHooks[S]) String(r Reader[S]) error {
	_, err := r.ExpectString()
	return err
}

func (BaseHooks[S]) Num(r Reader[S]) error {
	_, err := r.ExpectNum()
	return err
}

func (BaseHooks[S]) Bool(r Reader[S]) error {
	_, err := r.ExpectBool()
	return err
}

func (BaseHooks[S]) Null(r Reader[S]) error {
	return r.ExpectNull()
}

func (BaseHooks[S]) Unknown(r Reader[S]) error {
	return r.Fail("expected a value")
}

// SinkHooks forwards every value it walks to a paired Sink, bridging a
// pull reader to a push sink. Override single hooks to transform values
// on the way through.
type SinkHooks[S any] struct {
	Sink Sink
}

// NewSinkHooks returns hooks that forward to s.
func NewSinkHooks[S any](s Sink) SinkHooks[S] {
	return SinkHooks[S]{Sink: s}
}

func (h SinkHooks[S]) StartArray(r Reader[S]) (bool, error) {
	if err := r.ExpectArray(); err != nil {
		return false, err
	}
	h.Sink.StartArray()
	return true, nil
}

func (h SinkHooks[S]) EndArray(r Reader[S]) error {
	h.Sink.EndArray()
	return nil
}

func (h SinkHooks[S]) StartObject(r Reader[S]) (bool, error) {
	if err := r.ExpectObject(); err != nil {
		return false, err
	}
	h.Sink.StartObject()
	return true, nil
}

func (h SinkHooks[S]) EndObject(r Reader[S]) error {
	h.Sink.EndObject()
	return nil
}

func (h SinkHooks[S]) Key(r Reader[S], key string) error {
	h.Sink.AddKey(key)
	return nil
}

func (h SinkHooks[S]) String(r Reader[S]) error {
	s, err := r.ExpectString()
	if err != nil {
		return err
	}
	h.Sink.AddString(s)
	return nil
}

func (h SinkHooks[S]) Num(r Reader[S]) error {
	n, err := r.ExpectNum()
	if err != nil {
		return err
	}
	h.Sink.AddNumber(n)
	return nil
}

func (h SinkHooks[S]) Bool(r Reader[S]) error {
	b, err := r.ExpectBool()
	if err != nil {
		return err
	}
	h.Sink.AddBool(b)
	return nil
}

func (h SinkHooks[S]) Null(r Reader[S]) error {
	if err := r.ExpectNull(); err != nil {
		return err
	}
	h.Sink.AddNull()
	return nil
}

func (h SinkHooks[S]) Unknown(r Reader[S]) error {
	return r.Fail("expected a value")
}
