package jsontool

import (
	"strings"
	"testing"
)

// drive replays a flat event script against a sink. Strings prefixed with
// "k:" are keys; the rest map directly onto events.
func drive(s Sink, events ...any) {
	for _, e := range events {
		switch v := e.(type) {
		case nil:
			s.AddNull()
		case bool:
			s.AddBool(v)
		case int:
			s.AddNumber(float64(v))
		case float64:
			s.AddNumber(v)
		case string:
			switch {
			case v == "[":
				s.StartArray()
			case v == "]":
				s.EndArray()
			case v == "{":
				s.StartObject()
			case v == "}":
				s.EndObject()
			case strings.HasPrefix(v, "k:"):
				s.AddKey(v[2:])
			default:
				s.AddString(v)
			}
		}
	}
}

func TestStringWriterCompact(t *testing.T) {
	tests := []struct {
		name   string
		events []any
		want   string
	}{
		{name: "Success: null", events: []any{nil}, want: `null`},
		{name: "Success: bools", events: []any{"[", true, false, "]"}, want: `[true,false]`},
		{name: "Success: numbers", events: []any{"[", 1, 2.5, -3, "]"}, want: `[1,2.5,-3]`},
		{name: "Success: empty composites", events: []any{"[", "[", "]", "{", "}", "]"}, want: `[[],{}]`},
		{name: "Success: object", events: []any{"{", "k:a", 1, "k:b", "x", "}"}, want: `{"a":1,"b":"x"}`},
		{name: "Success: nested", events: []any{"{", "k:a", "[", 1, "{", "k:b", nil, "}", "]", "}"}, want: `{"a":[1,{"b":null}]}`},
		{name: "Success: string escaping", events: []any{"a\"b\\c\n\x01"}, want: `"a\"b\\c\n\u0001"`},
		{name: "Success: non-ascii passes through", events: []any{"héllo"}, want: `"héllo"`},
	}

	for _, test := range tests {
		var b strings.Builder
		w := NewStringWriter(&b)
		drive(w, test.events...)
		if err := w.Err(); err != nil {
			t.Errorf("TestStringWriterCompact(%s): got err == %v, want err == nil", test.name, err)
			continue
		}
		if got := b.String(); got != test.want {
			t.Errorf("TestStringWriterCompact(%s): got %s, want %s", test.name, got, test.want)
		}
	}
}

func TestStringWriterASCIIOnly(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "Success: two-byte char", in: "héllo", want: `"h\u00e9llo"`},
		{name: "Success: astral char uses a surrogate pair", in: "\U0001F600", want: `"\ud83d\ude00"`},
		{name: "Success: ascii unchanged", in: "plain", want: `"plain"`},
	}

	for _, test := range tests {
		var b strings.Builder
		w := NewStringWriter(&b, WithASCIIOnly())
		w.AddString(test.in)
		if got := b.String(); got != test.want {
			t.Errorf("TestStringWriterASCIIOnly(%s): got %s, want %s", test.name, got, test.want)
		}
	}
}

func TestStringWriterPretty(t *testing.T) {
	tests := []struct {
		name   string
		events []any
		want   string
	}{
		{name: "Success: scalar", events: []any{42}, want: "42"},
		{name: "Success: empty array", events: []any{"[", "]"}, want: "[]"},
		{
			name:   "Success: array",
			events: []any{"[", 1, 2, "]"},
			want:   "[\n  1,\n  2\n]",
		},
		{
			name:   "Success: object",
			events: []any{"{", "k:a", 1, "k:b", "[", true, "]", "}"},
			want:   "{\n  \"a\": 1,\n  \"b\": [\n    true\n  ]\n}",
		},
	}

	for _, test := range tests {
		var b strings.Builder
		w := NewStringWriter(&b, WithIndent("  "))
		drive(w, test.events...)
		if got := b.String(); got != test.want {
			t.Errorf("TestStringWriterPretty(%s): got %q, want %q", test.name, got, test.want)
		}
	}
}

func TestStringWriterAddSourceValue(t *testing.T) {
	var b strings.Builder
	w := NewStringWriter(&b)
	w.StartObject()
	w.AddKey("x")
	w.AddSourceValue("123456789123456789123456789123456789")
	w.AddKey("y")
	w.AddNumber(1)
	w.EndObject()
	want := `{"x":123456789123456789123456789123456789,"y":1}`
	if got := b.String(); got != want {
		t.Errorf("TestStringWriterAddSourceValue: got %s, want %s", got, want)
	}
}

func TestNullSink(t *testing.T) {
	// Every event is a no-op; this just must not blow up.
	drive(Discard, "{", "k:a", "[", 1, "x", nil, true, "]", "}")
}
