package jsontool

import (
	"testing"

	"github.com/kylelemons/godebug/pretty"
)

func TestByteReaderStrings(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		want    string
		wantErr bool
	}{
		{name: "Success: plain ascii", src: `"hello"`, want: "hello"},
		{name: "Success: two-byte sequence", src: `"héllo"`, want: "héllo"},
		{name: "Success: three-byte sequence", src: `"€"`, want: "€"},
		{name: "Success: four-byte sequence", src: "\"\U0001F600\"", want: "\U0001F600"},
		{name: "Success: escapes mixed with multibyte", src: `"é\né"`, want: "é\né"},
		{name: "Error: bare continuation byte", src: "\"\x80\"", wantErr: true},
		{name: "Error: truncated sequence", src: "\"\xC3\"", wantErr: true},
		{name: "Error: bad continuation", src: "\"\xC3\x28\"", wantErr: true},
		{name: "Error: overlong encoding", src: "\"\xC0\xAF\"", wantErr: true},
		{name: "Error: overlong three-byte", src: "\"\xE0\x80\xAF\"", wantErr: true},
		{name: "Error: out of range", src: "\"\xF4\x90\x80\x80\"", wantErr: true},
	}

	for _, test := range tests {
		r := NewByteReader([]byte(test.src))
		got, err := r.ExpectString()
		switch {
		case err == nil && test.wantErr:
			t.Errorf("TestByteReaderStrings(%s): got err == nil, want err != nil", test.name)
			continue
		case err != nil && !test.wantErr:
			t.Errorf("TestByteReaderStrings(%s): got err == %v, want err == nil", test.name, err)
			continue
		case err != nil:
			continue
		}
		if got != test.want {
			t.Errorf("TestByteReaderStrings(%s): got %q, want %q", test.name, got, test.want)
		}
	}
}

// recordSink captures the event stream for comparison across backends.
type recordSink struct {
	events []any
}

type keyEvent string

func (s *recordSink) AddNull()            { s.events = append(s.events, nil) }
func (s *recordSink) AddBool(b bool)      { s.events = append(s.events, b) }
func (s *recordSink) AddNumber(n float64) { s.events = append(s.events, n) }
func (s *recordSink) AddString(v string)  { s.events = append(s.events, v) }
func (s *recordSink) StartArray()         { s.events = append(s.events, "[") }
func (s *recordSink) EndArray()           { s.events = append(s.events, "]") }
func (s *recordSink) StartObject()        { s.events = append(s.events, "{") }
func (s *recordSink) AddKey(k string)     { s.events = append(s.events, keyEvent(k)) }
func (s *recordSink) EndObject()          { s.events = append(s.events, "}") }

// All three backends must produce the same observable event stream. The
// documents here keep object keys pre-sorted, since the object backend
// iterates maps in sorted key order.
func TestBackendInvariance(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "Success: scalars", src: `[null,true,false,1,2.5,"s"]`},
		{name: "Success: nesting", src: `{"a":{"b":[1,[2,{}]],"c":null},"d":[]}`},
		{name: "Success: escapes", src: `["é\n","plain"]`},
		{name: "Success: empty object", src: `{}`},
	}

	for _, test := range tests {
		text := &recordSink{}
		if err := NewTextReader(test.src).ExpectAnyValue(text); err != nil {
			t.Errorf("TestBackendInvariance(%s): text reader: %v", test.name, err)
			continue
		}
		bytes := &recordSink{}
		if err := NewByteReader([]byte(test.src)).ExpectAnyValue(bytes); err != nil {
			t.Errorf("TestBackendInvariance(%s): byte reader: %v", test.name, err)
			continue
		}
		var tree any
		ow := NewObjectWriter(func(v any) { tree = v })
		if err := NewTextReader(test.src).ExpectAnyValue(ow); err != nil {
			t.Errorf("TestBackendInvariance(%s): building tree: %v", test.name, err)
			continue
		}
		object := &recordSink{}
		if err := NewObjectReader(tree).ExpectAnyValue(object); err != nil {
			t.Errorf("TestBackendInvariance(%s): object reader: %v", test.name, err)
			continue
		}

		if diff := pretty.Compare(text.events, bytes.events); diff != "" {
			t.Errorf("TestBackendInvariance(%s): text vs byte -want/+got:\n%s", test.name, diff)
		}
		if diff := pretty.Compare(text.events, object.events); diff != "" {
			t.Errorf("TestBackendInvariance(%s): text vs object -want/+got:\n%s", test.name, diff)
		}
	}
}

func TestByteReaderSlices(t *testing.T) {
	src := []byte(` {"k": [1, 2]} `)
	r := NewByteReader(src)
	slice, err := r.ExpectAnyValueSource()
	if err != nil {
		t.Fatalf("TestByteReaderSlices: got err == %v, want err == nil", err)
	}
	if got := slice.String(); got != `{"k": [1, 2]}` {
		t.Errorf("TestByteReaderSlices: got %q, want the exact value bytes", got)
	}
	if slice.Len() != len(`{"k": [1, 2]}`) {
		t.Errorf("TestByteReaderSlices: Len = %d, want %d", slice.Len(), len(`{"k": [1, 2]}`))
	}
	if !slice.Contains(`[1, 2]`) {
		t.Errorf("TestByteReaderSlices: Contains([1, 2]) = false, want true")
	}
	if got := slice.Sub(0, 1).String(); got != "{" {
		t.Errorf("TestByteReaderSlices: Sub(0,1) = %q, want {", got)
	}
}

func TestByteReaderCandidates(t *testing.T) {
	r := NewByteReader([]byte(`{"speed":88,"unit":"mph"}`))
	if err := r.ExpectObject(); err != nil {
		t.Fatalf("TestByteReaderCandidates: ExpectObject: %v", err)
	}
	idx, ok := r.TryKeyIndex([]string{"speed", "unit"})
	if !ok || idx != 0 {
		t.Fatalf("TestByteReaderCandidates: TryKeyIndex = (%d, %v), want (0, true)", idx, ok)
	}
	if n, err := r.ExpectInt(); err != nil || n != 88 {
		t.Fatalf("TestByteReaderCandidates: ExpectInt = (%d, %v), want (88, nil)", n, err)
	}
	key, ok := r.TryKey([]string{"speed", "unit"})
	if !ok || key != "unit" {
		t.Fatalf("TestByteReaderCandidates: TryKey = (%q, %v), want (\"unit\", true)", key, ok)
	}
	v, err := r.ExpectCandidate([]string{"kph", "mph"})
	if err != nil || v != "mph" {
		t.Fatalf("TestByteReaderCandidates: ExpectCandidate = (%q, %v), want (\"mph\", nil)", v, err)
	}
	if key, ok := r.NextKey(); ok {
		t.Fatalf("TestByteReaderCandidates: NextKey = %q, want end of object", key)
	}
}
