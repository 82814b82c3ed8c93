package jsontool

import (
	"testing"

	"github.com/kylelemons/godebug/pretty"
)

func TestObjectWriterBuild(t *testing.T) {
	tests := []struct {
		name   string
		events []any
		want   any
	}{
		{name: "Success: null", events: []any{nil}, want: nil},
		{name: "Success: number", events: []any{2.5}, want: 2.5},
		{name: "Success: empty array", events: []any{"[", "]"}, want: []any{}},
		{
			name:   "Success: object with nested array",
			events: []any{"{", "k:x", "[", 1, 2.5, true, "]", "k:y", 1, "}"},
			want: map[string]any{
				"x": []any{1.0, 2.5, true},
				"y": 1.0,
			},
		},
		{
			name:   "Success: deep nesting",
			events: []any{"[", "{", "k:a", "{", "k:b", "[", "]", "}", "}", nil, "]"},
			want: []any{
				map[string]any{"a": map[string]any{"b": []any{}}},
				nil,
			},
		},
	}

	for _, test := range tests {
		var got any
		w := NewObjectWriter(func(v any) { got = v })
		drive(w, test.events...)
		if diff := pretty.Compare(test.want, got); diff != "" {
			t.Errorf("TestObjectWriterBuild(%s): -want/+got:\n%s", test.name, diff)
		}
	}
}

func TestObjectWriterDuplicateKeys(t *testing.T) {
	var got any
	w := NewObjectWriter(func(v any) { got = v })
	drive(w, "{", "k:a", 1, "k:a", 2, "}")
	want := map[string]any{"a": 2.0}
	if diff := pretty.Compare(want, got); diff != "" {
		t.Errorf("TestObjectWriterDuplicateKeys: -want/+got:\n%s", diff)
	}
}

// The callback fires once per completed top-level value.
func TestObjectWriterReuse(t *testing.T) {
	var got []any
	w := NewObjectWriter(func(v any) { got = append(got, v) })
	drive(w, 1, "[", 2, "]", "x")
	want := []any{1.0, []any{2.0}, "x"}
	if diff := pretty.Compare(want, got); diff != "" {
		t.Errorf("TestObjectWriterReuse: -want/+got:\n%s", diff)
	}
}
