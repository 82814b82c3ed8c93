package jsontool

import (
	"testing"
)

func TestStructValidatorQueries(t *testing.T) {
	v := newStructValidator(false)
	if !v.allowsValue() || v.allowsKey() || v.isArray() || v.isObject() {
		t.Fatalf("TestStructValidatorQueries: initial state queries are wrong")
	}
	if err := v.startArray("test"); err != nil {
		t.Fatalf("TestStructValidatorQueries: startArray: %v", err)
	}
	if !v.isArray() || v.isObject() || !v.allowsValue() || v.allowsKey() {
		t.Fatalf("TestStructValidatorQueries: array body queries are wrong")
	}
	if v.depth() != 1 {
		t.Fatalf("TestStructValidatorQueries: depth = %d, want 1", v.depth())
	}
	if err := v.startObject("test"); err != nil {
		t.Fatalf("TestStructValidatorQueries: startObject: %v", err)
	}
	if !v.isObject() || v.isArray() || v.allowsValue() || !v.allowsKey() {
		t.Fatalf("TestStructValidatorQueries: object key queries are wrong")
	}
	if err := v.key("test"); err != nil {
		t.Fatalf("TestStructValidatorQueries: key: %v", err)
	}
	if !v.allowsValue() || v.allowsKey() || !v.isObject() {
		t.Fatalf("TestStructValidatorQueries: object value queries are wrong")
	}
	if err := v.value("test"); err != nil {
		t.Fatalf("TestStructValidatorQueries: value: %v", err)
	}
	if v.allowsValue() || !v.allowsKey() {
		t.Fatalf("TestStructValidatorQueries: post-value state should expect a key")
	}
	if err := v.endObject("test"); err != nil {
		t.Fatalf("TestStructValidatorQueries: endObject: %v", err)
	}
	if !v.isArray() || v.depth() != 1 {
		t.Fatalf("TestStructValidatorQueries: pop should restore array body")
	}
	if err := v.endArray("test"); err != nil {
		t.Fatalf("TestStructValidatorQueries: endArray: %v", err)
	}
	if v.depth() != 0 {
		t.Fatalf("TestStructValidatorQueries: depth = %d, want 0", v.depth())
	}
	// Single-value mode is terminal after the top value.
	if v.allowsValue() {
		t.Fatalf("TestStructValidatorQueries: single-value validator should be terminal")
	}
}

func TestStructValidatorReusable(t *testing.T) {
	v := newStructValidator(true)
	for i := 0; i < 3; i++ {
		if err := v.value("test"); err != nil {
			t.Fatalf("TestStructValidatorReusable: value %d: %v", i, err)
		}
	}
}

func TestStructValidatorRejections(t *testing.T) {
	tests := []struct {
		name string
		run  func(v *structValidator) *StateError
	}{
		{
			name: "Error: second top-level value in single mode",
			run: func(v *structValidator) *StateError {
				if err := v.value("a"); err != nil {
					return err
				}
				return v.value("b")
			},
		},
		{
			name: "Error: key at top level",
			run: func(v *structValidator) *StateError {
				return v.key("k")
			},
		},
		{
			name: "Error: key inside array",
			run: func(v *structValidator) *StateError {
				if err := v.startArray("a"); err != nil {
					return err
				}
				return v.key("k")
			},
		},
		{
			name: "Error: value at object key position",
			run: func(v *structValidator) *StateError {
				if err := v.startObject("o"); err != nil {
					return err
				}
				return v.value("v")
			},
		},
		{
			name: "Error: endArray at top level",
			run: func(v *structValidator) *StateError {
				return v.endArray("e")
			},
		},
		{
			name: "Error: endArray inside object",
			run: func(v *structValidator) *StateError {
				if err := v.startObject("o"); err != nil {
					return err
				}
				return v.endArray("e")
			},
		},
		{
			name: "Error: endObject inside array",
			run: func(v *structValidator) *StateError {
				if err := v.startArray("a"); err != nil {
					return err
				}
				return v.endObject("e")
			},
		},
		{
			name: "Error: endObject with a dangling key",
			run: func(v *structValidator) *StateError {
				if err := v.startObject("o"); err != nil {
					return err
				}
				if err := v.key("k"); err != nil {
					return err
				}
				return v.endObject("e")
			},
		},
		{
			name: "Error: two keys in a row",
			run: func(v *structValidator) *StateError {
				if err := v.startObject("o"); err != nil {
					return err
				}
				if err := v.key("k"); err != nil {
					return err
				}
				return v.key("k2")
			},
		},
	}

	for _, test := range tests {
		if err := test.run(newStructValidator(false)); err == nil {
			t.Errorf("TestStructValidatorRejections(%s): got err == nil, want err != nil", test.name)
		}
	}
}

// The stack depth tracks the nesting depth of entered composites.
func TestStructValidatorDepth(t *testing.T) {
	v := newStructValidator(false)
	for i := 0; i < 5; i++ {
		if v.depth() != i {
			t.Fatalf("TestStructValidatorDepth: depth = %d, want %d", v.depth(), i)
		}
		if err := v.startArray("a"); err != nil {
			t.Fatalf("TestStructValidatorDepth: startArray %d: %v", i, err)
		}
	}
	for i := 5; i > 0; i-- {
		if v.depth() != i {
			t.Fatalf("TestStructValidatorDepth: depth = %d, want %d", v.depth(), i)
		}
		if err := v.endArray("e"); err != nil {
			t.Fatalf("TestStructValidatorDepth: endArray %d: %v", i, err)
		}
	}
}
