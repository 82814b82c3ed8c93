package jsontool

// ObjectWriter is a Sink that builds an in-memory tree of []any lists and
// map[string]any objects. Each completed top-level value is handed to the
// callback, so the writer is naturally reusable.
//
// A stack holds a frame per open composite: the key the composite will be
// stored under in its parent, plus the parent's in-progress collection.
// The current top-of-stack list and map are cached in two dedicated
// slots, so adding a value is one nil-check plus one append.
type ObjectWriter struct {
	done func(v any)

	stack []owFrame
	list  []any
	obj   map[string]any
	key   string
}

// owFrame is the saved parent context of an open composite.
type owFrame struct {
	key  string
	list []any
	obj  map[string]any
}

// NewObjectWriter returns a writer that calls done with each completed
// top-level value. Duplicate keys inside one object overwrite earlier
// values, per map semantics.
func NewObjectWriter(done func(v any)) *ObjectWriter {
	return &ObjectWriter{done: done}
}

// value adds a completed value at the current position.
func (w *ObjectWriter) value(v any) {
	switch {
	case w.list != nil:
		w.list = append(w.list, v)
	case w.obj != nil:
		w.obj[w.key] = v
	default:
		w.done(v)
	}
}

func (w *ObjectWriter) push() {
	w.stack = append(w.stack, owFrame{key: w.key, list: w.list, obj: w.obj})
	w.list = nil
	w.obj = nil
	w.key = ""
}

// pop restores the parent context and adds the completed composite to it.
func (w *ObjectWriter) pop(completed any) {
	f := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
	w.list = f.list
	w.obj = f.obj
	w.key = f.key
	w.value(completed)
}

func (w *ObjectWriter) AddNull()            { w.value(nil) }
func (w *ObjectWriter) AddBool(b bool)      { w.value(b) }
func (w *ObjectWriter) AddNumber(n float64) { w.value(n) }
func (w *ObjectWriter) AddString(s string)  { w.value(s) }

func (w *ObjectWriter) StartArray() {
	w.push()
	w.list = []any{}
}

func (w *ObjectWriter) EndArray() {
	completed := w.list
	w.pop(completed)
}

func (w *ObjectWriter) StartObject() {
	w.push()
	w.obj = map[string]any{}
}

func (w *ObjectWriter) AddKey(k string) {
	w.key = k
}

func (w *ObjectWriter) EndObject() {
	completed := w.obj
	w.pop(completed)
}
