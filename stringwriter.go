package jsontool

import (
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/bearlytools/jsontool/internal/conversions"
)

// WriterOption configures a StringWriter.
type WriterOption func(*StringWriter)

// WithIndent switches the writer to pretty mode: each composite child is
// preceded by a newline and depth copies of indent, and keys are followed
// by ": ".
func WithIndent(indent string) WriterOption {
	return func(w *StringWriter) {
		w.indent = indent
	}
}

// WithASCIIOnly lowers the encode limit to 0x7F, so every non-ASCII code
// point is \uXXXX-escaped.
func WithASCIIOnly() WriterOption {
	return func(w *StringWriter) {
		w.limit = 0x7F
	}
}

// StringWriter is a Sink that writes JSON text to an io.StringWriter,
// minimal by default and pretty-printed when constructed WithIndent.
//
// In compact mode a single separator state is kept: empty at an opened
// composite, "," after any value, ":" after a key; the separator is
// written before each value. Pretty mode additionally writes a newline
// and indentation before each composite child, tracked by a nullable
// separator so the value right after a key stays on the key's line.
type StringWriter struct {
	w      io.StringWriter
	indent string
	limit  rune

	sep    string
	sepSet bool
	depth  int
	buf    []byte
	err    error
}

// NewStringWriter returns a compact writer targeting w, or a pretty one
// if WithIndent is given. Numbers are serialized with the platform's
// default float-to-string conversion.
func NewStringWriter(w io.StringWriter, opts ...WriterOption) *StringWriter {
	sw := &StringWriter{w: w, limit: maxEncodable, sepSet: true}
	for _, o := range opts {
		o(sw)
	}
	if sw.indent != "" {
		// Pretty mode starts with the nullable separator absent so the
		// top-level value gets no leading newline.
		sw.sepSet = false
	}
	return sw
}

// Err returns the first error the underlying target reported, if any.
func (w *StringWriter) Err() error {
	return w.err
}

func (w *StringWriter) write(s string) {
	if w.err != nil {
		return
	}
	if _, err := w.w.WriteString(s); err != nil {
		w.err = errors.Wrap(err, "jsontool: string writer")
	}
}

// pre writes whatever separates the previous token from a value starting
// here.
func (w *StringWriter) pre() {
	if w.indent == "" {
		if w.sep != "" {
			w.write(w.sep)
		}
		return
	}
	if !w.sepSet {
		return
	}
	w.write(w.sep)
	w.newlineIndent(w.depth)
}

func (w *StringWriter) newlineIndent(depth int) {
	w.write("\n")
	if w.indent != "" && depth > 0 {
		w.write(strings.Repeat(w.indent, depth))
	}
}

// post records that a value has been completed.
func (w *StringWriter) post() {
	w.sep = ","
	w.sepSet = true
}

func (w *StringWriter) quoted(s string) {
	w.buf = appendQuoted(w.buf[:0], s, w.limit)
	w.write(conversions.ByteSlice2String(w.buf))
}

func (w *StringWriter) AddNull() {
	w.pre()
	w.write("null")
	w.post()
}

func (w *StringWriter) AddBool(b bool) {
	w.pre()
	if b {
		w.write("true")
	} else {
		w.write("false")
	}
	w.post()
}

func (w *StringWriter) AddNumber(n float64) {
	w.pre()
	w.buf = appendFloat(w.buf[:0], n)
	w.write(conversions.ByteSlice2String(w.buf))
	w.post()
}

func (w *StringWriter) AddString(s string) {
	w.pre()
	w.quoted(s)
	w.post()
}

// AddSourceValue splices raw, a literal JSON value, into the output
// wherever a value is expected, bypassing re-encoding.
func (w *StringWriter) AddSourceValue(raw string) {
	w.pre()
	w.write(raw)
	w.post()
}

func (w *StringWriter) StartArray() {
	w.pre()
	w.write("[")
	w.depth++
	w.sep = ""
	w.sepSet = true
}

func (w *StringWriter) EndArray() {
	w.depth--
	if w.indent != "" && w.sep == "," {
		w.newlineIndent(w.depth)
	}
	w.write("]")
	w.post()
}

func (w *StringWriter) StartObject() {
	w.pre()
	w.write("{")
	w.depth++
	w.sep = ""
	w.sepSet = true
}

func (w *StringWriter) AddKey(k string) {
	w.pre()
	w.quoted(k)
	if w.indent != "" {
		w.write(": ")
		w.sepSet = false
		return
	}
	w.sep = ":"
}

func (w *StringWriter) EndObject() {
	w.depth--
	if w.indent != "" && w.sep == "," {
		w.newlineIndent(w.depth)
	}
	w.write("}")
	w.post()
}
