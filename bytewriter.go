package jsontool

import (
	"io"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Encoding selects the byte encoding a ByteWriter produces.
type Encoding uint8

const (
	// UTF8 passes every code point through literally.
	UTF8 Encoding = iota
	// Latin1 emits ISO 8859-1 bytes; code points above 0xFF are escaped.
	Latin1
	// ASCII emits 7-bit bytes; code points above 0x7F are escaped.
	ASCII
)

// encodeLimit returns the highest code point the encoding can emit
// literally. It is never below 0x7F.
func (e Encoding) encodeLimit() rune {
	switch e {
	case Latin1:
		return 0xFF
	case ASCII:
		return 0x7F
	}
	return maxEncodable
}

// ByteWriter is a Sink that writes encoded JSON bytes to an io.Writer.
// Output is compact. Code points above the encoding's limit are
// \uXXXX-escaped, so the encoder itself can never fail on the document
// content.
//
// For Latin-1 the UTF-8 text produced internally is streamed through a
// charmap encoder; UTF-8 and ASCII targets are written directly. If w is
// an io.Closer it is closed exactly once, when the top-level value
// completes; the intermediate encoder is flushed without closing w.
type ByteWriter struct {
	out      io.Writer
	enc      io.Writer
	encoding Encoding
	limit    rune

	sep    byte
	depth  int
	closed bool
	buf    []byte
	err    error
}

// NewByteWriter returns a writer producing enc-encoded JSON on w.
// asciiOnly forces the encode limit down to 0x7F regardless of enc.
func NewByteWriter(w io.Writer, enc Encoding, asciiOnly bool) *ByteWriter {
	bw := &ByteWriter{out: w, encoding: enc, limit: enc.encodeLimit()}
	if asciiOnly {
		bw.limit = 0x7F
	}
	bw.enc = bw.newEncoder()
	return bw
}

func (w *ByteWriter) newEncoder() io.Writer {
	if w.encoding == Latin1 {
		return transform.NewWriter(w.out, charmap.ISO8859_1.NewEncoder())
	}
	return w.out
}

// Err returns the first write or encode error, if any.
func (w *ByteWriter) Err() error {
	return w.err
}

func (w *ByteWriter) flush() {
	if len(w.buf) == 0 {
		return
	}
	if w.err == nil {
		if _, err := w.enc.Write(w.buf); err != nil {
			w.err = errors.Wrap(err, "jsontool: byte writer")
		}
	}
	w.buf = w.buf[:0]
}

// flushEncoder drains any bytes pending inside the streaming encoder
// without closing the underlying sink.
func (w *ByteWriter) flushEncoder() {
	w.flush()
	tw, ok := w.enc.(*transform.Writer)
	if !ok {
		return
	}
	if err := tw.Close(); err != nil && w.err == nil {
		w.err = errors.Wrap(err, "jsontool: byte writer encoder")
	}
	w.enc = w.newEncoder()
}

func (w *ByteWriter) pre() {
	if w.sep != 0 {
		w.buf = append(w.buf, w.sep)
	}
}

// post completes a value: the separator becomes a comma and, at depth
// zero, the writer finishes and closes its target.
func (w *ByteWriter) post() {
	w.sep = ','
	w.flush()
	if w.depth == 0 {
		w.finish()
	}
}

// finish flushes the encoder and closes the underlying sink exactly
// once.
func (w *ByteWriter) finish() {
	if w.closed {
		return
	}
	w.closed = true
	w.flushEncoder()
	if c, ok := w.out.(io.Closer); ok {
		if err := c.Close(); err != nil && w.err == nil {
			w.err = errors.Wrap(err, "jsontool: closing byte writer target")
		}
	}
}

func (w *ByteWriter) AddNull() {
	w.pre()
	w.buf = append(w.buf, "null"...)
	w.post()
}

func (w *ByteWriter) AddBool(b bool) {
	w.pre()
	if b {
		w.buf = append(w.buf, "true"...)
	} else {
		w.buf = append(w.buf, "false"...)
	}
	w.post()
}

func (w *ByteWriter) AddNumber(n float64) {
	w.pre()
	w.buf = appendFloat(w.buf, n)
	w.post()
}

func (w *ByteWriter) AddString(s string) {
	w.pre()
	w.buf = appendQuoted(w.buf, s, w.limit)
	w.post()
}

// AddSourceValue splices raw bytes, already in the target encoding, into
// the output wherever a value is expected. The streaming encoder is
// flushed first so the raw bytes land after everything written so far,
// and a fresh encoder picks up afterwards.
func (w *ByteWriter) AddSourceValue(raw []byte) {
	w.pre()
	w.flushEncoder()
	if w.err == nil {
		if _, err := w.out.Write(raw); err != nil {
			w.err = errors.Wrap(err, "jsontool: byte writer")
		}
	}
	w.post()
}

func (w *ByteWriter) StartArray() {
	w.pre()
	w.buf = append(w.buf, '[')
	w.depth++
	w.sep = 0
	w.flush()
}

func (w *ByteWriter) EndArray() {
	w.buf = append(w.buf, ']')
	w.depth--
	w.post()
}

func (w *ByteWriter) StartObject() {
	w.pre()
	w.buf = append(w.buf, '{')
	w.depth++
	w.sep = 0
	w.flush()
}

func (w *ByteWriter) AddKey(k string) {
	w.pre()
	w.buf = appendQuoted(w.buf, k, w.limit)
	w.sep = ':'
	w.flush()
}

func (w *ByteWriter) EndObject() {
	w.buf = append(w.buf, '}')
	w.depth--
	w.post()
}
