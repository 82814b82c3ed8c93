package jsontool

import (
	"strings"

	"github.com/bearlytools/jsontool/internal/conversions"
)

// StringSlice is a zero-copy view of a contiguous region of a string
// source. It never copies the source; its lifetime is tied to it.
type StringSlice struct {
	src        string
	start, end int
}

// NewStringSlice returns a view of src[start:end].
func NewStringSlice(src string, start, end int) StringSlice {
	return StringSlice{src: src, start: start, end: end}
}

// Len returns the length of the slice in bytes.
func (s StringSlice) Len() int {
	return s.end - s.start
}

// String materializes the slice. For a string source this is a no-copy
// substring.
func (s StringSlice) String() string {
	return s.src[s.start:s.end]
}

// Sub returns the sub-slice covering [i, j) of this slice.
func (s StringSlice) Sub(i, j int) StringSlice {
	return StringSlice{src: s.src, start: s.start + i, end: s.start + j}
}

// Index returns the offset of the first occurrence of sub within the
// slice, or -1.
func (s StringSlice) Index(sub string) int {
	return strings.Index(s.String(), sub)
}

// Contains reports whether sub occurs within the slice.
func (s StringSlice) Contains(sub string) bool {
	return s.Index(sub) >= 0
}

// BytesSlice is a zero-copy view of a contiguous region of a []byte
// source. It never copies the source; its lifetime is tied to it.
type BytesSlice struct {
	src        []byte
	start, end int
}

// NewBytesSlice returns a view of src[start:end].
func NewBytesSlice(src []byte, start, end int) BytesSlice {
	return BytesSlice{src: src, start: start, end: end}
}

// Len returns the length of the slice in bytes.
func (s BytesSlice) Len() int {
	return s.end - s.start
}

// Bytes returns the underlying subslice without copying. Do not modify it
// while the slice or any string derived from it is in use.
func (s BytesSlice) Bytes() []byte {
	return s.src[s.start:s.end]
}

// String materializes the slice as a string. The result shares storage
// with the source; do not modify the source afterwards.
func (s BytesSlice) String() string {
	return conversions.ByteSlice2String(s.Bytes())
}

// Sub returns the sub-slice covering [i, j) of this slice.
func (s BytesSlice) Sub(i, j int) BytesSlice {
	return BytesSlice{src: s.src, start: s.start + i, end: s.start + j}
}

// Index returns the offset of the first occurrence of sub within the
// slice, or -1.
func (s BytesSlice) Index(sub string) int {
	return strings.Index(s.String(), sub)
}

// Contains reports whether sub occurs within the slice.
func (s BytesSlice) Contains(sub string) bool {
	return s.Index(sub) >= 0
}
