// Package conversions is a set of unsafe conversions between strings and
// byte slices. These avoid the copy the safe conversions make, which matters
// on the reader hot paths where a returned string is just a view of the
// caller's source buffer.
package conversions

import (
	"unsafe"
)

// ByteSlice2String converts bs to a string without copying. The caller must
// not modify bs afterwards or suffer the consequences.
func ByteSlice2String(bs []byte) string {
	if len(bs) == 0 {
		return ""
	}
	return unsafe.String(&bs[0], len(bs))
}

// UnsafeGetBytes retrieves the underlying []byte held in string "s" without
// doing a copy. Do not modify the []byte.
func UnsafeGetBytes(s string) []byte {
	if s == "" {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
