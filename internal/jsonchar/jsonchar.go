// Package jsonchar holds the character classification tables shared by the
// JSON readers and writers. JSON is an ASCII-framed format: every structural
// character, literal, and number character is below 0x80, so byte-level
// tables are enough even for UTF-8 sources.
package jsonchar

// Whitespace per ECMA-404: tab, line feed, carriage return, space.
var space = [256]bool{
	'\t': true,
	'\n': true,
	'\r': true,
	' ':  true,
}

// IsSpace reports whether c is JSON whitespace.
func IsSpace(c byte) bool {
	return space[c]
}

// IsDigit reports whether c is an ASCII decimal digit.
func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsLetter reports whether c is an ASCII letter. The literal words true,
// false and null are consumed by scanning letters.
func IsLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// IsNumberStart reports whether c can begin a number lexeme. A leading '+'
// is tolerated as a documented extension over strict JSON.
func IsNumberStart(c byte) bool {
	return IsDigit(c) || c == '-' || c == '+'
}

var numberPart = [256]bool{
	'0': true, '1': true, '2': true, '3': true, '4': true,
	'5': true, '6': true, '7': true, '8': true, '9': true,
	'.': true, 'e': true, 'E': true, '+': true, '-': true,
}

// IsNumberPart reports whether c may appear inside a number lexeme after
// its first character.
func IsNumberPart(c byte) bool {
	return numberPart[c]
}

// hexValue maps hex digits to their value, 0xFF for everything else.
var hexValue = [256]byte{}

func init() {
	for i := range hexValue {
		hexValue[i] = 0xFF
	}
	for c := byte('0'); c <= '9'; c++ {
		hexValue[c] = c - '0'
	}
	for c := byte('a'); c <= 'f'; c++ {
		hexValue[c] = c - 'a' + 10
	}
	for c := byte('A'); c <= 'F'; c++ {
		hexValue[c] = c - 'A' + 10
	}
}

// HexDigit returns the value of the hex digit c. ok is false if c is not a
// hex digit. Both cases are accepted.
func HexDigit(c byte) (v byte, ok bool) {
	v = hexValue[c]
	return v, v != 0xFF
}
