package jsontool

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/bearlytools/jsontool/internal/jsonchar"
)

// Shared lexing helpers, generic over the two lexed source types. They are
// pure (src, pos) -> pos functions; the readers own the cursor.

// skipSpace returns the position of the next non-whitespace character at or
// after pos.
func skipSpace[T Seq](src T, pos int) int {
	for pos < len(src) && jsonchar.IsSpace(src[pos]) {
		pos++
	}
	return pos
}

// scanNumberEnd scans a number lexeme starting at pos (at the sign or first
// digit) and returns the position just past it, plus whether the lexeme is
// an integer (no '.' and no exponent). It assumes the first character has
// already been classified as a number start.
func scanNumberEnd[T Seq](src T, pos int) (end int, isInt bool) {
	if pos < len(src) && (src[pos] == '-' || src[pos] == '+') {
		pos++
	}
	for pos < len(src) && jsonchar.IsDigit(src[pos]) {
		pos++
	}
	if pos < len(src) && (src[pos] == '.' || src[pos] == 'e' || src[pos] == 'E') {
		for pos < len(src) && jsonchar.IsNumberPart(src[pos]) {
			pos++
		}
		return pos, false
	}
	return pos, true
}

// scanLiteralEnd consumes ASCII letters, which is how the literal words
// true, false and null are lexed.
func scanLiteralEnd[T Seq](src T, pos int) int {
	for pos < len(src) && jsonchar.IsLetter(src[pos]) {
		pos++
	}
	return pos
}

// skipStringFrom skips a string token. pos must be at the opening quote;
// the returned position is just past the closing quote.
func skipStringFrom[T Seq](src T, pos int) int {
	pos++
	for pos < len(src) {
		switch src[pos] {
		case '"':
			return pos + 1
		case '\\':
			pos += 2
		default:
			pos++
		}
	}
	return pos
}

// skipUntil scans forward until the unnested occurrence of end, recursing
// transparently into nested strings, arrays and objects. The returned
// position is just past end.
func skipUntil[T Seq](src T, pos int, end byte) int {
	for pos < len(src) {
		c := src[pos]
		switch c {
		case end:
			return pos + 1
		case '"':
			pos = skipStringFrom(src, pos)
		case '[':
			pos = skipUntil(src, pos+1, ']')
		case '{':
			pos = skipUntil(src, pos+1, '}')
		default:
			pos++
		}
	}
	return pos
}

// skipValueFrom skips one whole value starting at pos (whitespace already
// skipped). It dispatches on the first character.
func skipValueFrom[T Seq](src T, pos int) int {
	if pos >= len(src) {
		return pos
	}
	switch c := src[pos]; {
	case c == '"':
		return skipStringFrom(src, pos)
	case c == '[':
		return skipUntil(src, pos+1, ']')
	case c == '{':
		return skipUntil(src, pos+1, '}')
	case jsonchar.IsLetter(c):
		return scanLiteralEnd(src, pos)
	case jsonchar.IsNumberStart(c):
		end, _ := scanNumberEnd(src, pos)
		return end
	}
	return pos
}

// decodeEscape decodes one escape sequence into buf. pos is the position of
// the character following the backslash. On failure errMsg is non-empty and
// npos is the offending position.
func decodeEscape[T Seq](buf []byte, src T, pos int) (nbuf []byte, npos int, errMsg string) {
	if pos >= len(src) {
		return buf, pos, "unterminated string escape"
	}
	switch c := src[pos]; c {
	case '"', '\\', '/':
		return append(buf, c), pos + 1, ""
	case 'b':
		return append(buf, '\b'), pos + 1, ""
	case 'f':
		return append(buf, '\f'), pos + 1, ""
	case 'n':
		return append(buf, '\n'), pos + 1, ""
	case 'r':
		return append(buf, '\r'), pos + 1, ""
	case 't':
		return append(buf, '\t'), pos + 1, ""
	case 'u':
		v, ok := hex4(src, pos+1)
		if !ok {
			return buf, pos + 1, "invalid unicode escape"
		}
		pos += 5
		r := rune(v)
		if utf16.IsSurrogate(r) {
			// A high surrogate pairs with an immediately following
			// \uXXXX low surrogate; anything unpaired becomes U+FFFD.
			if pos+1 < len(src) && src[pos] == '\\' && src[pos+1] == 'u' {
				if v2, ok := hex4(src, pos+2); ok {
					if paired := utf16.DecodeRune(r, rune(v2)); paired != utf8.RuneError {
						return utf8.AppendRune(buf, paired), pos + 6, ""
					}
				}
			}
			return utf8.AppendRune(buf, utf8.RuneError), pos, ""
		}
		return utf8.AppendRune(buf, r), pos, ""
	}
	return buf, pos, "unrecognized string escape"
}

// hex4 reads four case-insensitive hex digits at pos.
func hex4[T Seq](src T, pos int) (v uint16, ok bool) {
	if pos+4 > len(src) {
		return 0, false
	}
	for i := 0; i < 4; i++ {
		d, ok := jsonchar.HexDigit(src[pos+i])
		if !ok {
			return 0, false
		}
		v = v<<4 | uint16(d)
	}
	return v, true
}
