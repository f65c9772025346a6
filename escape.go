package regolith

import "fmt"

// MaxChar is the highest character value accepted by character nodes,
// ranges and the escape classifier.
const MaxChar rune = 0xFFFF

// EscapeKind tells how a character must be written into pattern text.
type EscapeKind uint8

const (
	// The character is written as is.
	EscapeNone EscapeKind = iota

	// The character is written as a backslash followed by a fixed letter,
	// e.g. "\t" for a tab.
	EscapeLetter

	// The character is a metacharacter and is written prefixed by a
	// backslash, e.g. "\.".
	EscapeSelf

	// The character is written as "\xHH" with two uppercase hex digits.
	EscapeHex

	// The character is a surrogate code point and is written as "\uHHHH",
	// since it has no UTF-8 encoding.
	EscapeUnicode
)

// Escape is the result of ClassifyEscape.
type Escape struct {
	Kind EscapeKind
	// Letter is set for EscapeLetter.
	Letter byte
}

var escapeLetters = [...]byte{
	0x07: 'a',
	'\t': 't',
	'\n': 'n',
	0x0B: 'v',
	'\f': 'f',
	'\r': 'r',
	0x1B: 'e',
}

func escapeLetter(r rune) (byte, bool) {
	if r < 0 || int(r) >= len(escapeLetters) {
		return 0, false
	}
	l := escapeLetters[r]
	return l, l != 0
}

func isMetaOutsideClass(r rune) bool {
	switch r {
	case '\\', '*', '+', '?', '|', '{', '[', '(', ')', '^', '$', '.', '#', ' ':
		return true
	}
	return false
}

func isMetaInsideClass(r rune) bool {
	switch r {
	case '\\', ']', '[', '^', '-':
		return true
	}
	return false
}

func isSurrogate(r rune) bool {
	return r >= 0xD800 && r <= 0xDFFF
}

func isControl(r rune) bool {
	return r <= 0x1F || (r >= 0x7F && r <= 0x9F)
}

// ClassifyEscape reports how r has to be escaped, either outside of a
// character class or, when inClass is set, between its brackets.
//
// It panics if r is negative or above MaxChar.
func ClassifyEscape(r rune, inClass bool) Escape {
	if r < 0 || r > MaxChar {
		panic(fmt.Sprintf("regolith: ClassifyEscape: character %#x out of range", r))
	}
	if l, ok := escapeLetter(r); ok {
		return Escape{Kind: EscapeLetter, Letter: l}
	}
	if isControl(r) {
		return Escape{Kind: EscapeHex}
	}
	if isSurrogate(r) {
		return Escape{Kind: EscapeUnicode}
	}
	if inClass {
		if isMetaInsideClass(r) {
			return Escape{Kind: EscapeSelf}
		}
	} else if isMetaOutsideClass(r) {
		return Escape{Kind: EscapeSelf}
	}
	return Escape{Kind: EscapeNone}
}

const hexDigits = "0123456789ABCDEF"

// appendEscaped appends the escaped form of r. Characters above MaxChar
// never carry special meaning and are appended unchanged.
func appendEscaped(buf []byte, r rune, inClass bool) []byte {
	if r > MaxChar {
		return append(buf, string(r)...)
	}
	e := ClassifyEscape(r, inClass)
	switch e.Kind {
	case EscapeLetter:
		return append(buf, '\\', e.Letter)
	case EscapeSelf:
		buf = append(buf, '\\')
	case EscapeHex:
		return append(buf, '\\', 'x', hexDigits[r>>4&0xF], hexDigits[r&0xF])
	case EscapeUnicode:
		return append(buf, '\\', 'u', hexDigits[r>>12&0xF], hexDigits[r>>8&0xF], hexDigits[r>>4&0xF], hexDigits[r&0xF])
	}
	return append(buf, string(r)...)
}

func needsEscape(r rune, inClass bool) bool {
	return r <= MaxChar && ClassifyEscape(r, inClass).Kind != EscapeNone
}

func isValidChar(r rune) bool {
	return r >= 0 && r <= MaxChar
}

func isASCIIWordChar(c rune) bool {
	return (uint32(c)-'0' <= 9) || (uint32(c|('a'-'A'))-'a' <= 'z'-'a') || c == '_'
}

func isDigit(c rune) bool {
	return uint32(c)-'0' <= 9
}

// isValidGroupName reports whether name is non-empty, made of ASCII
// letters, digits and underscores, and does not start with a digit.
func isValidGroupName(name string) bool {
	if name == "" || isDigit(rune(name[0])) {
		return false
	}
	for _, c := range name {
		if !isASCIIWordChar(c) {
			return false
		}
	}
	return true
}
