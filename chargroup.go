package regolith

import "unicode/utf8"

type shorthand uint8

const (
	shorthandDigit shorthand = iota
	shorthandNotDigit
	shorthandWordChar
	shorthandNotWordChar
	shorthandWhiteSpace
	shorthandNotWhiteSpace
)

var shorthandLetters = [...]byte{'d', 'D', 'w', 'W', 's', 'S'}

func (s shorthand) letter() byte {
	return shorthandLetters[s]
}

type memberKind uint8

const (
	memberChar memberKind = iota
	memberChars
	memberRange
	memberCategory
	memberBlock
	memberShorthand
	memberGrouping
)

type charMember struct {
	kind        memberKind
	first, last rune
	text        string
	category    UnicodeCategory
	block       UnicodeBlock
	negated     bool
	shorthand   shorthand
	grouping    *CharGrouping
}

// CharGrouping is the content of a character class: an ordered sequence of
// characters, ranges, Unicode categories and blocks, and shorthand classes.
//
// A CharGrouping is immutable. Every method returns a new grouping that
// shares the receiver as its prefix. The nil *CharGrouping is a valid,
// empty grouping.
//
// Negation is not a property of the grouping; see NotSet.
type CharGrouping struct {
	prev *CharGrouping
	m    charMember
	err  error
	n    int
}

// NewCharGrouping returns an empty grouping.
func NewCharGrouping() *CharGrouping {
	return nil
}

func (g *CharGrouping) with(m charMember, err error) *CharGrouping {
	next := &CharGrouping{prev: g, m: m, n: 1}
	if g != nil {
		next.n += g.n
		next.err = g.err
	}
	if next.err == nil {
		next.err = err
	}
	return next
}

// Err returns the first error recorded while the grouping was built.
func (g *CharGrouping) Err() error {
	if g == nil {
		return nil
	}
	return g.err
}

// Len returns the number of members, counting a nested grouping as one.
func (g *CharGrouping) Len() int {
	if g == nil {
		return 0
	}
	return g.n
}

func checkChar(op string, r rune) error {
	if !isValidChar(r) {
		return newArgumentError(op, ErrCharOutOfRange, "%#x", r)
	}
	return nil
}

func (g *CharGrouping) Char(r rune) *CharGrouping {
	return g.with(charMember{kind: memberChar, first: r}, checkChar("CharGrouping.Char", r))
}

// Chars appends every character of s.
func (g *CharGrouping) Chars(s string) *CharGrouping {
	var err error
	if s == "" {
		err = newArgumentError("CharGrouping.Chars", ErrEmptyContent, "")
	} else if !utf8.ValidString(s) {
		err = newArgumentError("CharGrouping.Chars", ErrInvalidUTF8, "%q", s)
	} else {
		for _, r := range s {
			if err = checkChar("CharGrouping.Chars", r); err != nil {
				break
			}
		}
	}
	return g.with(charMember{kind: memberChars, text: s}, err)
}

// Range appends the characters from first to last inclusive.
func (g *CharGrouping) Range(first, last rune) *CharGrouping {
	err := firstError(checkChar("CharGrouping.Range", first), checkChar("CharGrouping.Range", last))
	if err == nil && last < first {
		err = newArgumentError("CharGrouping.Range", ErrInvertedRange, "%q-%q", first, last)
	}
	return g.with(charMember{kind: memberRange, first: first, last: last}, err)
}

func (g *CharGrouping) category(c UnicodeCategory, negated bool) *CharGrouping {
	var err error
	if !c.valid() {
		err = newArgumentError("CharGrouping.Category", ErrInvalidUnicode, "category %d", c)
	}
	return g.with(charMember{kind: memberCategory, category: c, negated: negated}, err)
}

func (g *CharGrouping) Category(c UnicodeCategory) *CharGrouping { return g.category(c, false) }

func (g *CharGrouping) NotCategory(c UnicodeCategory) *CharGrouping { return g.category(c, true) }

func (g *CharGrouping) block(b UnicodeBlock, negated bool) *CharGrouping {
	var err error
	if !b.valid() {
		err = newArgumentError("CharGrouping.Block", ErrInvalidUnicode, "block %d", b)
	}
	return g.with(charMember{kind: memberBlock, block: b, negated: negated}, err)
}

func (g *CharGrouping) Block(b UnicodeBlock) *CharGrouping { return g.block(b, false) }

func (g *CharGrouping) NotBlock(b UnicodeBlock) *CharGrouping { return g.block(b, true) }

func (g *CharGrouping) shorthand(s shorthand) *CharGrouping {
	return g.with(charMember{kind: memberShorthand, shorthand: s}, nil)
}

func (g *CharGrouping) Digit() *CharGrouping         { return g.shorthand(shorthandDigit) }
func (g *CharGrouping) NotDigit() *CharGrouping      { return g.shorthand(shorthandNotDigit) }
func (g *CharGrouping) WordChar() *CharGrouping      { return g.shorthand(shorthandWordChar) }
func (g *CharGrouping) NotWordChar() *CharGrouping   { return g.shorthand(shorthandNotWordChar) }
func (g *CharGrouping) WhiteSpace() *CharGrouping    { return g.shorthand(shorthandWhiteSpace) }
func (g *CharGrouping) NotWhiteSpace() *CharGrouping { return g.shorthand(shorthandNotWhiteSpace) }

// Append appends other as a nested sub-sequence. A nil other is ignored.
func (g *CharGrouping) Append(other *CharGrouping) *CharGrouping {
	if other == nil {
		return g
	}
	return g.with(charMember{kind: memberGrouping, grouping: other}, other.err)
}

// ArabicDigit appends the range 0-9.
func (g *CharGrouping) ArabicDigit() *CharGrouping { return g.Range('0', '9') }

func (g *CharGrouping) LowerLetter() *CharGrouping { return g.Range('a', 'z') }

func (g *CharGrouping) UpperLetter() *CharGrouping { return g.Range('A', 'Z') }

// Letter appends the ranges a-z and A-Z.
func (g *CharGrouping) Letter() *CharGrouping { return g.LowerLetter().UpperLetter() }

// Alphanumeric appends the ranges a-z, A-Z and 0-9.
func (g *CharGrouping) Alphanumeric() *CharGrouping { return g.Letter().ArabicDigit() }

// HexDigit appends the ranges 0-9, a-f and A-F.
func (g *CharGrouping) HexDigit() *CharGrouping {
	return g.ArabicDigit().Range('a', 'f').Range('A', 'F')
}

// members returns the flattened members in insertion order.
func (g *CharGrouping) members() []charMember {
	var heads stack[*CharGrouping]
	for c := g; c != nil; c = c.prev {
		heads.push(c)
	}
	res := make([]charMember, 0, len(heads))
	for len(heads) > 0 {
		c := heads.pop()
		if c.m.kind == memberGrouping {
			res = append(res, c.m.grouping.members()...)
			continue
		}
		res = append(res, c.m)
	}
	return res
}

// appendTo appends the bracket content, without brackets.
func (g *CharGrouping) appendTo(buf []byte) []byte {
	for _, m := range g.members() {
		buf = m.appendTo(buf)
	}
	return buf
}

func (m charMember) appendTo(buf []byte) []byte {
	switch m.kind {
	case memberChar:
		return appendEscaped(buf, m.first, true)
	case memberChars:
		for _, r := range m.text {
			buf = appendEscaped(buf, r, true)
		}
		return buf
	case memberRange:
		buf = appendEscaped(buf, m.first, true)
		buf = append(buf, '-')
		return appendEscaped(buf, m.last, true)
	case memberCategory:
		return appendUnicodeProperty(buf, m.category.Designation(), m.negated)
	case memberBlock:
		return appendUnicodeProperty(buf, m.block.Designation(), m.negated)
	case memberShorthand:
		return append(buf, '\\', m.shorthand.letter())
	case memberGrouping:
		return m.grouping.appendTo(buf)
	}
	return buf
}

func appendUnicodeProperty(buf []byte, designation string, negated bool) []byte {
	if negated {
		buf = append(buf, `\P{`...)
	} else {
		buf = append(buf, `\p{`...)
	}
	buf = append(buf, designation...)
	return append(buf, '}')
}

// String returns the bracket content, without brackets.
func (g *CharGrouping) String() string {
	return string(g.appendTo(nil))
}

func (g *CharGrouping) isContent() {}
