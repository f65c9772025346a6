package regolith

import (
	"strings"
	"unicode/utf8"
)

func textOf(op, s string) (node, error) {
	return &textNode{text: s}, checkText(op, s)
}

func checkText(op, s string) error {
	if s == "" {
		return newArgumentError(op, ErrEmptyContent, "empty text")
	}
	if !utf8.ValidString(s) {
		return newArgumentError(op, ErrInvalidUTF8, "%q", s)
	}
	return nil
}

func charOf(op string, r rune) (node, error) {
	return &charNode{r: r}, checkChar(op, r)
}

func classOf(op string, g *CharGrouping, negated bool) (node, error) {
	return &classNode{g: g, negated: negated}, contentErr(op, g)
}

func groupOf(op string, kind groupKind, name, name2 string, c Content) (node, error) {
	err := contentErr(op, c)
	switch kind {
	case groupNamed:
		err = firstError(checkGroupName(op, name), err)
	case groupBalancing:
		if name != "" {
			err = firstError(checkGroupName(op, name), err)
		}
		err = firstError(checkGroupName(op, name2), err)
	}
	return &groupNode{kind: kind, name: name, name2: name2, content: c}, err
}

func checkGroupName(op, name string) error {
	if !isValidGroupName(name) {
		return newArgumentError(op, ErrInvalidGroupName, "%q", name)
	}
	return nil
}

func checkGroupNumber(op string, n int) error {
	if n < 1 {
		return newArgumentError(op, ErrInvalidGroupNumber, "%d", n)
	}
	return nil
}

func assertionOf(op string, kind assertionKind, c Content) (node, error) {
	return &assertionNode{kind: kind, content: c}, contentErr(op, c)
}

func quantifierOf(op string, kind quantifierKind, min, max int, c Content) (node, error) {
	err := contentErr(op, c)
	if min < 0 || max < 0 {
		err = firstError(newArgumentError(op, ErrNegativeCount, "min %d, max %d", min, max), err)
	} else if kind == quantifyCountRange && max < min {
		err = firstError(newArgumentError(op, ErrInvertedRange, "{%d,%d}", min, max), err)
	}
	return &quantifierNode{kind: kind, min: min, max: max, content: c}, err
}

func optionalContentErr(op string, c Content) error {
	if c == nil {
		return nil
	}
	return contentErr(op, c)
}

func fixed(kind TokenKind, text string) *Pattern {
	return chain(nil, &fixedNode{text: text, kind: kind}, nil)
}

func (p *Pattern) fixed(kind TokenKind, text string) *Pattern {
	return chain(p, &fixedNode{text: text, kind: kind}, nil)
}

// Concat concatenates items.
func Concat(items ...Content) *Pattern {
	return chain(nil, &joinNode{items: items}, joinErr("Concat", nil, items))
}

// Join concatenates items with separator between each pair.
func Join(separator Content, items ...Content) *Pattern {
	err := joinErr("Join", separator, items)
	if err == nil && len(items) > 1 {
		err = contentErr("Join", separator)
	}
	return chain(nil, &joinNode{separator: separator, items: items}, err)
}

func joinErr(op string, separator Content, items []Content) error {
	if len(items) == 0 {
		return newArgumentError(op, ErrEmptyContent, "no items")
	}
	for _, c := range items {
		if err := contentErr(op, c); err != nil {
			return err
		}
	}
	return nil
}

// Literal matches s literally.
func Literal(s string) *Pattern { return (*Pattern)(nil).Literal(s) }

func (p *Pattern) Literal(s string) *Pattern {
	n, err := textOf("Literal", s)
	return chain(p, n, err)
}

// Character matches r literally. r must not exceed MaxChar.
func Character(r rune) *Pattern { return (*Pattern)(nil).Character(r) }

func (p *Pattern) Character(r rune) *Pattern {
	n, err := charOf("Character", r)
	return chain(p, n, err)
}

// ASCII matches the ASCII character c literally.
func ASCII(c byte) *Pattern { return (*Pattern)(nil).ASCII(c) }

func (p *Pattern) ASCII(c byte) *Pattern {
	n, err := charOf("ASCII", rune(c))
	if c > 0x7F {
		err = newArgumentError("ASCII", ErrCharOutOfRange, "%#x is not ASCII", c)
	}
	return chain(p, n, err)
}

// Set matches one character of g: [g].
func Set(g *CharGrouping) *Pattern { return (*Pattern)(nil).Set(g) }

func (p *Pattern) Set(g *CharGrouping) *Pattern {
	n, err := classOf("Set", g, false)
	return chain(p, n, err)
}

// NotSet matches one character that is not in g: [^g].
func NotSet(g *CharGrouping) *Pattern { return (*Pattern)(nil).NotSet(g) }

func (p *Pattern) NotSet(g *CharGrouping) *Pattern {
	n, err := classOf("NotSet", g, true)
	return chain(p, n, err)
}

// Chars matches one of the characters of s.
func Chars(s string) *Pattern { return (*Pattern)(nil).Chars(s) }

func (p *Pattern) Chars(s string) *Pattern {
	n, err := classOf("Chars", NewCharGrouping().Chars(s), false)
	return chain(p, n, err)
}

// Not matches one character that is not in s.
func Not(s string) *Pattern { return (*Pattern)(nil).Not(s) }

func (p *Pattern) Not(s string) *Pattern {
	n, err := classOf("Not", NewCharGrouping().Chars(s), true)
	return chain(p, n, err)
}

// NotChar matches any character except r.
func NotChar(r rune) *Pattern { return (*Pattern)(nil).NotChar(r) }

func (p *Pattern) NotChar(r rune) *Pattern {
	n, err := classOf("NotChar", NewCharGrouping().Char(r), true)
	return chain(p, n, err)
}

// Range matches one character from first to last inclusive.
func Range(first, last rune) *Pattern { return (*Pattern)(nil).Range(first, last) }

func (p *Pattern) Range(first, last rune) *Pattern {
	n, err := classOf("Range", NewCharGrouping().Range(first, last), false)
	return chain(p, n, err)
}

// NotRange matches one character outside of first to last.
func NotRange(first, last rune) *Pattern { return (*Pattern)(nil).NotRange(first, last) }

func (p *Pattern) NotRange(first, last rune) *Pattern {
	n, err := classOf("NotRange", NewCharGrouping().Range(first, last), true)
	return chain(p, n, err)
}

func (p *Pattern) property(op string, designation string, kind TokenKind, negated bool, valid bool) *Pattern {
	var err error
	if !valid {
		err = newArgumentError(op, ErrInvalidUnicode, "")
	}
	text := string(appendUnicodeProperty(nil, designation, negated))
	return chain(p, &fixedNode{text: text, kind: kind, detail: designation}, err)
}

// Category matches one character of the Unicode general category c.
func Category(c UnicodeCategory) *Pattern { return (*Pattern)(nil).Category(c) }

func (p *Pattern) Category(c UnicodeCategory) *Pattern {
	return p.property("Category", c.Designation(), TokenUnicodeCategory, false, c.valid())
}

func NotCategory(c UnicodeCategory) *Pattern { return (*Pattern)(nil).NotCategory(c) }

func (p *Pattern) NotCategory(c UnicodeCategory) *Pattern {
	return p.property("NotCategory", c.Designation(), TokenNotUnicodeCategory, true, c.valid())
}

// Block matches one character of the Unicode block b.
func Block(b UnicodeBlock) *Pattern { return (*Pattern)(nil).Block(b) }

func (p *Pattern) Block(b UnicodeBlock) *Pattern {
	return p.property("Block", b.Designation(), TokenUnicodeBlock, false, b.valid())
}

func NotBlock(b UnicodeBlock) *Pattern { return (*Pattern)(nil).NotBlock(b) }

func (p *Pattern) NotBlock(b UnicodeBlock) *Pattern {
	return p.property("NotBlock", b.Designation(), TokenNotUnicodeBlock, true, b.valid())
}

func Digit() *Pattern                    { return fixed(TokenDigit, `\d`) }
func (p *Pattern) Digit() *Pattern       { return p.fixed(TokenDigit, `\d`) }
func NotDigit() *Pattern                 { return fixed(TokenNotDigit, `\D`) }
func (p *Pattern) NotDigit() *Pattern    { return p.fixed(TokenNotDigit, `\D`) }
func WordChar() *Pattern                 { return fixed(TokenWordChar, `\w`) }
func (p *Pattern) WordChar() *Pattern    { return p.fixed(TokenWordChar, `\w`) }
func NotWordChar() *Pattern              { return fixed(TokenNotWordChar, `\W`) }
func (p *Pattern) NotWordChar() *Pattern { return p.fixed(TokenNotWordChar, `\W`) }
func WhiteSpace() *Pattern               { return fixed(TokenWhiteSpace, `\s`) }
func (p *Pattern) WhiteSpace() *Pattern  { return p.fixed(TokenWhiteSpace, `\s`) }
func NotWhiteSpace() *Pattern            { return fixed(TokenNotWhiteSpace, `\S`) }

func (p *Pattern) NotWhiteSpace() *Pattern { return p.fixed(TokenNotWhiteSpace, `\S`) }

// AnyChar matches any character except "\n", unless Singleline is active.
func AnyChar() *Pattern              { return fixed(TokenAnyChar, ".") }
func (p *Pattern) AnyChar() *Pattern { return p.fixed(TokenAnyChar, ".") }

// AnyInvariant matches any character regardless of options.
func AnyInvariant() *Pattern { return (*Pattern)(nil).AnyInvariant() }

func (p *Pattern) AnyInvariant() *Pattern {
	return p.Set(NewCharGrouping().WhiteSpace().NotWhiteSpace())
}

// Start matches at the start of input, or of a line under Multiline: ^.
func Start() *Pattern              { return fixed(TokenStart, "^") }
func (p *Pattern) Start() *Pattern { return p.fixed(TokenStart, "^") }

// End matches at the end of input, or of a line under Multiline: $.
func End() *Pattern              { return fixed(TokenEnd, "$") }
func (p *Pattern) End() *Pattern { return p.fixed(TokenEnd, "$") }

func StartOfInput() *Pattern              { return fixed(TokenStartOfInput, `\A`) }
func (p *Pattern) StartOfInput() *Pattern { return p.fixed(TokenStartOfInput, `\A`) }

// StartOfLine matches at the start of any line regardless of options.
func StartOfLine() *Pattern              { return fixed(TokenStartOfLine, "(?m:^)") }
func (p *Pattern) StartOfLine() *Pattern { return p.fixed(TokenStartOfLine, "(?m:^)") }

func EndOfInput() *Pattern              { return fixed(TokenEndOfInput, `\z`) }
func (p *Pattern) EndOfInput() *Pattern { return p.fixed(TokenEndOfInput, `\z`) }

// EndOfInputOrBeforeFinalNewLine matches at the end of input or before a
// final "\n": \Z.
func EndOfInputOrBeforeFinalNewLine() *Pattern {
	return fixed(TokenEndOfInputOrBeforeFinalNewLine, `\Z`)
}

func (p *Pattern) EndOfInputOrBeforeFinalNewLine() *Pattern {
	return p.fixed(TokenEndOfInputOrBeforeFinalNewLine, `\Z`)
}

// EndOfLine matches at the end of any line regardless of options.
func EndOfLine() *Pattern              { return fixed(TokenEndOfLine, "(?m:$)") }
func (p *Pattern) EndOfLine() *Pattern { return p.fixed(TokenEndOfLine, "(?m:$)") }

func WordBoundary() *Pattern                 { return fixed(TokenWordBoundary, `\b`) }
func (p *Pattern) WordBoundary() *Pattern    { return p.fixed(TokenWordBoundary, `\b`) }
func NotWordBoundary() *Pattern              { return fixed(TokenNotWordBoundary, `\B`) }
func (p *Pattern) NotWordBoundary() *Pattern { return p.fixed(TokenNotWordBoundary, `\B`) }

// PreviousMatchEnd matches where the previous match ended: \G.
func PreviousMatchEnd() *Pattern              { return fixed(TokenPreviousMatchEnd, `\G`) }
func (p *Pattern) PreviousMatchEnd() *Pattern { return p.fixed(TokenPreviousMatchEnd, `\G`) }

// Group captures c in a numbered group.
func Group(c Content) *Pattern { return (*Pattern)(nil).Group(c) }

func (p *Pattern) Group(c Content) *Pattern {
	n, err := groupOf("Group", groupNumbered, "", "", c)
	return chain(p, n, err)
}

// NamedGroup captures c in a group called name.
func NamedGroup(name string, c Content) *Pattern { return (*Pattern)(nil).NamedGroup(name, c) }

func (p *Pattern) NamedGroup(name string, c Content) *Pattern {
	n, err := groupOf("NamedGroup", groupNamed, name, "", c)
	return chain(p, n, err)
}

func NoncapturingGroup(c Content) *Pattern { return (*Pattern)(nil).NoncapturingGroup(c) }

func (p *Pattern) NoncapturingGroup(c Content) *Pattern {
	n, err := groupOf("NoncapturingGroup", groupNoncapturing, "", "", c)
	return chain(p, n, err)
}

// NonbacktrackingGroup matches c atomically: (?>c).
func NonbacktrackingGroup(c Content) *Pattern { return (*Pattern)(nil).NonbacktrackingGroup(c) }

func (p *Pattern) NonbacktrackingGroup(c Content) *Pattern {
	n, err := groupOf("NonbacktrackingGroup", groupNonbacktracking, "", "", c)
	return chain(p, n, err)
}

// BalancingGroup writes (?<name-previous>c). It deletes the last capture of
// previous and, unless name is empty, captures the text between that
// capture and c as name.
func BalancingGroup(name, previous string, c Content) *Pattern {
	return (*Pattern)(nil).BalancingGroup(name, previous, c)
}

func (p *Pattern) BalancingGroup(name, previous string, c Content) *Pattern {
	n, err := groupOf("BalancingGroup", groupBalancing, name, previous, c)
	return chain(p, n, err)
}

// Assert is a lookahead assertion: (?=c).
func Assert(c Content) *Pattern { return (*Pattern)(nil).Assert(c) }

func (p *Pattern) Assert(c Content) *Pattern {
	n, err := assertionOf("Assert", assertAhead, c)
	return chain(p, n, err)
}

// NotAssert is a negative lookahead assertion: (?!c).
func NotAssert(c Content) *Pattern { return (*Pattern)(nil).NotAssert(c) }

func (p *Pattern) NotAssert(c Content) *Pattern {
	n, err := assertionOf("NotAssert", assertNotAhead, c)
	return chain(p, n, err)
}

// AssertBack is a lookbehind assertion: (?<=c).
func AssertBack(c Content) *Pattern { return (*Pattern)(nil).AssertBack(c) }

func (p *Pattern) AssertBack(c Content) *Pattern {
	n, err := assertionOf("AssertBack", assertBehind, c)
	return chain(p, n, err)
}

// NotAssertBack is a negative lookbehind assertion: (?<!c).
func NotAssertBack(c Content) *Pattern { return (*Pattern)(nil).NotAssertBack(c) }

func (p *Pattern) NotAssertBack(c Content) *Pattern {
	n, err := assertionOf("NotAssertBack", assertNotBehind, c)
	return chain(p, n, err)
}

// Surround matches c preceded by behind and followed by ahead, neither of
// which is part of the match.
func Surround(behind, c, ahead Content) *Pattern {
	return (*Pattern)(nil).Surround(behind, c, ahead)
}

func (p *Pattern) Surround(behind, c, ahead Content) *Pattern {
	err := firstError(contentErr("Surround", behind), contentErr("Surround", c), contentErr("Surround", ahead))
	return chain(p, &surroundNode{behind: behind, content: c, ahead: ahead}, err)
}

// Fail never matches: (?!).
func Fail() *Pattern              { return chain(nil, failNode{}, nil) }
func (p *Pattern) Fail() *Pattern { return chain(p, failNode{}, nil) }

// If matches yes when test matches at the current position and no
// otherwise. no may be nil.
func If(test, yes, no Content) *Pattern { return (*Pattern)(nil).If(test, yes, no) }

func (p *Pattern) If(test, yes, no Content) *Pattern {
	err := firstError(contentErr("If", test), contentErr("If", yes), optionalContentErr("If", no))
	return chain(p, &ifNode{kind: conditionExpression, test: test, yes: yes, no: no}, err)
}

// IfGroup matches yes when the group name has captured and no otherwise.
func IfGroup(name string, yes, no Content) *Pattern { return (*Pattern)(nil).IfGroup(name, yes, no) }

func (p *Pattern) IfGroup(name string, yes, no Content) *Pattern {
	err := firstError(checkGroupName("IfGroup", name), contentErr("IfGroup", yes), optionalContentErr("IfGroup", no))
	return chain(p, &ifNode{kind: conditionGroupName, name: name, yes: yes, no: no}, err)
}

// IfGroupNumber matches yes when the group number has captured and no
// otherwise.
func IfGroupNumber(number int, yes, no Content) *Pattern {
	return (*Pattern)(nil).IfGroupNumber(number, yes, no)
}

func (p *Pattern) IfGroupNumber(number int, yes, no Content) *Pattern {
	err := firstError(checkGroupNumber("IfGroupNumber", number), contentErr("IfGroupNumber", yes), optionalContentErr("IfGroupNumber", no))
	return chain(p, &ifNode{kind: conditionGroupNumber, number: number, yes: yes, no: no}, err)
}

// Maybe matches c zero or one time.
func Maybe(c Content) *Pattern { return quantified(nil, "Maybe", quantifyMaybe, 0, 0, c) }

// MaybeMany matches c zero or more times.
func MaybeMany(c Content) *Pattern { return quantified(nil, "MaybeMany", quantifyMaybeMany, 0, 0, c) }

// OneMany matches c one or more times.
func OneMany(c Content) *Pattern { return quantified(nil, "OneMany", quantifyOneMany, 0, 0, c) }

// Count matches c exactly n times.
func Count(n int, c Content) *Pattern { return quantified(nil, "Count", quantifyCount, n, 0, c) }

// CountRange matches c from min to max times.
func CountRange(min, max int, c Content) *Pattern {
	return quantified(nil, "CountRange", quantifyCountRange, min, max, c)
}

// AtLeast matches c n or more times.
func AtLeast(n int, c Content) *Pattern { return quantified(nil, "AtLeast", quantifyAtLeast, n, 0, c) }

func quantified(prev *Pattern, op string, kind quantifierKind, min, max int, c Content) *Pattern {
	n, err := quantifierOf(op, kind, min, max, c)
	return chain(prev, n, err)
}

// quantifyLast applies a quantifier to the newest node of the chain.
func (p *Pattern) quantifyLast(op string, kind quantifierKind, min, max int) *Pattern {
	if p == nil {
		return quantified(nil, op, kind, min, max, nil)
	}
	return quantified(p.prev, op, kind, min, max, p.last())
}

func (p *Pattern) Maybe() *Pattern     { return p.quantifyLast("Maybe", quantifyMaybe, 0, 0) }
func (p *Pattern) MaybeMany() *Pattern { return p.quantifyLast("MaybeMany", quantifyMaybeMany, 0, 0) }
func (p *Pattern) OneMany() *Pattern   { return p.quantifyLast("OneMany", quantifyOneMany, 0, 0) }
func (p *Pattern) Count(n int) *Pattern {
	return p.quantifyLast("Count", quantifyCount, n, 0)
}

func (p *Pattern) CountRange(min, max int) *Pattern {
	return p.quantifyLast("CountRange", quantifyCountRange, min, max)
}

func (p *Pattern) AtLeast(n int) *Pattern {
	return p.quantifyLast("AtLeast", quantifyAtLeast, n, 0)
}

// Lazy makes the quantifier at the end of the chain match as few times as
// possible.
func (p *Pattern) Lazy() *Pattern {
	if p == nil {
		return chain(nil, &joinNode{}, newArgumentError("Lazy", ErrNotQuantifier, "empty pattern"))
	}
	q, ok := p.n.(*quantifierNode)
	if !ok {
		return chain(p.prev, p.n, newArgumentError("Lazy", ErrNotQuantifier, "%T", p.n))
	}
	lazy := *q
	lazy.lazy = true
	res := chain(p.prev, &lazy, nil)
	if res.err == nil {
		res.err = p.err
	}
	return res
}

// GroupReference matches what the group number captured: \number.
func GroupReference(number int) *Pattern { return (*Pattern)(nil).GroupReference(number) }

func (p *Pattern) GroupReference(number int) *Pattern {
	return chain(p, &backreferenceNode{number: number}, checkGroupNumber("GroupReference", number))
}

// NamedGroupReference matches what the group name captured: \k<name>.
func NamedGroupReference(name string) *Pattern { return (*Pattern)(nil).NamedGroupReference(name) }

func (p *Pattern) NamedGroupReference(name string) *Pattern {
	return chain(p, &backreferenceNode{name: name}, checkGroupName("NamedGroupReference", name))
}

// Options applies and disables options for the rest of the enclosing
// group: (?apply-disable).
func Options(apply, disable Option) *Pattern { return (*Pattern)(nil).Options(apply, disable) }

func (p *Pattern) Options(apply, disable Option) *Pattern {
	return chain(p, &optionsNode{apply: apply, disable: disable}, validateOptions("Options", apply, disable))
}

// OptionsScope applies and disables options for c only:
// (?apply-disable:c).
func OptionsScope(apply, disable Option, c Content) *Pattern {
	return (*Pattern)(nil).OptionsScope(apply, disable, c)
}

func (p *Pattern) OptionsScope(apply, disable Option, c Content) *Pattern {
	err := firstError(validateOptions("OptionsScope", apply, disable), contentErr("OptionsScope", c))
	return chain(p, &optionsNode{apply: apply, disable: disable, content: c}, err)
}

// Comment is an inline comment, ignored when matching: (?#text).
func Comment(text string) *Pattern { return (*Pattern)(nil).Comment(text) }

func (p *Pattern) Comment(text string) *Pattern {
	var err error
	switch {
	case text == "":
		err = newArgumentError("Comment", ErrEmptyContent, "")
	case !utf8.ValidString(text):
		err = newArgumentError("Comment", ErrInvalidUTF8, "%q", text)
	case strings.ContainsAny(text, ")\n"):
		err = newArgumentError("Comment", ErrInvalidComment, "%q", text)
	}
	return chain(p, &commentNode{text: text}, err)
}

// Or matches left or right.
func Or(left, right Content) *Pattern {
	err := firstError(contentErr("Or", left), contentErr("Or", right))
	return chain(nil, &orNode{left: left, right: right}, err)
}

// Or makes the whole chain the left side of an alternation.
func (p *Pattern) Or(right Content) *Pattern {
	if p == nil {
		return Or(nil, right)
	}
	return Or(p, right)
}

// Then appends c; it is the chainable form of Concat.
func (p *Pattern) Then(c Content) *Pattern {
	return p.Append(c)
}
