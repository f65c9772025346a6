package regolith

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

type textNode struct {
	text string
}

func (n *textNode) appendTo(b *Builder) { b.appendText(n.text) }
func (n *textNode) atomic() bool       { return utf8.RuneCountInString(n.text) == 1 }
func (n *textNode) alternation() bool  { return false }

type charNode struct {
	r rune
}

func (n *charNode) appendTo(b *Builder) { b.appendChar(n.r) }
func (n *charNode) atomic() bool       { return true }
func (n *charNode) alternation() bool  { return false }

type classNode struct {
	g       *CharGrouping
	negated bool
}

func (n *classNode) appendTo(b *Builder) { b.appendCharClass(n.g, n.negated) }
func (n *classNode) atomic() bool       { return true }
func (n *classNode) alternation() bool  { return false }

// fixedNode is a construct with constant text: shorthand classes, Unicode
// properties, anchors.
type fixedNode struct {
	text   string
	kind   TokenKind
	detail string
}

func (n *fixedNode) appendTo(b *Builder) { b.emit(n.kind, n.detail, n.text) }
func (n *fixedNode) atomic() bool       { return true }
func (n *fixedNode) alternation() bool  { return false }

type groupKind uint8

const (
	groupNumbered groupKind = iota
	groupNamed
	groupNoncapturing
	groupNonbacktracking
	groupBalancing
)

type groupNode struct {
	kind    groupKind
	name    string
	name2   string
	content Content
}

func (n *groupNode) appendTo(b *Builder) {
	switch n.kind {
	case groupNumbered:
		b.openNumberedGroup()
	case groupNamed:
		b.openNamedGroup(TokenNamedGroup, n.name, n.name, n.name)
	case groupBalancing:
		b.openNamedGroup(TokenBalancingGroup, n.name+"-"+n.name2, n.name, n.name+"-"+n.name2)
	case groupNoncapturing:
		b.openBoundary(TokenNoncapturingGroup, "", "(?:")
	case groupNonbacktracking:
		b.openBoundary(TokenNonbacktrackingGroup, "", "(?>")
	}
	b.appendContent(n.content)
	b.closeBoundary()
}

func (n *groupNode) atomic() bool      { return true }
func (n *groupNode) alternation() bool { return false }

type assertionKind uint8

const (
	assertAhead assertionKind = iota
	assertNotAhead
	assertBehind
	assertNotBehind
)

var assertionLeads = [...]struct {
	lead string
	kind TokenKind
}{
	assertAhead:     {"(?=", TokenAssertion},
	assertNotAhead:  {"(?!", TokenNotAssertion},
	assertBehind:    {"(?<=", TokenBackAssertion},
	assertNotBehind: {"(?<!", TokenNotBackAssertion},
}

type assertionNode struct {
	kind    assertionKind
	content Content
}

func (n *assertionNode) appendTo(b *Builder) {
	l := assertionLeads[n.kind]
	b.openBoundary(l.kind, "", l.lead)
	b.appendContent(n.content)
	b.closeBoundary()
}

func (n *assertionNode) atomic() bool      { return true }
func (n *assertionNode) alternation() bool { return false }

// failNode is the empty negative lookahead "(?!)", which never matches.
type failNode struct{}

func (failNode) appendTo(b *Builder) { b.emit(TokenNotAssertion, "", "(?!)") }
func (failNode) atomic() bool        { return true }
func (failNode) alternation() bool   { return false }

type surroundNode struct {
	behind, content, ahead Content
}

func (n *surroundNode) appendTo(b *Builder) {
	(&assertionNode{kind: assertBehind, content: n.behind}).appendTo(b)
	b.appendGrouped(n.content, isAlternation(n.content))
	(&assertionNode{kind: assertAhead, content: n.ahead}).appendTo(b)
}

func (n *surroundNode) atomic() bool      { return false }
func (n *surroundNode) alternation() bool { return false }

type conditionKind uint8

const (
	conditionExpression conditionKind = iota
	conditionGroupName
	conditionGroupNumber
)

type ifNode struct {
	kind   conditionKind
	test   Content
	name   string
	number int
	yes    Content
	no     Content
}

func (n *ifNode) appendTo(b *Builder) {
	switch n.kind {
	case conditionGroupName:
		b.openBoundary(TokenConditional, n.name, "(?("+n.name+")")
	case conditionGroupNumber:
		num := strconv.Itoa(n.number)
		b.openBoundary(TokenConditional, num, "(?("+num+")")
	default:
		b.openCondition(n.test)
	}
	b.appendGrouped(n.yes, isAlternation(n.yes))
	if n.no != nil {
		b.pendingOr = true
		b.appendGrouped(n.no, isAlternation(n.no))
		b.pendingOr = false
	}
	b.closeBoundary()
}

func (n *ifNode) atomic() bool      { return true }
func (n *ifNode) alternation() bool { return false }

type quantifierKind uint8

const (
	quantifyMaybe quantifierKind = iota
	quantifyMaybeMany
	quantifyOneMany
	quantifyCount
	quantifyCountRange
	quantifyAtLeast
)

type quantifierNode struct {
	kind     quantifierKind
	min, max int
	lazy     bool
	content  Content
}

func (n *quantifierNode) text() string {
	var s string
	switch n.kind {
	case quantifyMaybe:
		s = "?"
	case quantifyMaybeMany:
		s = "*"
	case quantifyOneMany:
		s = "+"
	case quantifyCount:
		s = "{" + strconv.Itoa(n.min) + "}"
	case quantifyCountRange:
		s = "{" + strconv.Itoa(n.min) + "," + strconv.Itoa(n.max) + "}"
	case quantifyAtLeast:
		s = "{" + strconv.Itoa(n.min) + ",}"
	}
	if n.lazy {
		s += "?"
	}
	return s
}

func (n *quantifierNode) detail() string {
	var s string
	switch n.kind {
	case quantifyMaybe:
		s = "zero or one time"
	case quantifyMaybeMany:
		s = "zero or more times"
	case quantifyOneMany:
		s = "one or more times"
	case quantifyCount:
		s = "exactly " + strconv.Itoa(n.min) + " times"
	case quantifyCountRange:
		s = "from " + strconv.Itoa(n.min) + " to " + strconv.Itoa(n.max) + " times"
	case quantifyAtLeast:
		s = "at least " + strconv.Itoa(n.min) + " times"
	}
	if n.lazy {
		s += " (lazy)"
	}
	return s
}

func (n *quantifierNode) appendTo(b *Builder) {
	wrap := !isAtomic(n.content) ||
		b.settings.SeparateGroupNumberReference && isNumericReference(n.content)
	b.appendGrouped(n.content, wrap)
	b.emit(TokenQuantifier, n.detail(), n.text())
}

func (n *quantifierNode) atomic() bool      { return false }
func (n *quantifierNode) alternation() bool { return false }

type backreferenceNode struct {
	number int
	name   string
}

func (n *backreferenceNode) appendTo(b *Builder) {
	if n.name != "" {
		open, close := b.settings.IdentifierBoundary.delimiters()
		b.emit(TokenNamedGroupReference, n.name, `\k`+string(open)+n.name+string(close))
		return
	}
	num := strconv.Itoa(n.number)
	text := `\` + num
	if b.settings.SeparateGroupNumberReference {
		text += "(?:)"
	}
	b.emit(TokenGroupReference, num, text)
}

func (n *backreferenceNode) atomic() bool      { return true }
func (n *backreferenceNode) alternation() bool { return false }

// isNumericReference reports whether c is a single numeric backreference,
// which renders as two units when SeparateGroupNumberReference is set.
func isNumericReference(c Content) bool {
	p, ok := c.(*Pattern)
	if !ok || p.len != 1 {
		return false
	}
	n, ok := p.n.(*backreferenceNode)
	return ok && n.name == ""
}

type optionsNode struct {
	apply, disable Option
	content        Content
}

func (n *optionsNode) letters() string {
	var sb strings.Builder
	sb.WriteString(n.apply.String())
	if n.disable != 0 {
		sb.WriteByte('-')
		sb.WriteString(n.disable.String())
	}
	return sb.String()
}

func (n *optionsNode) appendTo(b *Builder) {
	letters := n.letters()
	if n.content == nil {
		b.emit(TokenOptions, letters, "(?"+letters+")")
		b.options.toggle(n.apply, n.disable)
		return
	}
	b.openBoundary(TokenOptionsGroup, letters, "(?"+letters+":")
	b.options.toggle(n.apply, n.disable)
	b.appendContent(n.content)
	b.closeBoundary()
}

func (n *optionsNode) atomic() bool      { return n.content != nil }
func (n *optionsNode) alternation() bool { return false }

type commentNode struct {
	text string
}

func (n *commentNode) appendTo(b *Builder) { b.emit(TokenComment, "", "(?#"+n.text+")") }
func (n *commentNode) atomic() bool       { return false }
func (n *commentNode) alternation() bool  { return false }

type orNode struct {
	left, right Content
}

func (n *orNode) appendTo(b *Builder) {
	b.appendAlternatives([]Content{n.left, n.right})
}

func (n *orNode) atomic() bool      { return false }
func (n *orNode) alternation() bool { return true }

type joinNode struct {
	separator Content
	items     []Content
}

func (n *joinNode) appendTo(b *Builder) {
	multi := len(n.items) > 1
	for i, item := range n.items {
		if i > 0 && n.separator != nil {
			b.appendGrouped(n.separator, isAlternation(n.separator))
		}
		b.appendGrouped(item, multi && isAlternation(item))
	}
}

func (n *joinNode) atomic() bool {
	return len(n.items) == 1 && isAtomic(n.items[0])
}

func (n *joinNode) alternation() bool {
	return len(n.items) == 1 && isAlternation(n.items[0])
}
