package regolith

import (
	"strconv"
	"unicode/utf8"
)

const indentUnit = "    "

// Capture is a capturing group in the order its opening boundary was
// rendered. Number is the 1-based position among capturing groups.
type Capture struct {
	Number int
	Name   string
}

// Builder renders patterns into text. Settings are fixed when the builder
// is created; everything else is per-session state.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	settings Settings

	buf        []byte
	indent     int
	classDepth int
	// inline suppresses line breaks while it is positive.
	inline    int
	pendingOr bool
	captures  []Capture
	options   optionsStack
	tokens    []Token
}

// NewBuilder returns a builder for the given settings.
func NewBuilder(settings Settings) (*Builder, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &Builder{
		settings: settings,
		options:  newOptionsStack(0),
	}, nil
}

// Settings returns the settings the builder was created with.
func (b *Builder) Settings() Settings {
	return b.settings
}

// Append renders c after the text produced so far. If c or anything it
// contains is invalid, nothing is written and the error is returned.
func (b *Builder) Append(c Content) error {
	if err := contentErr("Builder.Append", c); err != nil {
		return err
	}
	b.appendContent(c)
	return nil
}

// String returns the rendered text, annotated when comments are enabled.
func (b *Builder) String() string {
	if b.settings.Comment {
		return annotate(b.buf, b.tokens)
	}
	return string(b.buf)
}

// Captures returns the capturing groups rendered so far.
func (b *Builder) Captures() []Capture {
	return append([]Capture(nil), b.captures...)
}

// Tokens returns the token stream recorded so far. It is empty unless
// comments are enabled.
func (b *Builder) Tokens() []Token {
	return append([]Token(nil), b.tokens...)
}

// ActiveOptions returns the inline options in effect at the end of the
// text rendered so far.
func (b *Builder) ActiveOptions() Option {
	return b.options.active()
}

// Reset discards the rendered text and state, keeping the settings.
func (b *Builder) Reset() {
	*b = Builder{
		settings: b.settings,
		buf:      b.buf[:0],
		options:  newOptionsStack(0),
	}
}

// Render renders c with DefaultSettings.
func Render(c Content) (string, error) {
	return RenderWith(c, DefaultSettings())
}

// RenderWith renders c with the given settings.
func RenderWith(c Content, settings Settings) (string, error) {
	b, err := NewBuilder(settings)
	if err != nil {
		return "", err
	}
	if err := b.Append(c); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (b *Builder) formatted() bool {
	return b.settings.Format && b.inline == 0
}

func (b *Builder) recording() bool {
	return b.settings.Comment
}

// addToken records a token starting at start and ending at the current
// position and returns its index.
func (b *Builder) addToken(kind TokenKind, start int, detail string) int {
	if !b.recording() {
		return -1
	}
	b.tokens = append(b.tokens, Token{Kind: kind, Start: start, End: len(b.buf), Detail: detail})
	return len(b.tokens) - 1
}

func (b *Builder) finishToken(i int) {
	if i >= 0 {
		b.tokens[i].End = len(b.buf)
	}
}

// begin writes a pending alternation marker and returns the position at
// which the caller's text starts.
func (b *Builder) begin() int {
	if b.pendingOr {
		b.pendingOr = false
		b.appendAlternationMarker()
	}
	return len(b.buf)
}

func (b *Builder) emit(kind TokenKind, detail, text string) {
	start := b.begin()
	b.buf = append(b.buf, text...)
	b.addToken(kind, start, detail)
}

func (b *Builder) appendAlternationMarker() {
	if !b.formatted() {
		start := len(b.buf)
		b.buf = append(b.buf, '|')
		b.addToken(TokenAlternation, start, "")
		return
	}
	b.indent--
	b.lineBreak()
	start := len(b.buf)
	b.buf = append(b.buf, '|')
	b.addToken(TokenAlternation, start, "")
	b.indent++
	b.lineBreak()
}

// lineBreak starts a new line at the current indentation. A line holding
// only indentation is reused instead.
func (b *Builder) lineBreak() {
	if !b.formatted() {
		return
	}
	i := len(b.buf)
	for i > 0 && b.buf[i-1] == ' ' {
		i--
	}
	if i == 0 || b.buf[i-1] == '\n' {
		b.buf = b.buf[:i]
	} else {
		b.buf = append(b.buf, '\n')
	}
	for l := 0; l < b.indent; l++ {
		b.buf = append(b.buf, indentUnit...)
	}
}

// openBoundary writes an opening group boundary and enters its scope.
func (b *Builder) openBoundary(kind TokenKind, detail, lead string) {
	b.emit(kind, detail, lead)
	b.enterBoundary()
}

func (b *Builder) enterBoundary() {
	b.options.enter()
	b.indent++
	b.lineBreak()
}

func (b *Builder) closeBoundary() {
	b.pendingOr = false
	b.indent--
	b.lineBreak()
	b.emit(TokenGroupEnd, "", ")")
	b.options.leave()
}

func (b *Builder) openNumberedGroup() {
	if b.options.active()&ExplicitCapture != 0 {
		b.openBoundary(TokenNumberedGroup, "(not captured)", "(")
		return
	}
	n := len(b.captures) + 1
	b.captures = append(b.captures, Capture{Number: n})
	b.openBoundary(TokenNumberedGroup, strconv.Itoa(n), "(")
}

// openNamedGroup writes "(?<name>" for named and balancing groups. An empty
// captured name means the group does not capture.
func (b *Builder) openNamedGroup(kind TokenKind, name, captured, detail string) {
	if captured != "" {
		b.captures = append(b.captures, Capture{Number: len(b.captures) + 1, Name: captured})
	}
	open, close := b.settings.IdentifierBoundary.delimiters()
	b.openBoundary(kind, detail, "(?"+string(open)+name+string(close))
}

// openCondition writes "(?(?=test)" for an expression test, or "(?(test)"
// when IfConditionWithoutAssertion is set. The test is kept on one line.
func (b *Builder) openCondition(test Content) {
	start := b.begin()
	tok := b.addToken(TokenConditional, start, "")
	b.inline++
	b.buf = append(b.buf, "(?"...)
	switch {
	case isAssertion(test):
		b.appendContent(test)
	case b.settings.IfConditionWithoutAssertion:
		b.buf = append(b.buf, '(')
		b.appendContent(test)
		b.buf = append(b.buf, ')')
	default:
		(&assertionNode{kind: assertAhead, content: test}).appendTo(b)
	}
	b.inline--
	b.finishToken(tok)
	b.enterBoundary()
}

func isAssertion(c Content) bool {
	p, ok := c.(*Pattern)
	if !ok || p.len != 1 {
		return false
	}
	_, ok = p.n.(*assertionNode)
	return ok
}

// appendContent is the single dispatch over every kind of content.
func (b *Builder) appendContent(c Content) {
	switch c := c.(type) {
	case *Pattern:
		b.appendChain(c)
	case Text:
		b.appendText(string(c))
	case Char:
		b.appendChar(rune(c))
	case *CharGrouping:
		b.appendCharClass(c, false)
	case Any:
		b.appendAlternatives(c.alternatives())
	}
}

// appendGrouped renders c, inside a noncapturing group when wrap is set.
func (b *Builder) appendGrouped(c Content, wrap bool) {
	if !wrap {
		b.appendContent(c)
		return
	}
	b.openBoundary(TokenNoncapturingGroup, "", "(?:")
	b.appendContent(c)
	b.closeBoundary()
}

// appendChain renders the chain oldest node first. Alternations that are
// concatenated with other nodes are grouped.
func (b *Builder) appendChain(p *Pattern) {
	var heads stack[*Pattern]
	for c := p; c != nil; c = c.prev {
		heads.push(c)
	}
	multi := len(heads) > 1
	for len(heads) > 0 {
		n := heads.pop().n
		if multi && n.alternation() {
			b.openBoundary(TokenNoncapturingGroup, "", "(?:")
			n.appendTo(b)
			b.closeBoundary()
			continue
		}
		n.appendTo(b)
	}
}

// appendAlternatives renders alts separated by alternation markers. The
// marker is written lazily, before the next alternative that produces text.
func (b *Builder) appendAlternatives(alts []Content) {
	emitted := false
	for _, c := range alts {
		if emitted {
			b.pendingOr = true
		}
		mark := len(b.buf)
		b.appendContent(c)
		if len(b.buf) > mark {
			emitted = true
		}
	}
	b.pendingOr = false
}

// appendText writes s with metacharacters escaped. Runs of characters that
// need no escaping are written at once.
func (b *Builder) appendText(s string) {
	b.begin()
	inClass := b.classDepth > 0
	run := 0
	flush := func(end int) {
		if end > run {
			start := len(b.buf)
			b.buf = append(b.buf, s[run:end]...)
			if utf8.RuneCountInString(s[run:end]) > 1 {
				b.addToken(TokenText, start, "")
			} else {
				b.addToken(TokenCharacter, start, "")
			}
		}
	}
	for i, r := range s {
		if !needsEscape(r, inClass) {
			continue
		}
		flush(i)
		start := len(b.buf)
		b.buf = appendEscaped(b.buf, r, inClass)
		b.addToken(TokenCharacter, start, "")
		run = i + utf8.RuneLen(r)
	}
	flush(len(s))
}

func (b *Builder) appendChar(r rune) {
	start := b.begin()
	b.buf = appendEscaped(b.buf, r, b.classDepth > 0)
	b.addToken(TokenCharacter, start, "")
}

func (b *Builder) appendCharClass(g *CharGrouping, negated bool) {
	start := b.begin()
	kind := TokenCharGroup
	b.buf = append(b.buf, '[')
	if negated {
		kind = TokenNegativeCharGroup
		b.buf = append(b.buf, '^')
	}
	b.classDepth++
	b.buf = g.appendTo(b.buf)
	b.classDepth--
	b.buf = append(b.buf, ']')
	b.addToken(kind, start, "")
}
