// Package regolith composes regular expressions out of immutable building
// blocks and renders them into .NET-dialect pattern text.
//
// A *Pattern is a chain of nodes. Every method that appends to a chain
// returns a new head and leaves the receiver untouched, so chains may be
// shared freely:
//
//	digits := regolith.Digit().OneMany()
//	version := digits.Character('.').Append(digits)
//	version.String() // \d+\.\d+
//
// Invalid arguments never panic and never produce partial output. The
// first one is recorded in the chain and returned by Err, Render and
// Builder.Append.
package regolith

import "unicode/utf8"

// Content is anything a pattern construct can wrap: a *Pattern, Text,
// Char, a *CharGrouping (rendered as a character class) or Any.
type Content interface {
	isContent()
}

// Text is literal text. Metacharacters are escaped when rendered.
type Text string

// Char is a single literal character.
type Char rune

// Any is an ordered collection of alternatives. Nil elements are skipped.
type Any []Content

func (Text) isContent()     {}
func (Char) isContent()     {}
func (Any) isContent()      {}
func (*Pattern) isContent() {}

var (
	_ Content = Text("")
	_ Content = Char(0)
	_ Content = Any(nil)
	_ Content = (*Pattern)(nil)
	_ Content = (*CharGrouping)(nil)
)

// node is one construct of a chain.
type node interface {
	appendTo(b *Builder)
	// atomic reports whether the node renders as a single unit that a
	// quantifier can follow directly.
	atomic() bool
	// alternation reports whether the node renders top-level alternatives.
	alternation() bool
}

// Pattern is an immutable chain of nodes. The zero chain is represented by
// a nil *Pattern; the nil chain is empty and cannot be rendered.
type Pattern struct {
	prev *Pattern
	n    node
	err  error
	len  int
}

func chain(prev *Pattern, n node, err error) *Pattern {
	p := &Pattern{prev: prev, n: n, len: 1}
	if prev != nil {
		p.len += prev.len
		p.err = prev.err
	}
	if p.err == nil {
		p.err = err
	}
	return p
}

// Err returns the first invalid argument recorded anywhere in the chain or
// its content.
func (p *Pattern) Err() error {
	if p == nil {
		return newArgumentError("Pattern", ErrEmptyContent, "nil pattern")
	}
	return p.err
}

// Len returns the number of nodes in the chain.
func (p *Pattern) Len() int {
	if p == nil {
		return 0
	}
	return p.len
}

// String renders the pattern with DefaultSettings. It returns "" when the
// pattern is invalid; use Render to get the error.
func (p *Pattern) String() string {
	s, err := Render(p)
	if err != nil {
		return ""
	}
	return s
}

// nodes returns the chain's nodes oldest first.
func (p *Pattern) nodes() []node {
	var heads stack[*Pattern]
	for c := p; c != nil; c = c.prev {
		heads.push(c)
	}
	res := make([]node, 0, len(heads))
	for len(heads) > 0 {
		res = append(res, heads.pop().n)
	}
	return res
}

// last returns the newest node as a single-node chain.
func (p *Pattern) last() *Pattern {
	var err error
	if p.prev == nil || p.prev.err == nil {
		err = p.err
	}
	return &Pattern{n: p.n, err: err, len: 1}
}

// Append appends content to the chain.
func (p *Pattern) Append(c Content) *Pattern {
	if other, ok := c.(*Pattern); ok && other != nil && p != nil {
		return concatChains(p, other)
	}
	if p == nil {
		return Concat(c)
	}
	return chain(p, &joinNode{items: []Content{c}}, contentErr("Append", c))
}

func concatChains(p, other *Pattern) *Pattern {
	res := p
	for _, n := range other.nodes() {
		res = chain(res, n, nil)
	}
	if res.err == nil {
		res.err = other.err
	}
	return res
}

// contentErr validates required content.
func contentErr(op string, c Content) error {
	switch c := c.(type) {
	case nil:
		return newArgumentError(op, ErrEmptyContent, "")
	case *Pattern:
		if c == nil {
			return newArgumentError(op, ErrEmptyContent, "nil pattern")
		}
		return c.err
	case Text:
		return checkText(op, string(c))
	case Char:
		return checkChar(op, rune(c))
	case *CharGrouping:
		if c.Len() == 0 {
			return newArgumentError(op, ErrEmptyCharGrouping, "")
		}
		return c.err
	case Any:
		count := 0
		for _, e := range c {
			if e == nil {
				continue
			}
			if p, ok := e.(*Pattern); ok && p == nil {
				continue
			}
			count++
			if err := contentErr(op, e); err != nil {
				return err
			}
		}
		if count == 0 {
			return newArgumentError(op, ErrEmptyContent, "no alternatives")
		}
		return nil
	}
	return newArgumentError(op, ErrEmptyContent, "unsupported content %T", c)
}

// alternatives returns the non-nil elements of a.
func (a Any) alternatives() []Content {
	res := make([]Content, 0, len(a))
	for _, e := range a {
		if e == nil {
			continue
		}
		if p, ok := e.(*Pattern); ok && p == nil {
			continue
		}
		res = append(res, e)
	}
	return res
}

func isAtomic(c Content) bool {
	switch c := c.(type) {
	case *Pattern:
		return c.len == 1 && c.n.atomic()
	case Text:
		return utf8.RuneCountInString(string(c)) == 1
	case Char, *CharGrouping:
		return true
	case Any:
		alts := c.alternatives()
		return len(alts) == 1 && isAtomic(alts[0])
	}
	return false
}

func isAlternation(c Content) bool {
	switch c := c.(type) {
	case *Pattern:
		return c.len == 1 && c.n.alternation()
	case Any:
		alts := c.alternatives()
		if len(alts) == 1 {
			return isAlternation(alts[0])
		}
		return len(alts) > 1
	}
	return false
}
