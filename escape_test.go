package regolith

import (
	"testing"

	"gotest.tools/v3/assert"
)

func shouldPanic(cb func()) func(t *testing.T) {
	return func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("did not panic")
			}
		}()

		cb()
	}
}

func TestClassifyEscape(t *testing.T) {
	tests := []struct {
		r       rune
		inClass bool
		want    Escape
	}{
		{'a', false, Escape{Kind: EscapeNone}},
		{'a', true, Escape{Kind: EscapeNone}},
		{'.', false, Escape{Kind: EscapeSelf}},
		{'.', true, Escape{Kind: EscapeNone}},
		{'-', false, Escape{Kind: EscapeNone}},
		{'-', true, Escape{Kind: EscapeSelf}},
		{']', false, Escape{Kind: EscapeNone}},
		{']', true, Escape{Kind: EscapeSelf}},
		{'[', false, Escape{Kind: EscapeSelf}},
		{'[', true, Escape{Kind: EscapeSelf}},
		{'^', false, Escape{Kind: EscapeSelf}},
		{'^', true, Escape{Kind: EscapeSelf}},
		{'\\', false, Escape{Kind: EscapeSelf}},
		{'\\', true, Escape{Kind: EscapeSelf}},
		{'{', false, Escape{Kind: EscapeSelf}},
		{'}', false, Escape{Kind: EscapeNone}},
		{'$', false, Escape{Kind: EscapeSelf}},
		{'$', true, Escape{Kind: EscapeNone}},
		{' ', false, Escape{Kind: EscapeSelf}},
		{' ', true, Escape{Kind: EscapeNone}},
		{'#', false, Escape{Kind: EscapeSelf}},
		{'#', true, Escape{Kind: EscapeNone}},
		{'\t', false, Escape{Kind: EscapeLetter, Letter: 't'}},
		{'\n', true, Escape{Kind: EscapeLetter, Letter: 'n'}},
		{'\r', false, Escape{Kind: EscapeLetter, Letter: 'r'}},
		{'\f', false, Escape{Kind: EscapeLetter, Letter: 'f'}},
		{0x07, false, Escape{Kind: EscapeLetter, Letter: 'a'}},
		{0x0B, false, Escape{Kind: EscapeLetter, Letter: 'v'}},
		{0x1B, false, Escape{Kind: EscapeLetter, Letter: 'e'}},
		{0x00, false, Escape{Kind: EscapeHex}},
		{0x1F, true, Escape{Kind: EscapeHex}},
		{0x7F, false, Escape{Kind: EscapeHex}},
		{0x85, false, Escape{Kind: EscapeHex}},
		{'é', false, Escape{Kind: EscapeNone}},
		{MaxChar, false, Escape{Kind: EscapeNone}},
		{0xD800, false, Escape{Kind: EscapeUnicode}},
		{0xDFFF, true, Escape{Kind: EscapeUnicode}},
		{0xD7FF, false, Escape{Kind: EscapeNone}},
		{0xE000, true, Escape{Kind: EscapeNone}},
	}
	for _, tt := range tests {
		assert.Equal(t, ClassifyEscape(tt.r, tt.inClass), tt.want, "rune %#x, inClass %v", tt.r, tt.inClass)
	}
}

func TestClassifyEscapeOutOfRange(t *testing.T) {
	t.Run("AboveMaxChar", shouldPanic(func() {
		ClassifyEscape(MaxChar+1, false)
	}))
	t.Run("Negative", shouldPanic(func() {
		ClassifyEscape(-1, true)
	}))
	t.Run("AppendAboveMaxChar", func(t *testing.T) {
		assert.Equal(t, string(appendEscaped(nil, 0x1F600, false)), "😀")
	})
}

func TestEscapedText(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"abc", "abc"},
		{"a.b*c", `a\.b\*c`},
		{"(x)", `\(x\)`},
		{"a b#c", `a\ b\#c`},
		{"tab\there", `tab\there`},
		{"\x01\x1f", `\x01\x1F`},
		{"a-b]c}", "a-b]c}"},
		{"$^|?+", `\$\^\|\?\+`},
		{"żółw", "żółw"},
		{"😀.", `😀\.`},
	}
	for _, tt := range tests {
		got, err := Render(Literal(tt.text))
		assert.NilError(t, err)
		assert.Equal(t, got, tt.want, "text %q", tt.text)
	}
}

func TestEscapedClassContent(t *testing.T) {
	got, err := Render(Chars(`a-]^\[.`))
	assert.NilError(t, err)
	assert.Equal(t, got, `[a\-\]\^\\\[.]`)

	got, err = Render(Chars("\t\x02"))
	assert.NilError(t, err)
	assert.Equal(t, got, `[\t\x02]`)
}

func TestEscapedSurrogates(t *testing.T) {
	tests := []struct {
		p    *Pattern
		want string
	}{
		{Character(0xD800), `\uD800`},
		{Character(0xDC0A).OneMany(), `\uDC0A+`},
		{Range(0xD800, 0xDBFF), `[\uD800-\uDBFF]`},
		{Not("a").Set(NewCharGrouping().Char(0xDFFF)), `[^a][\uDFFF]`},
		{Literal("a").Append(Char(0xDABC)), `a\uDABC`},
	}
	for _, tt := range tests {
		got, err := Render(tt.p)
		assert.NilError(t, err)
		assert.Equal(t, got, tt.want)
	}
}

func TestEscapingIsIdempotent(t *testing.T) {
	p := Literal("1+1=2? (maybe) [sure] {no} \\ #")
	first := p.String()
	assert.Equal(t, p.String(), first)
	assert.Equal(t, Literal("1+1=2? (maybe) [sure] {no} \\ #").String(), first)
}

func TestIsValidGroupName(t *testing.T) {
	assert.Equal(t, isValidGroupName("name"), true)
	assert.Equal(t, isValidGroupName("_"), true)
	assert.Equal(t, isValidGroupName("a1"), true)
	assert.Equal(t, isValidGroupName("_1"), true)
	assert.Equal(t, isValidGroupName("1a"), false)
	assert.Equal(t, isValidGroupName("0_"), false)
	assert.Equal(t, isValidGroupName("Year_2"), true)
	assert.Equal(t, isValidGroupName(""), false)
	assert.Equal(t, isValidGroupName("12"), false)
	assert.Equal(t, isValidGroupName("a-b"), false)
	assert.Equal(t, isValidGroupName("a b"), false)
	assert.Equal(t, isValidGroupName("név"), false)
}
