package regolith

import (
	"errors"
	"testing"

	"gotest.tools/v3/assert"
)

func TestConstructionErrors(t *testing.T) {
	cases := []struct {
		name string
		p    *Pattern
		err  error
	}{
		{"EmptyLiteral", Literal(""), ErrEmptyContent},
		{"InvalidUTF8Literal", Literal("a\xffb"), ErrInvalidUTF8},
		{"InvalidUTF8Chars", Chars("a\xc3"), ErrInvalidUTF8},
		{"InvalidUTF8Not", Not("\xff"), ErrInvalidUTF8},
		{"InvalidUTF8Comment", Comment("a\xffb"), ErrInvalidUTF8},
		{"InvalidUTF8InAny", Group(Any{Text("a"), Text("\xfe")}), ErrInvalidUTF8},
		{"CharAboveMax", Character(0x10000), ErrCharOutOfRange},
		{"NegativeChar", Character(-1), ErrCharOutOfRange},
		{"NotASCII", ASCII(0x80), ErrCharOutOfRange},
		{"EmptyChars", Chars(""), ErrEmptyContent},
		{"InvertedRange", Range('z', 'a'), ErrInvertedRange},
		{"NotRangeInverted", NotRange('9', '0'), ErrInvertedRange},
		{"NilSet", Set(nil), ErrEmptyCharGrouping},
		{"InvalidSet", NotSet(NewCharGrouping().Range('z', 'a')), ErrInvertedRange},
		{"InvalidCategory", Category(UnicodeCategory(99)), ErrInvalidUnicode},
		{"InvalidBlock", NotBlock(UnicodeBlock(200)), ErrInvalidUnicode},
		{"NegativeCount", Count(-1, Digit()), ErrNegativeCount},
		{"NegativeAtLeast", AtLeast(-2, Digit()), ErrNegativeCount},
		{"NegativeCountRange", CountRange(-1, 2, Digit()), ErrNegativeCount},
		{"InvertedCountRange", CountRange(3, 2, Digit()), ErrInvertedRange},
		{"ChainNegativeCount", Digit().Count(-1), ErrNegativeCount},
		{"QuantifyNil", OneMany(nil), ErrEmptyContent},
		{"QuantifyEmptyChain", (*Pattern)(nil).OneMany(), ErrEmptyContent},
		{"NumericGroupName", NamedGroup("12", Digit()), ErrInvalidGroupName},
		{"DashGroupName", NamedGroup("a-b", Digit()), ErrInvalidGroupName},
		{"LeadingDigitGroupName", NamedGroup("1x", Digit()), ErrInvalidGroupName},
		{"LeadingDigitBalancing", BalancingGroup("a", "2b", Digit()), ErrInvalidGroupName},
		{"LeadingDigitIfGroup", IfGroup("9z", Text("a"), nil), ErrInvalidGroupName},
		{"LeadingDigitReference", NamedGroupReference("1x"), ErrInvalidGroupName},
		{"EmptyGroupName", NamedGroup("", Digit()), ErrInvalidGroupName},
		{"BalancingPrevious", BalancingGroup("a", "", Digit()), ErrInvalidGroupName},
		{"BalancingName", BalancingGroup("a b", "c", Digit()), ErrInvalidGroupName},
		{"ReferenceName", NamedGroupReference("x y"), ErrInvalidGroupName},
		{"ReferenceZero", GroupReference(0), ErrInvalidGroupNumber},
		{"IfGroupName", IfGroup("", Text("a"), nil), ErrInvalidGroupName},
		{"IfGroupNumber", IfGroupNumber(-3, Text("a"), nil), ErrInvalidGroupNumber},
		{"IfNilTest", If(nil, Text("a"), nil), ErrEmptyContent},
		{"IfNilYes", If(Text("a"), nil, Text("b")), ErrEmptyContent},
		{"IfInvalidNo", IfGroup("x", Text("a"), Text("")), ErrEmptyContent},
		{"NilGroup", Group(nil), ErrEmptyContent},
		{"EmptyAny", Group(Any{}), ErrEmptyContent},
		{"NilAny", Group(Any{nil, (*Pattern)(nil)}), ErrEmptyContent},
		{"InvalidInAny", Group(Any{Text("a"), Char(0x10000)}), ErrCharOutOfRange},
		{"ConflictingOptions", Options(IgnoreCase, IgnoreCase), ErrConflictingOptions},
		{"NoOptions", Options(0, 0), ErrNoOptions},
		{"UnknownOption", Options(1<<7, 0), ErrUnknownOption},
		{"OptionsScopeNil", OptionsScope(IgnoreCase, 0, nil), ErrEmptyContent},
		{"EmptyComment", Comment(""), ErrEmptyContent},
		{"ClosingComment", Comment("a)b"), ErrInvalidComment},
		{"MultilineComment", Comment("a\nb"), ErrInvalidComment},
		{"LazyNotQuantifier", Digit().Lazy(), ErrNotQuantifier},
		{"LazyEmpty", (*Pattern)(nil).Lazy(), ErrNotQuantifier},
		{"OrNil", Or(Text("a"), nil), ErrEmptyContent},
		{"ConcatNone", Concat(), ErrEmptyContent},
		{"ConcatInvalid", Concat(Text("a"), Text("")), ErrEmptyContent},
		{"JoinNilSeparator", Join(nil, Text("a"), Text("b")), ErrEmptyContent},
		{"SurroundNil", Surround(nil, Text("a"), Text("b")), ErrEmptyContent},
		{"BalancedName", Balanced("1", Char('('), Char(')')), ErrInvalidGroupName},
		{"BalancedAutoNil", BalancedAuto(Char('('), nil), ErrEmptyContent},
		{"Propagates", Digit().Literal("").Digit(), ErrEmptyContent},
		{"PropagatesNested", Group(NoncapturingGroup(Literal("a").Range('b', 'a'))), ErrInvertedRange},
		{"PropagatesThroughQuantifier", Literal("").Digit().OneMany(), ErrEmptyContent},
		{"PropagatesThroughLazy", Literal("").Digit().OneMany().Lazy(), ErrEmptyContent},
		{"PropagatesThroughAppend", Digit().Append(Literal("a").Count(-1)), ErrNegativeCount},
		{"KeepsFirst", Literal("").Character(0x10000), ErrEmptyContent},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Assert(t, errors.Is(c.p.Err(), c.err), "got %v", c.p.Err())

			got, err := Render(c.p)
			assert.Assert(t, errors.Is(err, c.err), "got %v", err)
			assert.Equal(t, got, "")
			assert.Equal(t, c.p.String(), "")

			var argErr *ArgumentError
			assert.Assert(t, errors.As(err, &argErr))
			assert.Assert(t, argErr.Op != "")
		})
	}
}

func TestContentErrors(t *testing.T) {
	cases := []struct {
		name string
		c    Content
		err  error
	}{
		{"Nil", nil, ErrEmptyContent},
		{"NilPattern", (*Pattern)(nil), ErrEmptyContent},
		{"EmptyText", Text(""), ErrEmptyContent},
		{"InvalidUTF8Text", Text("a\xffb"), ErrInvalidUTF8},
		{"CharAboveMax", Char(0x1F600), ErrCharOutOfRange},
		{"EmptyGrouping", NewCharGrouping(), ErrEmptyCharGrouping},
		{"EmptyAny", Any{}, ErrEmptyContent},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Render(c.c)
			assert.Assert(t, errors.Is(err, c.err), "got %v", err)
		})
	}
}

func TestArgumentError(t *testing.T) {
	err := GroupReference(0).Err()
	assert.Error(t, err, "GroupReference: regolith: invalid group number: 0")

	var argErr *ArgumentError
	assert.Assert(t, errors.As(err, &argErr))
	assert.Equal(t, argErr.Op, "GroupReference")
	assert.Equal(t, argErr.Detail, "0")
	assert.Equal(t, errors.Unwrap(err), ErrInvalidGroupNumber)

	assert.Error(t, Options(0, 0).Err(), "Options: regolith: no option is applied or disabled")
	assert.ErrorIs(t, (*Pattern)(nil).Err(), ErrEmptyContent)
}
