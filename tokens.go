package regolith

// TokenKind classifies a span of rendered text for comment annotations.
type TokenKind uint8

const (
	TokenText TokenKind = iota
	TokenCharacter
	TokenAnyChar
	TokenDigit
	TokenNotDigit
	TokenWordChar
	TokenNotWordChar
	TokenWhiteSpace
	TokenNotWhiteSpace
	TokenCharGroup
	TokenNegativeCharGroup
	TokenUnicodeCategory
	TokenNotUnicodeCategory
	TokenUnicodeBlock
	TokenNotUnicodeBlock
	TokenNumberedGroup
	TokenNamedGroup
	TokenNoncapturingGroup
	TokenNonbacktrackingGroup
	TokenBalancingGroup
	TokenAssertion
	TokenNotAssertion
	TokenBackAssertion
	TokenNotBackAssertion
	TokenGroupEnd
	TokenQuantifier
	TokenAlternation
	TokenConditional
	TokenStart
	TokenEnd
	TokenStartOfInput
	TokenStartOfLine
	TokenEndOfInput
	TokenEndOfInputOrBeforeFinalNewLine
	TokenEndOfLine
	TokenWordBoundary
	TokenNotWordBoundary
	TokenPreviousMatchEnd
	TokenGroupReference
	TokenNamedGroupReference
	TokenOptions
	TokenOptionsGroup
	TokenComment

	tokenKindCount
)

var tokenDescriptions = [tokenKindCount]string{
	TokenText:                           "Text",
	TokenCharacter:                      "Character",
	TokenAnyChar:                        "Any character except newline",
	TokenDigit:                          "Digit",
	TokenNotDigit:                       "Not digit",
	TokenWordChar:                       "Word character",
	TokenNotWordChar:                    "Not word character",
	TokenWhiteSpace:                     "White-space",
	TokenNotWhiteSpace:                  "Not white-space",
	TokenCharGroup:                      "Character group",
	TokenNegativeCharGroup:              "Negative character group",
	TokenUnicodeCategory:                "Unicode category",
	TokenNotUnicodeCategory:             "Not Unicode category",
	TokenUnicodeBlock:                   "Unicode block",
	TokenNotUnicodeBlock:                "Not Unicode block",
	TokenNumberedGroup:                  "Numbered group",
	TokenNamedGroup:                     "Named group",
	TokenNoncapturingGroup:              "Noncapturing group",
	TokenNonbacktrackingGroup:           "Nonbacktracking group",
	TokenBalancingGroup:                 "Balancing group",
	TokenAssertion:                      "Assertion",
	TokenNotAssertion:                   "Negative assertion",
	TokenBackAssertion:                  "Back assertion",
	TokenNotBackAssertion:               "Negative back assertion",
	TokenGroupEnd:                       "End of group",
	TokenQuantifier:                     "Quantifier",
	TokenAlternation:                    "Or",
	TokenConditional:                    "If",
	TokenStart:                          "Start of input or line",
	TokenEnd:                            "End of input or line",
	TokenStartOfInput:                   "Start of input",
	TokenStartOfLine:                    "Start of line",
	TokenEndOfInput:                     "End of input",
	TokenEndOfInputOrBeforeFinalNewLine: "End of input or before final newline",
	TokenEndOfLine:                      "End of line",
	TokenWordBoundary:                   "Word boundary",
	TokenNotWordBoundary:                "Not word boundary",
	TokenPreviousMatchEnd:               "Previous match end",
	TokenGroupReference:                 "Group reference",
	TokenNamedGroupReference:            "Named group reference",
	TokenOptions:                        "Options",
	TokenOptionsGroup:                   "Options group",
	TokenComment:                        "Comment",
}

func (k TokenKind) String() string {
	if k >= tokenKindCount {
		return ""
	}
	return tokenDescriptions[k]
}

// Token is a classified span [Start, End) of the rendered text. Tokens are
// recorded only when comments are requested.
type Token struct {
	Kind   TokenKind
	Start  int
	End    int
	Detail string
}

// Description returns the human-readable annotation for the token.
func (t Token) Description() string {
	if t.Detail == "" {
		return t.Kind.String()
	}
	return t.Kind.String() + " " + t.Detail
}
