package regolith

// UnicodeCategory is a Unicode general category usable in "\p{...}".
type UnicodeCategory uint8

const (
	CategoryLetter UnicodeCategory = iota
	CategoryUppercaseLetter
	CategoryLowercaseLetter
	CategoryTitlecaseLetter
	CategoryModifierLetter
	CategoryOtherLetter
	CategoryMark
	CategoryNonspacingMark
	CategorySpacingMark
	CategoryEnclosingMark
	CategoryNumber
	CategoryDecimalDigitNumber
	CategoryLetterNumber
	CategoryOtherNumber
	CategoryPunctuation
	CategoryConnectorPunctuation
	CategoryDashPunctuation
	CategoryOpenPunctuation
	CategoryClosePunctuation
	CategoryInitialQuotePunctuation
	CategoryFinalQuotePunctuation
	CategoryOtherPunctuation
	CategorySymbol
	CategoryMathSymbol
	CategoryCurrencySymbol
	CategoryModifierSymbol
	CategoryOtherSymbol
	CategorySeparator
	CategorySpaceSeparator
	CategoryLineSeparator
	CategoryParagraphSeparator
	CategoryOther
	CategoryControl
	CategoryFormat
	CategorySurrogate
	CategoryPrivateUse
	CategoryNotAssigned

	categoryCount
)

var categoryDesignations = [categoryCount]string{
	"L", "Lu", "Ll", "Lt", "Lm", "Lo",
	"M", "Mn", "Mc", "Me",
	"N", "Nd", "Nl", "No",
	"P", "Pc", "Pd", "Ps", "Pe", "Pi", "Pf", "Po",
	"S", "Sm", "Sc", "Sk", "So",
	"Z", "Zs", "Zl", "Zp",
	"C", "Cc", "Cf", "Cs", "Co", "Cn",
}

var categoryNames = [categoryCount]string{
	"Letter", "Uppercase letter", "Lowercase letter", "Titlecase letter", "Modifier letter", "Other letter",
	"Mark", "Nonspacing mark", "Spacing mark", "Enclosing mark",
	"Number", "Decimal digit number", "Letter number", "Other number",
	"Punctuation", "Connector punctuation", "Dash punctuation", "Open punctuation", "Close punctuation",
	"Initial quote punctuation", "Final quote punctuation", "Other punctuation",
	"Symbol", "Math symbol", "Currency symbol", "Modifier symbol", "Other symbol",
	"Separator", "Space separator", "Line separator", "Paragraph separator",
	"Other", "Control", "Format", "Surrogate", "Private use", "Not assigned",
}

// Designation returns the short name used inside "\p{...}", e.g. "Lu".
// It returns "" for unknown values.
func (c UnicodeCategory) Designation() string {
	if c >= categoryCount {
		return ""
	}
	return categoryDesignations[c]
}

func (c UnicodeCategory) String() string {
	if c >= categoryCount {
		return ""
	}
	return categoryNames[c]
}

func (c UnicodeCategory) valid() bool {
	return c < categoryCount
}

// ParseUnicodeCategory looks up a category by its designation.
func ParseUnicodeCategory(designation string) (UnicodeCategory, bool) {
	for i, d := range categoryDesignations {
		if d == designation {
			return UnicodeCategory(i), true
		}
	}
	return 0, false
}

// UnicodeBlock is a named Unicode block usable in "\p{Is...}".
type UnicodeBlock uint8

const (
	BlockBasicLatin UnicodeBlock = iota
	BlockLatin1Supplement
	BlockLatinExtendedA
	BlockLatinExtendedB
	BlockIPAExtensions
	BlockSpacingModifierLetters
	BlockCombiningDiacriticalMarks
	BlockGreekAndCoptic
	BlockCyrillic
	BlockCyrillicSupplement
	BlockArmenian
	BlockHebrew
	BlockArabic
	BlockSyriac
	BlockThaana
	BlockDevanagari
	BlockBengali
	BlockGurmukhi
	BlockGujarati
	BlockOriya
	BlockTamil
	BlockTelugu
	BlockKannada
	BlockMalayalam
	BlockSinhala
	BlockThai
	BlockLao
	BlockTibetan
	BlockMyanmar
	BlockGeorgian
	BlockHangulJamo
	BlockEthiopic
	BlockCherokee
	BlockUnifiedCanadianAboriginalSyllabics
	BlockOgham
	BlockRunic
	BlockTagalog
	BlockHanunoo
	BlockBuhid
	BlockTagbanwa
	BlockKhmer
	BlockMongolian
	BlockLimbu
	BlockTaiLe
	BlockKhmerSymbols
	BlockPhoneticExtensions
	BlockLatinExtendedAdditional
	BlockGreekExtended
	BlockGeneralPunctuation
	BlockSuperscriptsAndSubscripts
	BlockCurrencySymbols
	BlockCombiningDiacriticalMarksForSymbols
	BlockLetterlikeSymbols
	BlockNumberForms
	BlockArrows
	BlockMathematicalOperators
	BlockMiscellaneousTechnical
	BlockControlPictures
	BlockOpticalCharacterRecognition
	BlockEnclosedAlphanumerics
	BlockBoxDrawing
	BlockBlockElements
	BlockGeometricShapes
	BlockMiscellaneousSymbols
	BlockDingbats
	BlockMiscellaneousMathematicalSymbolsA
	BlockSupplementalArrowsA
	BlockBraillePatterns
	BlockSupplementalArrowsB
	BlockMiscellaneousMathematicalSymbolsB
	BlockSupplementalMathematicalOperators
	BlockMiscellaneousSymbolsAndArrows
	BlockCJKRadicalsSupplement
	BlockKangxiRadicals
	BlockIdeographicDescriptionCharacters
	BlockCJKSymbolsAndPunctuation
	BlockHiragana
	BlockKatakana
	BlockBopomofo
	BlockHangulCompatibilityJamo
	BlockKanbun
	BlockBopomofoExtended
	BlockKatakanaPhoneticExtensions
	BlockEnclosedCJKLettersAndMonths
	BlockCJKCompatibility
	BlockCJKUnifiedIdeographsExtensionA
	BlockYijingHexagramSymbols
	BlockCJKUnifiedIdeographs
	BlockYiSyllables
	BlockYiRadicals
	BlockHangulSyllables
	BlockHighSurrogates
	BlockHighPrivateUseSurrogates
	BlockLowSurrogates
	BlockPrivateUseArea
	BlockCJKCompatibilityIdeographs
	BlockAlphabeticPresentationForms
	BlockArabicPresentationFormsA
	BlockVariationSelectors
	BlockCombiningHalfMarks
	BlockCJKCompatibilityForms
	BlockSmallFormVariants
	BlockArabicPresentationFormsB
	BlockHalfwidthAndFullwidthForms
	BlockSpecials

	blockCount
)

var blockNames = [blockCount]string{
	"BasicLatin",
	"Latin-1Supplement",
	"LatinExtended-A",
	"LatinExtended-B",
	"IPAExtensions",
	"SpacingModifierLetters",
	"CombiningDiacriticalMarks",
	"GreekandCoptic",
	"Cyrillic",
	"CyrillicSupplement",
	"Armenian",
	"Hebrew",
	"Arabic",
	"Syriac",
	"Thaana",
	"Devanagari",
	"Bengali",
	"Gurmukhi",
	"Gujarati",
	"Oriya",
	"Tamil",
	"Telugu",
	"Kannada",
	"Malayalam",
	"Sinhala",
	"Thai",
	"Lao",
	"Tibetan",
	"Myanmar",
	"Georgian",
	"HangulJamo",
	"Ethiopic",
	"Cherokee",
	"UnifiedCanadianAboriginalSyllabics",
	"Ogham",
	"Runic",
	"Tagalog",
	"Hanunoo",
	"Buhid",
	"Tagbanwa",
	"Khmer",
	"Mongolian",
	"Limbu",
	"TaiLe",
	"KhmerSymbols",
	"PhoneticExtensions",
	"LatinExtendedAdditional",
	"GreekExtended",
	"GeneralPunctuation",
	"SuperscriptsandSubscripts",
	"CurrencySymbols",
	"CombiningDiacriticalMarksforSymbols",
	"LetterlikeSymbols",
	"NumberForms",
	"Arrows",
	"MathematicalOperators",
	"MiscellaneousTechnical",
	"ControlPictures",
	"OpticalCharacterRecognition",
	"EnclosedAlphanumerics",
	"BoxDrawing",
	"BlockElements",
	"GeometricShapes",
	"MiscellaneousSymbols",
	"Dingbats",
	"MiscellaneousMathematicalSymbols-A",
	"SupplementalArrows-A",
	"BraillePatterns",
	"SupplementalArrows-B",
	"MiscellaneousMathematicalSymbols-B",
	"SupplementalMathematicalOperators",
	"MiscellaneousSymbolsandArrows",
	"CJKRadicalsSupplement",
	"KangxiRadicals",
	"IdeographicDescriptionCharacters",
	"CJKSymbolsandPunctuation",
	"Hiragana",
	"Katakana",
	"Bopomofo",
	"HangulCompatibilityJamo",
	"Kanbun",
	"BopomofoExtended",
	"KatakanaPhoneticExtensions",
	"EnclosedCJKLettersandMonths",
	"CJKCompatibility",
	"CJKUnifiedIdeographsExtensionA",
	"YijingHexagramSymbols",
	"CJKUnifiedIdeographs",
	"YiSyllables",
	"YiRadicals",
	"HangulSyllables",
	"HighSurrogates",
	"HighPrivateUseSurrogates",
	"LowSurrogates",
	"PrivateUse",
	"CJKCompatibilityIdeographs",
	"AlphabeticPresentationForms",
	"ArabicPresentationForms-A",
	"VariationSelectors",
	"CombiningHalfMarks",
	"CJKCompatibilityForms",
	"SmallFormVariants",
	"ArabicPresentationForms-B",
	"HalfwidthandFullwidthForms",
	"Specials",
}

// Designation returns the name used inside "\p{...}", e.g. "IsBasicLatin".
// It returns "" for unknown values.
func (b UnicodeBlock) Designation() string {
	if b >= blockCount {
		return ""
	}
	return "Is" + blockNames[b]
}

func (b UnicodeBlock) String() string {
	if b >= blockCount {
		return ""
	}
	return blockNames[b]
}

func (b UnicodeBlock) valid() bool {
	return b < blockCount
}

// ParseUnicodeBlock looks up a block by its designation, with or without
// the "Is" prefix.
func ParseUnicodeBlock(designation string) (UnicodeBlock, bool) {
	if len(designation) > 2 && designation[:2] == "Is" {
		designation = designation[2:]
	}
	for i, n := range blockNames {
		if n == designation {
			return UnicodeBlock(i), true
		}
	}
	return 0, false
}
