package regolith

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// EngineOptions returns the regexp2 options matching opts. Formatted text
// additionally needs IgnorePatternWhitespace.
func EngineOptions(opts Option, settings Settings) regexp2.RegexOptions {
	res := regexp2.None
	if opts&IgnoreCase != 0 {
		res |= regexp2.IgnoreCase
	}
	if opts&Multiline != 0 {
		res |= regexp2.Multiline
	}
	if opts&ExplicitCapture != 0 {
		res |= regexp2.ExplicitCapture
	}
	if opts&Singleline != 0 {
		res |= regexp2.Singleline
	}
	if opts&IgnorePatternWhitespace != 0 || settings.Format {
		res |= regexp2.IgnorePatternWhitespace
	}
	return res
}

// Compile renders c and compiles the text with regexp2.
//
// regexp2 does not know the .NET block names, so patterns using Block,
// NotBlock or a grouping with blocks fail to compile, as does the "Cn"
// category.
func Compile(c Content, settings Settings, opts Option) (*regexp2.Regexp, error) {
	text, err := RenderWith(c, settings)
	if err != nil {
		return nil, err
	}
	re, err := regexp2.Compile(text, EngineOptions(opts, settings))
	if err != nil {
		return nil, fmt.Errorf("compiling %q: %w", text, err)
	}
	return re, nil
}

// MustCompile is like [Compile] but panics on error. It simplifies safe
// initialization of global variables.
func MustCompile(c Content, settings Settings, opts Option) *regexp2.Regexp {
	re, err := Compile(c, settings, opts)
	if err != nil {
		panic("regolith: MustCompile: " + err.Error())
	}
	return re
}
