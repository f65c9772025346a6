// Package codegen writes Go source files that declare rendered patterns as
// constants, optionally together with compiled regexp2 variables.
package codegen

import (
	"errors"
	"fmt"
	"go/token"
	"io"

	"github.com/auvred/regolith"
	"github.com/dave/jennifer/jen"
	"github.com/dlclark/regexp2"
)

const regexp2Path = "github.com/dlclark/regexp2"

// ErrInvalidDeclaration is returned for declarations that cannot be
// written as Go code.
var ErrInvalidDeclaration = errors.New("codegen: invalid declaration")

// Declaration describes one generated pattern.
type Declaration struct {
	// Name is the Go identifier of the pattern constant. The compiled
	// variable, if any, is named Name + "Regexp".
	Name string

	Pattern regolith.Content

	// Doc is written as the constant's doc comment.
	Doc string

	// Compiled adds a regexp2.MustCompile variable.
	Compiled bool

	// Options are the matching options of the compiled variable.
	Options regolith.Option
}

// Config holds the configuration for code generation.
type Config struct {
	Package      string
	Settings     regolith.Settings
	Declarations []Declaration
}

// Validate checks that the configuration can be generated.
func (c Config) Validate() error {
	if !token.IsIdentifier(c.Package) {
		return fmt.Errorf("%w: package name %q", ErrInvalidDeclaration, c.Package)
	}
	if err := c.Settings.Validate(); err != nil {
		return err
	}
	seen := map[string]bool{}
	for _, d := range c.Declarations {
		if !token.IsIdentifier(d.Name) || d.Name == "_" {
			return fmt.Errorf("%w: name %q", ErrInvalidDeclaration, d.Name)
		}
		if seen[d.Name] {
			return fmt.Errorf("%w: duplicate name %q", ErrInvalidDeclaration, d.Name)
		}
		seen[d.Name] = true
		if d.Compiled {
			v := d.Name + "Regexp"
			if seen[v] {
				return fmt.Errorf("%w: duplicate name %q", ErrInvalidDeclaration, v)
			}
			seen[v] = true
		}
	}
	return nil
}

// Generate builds the Go file for c. Compiled declarations are compiled
// once here, so that the generated variables cannot panic at init.
func Generate(c Config) (*jen.File, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	f := jen.NewFile(c.Package)
	f.HeaderComment("Code generated by regolith. DO NOT EDIT.")

	for _, d := range c.Declarations {
		text, err := regolith.RenderWith(d.Pattern, c.Settings)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", d.Name, err)
		}
		if d.Compiled {
			if _, err := regexp2.Compile(text, regolith.EngineOptions(d.Options, c.Settings)); err != nil {
				return nil, fmt.Errorf("compiling %s: %w", d.Name, err)
			}
		}
		if d.Doc != "" {
			f.Comment(d.Doc)
		}
		f.Const().Id(d.Name).Op("=").Lit(text)
		if d.Compiled {
			f.Var().Id(d.Name+"Regexp").Op("=").Qual(regexp2Path, "MustCompile").Call(
				jen.Id(d.Name),
				engineOptions(d.Options, c.Settings),
			)
		}
		f.Line()
	}
	return f, nil
}

// Write generates the file for c and writes it to w.
func Write(w io.Writer, c Config) error {
	f, err := Generate(c)
	if err != nil {
		return err
	}
	return f.Render(w)
}

// Save generates the file for c and saves it to path.
func Save(path string, c Config) error {
	f, err := Generate(c)
	if err != nil {
		return err
	}
	if err := f.Save(path); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}
	return nil
}

var optionNames = []struct {
	opt  regolith.Option
	name string
}{
	{regolith.IgnoreCase, "IgnoreCase"},
	{regolith.Multiline, "Multiline"},
	{regolith.ExplicitCapture, "ExplicitCapture"},
	{regolith.Singleline, "Singleline"},
	{regolith.IgnorePatternWhitespace, "IgnorePatternWhitespace"},
}

// engineOptions returns the regexp2.RegexOptions expression for opts,
// e.g. regexp2.IgnoreCase | regexp2.Multiline.
func engineOptions(opts regolith.Option, settings regolith.Settings) jen.Code {
	if settings.Format {
		opts |= regolith.IgnorePatternWhitespace
	}
	var expr *jen.Statement
	for _, on := range optionNames {
		if opts&on.opt == 0 {
			continue
		}
		if expr == nil {
			expr = jen.Qual(regexp2Path, on.name)
		} else {
			expr = expr.Op("|").Qual(regexp2Path, on.name)
		}
	}
	if expr == nil {
		return jen.Qual(regexp2Path, "None")
	}
	return expr
}
