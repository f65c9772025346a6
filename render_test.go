package regolith

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v2"
	"gotest.tools/v3/assert"
)

var renderPatterns = map[string]Content{
	"group":                  Group(Concat(Digit(), Digit())),
	"alternation":            Group(Any{Text("a"), Text("b")}),
	"nested":                 NamedGroup("outer", Group(Digit())),
	"conditional":            IfGroup("x", Text("a"), Text("b")),
	"expressionConditional":  If(Text("a"), Text("b"), nil),
	"quantifiedAlternation":  Literal("a").Or(Text("b")).OneMany(),
	"topLevelAlternation":    Any{Text("cat"), Text("dog")},
	"commentDigit":           Digit(),
	"commentGroup":           Group(Concat(Digit(), Literal("ab"))),
	"commentQuantifier":      Maybe(Literal("ab")),
	"commentAlternation":     Any{Text("cat"), Text("dog")},
	"commentApostrophes":     NamedGroup("y", Count(4, Digit())),
	"commentExplicitCapture": OptionsScope(ExplicitCapture, 0, Group(Digit())),
	"separateReference":      Group(Digit()).GroupReference(1).Literal("0"),
	"ifWithoutAssertion":     If(Text("a"), Text("b"), Text("c")),
}

type renderCase struct {
	Name     string   `yaml:"name"`
	Settings Settings `yaml:"settings"`
	Want     string   `yaml:"want"`
}

func TestRenderCases(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "render.yaml"))
	assert.NilError(t, err)
	var cases []renderCase
	assert.NilError(t, yaml.UnmarshalStrict(data, &cases))
	assert.Equal(t, len(cases), len(renderPatterns))

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			p, ok := renderPatterns[c.Name]
			assert.Assert(t, ok, "no pattern named %q", c.Name)
			got, err := RenderWith(p, c.Settings)
			assert.NilError(t, err)
			assert.Equal(t, got, c.Want)
		})
	}
}
