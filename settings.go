package regolith

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// IdentifierBoundary selects the delimiters written around group names.
type IdentifierBoundary uint8

const (
	// Group names are written as <name>.
	AngleBrackets IdentifierBoundary = iota
	// Group names are written as 'name'.
	Apostrophes
)

func (ib IdentifierBoundary) delimiters() (byte, byte) {
	if ib == Apostrophes {
		return '\'', '\''
	}
	return '<', '>'
}

func (ib IdentifierBoundary) String() string {
	switch ib {
	case AngleBrackets:
		return "angle"
	case Apostrophes:
		return "apostrophe"
	}
	return fmt.Sprintf("IdentifierBoundary(%d)", uint8(ib))
}

func (ib IdentifierBoundary) MarshalYAML() (interface{}, error) {
	return ib.String(), nil
}

func (ib *IdentifierBoundary) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	switch s {
	case "angle", "<>":
		*ib = AngleBrackets
	case "apostrophe", "''":
		*ib = Apostrophes
	default:
		return newArgumentError("IdentifierBoundary", ErrInvalidSettings, "unknown boundary %q", s)
	}
	return nil
}

// Settings controls how patterns are rendered. The zero value renders
// compact text with angle-bracket group names.
type Settings struct {
	// Format breaks lines and indents group content. Formatted text must be
	// matched with IgnorePatternWhitespace.
	Format bool `yaml:"format"`

	// Comment annotates every line with descriptions of its constructs.
	// It requires Format.
	Comment bool `yaml:"comment"`

	IdentifierBoundary IdentifierBoundary `yaml:"identifierBoundary"`

	// SeparateGroupNumberReference writes "(?:)" after a numeric
	// backreference so that following digits are not read as part of it.
	SeparateGroupNumberReference bool `yaml:"separateGroupNumberReference"`

	// IfConditionWithoutAssertion writes the test of a conditional as is
	// instead of wrapping it in a lookahead assertion.
	IfConditionWithoutAssertion bool `yaml:"ifConditionWithoutAssertion"`
}

// DefaultSettings returns the settings used by Render.
func DefaultSettings() Settings {
	return Settings{}
}

// Validate reports settings that cannot be rendered.
func (s Settings) Validate() error {
	if s.Comment && !s.Format {
		return newArgumentError("Settings", ErrInvalidSettings, "comment requires format")
	}
	if s.IdentifierBoundary > Apostrophes {
		return newArgumentError("Settings", ErrInvalidSettings, "unknown identifier boundary %d", s.IdentifierBoundary)
	}
	return nil
}

// ParseSettings decodes YAML settings. Unknown keys are rejected.
func ParseSettings(data []byte) (Settings, error) {
	s := DefaultSettings()
	if err := yaml.UnmarshalStrict(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parsing settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// LoadSettings reads and decodes a YAML settings file.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, err
	}
	return ParseSettings(data)
}
