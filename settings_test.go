package regolith

import (
	"bytes"
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v2"
	"gotest.tools/v3/assert"
)

func settingsFile(name string) string {
	return filepath.Join("testdata", "settings", name)
}

func TestLoadSettings(t *testing.T) {
	t.Run("formatted", func(t *testing.T) {
		s, err := LoadSettings(settingsFile("formatted.yaml"))
		assert.NilError(t, err)
		assert.DeepEqual(t, s, Settings{
			Format:                       true,
			Comment:                      true,
			IdentifierBoundary:           Apostrophes,
			SeparateGroupNumberReference: true,
			IfConditionWithoutAssertion:  true,
		})
	})
	t.Run("partial", func(t *testing.T) {
		s, err := LoadSettings(settingsFile("partial.yaml"))
		assert.NilError(t, err)
		assert.DeepEqual(t, s, Settings{SeparateGroupNumberReference: true})
	})
	t.Run("comment_without_format", func(t *testing.T) {
		_, err := LoadSettings(settingsFile("comment_without_format.yaml"))
		assert.Assert(t, errors.Is(err, ErrInvalidSettings), "got %v", err)
	})
	t.Run("unknown_key", func(t *testing.T) {
		_, err := LoadSettings(settingsFile("unknown_key.yaml"))
		assert.ErrorContains(t, err, "indent")
	})
	t.Run("bad_boundary", func(t *testing.T) {
		_, err := LoadSettings(settingsFile("bad_boundary.yaml"))
		assert.Assert(t, errors.Is(err, ErrInvalidSettings), "got %v", err)
		assert.ErrorContains(t, err, "square")
	})
	t.Run("missing", func(t *testing.T) {
		_, err := LoadSettings(settingsFile("missing.yaml"))
		assert.Assert(t, errors.Is(err, fs.ErrNotExist), "got %v", err)
	})
}

func TestParseSettings(t *testing.T) {
	s, err := ParseSettings(nil)
	assert.NilError(t, err)
	assert.DeepEqual(t, s, DefaultSettings())

	s, err = ParseSettings([]byte(`identifierBoundary: "''"`))
	assert.NilError(t, err)
	assert.Equal(t, s.IdentifierBoundary, Apostrophes)

	_, err = ParseSettings([]byte("format: [1"))
	assert.ErrorContains(t, err, "parsing settings")
}

func TestSettingsRoundTrip(t *testing.T) {
	want := Settings{Format: true, IdentifierBoundary: Apostrophes, IfConditionWithoutAssertion: true}
	data, err := yaml.Marshal(want)
	assert.NilError(t, err)
	assert.Assert(t, bytes.Contains(data, []byte("identifierBoundary: apostrophe")), string(data))

	got, err := ParseSettings(data)
	assert.NilError(t, err)
	assert.DeepEqual(t, got, want)
}

func TestIdentifierBoundaryString(t *testing.T) {
	assert.Equal(t, AngleBrackets.String(), "angle")
	assert.Equal(t, Apostrophes.String(), "apostrophe")
	assert.Equal(t, IdentifierBoundary(9).String(), "IdentifierBoundary(9)")
}
