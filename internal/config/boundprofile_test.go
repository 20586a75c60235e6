package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "bounds.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadBoundProfileResolvesKnownBounds(t *testing.T) {
	path := writeProfile(t, "bounds:\n  - total\n  - singleton\n  - amortized\n")

	bp, err := LoadBoundProfile(path)
	require.NoError(t, err)

	bounds, err := bp.Resolve()
	require.NoError(t, err)
	if assert.Len(t, bounds, 3) {
		assert.Equal(t, "total", bounds[0].Name())
		assert.Equal(t, "singleton", bounds[1].Name())
		assert.Equal(t, "amortized", bounds[2].Name())
	}
}

func TestLoadBoundProfileRejectsUnknownBound(t *testing.T) {
	path := writeProfile(t, "bounds:\n  - made_up\n")

	bp, err := LoadBoundProfile(path)
	require.NoError(t, err)

	_, err = bp.Resolve()
	assert.Error(t, err)
}

func TestLoadBoundProfileRejectsEmptyList(t *testing.T) {
	path := writeProfile(t, "bounds: []\n")
	_, err := LoadBoundProfile(path)
	assert.Error(t, err)
}

func TestLoadBoundProfileMissingFile(t *testing.T) {
	_, err := LoadBoundProfile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidateIngredientsRange(t *testing.T) {
	assert.NoError(t, ValidateIngredients(2))
	assert.NoError(t, ValidateIngredients(109))
	assert.Error(t, ValidateIngredients(1))
	assert.Error(t, ValidateIngredients(110))
}

func TestValidateFormat(t *testing.T) {
	assert.NoError(t, ValidateFormat("table"))
	assert.NoError(t, ValidateFormat("json"))
	assert.NoError(t, ValidateFormat("simple"))
	assert.Error(t, ValidateFormat("xml"))
}
