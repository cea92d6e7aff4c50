package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrJSON(t *testing.T) {
	assert.Equal(t, map[string]any{"success": false, "error": "boom"}, ErrJSON("boom"))
}

func TestLimitStr(t *testing.T) {
	assert.Equal(t, "short", LimitStr("short", 10))
	assert.Equal(t, "héll...", LimitStr("héllo world", 4))
}

func TestNonEmptyLines(t *testing.T) {
	got := NonEmptyLines("first\n\n   \n second \r\nthird\n")
	assert.Equal(t, []string{"first", "second", "third"}, got)
	assert.Empty(t, NonEmptyLines(" \n\t\n"))
}

func TestSaveLoad(t *testing.T) {
	type prefs struct {
		Name string `json:"name"`
	}
	path := filepath.Join(t.TempDir(), "nested", "prefs.json")

	require.NoError(t, Save(path, prefs{Name: "Asha"}))
	assert.True(t, Exists(path))

	got, err := Load[prefs](path)
	require.NoError(t, err)
	assert.Equal(t, "Asha", got.Name)

	_, err = Load[prefs](filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
