package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// PancakeBook is the two-recipe book used across package tests.
const PancakeBook = `
recipes:
  - name: Pancake
    ingredients: [Store-bought pancake mix, Water]
    method: [Mix the ingredients, Cook them in a pan]
  - name: Miso Soup
    ingredients: [Tofu, White miso paste]
    method: [Mix miso paste into boiling water, Add tofu and serve]
`

// WriteBook writes content to name inside a fresh temporary directory.
// It returns the absolute path and fails the test immediately on error.
func WriteBook(t *testing.T, name, content string) string {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join(t.TempDir(), name))
	require.NoError(t, err, "Failed to get absolute path for temp file")

	require.NoError(t, os.WriteFile(absPath, []byte(content), 0o644), "Failed to write recipe book")
	return absPath
}

// Chdir changes the working directory to dir for the duration of the test
// and restores the previous working directory during cleanup.
func Chdir(t *testing.T, dir string) {
	t.Helper()

	prev, err := os.Getwd()
	require.NoError(t, err, "Failed to get working directory")
	require.NoError(t, os.Chdir(dir), "Failed to change working directory")
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(prev), "Failed to restore working directory")
	})
}
