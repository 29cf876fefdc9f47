package main

import (
	"bytes"
	"testing"

	"github.com/aretw0/recipebook/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	testutils.Chdir(t, t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "recipebook version")
}

func TestValidateAndListCommands(t *testing.T) {
	path := testutils.WriteBook(t, "book.yaml", testutils.PancakeBook)

	out, err := execute(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Pancake")

	out, err = execute(t, "list", path)
	require.NoError(t, err)
	assert.Equal(t, "Miso Soup\nPancake\n", out)
}

func TestShowCommand_Plain(t *testing.T) {
	path := testutils.WriteBook(t, "book.json", `{"recipes": [{"name": "Pancake", "ingredients": ["Water"], "method": ["Cook"]}]}`)

	out, err := execute(t, "show", "Pancake", "--plain", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "# Pancake")
}
